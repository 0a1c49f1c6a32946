package spreadsheet

import (
	"context"
	"os"
	"strconv"

	"github.com/okian/scout/internal/domain/memo"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/pkg/metrics"
)

// CachedLoader memoizes datasets by path and file modification time. A file
// rewritten on disk is a miss and is read again.
type CachedLoader struct {
	next  Loader
	cache memo.Cache[*model.Dataset]
}

var _ Loader = (*CachedLoader)(nil)

// NewCachedLoader wraps next. maxSize bounds the number of datasets kept;
// zero or less keeps every path.
func NewCachedLoader(next Loader, maxSize int) *CachedLoader {
	return &CachedLoader{
		next:  next,
		cache: memo.New[*model.Dataset](memo.WithMaxSize(maxSize)),
	}
}

// Load returns the memoized dataset for path when the file is unchanged.
// Failures are never memoized.
func (c *CachedLoader) Load(ctx context.Context, path string) (*model.Dataset, error) {
	version, ok := fileVersion(path)
	if ok {
		if ds, hit := c.cache.Get(ctx, path, version); hit {
			metrics.RecordDatasetCacheHit()
			return ds, nil
		}
	}
	metrics.RecordDatasetCacheMiss()

	ds, err := c.next.Load(ctx, path)
	if err != nil {
		c.cache.Invalidate(ctx, path)
		return nil, err
	}
	if ok {
		c.cache.Put(ctx, path, version, ds)
	}
	return ds, nil
}

// Invalidate forgets the dataset memoized for path.
func (c *CachedLoader) Invalidate(ctx context.Context, path string) {
	c.cache.Invalidate(ctx, path)
}

// Purge forgets every memoized dataset.
func (c *CachedLoader) Purge(ctx context.Context) {
	c.cache.Purge(ctx)
}

// Size returns the number of memoized datasets.
func (c *CachedLoader) Size() int64 {
	return c.cache.Size()
}

func fileVersion(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(info.ModTime().UnixNano(), 10) + "/" + strconv.FormatInt(info.Size(), 10), true
}
