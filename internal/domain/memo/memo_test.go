package memo_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/okian/scout/internal/domain/memo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCache(t *testing.T) {
	ctx := context.Background()

	Convey("Given a new cache", t, func() {
		c := memo.New[int]()

		Convey("Then it should start empty", func() {
			So(c.Size(), ShouldEqual, 0)
			_, ok := c.Get(ctx, "a", "v1")
			So(ok, ShouldBeFalse)
		})

		Convey("When a value is stored", func() {
			c.Put(ctx, "a", "v1", 1)

			Convey("Then the same key and version should hit", func() {
				v, ok := c.Get(ctx, "a", "v1")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, 1)
			})

			Convey("Then a different version should miss", func() {
				_, ok := c.Get(ctx, "a", "v2")
				So(ok, ShouldBeFalse)
			})

			Convey("And a newer version replaces it", func() {
				c.Put(ctx, "a", "v2", 2)

				Convey("Then only the new version should hit", func() {
					_, ok := c.Get(ctx, "a", "v1")
					So(ok, ShouldBeFalse)
					v, ok := c.Get(ctx, "a", "v2")
					So(ok, ShouldBeTrue)
					So(v, ShouldEqual, 2)
					So(c.Size(), ShouldEqual, 1)
				})
			})

			Convey("And it is invalidated", func() {
				c.Invalidate(ctx, "a")

				Convey("Then it should miss", func() {
					_, ok := c.Get(ctx, "a", "v1")
					So(ok, ShouldBeFalse)
					So(c.Size(), ShouldEqual, 0)
				})
			})

			Convey("And an unknown key is invalidated", func() {
				c.Invalidate(ctx, "zzz")
				So(c.Size(), ShouldEqual, 1)
			})
		})

		Convey("When several values are purged", func() {
			c.Put(ctx, "a", "1", 1)
			c.Put(ctx, "b", "1", 2)
			c.Purge(ctx)

			Convey("Then the cache should be empty", func() {
				So(c.Size(), ShouldEqual, 0)
				_, ok := c.Get(ctx, "b", "1")
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given a cache bounded to two entries", t, func() {
		c := memo.New[string](memo.WithMaxSize(2))
		c.Put(ctx, "a", "1", "A")
		c.Put(ctx, "b", "1", "B")
		c.Put(ctx, "c", "1", "C")

		Convey("Then the oldest entry should be evicted", func() {
			So(c.Size(), ShouldEqual, 2)
			_, ok := c.Get(ctx, "a", "1")
			So(ok, ShouldBeFalse)
			_, ok = c.Get(ctx, "b", "1")
			So(ok, ShouldBeTrue)
			_, ok = c.Get(ctx, "c", "1")
			So(ok, ShouldBeTrue)
		})

		Convey("When an existing key is stored again", func() {
			c.Put(ctx, "b", "2", "B2")
			c.Put(ctx, "d", "1", "D")

			Convey("Then it should count as the newest entry", func() {
				_, ok := c.Get(ctx, "c", "1")
				So(ok, ShouldBeFalse)
				v, ok := c.Get(ctx, "b", "2")
				So(ok, ShouldBeTrue)
				So(v, ShouldEqual, "B2")
			})
		})
	})

	Convey("Given an unbounded cache", t, func() {
		c := memo.New[int](memo.WithMaxSize(0))
		for i := 0; i < 100; i++ {
			c.Put(ctx, fmt.Sprintf("k%d", i), "v", i)
		}
		So(c.Size(), ShouldEqual, 100)
	})

	Convey("Given concurrent writers", t, func() {
		c := memo.New[int](memo.WithMaxSize(8))
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("k%d", i)
				c.Put(ctx, key, "v", i)
				c.Get(ctx, key, "v")
			}(i)
		}
		wg.Wait()

		Convey("Then the bound should hold", func() {
			So(c.Size(), ShouldEqual, 8)
		})
	})
}
