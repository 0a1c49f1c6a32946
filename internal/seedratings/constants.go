package seedratings

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Runner configuration constants.
const (
	PercentageMultiplier = 100
	commentPrefix        = "seed run "
)

// submission outcomes.
const (
	resultSuccess  = "success"
	resultRejected = "rejected"
	resultFailed   = "failed"
)
