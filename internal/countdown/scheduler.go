package countdown

import "time"

// Stopper is a handle to a scheduled callback.
type Stopper interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped it, false if it already fired or was stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay and tells the current time.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Stopper
	Now() time.Time
}

type realScheduler struct{}

// RealScheduler returns a [Scheduler] backed by the time package.
func RealScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

func (realScheduler) Now() time.Time {
	return time.Now()
}
