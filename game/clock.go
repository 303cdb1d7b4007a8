package game

import "time"

// Timer is a handle to a scheduled callback. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Clock schedules the loop's callbacks. Tests swap in a manual clock.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

// SystemClock returns the wall clock backed by time.AfterFunc.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// task is the loop's handle on one scheduled callback. A callback only acts
// while its task is still the one the loop holds.
type task struct {
	timer Timer
}
