package control

import "time"

// IdleTracker derives the station power state from presence-sensor
// activity. Any transition of the sensor, in either direction, counts as
// activity and resets the idle clock; a signal that stays flat escalates
// through Idle to DeepIdle as the configured timeouts elapse.
type IdleTracker struct {
	sleepTimeout     time.Duration
	deepSleepTimeout time.Duration
	lastPresence     bool
}

// NewIdleTracker creates a tracker with the given escalation timeouts.
func NewIdleTracker(sleepTimeout, deepSleepTimeout time.Duration) IdleTracker {
	return IdleTracker{
		sleepTimeout:     sleepTimeout,
		deepSleepTimeout: deepSleepTimeout,
	}
}

// Update folds one presence sample into the tracker and returns the state
// for this iteration. The idle clock lives in the loop-owned Timers.
func (k *IdleTracker) Update(presence bool, now time.Time, t *Timers) IdleState {
	if presence != k.lastPresence {
		k.lastPresence = presence
		t.IdleSince = now
		return Active
	}
	elapsed := now.Sub(t.IdleSince)
	switch {
	case elapsed > k.deepSleepTimeout:
		return DeepIdle
	case elapsed > k.sleepTimeout:
		return Idle
	}
	return Active
}
