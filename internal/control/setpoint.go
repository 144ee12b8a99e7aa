package control

import "time"

// SetpointEditor turns the raw plus/minus button levels into setpoint
// adjustments. A press shorter than the short-press threshold does
// nothing; holding past it applies the increment once with an audible
// tick; holding past the long-press threshold enters auto-repeat, applying
// the increment once every repeatDivisor iterations. Both buttons share
// one press episode (the Timers fields) and one repeat counter.
type SetpointEditor struct {
	// repeatCount paces auto-repeat. It is shared by both buttons and
	// carries over between press episodes, wrapping at 256.
	repeatCount uint8
}

type editResult struct {
	active bool
	beep   bool
}

// Update processes both buttons for one iteration, mutating the setpoint
// in place. It returns whether any button is currently held and whether a
// short audible tick should be sounded. Edits mark PendingSaveSince, and
// any activity at all refreshes the setpoint display window.
func (e *SetpointEditor) Update(plus, minus bool, setpoint *int, now time.Time, t *Timers) (active, beep bool) {
	rp := e.press(plus, setpoint, 1, now, t)
	rm := e.press(minus, setpoint, -1, now, t)
	if !rp.active && !rm.active {
		// Both buttons released: the press episode is over.
		t.ButtonPressStart = time.Time{}
		t.LongPressStart = time.Time{}
		return false, false
	}
	return true, rp.beep || rm.beep
}

func (e *SetpointEditor) press(held bool, setpoint *int, increment int, now time.Time, t *Timers) editResult {
	if !held {
		return editResult{}
	}
	if t.ButtonPressStart.IsZero() {
		t.ButtonPressStart = now
	}
	if t.LongPressStart.IsZero() {
		t.LongPressStart = t.ButtonPressStart
	}

	r := editResult{active: true}
	if now.Sub(t.LongPressStart) > longPress {
		if e.repeatCount%repeatDivisor == 0 {
			*setpoint += increment
			t.PendingSaveSince = now
		}
		e.repeatCount++
	} else if now.Sub(t.ButtonPressStart) > shortPress {
		*setpoint += increment
		t.PendingSaveSince = now
		// Restart the short-press clock; the long-press clock keeps
		// running from the original press-down.
		t.ButtonPressStart = time.Time{}
		r.beep = true
	}
	t.SetpointShownUntil = now.Add(setpointShownFor)
	return r
}
