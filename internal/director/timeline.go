package director

// Timeline is the running cursor of a scene's shot list. Each Advance hands out
// the start time of the next shot, so shots placed through one Timeline never
// overlap and leave no gaps.
type Timeline struct {
	now float64
}

// Advance returns the current time and moves the cursor forward by the given
// duration. Negative durations do not move the cursor.
func (t *Timeline) Advance(by float64) float64 {
	start := t.now
	if by > 0 {
		t.now += by
	}
	return start
}

// Now is the end of everything placed so far
func (t *Timeline) Now() float64 {
	return t.now
}
