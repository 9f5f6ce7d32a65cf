package input

// Tracker derives edge masks from consecutive held masks
// Zero value starts with nothing held
type Tracker struct {
	prev Button
}

// Next records the held mask for a new frame and returns its snapshot
func (t *Tracker) Next(current Button) ButtonState {
	s := ButtonState{
		Current:  current,
		Pushed:   current &^ t.prev,
		Released: t.prev &^ current,
	}
	t.prev = current
	return s
}

// Reset forgets the previous frame
func (t *Tracker) Reset() {
	t.prev = ButtonNone
}
