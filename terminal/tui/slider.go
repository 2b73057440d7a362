package tui

// SliderState holds a discrete horizontal slider position
type SliderState struct {
	Steps int // number of positions, value ranges 0..Steps-1
	Value int
}

// NewSliderState creates a slider with the value clamped into range
func NewSliderState(steps, value int) *SliderState {
	s := &SliderState{Steps: max(steps, 1)}
	s.Set(value)
	return s
}

// Set clamps v into range and stores it, returns true if the value changed
func (s *SliderState) Set(v int) bool {
	v = max(0, min(v, s.Steps-1))
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Inc moves the knob one step right
func (s *SliderState) Inc() bool {
	return s.Set(s.Value + 1)
}

// Dec moves the knob one step left
func (s *SliderState) Dec() bool {
	return s.Set(s.Value - 1)
}

// Slider draws the track with the current colors and the knob with the selection style
func (p Printer) Slider(x, y int, s *SliderState) {
	p.PrintHLine(x, y, s.Steps, '-')
	p.WithSelection().Print(x+s.Value, y, " ")
}
