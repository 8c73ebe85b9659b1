package bowling

import "strconv"

// Score is either Resolved with a value or Pending. The zero value is Pending.
type Score struct {
	value    int
	resolved bool
}

func Pending() Score {
	return Score{}
}

func Resolved(value int) Score {
	return Score{value: value, resolved: true}
}

// Value returns the resolved score and true, or 0 and false while pending.
func (s Score) Value() (int, bool) {
	return s.value, s.resolved
}

func (s Score) IsResolved() bool {
	return s.resolved
}

// String renders pending scores as an empty string.
func (s Score) String() string {
	if !s.resolved {
		return ""
	}
	return strconv.Itoa(s.value)
}
