package bowling

import (
	"strings"
	"unicode/utf8"
)

const MinNameLength = 2

// Competitor is one player's name and fixed sequence of frames.
type Competitor struct {
	name   string
	frames [FramesPerGame]Frame
}

// ValidateName checks the competitor name length after trimming spaces.
func ValidateName(name string) error {
	if utf8.RuneCountInString(strings.TrimSpace(name)) < MinNameLength {
		return wrap(ErrInvalidName, "%q shorter than %d characters", name, MinNameLength)
	}
	return nil
}

// NewCompetitor creates a competitor with no frames bowled.
func NewCompetitor(name string) (*Competitor, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	c := &Competitor{name: strings.TrimSpace(name)}
	for i := range c.frames {
		c.frames[i] = newFrame(i == FramesPerGame-1)
	}
	return c, nil
}

func (c *Competitor) Name() string {
	return c.name
}

// SubmitPinsForBall records pins for ball (1-3) of frame (1-FramesPerGame).
// A rejected ball leaves every frame unchanged.
func (c *Competitor) SubmitPinsForBall(frame, ball, pins int) error {
	if frame < 1 || frame > FramesPerGame {
		return wrap(ErrInvalidFrame, "%d not in [1, %d]", frame, FramesPerGame)
	}
	if err := validatePins(pins); err != nil {
		return err
	}
	if ball < 1 || ball > 3 {
		return wrap(ErrInvalidBall, "%d not in [1, 3]", ball)
	}
	idx := frame - 1
	if idx > 0 && !c.frames[idx-1].Started() {
		return wrap(ErrIllegalSequence, "frame %d before frame %d", frame, frame-1)
	}

	f := c.frames[idx]
	var err error
	switch ball {
	case 1:
		err = f.SetBall1(pins)
	case 2:
		err = f.SetBall2(pins)
	case 3:
		err = f.SetBall3(pins)
	}
	if err != nil {
		return err
	}
	c.frames[idx] = f
	return nil
}

// UpdateFrameScores resolves every frame that has enough information. It
// stops at the first frame not yet started and is safe to call repeatedly.
func (c *Competitor) UpdateFrameScores() {
	for i := 0; i < FramesPerGame; i++ {
		frame := &c.frames[i]
		if !frame.Started() {
			break
		}
		if frame.IsScoreCalculated() {
			continue
		}
		var next, afterNext *Frame
		if i+1 < FramesPerGame {
			next = &c.frames[i+1]
		}
		if i+2 < FramesPerGame {
			afterNext = &c.frames[i+2]
		}
		frame.UpdateScore(next, afterNext)
	}
}

// Frames returns a copy of the frame sequence, indexed by frame number - 1.
// Frames that have not been started report Started() == false.
func (c *Competitor) Frames() []Frame {
	out := make([]Frame, FramesPerGame)
	copy(out, c.frames[:])
	return out
}

// Frame returns a copy of frame number n and whether it has been started.
func (c *Competitor) Frame(n int) (Frame, bool) {
	if n < 1 || n > FramesPerGame {
		return Frame{}, false
	}
	f := c.frames[n-1]
	return f, f.Started()
}

// Total sums resolved frame scores up to the first pending frame.
func (c *Competitor) Total() int {
	total := 0
	for _, f := range c.frames {
		v, ok := f.score.Value()
		if !ok {
			break
		}
		total += v
	}
	return total
}

// Complete reports whether every frame of the game has a resolved score.
func (c *Competitor) Complete() bool {
	for _, f := range c.frames {
		if !f.score.IsResolved() {
			return false
		}
	}
	return true
}
