package bowling

const (
	FramesPerGame = 10
	MaxPins       = 10
)

type ball struct {
	pins   int
	bowled bool
}

func (b ball) get() (int, bool) {
	return b.pins, b.bowled
}

// Frame holds the pinfall of one frame and its score once resolvable.
//
// Frame is a value type. Copies returned to callers are read-only views;
// only the owning Competitor mutates its frames.
type Frame struct {
	final  bool
	strike bool
	spare  bool
	ball1  ball
	ball2  ball
	ball3  ball
	score  Score
}

func newFrame(final bool) Frame {
	return Frame{final: final}
}

func (f Frame) Ball1() (int, bool) { return f.ball1.get() }
func (f Frame) Ball2() (int, bool) { return f.ball2.get() }
func (f Frame) Ball3() (int, bool) { return f.ball3.get() }

func (f Frame) IsFinalFrame() bool      { return f.final }
func (f Frame) IsStrike() bool          { return f.strike }
func (f Frame) IsSpare() bool           { return f.spare }
func (f Frame) IsScoreCalculated() bool { return f.score.IsResolved() }
func (f Frame) Score() Score            { return f.score }

// Started reports whether the first ball of the frame has been bowled.
func (f Frame) Started() bool {
	return f.ball1.bowled
}

func validatePins(pins int) error {
	if pins < 0 || pins > MaxPins {
		return wrap(ErrInvalidPins, "%d not in [0, %d]", pins, MaxPins)
	}
	return nil
}

// SetBall1 records the first ball of the frame.
func (f *Frame) SetBall1(pins int) error {
	if err := validatePins(pins); err != nil {
		return err
	}
	if f.ball1.bowled {
		return wrap(ErrIllegalSequence, "ball 1 already bowled")
	}
	f.ball1 = ball{pins: pins, bowled: true}
	if pins == MaxPins {
		f.strike = true
	}
	return nil
}

// SetBall2 records the second ball. Outside the final frame a strike ends the
// frame, and in any frame not opened by a strike the two balls share the rack.
func (f *Frame) SetBall2(pins int) error {
	if err := validatePins(pins); err != nil {
		return err
	}
	if !f.final && f.strike {
		return wrap(ErrIllegalSequence, "ball 2 after a strike")
	}
	if !f.ball1.bowled {
		return wrap(ErrIllegalSequence, "ball 2 before ball 1")
	}
	if f.ball2.bowled {
		return wrap(ErrIllegalSequence, "ball 2 already bowled")
	}
	spare := false
	if !(f.final && f.strike) {
		if pins > MaxPins-f.ball1.pins {
			return wrap(ErrNotEnoughPins, "%d requested, %d standing", pins, MaxPins-f.ball1.pins)
		}
		spare = f.ball1.pins+pins == MaxPins
	}
	f.ball2 = ball{pins: pins, bowled: true}
	f.spare = spare
	return nil
}

// SetBall3 records the bonus ball of a final frame opened by a strike or
// closed by a spare.
func (f *Frame) SetBall3(pins int) error {
	if err := validatePins(pins); err != nil {
		return err
	}
	if !f.final {
		return wrap(ErrIllegalSequence, "ball 3 outside the final frame")
	}
	if !f.strike && !f.spare {
		return wrap(ErrIllegalSequence, "ball 3 without a strike or spare")
	}
	if !f.ball2.bowled {
		return wrap(ErrIllegalSequence, "ball 3 before ball 2")
	}
	if f.ball3.bowled {
		return wrap(ErrIllegalSequence, "ball 3 already bowled")
	}
	f.ball3 = ball{pins: pins, bowled: true}
	return nil
}

// UpdateScore resolves the frame score when enough balls are known. next is
// the following frame and afterNext the one after it; either is nil when the
// game has no such frame. Resolved scores are never recomputed.
func (f *Frame) UpdateScore(next, afterNext *Frame) {
	if f.score.IsResolved() || !f.ball1.bowled {
		return
	}
	switch {
	case f.strike:
		bonus1, ok1 := f.nextBall(next)
		bonus2, ok2 := f.ballAfterNext(next, afterNext)
		if ok1 && ok2 {
			f.score = Resolved(f.ball1.pins + bonus1 + bonus2)
		}
	case f.spare:
		if bonus, ok := f.nextBall(next); ok {
			f.score = Resolved(f.ball1.pins + f.ball2.pins + bonus)
		}
	default:
		if f.ball2.bowled {
			f.score = Resolved(f.ball1.pins + f.ball2.pins)
		}
	}
}

func (f *Frame) nextBall(next *Frame) (int, bool) {
	if next != nil {
		return next.ball1.get()
	}
	if !f.final {
		return 0, false
	}
	switch {
	case f.strike:
		return f.ball2.get()
	case f.spare:
		return f.ball3.get()
	default:
		return 0, false
	}
}

func (f *Frame) ballAfterNext(next, afterNext *Frame) (int, bool) {
	if next != nil {
		if next.strike {
			// Second to last frame: the final frame carries both bonus balls.
			if afterNext != nil {
				return afterNext.ball1.get()
			}
			return next.ball2.get()
		}
		return next.ball2.get()
	}
	if f.final && f.strike {
		return f.ball3.get()
	}
	return 0, false
}
