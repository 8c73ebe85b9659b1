// Package game drives a multi-competitor bowling game: it decides who bowls
// which ball, feeds results into the scorer, and pushes scoreboard updates
// to the user interface and any publishers.
package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/danmuck/bowlctl/internal/bowling"
	"github.com/danmuck/bowlctl/internal/observability"
	"github.com/danmuck/bowlctl/internal/scoreboard"
	"github.com/rs/zerolog"
)

var (
	ErrEmptyRoster     = errors.New("game: no competitors")
	ErrGameAborted     = errors.New("game: aborted")
	ErrTooManyAttempts = errors.New("game: too many attempts for ball")
)

// UserInterface is the capability the game needs from a front end.
type UserInterface interface {
	CollectRoster() ([]string, error)
	RequestBallResult(competitor string, frame, ball int) (int, error)
	RenderScoreboard(board scoreboard.Board) error
	Notify(message string) error
}

// Publisher receives a board snapshot after every accepted ball.
type Publisher interface {
	Publish(board scoreboard.Board)
}

type Config struct {
	// MaxCompetitors caps the roster; extra names are dropped. 0 means no cap.
	MaxCompetitors int
	// MaxBallAttempts bounds re-prompts for one ball; 0 means unbounded.
	MaxBallAttempts int
}

func DefaultConfig() Config {
	return Config{MaxCompetitors: 6}
}

type Option func(*Game)

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

func WithPublisher(p Publisher) Option {
	return func(g *Game) {
		if p != nil {
			g.publishers = append(g.publishers, p)
		}
	}
}

type Game struct {
	ui          UserInterface
	cfg         Config
	logger      zerolog.Logger
	publishers  []Publisher
	competitors []*bowling.Competitor
}

func New(ui UserInterface, cfg Config, opts ...Option) *Game {
	g := &Game{
		ui:     ui,
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Competitors returns the roster in bowling order.
func (g *Game) Competitors() []*bowling.Competitor {
	out := make([]*bowling.Competitor, len(g.competitors))
	copy(out, g.competitors)
	return out
}

// Board refreshes every competitor and snapshots the scoreboard.
func (g *Game) Board() scoreboard.Board {
	for _, c := range g.competitors {
		c.UpdateFrameScores()
	}
	return scoreboard.Build(g.competitors)
}

// Run plays a full game: roster, then every frame in order with a scoreboard
// after each round.
func (g *Game) Run(ctx context.Context) (err error) {
	defer func() {
		observability.RecordGame(outcome(err))
	}()
	if err := g.Enroll(); err != nil {
		return err
	}
	for frame := 1; frame <= bowling.FramesPerGame; frame++ {
		if err := g.PlayFrame(ctx, frame); err != nil {
			return err
		}
		board := g.Board()
		if err := g.ui.RenderScoreboard(board); err != nil {
			return fmt.Errorf("render scoreboard: %w", err)
		}
		g.logger.Info().Int("frame", frame).Bool("complete", board.Complete).Msg("round finished")
	}
	for _, row := range g.Board().Rows {
		g.logger.Info().Str("competitor", row.Name).Int("total", row.Total).Msg("final score")
	}
	return nil
}

// outcome maps the error Run returns to its games_total label.
func outcome(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeCompleted
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return observability.OutcomeCanceled
	default:
		return observability.OutcomeAborted
	}
}

// Enroll collects the roster from the UI. Names the scorer rejects are
// reported and skipped, and names past MaxCompetitors are dropped.
func (g *Game) Enroll() error {
	names, err := g.ui.CollectRoster()
	if err != nil {
		return fmt.Errorf("collect roster: %w", err)
	}
	roster := make([]*bowling.Competitor, 0, len(names))
	for _, name := range names {
		if g.cfg.MaxCompetitors > 0 && len(roster) == g.cfg.MaxCompetitors {
			g.logger.Warn().Str("name", name).Int("max", g.cfg.MaxCompetitors).Msg("roster full, competitor dropped")
			if err := g.ui.Notify(fmt.Sprintf("Roster is full (%d competitors); %s was not added.", g.cfg.MaxCompetitors, name)); err != nil {
				return err
			}
			continue
		}
		c, err := bowling.NewCompetitor(name)
		if err != nil {
			g.logger.Warn().Str("name", name).Err(err).Msg("competitor skipped")
			if nerr := g.ui.Notify(err.Error()); nerr != nil {
				return nerr
			}
			continue
		}
		roster = append(roster, c)
	}
	if len(roster) == 0 {
		return ErrEmptyRoster
	}
	g.competitors = roster
	g.logger.Info().Int("competitors", len(roster)).Msg("roster ready")
	g.publish()
	return nil
}

// PlayFrame bowls one frame for every competitor in roster order.
func (g *Game) PlayFrame(ctx context.Context, frame int) error {
	g.logger.Debug().Int("frame", frame).Msg("round started")
	for _, c := range g.competitors {
		if err := g.playTurn(ctx, c, frame); err != nil {
			return err
		}
	}
	return nil
}

// playTurn requests the balls one competitor is owed in frame: a second ball
// unless the first was a strike, and in the final frame a bonus ball after a
// spare or two after a strike.
func (g *Game) playTurn(ctx context.Context, c *bowling.Competitor, frame int) error {
	final := frame == bowling.FramesPerGame
	pins1, err := g.bowl(ctx, c, frame, 1)
	if err != nil {
		return err
	}
	if pins1 != bowling.MaxPins {
		pins2, err := g.bowl(ctx, c, frame, 2)
		if err != nil {
			return err
		}
		if final && pins1+pins2 == bowling.MaxPins {
			_, err = g.bowl(ctx, c, frame, 3)
		}
		return err
	}
	if final {
		if _, err := g.bowl(ctx, c, frame, 2); err != nil {
			return err
		}
		if _, err := g.bowl(ctx, c, frame, 3); err != nil {
			return err
		}
	}
	return nil
}

// bowl asks for one ball until the scorer accepts it. Input errors are
// reported and asked again; rule violations abort the game.
func (g *Game) bowl(ctx context.Context, c *bowling.Competitor, frame, ball int) (int, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		pins, err := g.ui.RequestBallResult(c.Name(), frame, ball)
		if err != nil {
			return 0, fmt.Errorf("request ball: %w", err)
		}

		err = c.SubmitPinsForBall(frame, ball, pins)
		if err == nil {
			g.accepted(c, frame, ball, pins)
			return pins, nil
		}

		observability.RecordRejectedBall(bowling.Kind(err))
		entry := g.logger.With().
			Str("competitor", c.Name()).
			Int("frame", frame).
			Int("ball", ball).
			Int("pins", pins).
			Logger()
		if !bowling.Recoverable(err) {
			entry.Error().Err(err).Msg("ball violates game rules")
			aborted := fmt.Errorf("%w: %w", ErrGameAborted, err)
			if nerr := g.ui.Notify(err.Error()); nerr != nil {
				entry.Warn().Err(nerr).Msg("abort notice not delivered")
				return 0, errors.Join(aborted, fmt.Errorf("notify: %w", nerr))
			}
			return 0, aborted
		}
		entry.Debug().Err(err).Int("attempt", attempt).Msg("ball rejected")
		if err := g.ui.Notify(err.Error()); err != nil {
			return 0, err
		}
		if g.cfg.MaxBallAttempts > 0 && attempt >= g.cfg.MaxBallAttempts {
			return 0, fmt.Errorf("%w: %s frame %d ball %d", ErrTooManyAttempts, c.Name(), frame, ball)
		}
	}
}

func (g *Game) accepted(c *bowling.Competitor, frame, ball, pins int) {
	observability.RecordBall(ball)
	if f, ok := c.Frame(frame); ok {
		switch {
		case ball == 1 && f.IsStrike():
			observability.RecordMark(observability.MarkStrike)
		case ball == 2 && f.IsSpare():
			observability.RecordMark(observability.MarkSpare)
		}
	}
	g.logger.Debug().
		Str("competitor", c.Name()).
		Int("frame", frame).
		Int("ball", ball).
		Int("pins", pins).
		Msg("ball recorded")
	c.UpdateFrameScores()
	g.publish()
}

func (g *Game) publish() {
	if len(g.publishers) == 0 {
		return
	}
	board := scoreboard.Build(g.competitors)
	for _, p := range g.publishers {
		p.Publish(board)
	}
}
