package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/danmuck/bowlctl/internal/bowling"
	"github.com/danmuck/bowlctl/internal/observability"
	"github.com/danmuck/bowlctl/internal/scoreboard"
	"github.com/danmuck/bowlctl/internal/testutil/testlog"
)

type ballRequest struct {
	competitor string
	frame      int
	ball       int
}

// scriptedUI replays pin counts per competitor and records every call.
type scriptedUI struct {
	roster   []string
	pins     map[string][]int
	requests []ballRequest
	notes     []string
	boards    []scoreboard.Board
	notifyErr error
}

func (s *scriptedUI) CollectRoster() ([]string, error) {
	return s.roster, nil
}

func (s *scriptedUI) RequestBallResult(competitor string, frame, ball int) (int, error) {
	s.requests = append(s.requests, ballRequest{competitor: competitor, frame: frame, ball: ball})
	queue := s.pins[competitor]
	if len(queue) == 0 {
		return 0, fmt.Errorf("script exhausted for %s frame %d ball %d", competitor, frame, ball)
	}
	s.pins[competitor] = queue[1:]
	return queue[0], nil
}

func (s *scriptedUI) RenderScoreboard(board scoreboard.Board) error {
	s.boards = append(s.boards, board)
	return nil
}

func (s *scriptedUI) Notify(message string) error {
	s.notes = append(s.notes, message)
	return s.notifyErr
}

type recordingPublisher struct {
	boards []scoreboard.Board
}

func (p *recordingPublisher) Publish(board scoreboard.Board) {
	p.boards = append(p.boards, board)
}

func repeat(pins, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = pins
	}
	return out
}

func TestRunPerfectAndGutterGames(t *testing.T) {
	testlog.Start(t)
	ui := &scriptedUI{
		roster: []string{"Alice", "Bob"},
		pins: map[string][]int{
			"Alice": repeat(10, 12),
			"Bob":   repeat(0, 20),
		},
	}
	pub := &recordingPublisher{}
	g := New(ui, DefaultConfig(), WithPublisher(pub))
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(ui.boards) != bowling.FramesPerGame {
		t.Fatalf("expected one scoreboard per frame, got %d", len(ui.boards))
	}
	final := ui.boards[len(ui.boards)-1]
	if !final.Complete {
		t.Fatalf("expected complete final board")
	}
	alice, _ := final.Lookup("Alice")
	bob, _ := final.Lookup("Bob")
	if alice.Total != 300 || bob.Total != 0 {
		t.Fatalf("unexpected totals alice=%d bob=%d", alice.Total, bob.Total)
	}
	if len(ui.requests) != 12+20 {
		t.Fatalf("unexpected ball request count: %d", len(ui.requests))
	}
	// roster publish plus one per accepted ball
	if len(pub.boards) != 1+12+20 {
		t.Fatalf("unexpected publish count: %d", len(pub.boards))
	}
}

func TestRunFinalFrameBonusBalls(t *testing.T) {
	testlog.Start(t)
	ui := &scriptedUI{
		roster: []string{"Spare", "Strike", "Open"},
		pins: map[string][]int{
			"Spare":  append(repeat(0, 18), 6, 4, 7),
			"Strike": append(repeat(0, 18), 10, 3, 4),
			"Open":   append(repeat(0, 18), 3, 4),
		},
	}
	g := New(ui, DefaultConfig())
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	counts := map[string]int{}
	for _, r := range ui.requests {
		if r.frame == bowling.FramesPerGame {
			counts[r.competitor]++
		}
	}
	if counts["Spare"] != 3 || counts["Strike"] != 3 || counts["Open"] != 2 {
		t.Fatalf("unexpected final frame ball counts: %+v", counts)
	}
	board := ui.boards[len(ui.boards)-1]
	want := map[string]int{"Spare": 17, "Strike": 17, "Open": 7}
	for name, total := range want {
		row, ok := board.Lookup(name)
		if !ok || row.Total != total {
			t.Fatalf("%s: unexpected row ok=%v %+v", name, ok, row)
		}
	}
}

func TestRunRetriesRecoverableErrors(t *testing.T) {
	testlog.Start(t)
	ui := &scriptedUI{
		roster: []string{"Alice"},
		pins: map[string][]int{
			"Alice": append([]int{11, 7, 5, 3}, repeat(0, 18)...),
		},
	}
	g := New(ui, DefaultConfig())
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(ui.notes) != 2 {
		t.Fatalf("expected two rejection notices, got %q", ui.notes)
	}
	first := ui.boards[0].Rows[0]
	if first.Cells[0].Marks != "7|/" {
		t.Fatalf("unexpected frame 1 marks: %q", first.Cells[0].Marks)
	}
}

func TestRunMaxBallAttempts(t *testing.T) {
	testlog.Start(t)
	ui := &scriptedUI{
		roster: []string{"Alice"},
		pins:   map[string][]int{"Alice": {11, 12, 13}},
	}
	g := New(ui, Config{MaxCompetitors: 6, MaxBallAttempts: 2})
	err := g.Run(context.Background())
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if len(ui.requests) != 2 {
		t.Fatalf("unexpected request count: %d", len(ui.requests))
	}
}

func TestRunRosterValidation(t *testing.T) {
	testlog.Start(t)
	ui := &scriptedUI{roster: []string{"A", " "}}
	if err := New(ui, DefaultConfig()).Run(context.Background()); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
	if len(ui.notes) != 2 {
		t.Fatalf("expected skipped names to be reported, got %q", ui.notes)
	}

}

func TestEnrollDropsNamesPastMaxCompetitors(t *testing.T) {
	testlog.Start(t)
	ui := &scriptedUI{roster: []string{"Ann", "X", "Ben", "Cat", "Dan"}}
	g := New(ui, Config{MaxCompetitors: 2})
	if err := g.Enroll(); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	roster := g.Competitors()
	if len(roster) != 2 || roster[0].Name() != "Ann" || roster[1].Name() != "Ben" {
		t.Fatalf("unexpected roster size: %d", len(roster))
	}
	// one short name plus two dropped for the cap
	if len(ui.notes) != 3 {
		t.Fatalf("expected dropped names to be reported, got %q", ui.notes)
	}
}

func TestEnrollSkipsShortNames(t *testing.T) {
	testlog.Start(t)
	ui := &scriptedUI{roster: []string{"X", "Jo"}}
	g := New(ui, DefaultConfig())
	if err := g.Enroll(); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	roster := g.Competitors()
	if len(roster) != 1 || roster[0].Name() != "Jo" {
		t.Fatalf("unexpected roster: %d", len(roster))
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	testlog.Start(t)
	ui := &scriptedUI{
		roster: []string{"Alice"},
		pins:   map[string][]int{"Alice": repeat(0, 20)},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := New(ui, DefaultConfig()).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(ui.requests) != 0 {
		t.Fatalf("no ball should be requested after cancel")
	}
}

func TestBowlAbortsOnRuleViolation(t *testing.T) {
	testlog.Start(t)
	ui := &scriptedUI{
		roster: []string{"Alice"},
		pins:   map[string][]int{"Alice": {10, 5}},
	}
	g := New(ui, DefaultConfig())
	if err := g.Enroll(); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	c := g.Competitors()[0]
	if _, err := g.bowl(context.Background(), c, 1, 1); err != nil {
		t.Fatalf("ball 1: %v", err)
	}
	_, err := g.bowl(context.Background(), c, 1, 2)
	if !errors.Is(err, ErrGameAborted) || !errors.Is(err, bowling.ErrIllegalSequence) {
		t.Fatalf("expected aborted illegal sequence, got %v", err)
	}
	if len(ui.notes) != 1 {
		t.Fatalf("expected violation to be reported, got %q", ui.notes)
	}
}

func TestBowlAbortReportsFailedNotice(t *testing.T) {
	testlog.Start(t)
	uiErr := errors.New("terminal gone")
	ui := &scriptedUI{
		roster: []string{"Alice"},
		pins:   map[string][]int{"Alice": {10, 5}},
	}
	g := New(ui, DefaultConfig())
	if err := g.Enroll(); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	c := g.Competitors()[0]
	if _, err := g.bowl(context.Background(), c, 1, 1); err != nil {
		t.Fatalf("ball 1: %v", err)
	}
	ui.notifyErr = uiErr
	_, err := g.bowl(context.Background(), c, 1, 2)
	if !errors.Is(err, ErrGameAborted) || !errors.Is(err, uiErr) {
		t.Fatalf("expected abort joined with notify error, got %v", err)
	}
}

func TestOutcomeCoversEveryResult(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"completed", nil, observability.OutcomeCompleted},
		{"aborted", fmt.Errorf("%w: %w", ErrGameAborted, bowling.ErrIllegalSequence), observability.OutcomeAborted},
		{"too many attempts", fmt.Errorf("%w: Alice frame 1 ball 1", ErrTooManyAttempts), observability.OutcomeAborted},
		{"ui failure", fmt.Errorf("request ball: %w", errors.New("eof")), observability.OutcomeAborted},
		{"empty roster", ErrEmptyRoster, observability.OutcomeAborted},
		{"canceled", context.Canceled, observability.OutcomeCanceled},
		{"deadline", fmt.Errorf("wait: %w", context.DeadlineExceeded), observability.OutcomeCanceled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := outcome(tc.err); got != tc.want {
				t.Fatalf("unexpected outcome: got %q want %q", got, tc.want)
			}
		})
	}
}
