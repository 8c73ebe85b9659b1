// Package console is the terminal front end for a game: it reads names and
// pin counts line by line and prints the scoreboard as aligned columns.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/danmuck/bowlctl/internal/bowling"
	"github.com/danmuck/bowlctl/internal/game"
	"github.com/danmuck/bowlctl/internal/scoreboard"
)

// ErrInputClosed signals that input ended before the game asked its last question.
var ErrInputClosed = errors.New("console: input closed")

const clearSequence = "\033[H\033[2J"

type Console struct {
	reader         *bufio.Reader
	out            io.Writer
	maxCompetitors int
	clearScreen    bool
}

var _ game.UserInterface = (*Console)(nil)

type Option func(*Console)

// WithClearScreen clears the terminal before each scoreboard.
func WithClearScreen(enabled bool) Option {
	return func(c *Console) { c.clearScreen = enabled }
}

func New(in io.Reader, out io.Writer, maxCompetitors int, opts ...Option) *Console {
	c := &Console{
		reader:         bufio.NewReader(in),
		out:            out,
		maxCompetitors: maxCompetitors,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CollectRoster reads one name per line until a blank line or the maximum.
func (c *Console) CollectRoster() ([]string, error) {
	fmt.Fprintf(c.out, "Enter competitors, one at a time. Enter a blank name if less than %d competitors:\n", c.maxCompetitors)
	names := make([]string, 0, c.maxCompetitors)
	for len(names) < c.maxCompetitors {
		line, err := c.readLine()
		if err != nil {
			if errors.Is(err, ErrInputClosed) && len(names) > 0 {
				break
			}
			return nil, err
		}
		name := strings.TrimSpace(line)
		if name == "" {
			break
		}
		if err := bowling.ValidateName(name); err != nil {
			fmt.Fprintf(c.out, "Name must be at least %d characters long.\n", bowling.MinNameLength)
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// RequestBallResult asks until the line parses as an integer. Range checks
// belong to the scorer.
func (c *Console) RequestBallResult(competitor string, frame, ball int) (int, error) {
	fmt.Fprintf(c.out, "Enter number of pins knocked down for %s, frame #%d ball #%d:\n", competitor, frame, ball)
	for {
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		pins, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(c.out, "Enter a whole number of pins.")
			continue
		}
		return pins, nil
	}
}

func (c *Console) RenderScoreboard(board scoreboard.Board) error {
	if c.clearScreen {
		fmt.Fprint(c.out, clearSequence)
	}
	tw := tabwriter.NewWriter(c.out, 0, 8, 2, ' ', 0)
	header := make([]string, 0, board.Frames+1)
	header = append(header, "")
	for frame := 1; frame <= board.Frames; frame++ {
		header = append(header, strconv.Itoa(frame))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	for _, row := range board.Rows {
		marks := make([]string, 0, board.Frames+1)
		totals := make([]string, 0, board.Frames+1)
		marks = append(marks, row.Name)
		totals = append(totals, "")
		for _, cell := range row.Cells {
			marks = append(marks, cell.Marks)
			if cell.Resolved {
				totals = append(totals, strconv.Itoa(cell.Total))
			} else {
				totals = append(totals, "")
			}
		}
		fmt.Fprintln(tw, strings.Join(marks, "\t")+"\t")
		fmt.Fprintln(tw, strings.Join(totals, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.out)
	return err
}

func (c *Console) Notify(message string) error {
	_, err := fmt.Fprintln(c.out, message)
	return err
}

func (c *Console) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
