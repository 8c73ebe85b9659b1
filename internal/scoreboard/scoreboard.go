// Package scoreboard turns competitor frames into display rows: pin marks per
// frame and running totals for frames whose score is resolved.
package scoreboard

import (
	"strconv"
	"strings"

	"github.com/danmuck/bowlctl/internal/bowling"
)

const (
	MarkStrike = "X"
	MarkSpare  = "/"
	separator  = "|"
)

// Cell is one started frame on the board.
type Cell struct {
	Frame    int    `json:"frame"`
	Marks    string `json:"marks"`
	Score    int    `json:"score"`
	Total    int    `json:"total"`
	Resolved bool   `json:"resolved"`
}

// Row is one competitor on the board.
type Row struct {
	Name     string `json:"name"`
	Cells    []Cell `json:"cells"`
	Total    int    `json:"total"`
	Complete bool   `json:"complete"`
}

// Board is a point-in-time view of every competitor.
type Board struct {
	Frames   int   `json:"frames"`
	Rows     []Row `json:"rows"`
	Complete bool  `json:"complete"`
}

// Build snapshots the competitors. Scores are read as they are; callers
// refresh them with UpdateFrameScores first.
func Build(competitors []*bowling.Competitor) Board {
	board := Board{
		Frames:   bowling.FramesPerGame,
		Rows:     make([]Row, 0, len(competitors)),
		Complete: len(competitors) > 0,
	}
	for _, c := range competitors {
		row := BuildRow(c)
		board.Complete = board.Complete && row.Complete
		board.Rows = append(board.Rows, row)
	}
	return board
}

// BuildRow renders one competitor. Running totals stop at the first pending
// frame, so a later resolved frame shows no total until the gap closes.
func BuildRow(c *bowling.Competitor) Row {
	row := Row{Name: c.Name(), Complete: c.Complete()}
	running, gap := 0, false
	for i, f := range c.Frames() {
		if !f.Started() {
			break
		}
		cell := Cell{Frame: i + 1, Marks: FrameMarks(f)}
		if v, ok := f.Score().Value(); ok && !gap {
			running += v
			cell.Score = v
			cell.Total = running
			cell.Resolved = true
		} else {
			gap = true
		}
		row.Cells = append(row.Cells, cell)
	}
	row.Total = running
	return row
}

// Lookup returns the row for name, matched case-insensitively.
func (b Board) Lookup(name string) (Row, bool) {
	for _, row := range b.Rows {
		if strings.EqualFold(row.Name, name) {
			return row, true
		}
	}
	return Row{}, false
}

// FrameMarks renders the balls of a frame as "b1|b2" or, for the final
// frame, "b1|b2|b3". Unbowled slots are left empty.
func FrameMarks(f bowling.Frame) string {
	b1, ok := f.Ball1()
	if !ok {
		return separator
	}
	b2, has2 := f.Ball2()
	b3, has3 := f.Ball3()

	var sb strings.Builder
	switch {
	case f.IsStrike():
		sb.WriteString(MarkStrike + separator)
		if !f.IsFinalFrame() {
			break
		}
		if has2 {
			sb.WriteString(pinMark(b2))
		}
		sb.WriteString(separator)
		if has3 {
			if has2 && b2 < bowling.MaxPins && b2+b3 == bowling.MaxPins {
				sb.WriteString(MarkSpare)
			} else {
				sb.WriteString(pinMark(b3))
			}
		}
	case f.IsSpare():
		sb.WriteString(strconv.Itoa(b1) + separator + MarkSpare)
		if f.IsFinalFrame() {
			sb.WriteString(separator)
			if has3 {
				sb.WriteString(pinMark(b3))
			}
		}
	default:
		sb.WriteString(strconv.Itoa(b1) + separator)
		if has2 {
			sb.WriteString(strconv.Itoa(b2))
		}
		if f.IsFinalFrame() {
			sb.WriteString(separator)
		}
	}
	return sb.String()
}

func pinMark(pins int) string {
	if pins == bowling.MaxPins {
		return MarkStrike
	}
	return strconv.Itoa(pins)
}
