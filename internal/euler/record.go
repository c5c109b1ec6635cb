// Package euler reads hand pair records in the Project Euler problem 54
// layout: ten card tokens per line, the first five for player one and the
// last five for player two.
package euler

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lox/pokerhands/poker"
)

// TokensPerRecord is the number of card tokens on a record line.
const TokensPerRecord = 2 * poker.HandSize

// ErrRecordSize is returned for lines without exactly ten tokens.
var ErrRecordSize = errors.New("record must have 10 card tokens")

// Record is one pair of hands read from a line.
type Record struct {
	Line  int
	Hand1 poker.Hand
	Hand2 poker.Hand
}

// Winner returns 1 when hand 1 wins, -1 when hand 2 wins, 0 on a tie.
func (r Record) Winner() int {
	return poker.Compare(r.Hand1, r.Hand2)
}

// Format renders the record back into line form.
func (r Record) Format() string {
	return r.Hand1.String() + " " + r.Hand2.String()
}

// ParseRecord parses a single record line. Line numbers are left zero.
func ParseRecord(line string) (Record, error) {
	tokens := strings.Fields(line)
	if len(tokens) != TokensPerRecord {
		return Record{}, fmt.Errorf("%w, got %d", ErrRecordSize, len(tokens))
	}

	h1, err := poker.ParseHand(tokens[:poker.HandSize]...)
	if err != nil {
		return Record{}, fmt.Errorf("hand 1: %w", err)
	}
	h2, err := poker.ParseHand(tokens[poker.HandSize:]...)
	if err != nil {
		return Record{}, fmt.Errorf("hand 2: %w", err)
	}

	return Record{Hand1: h1, Hand2: h2}, nil
}

// LineError reports a malformed record. It never stops a Reader.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Reader yields records from a line oriented stream.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader wraps r. Blank lines are skipped.
func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// Next returns the next record. A malformed line yields a *LineError and
// the reader stays usable; io.EOF marks the end of input. Any other error
// comes from the underlying reader and is final.
func (r *Reader) Next() (Record, error) {
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		rec, err := ParseRecord(text)
		if err != nil {
			return Record{}, &LineError{Line: r.line, Text: text, Err: err}
		}
		rec.Line = r.line
		return rec, nil
	}

	if err := r.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("read line %d: %w", r.line+1, err)
	}
	return Record{}, io.EOF
}
