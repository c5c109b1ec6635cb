// Package report renders batch summaries for terminals and files.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhands/internal/batch"
	"github.com/lox/pokerhands/internal/fileutil"
	"github.com/lox/pokerhands/poker"
)

// Output formats accepted by Write and Save.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type styles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	win     lipgloss.Style
	warning lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer, styled bool) styles {
	var r *lipgloss.Renderer
	if styled {
		r = lipgloss.NewRenderer(w)
	} else {
		r = lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
	}
	return styles{
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		label:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		win:     r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#626262")),
	}
}

// Text writes a human readable summary. When styled is false no escape
// sequences are emitted.
func Text(w io.Writer, s batch.Summary, styled bool) error {
	st := newStyles(w, styled)

	var buf bytes.Buffer
	fmt.Fprintln(&buf, st.header.Render("Poker hands"))
	fmt.Fprintln(&buf)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%d\n", st.label.Render("Records"), s.Records)
	fmt.Fprintf(tw, "%s\t%s\n", st.label.Render("Hand 1 wins"), st.win.Render(countWithShare(s.Hand1Wins, s.Records)))
	fmt.Fprintf(tw, "%s\t%s\n", st.label.Render("Hand 2 wins"), countWithShare(s.Hand2Wins, s.Records))
	fmt.Fprintf(tw, "%s\t%s\n", st.label.Render("Ties"), countWithShare(s.Ties, s.Records))
	if s.Malformed > 0 {
		fmt.Fprintf(tw, "%s\t%s\n", st.label.Render("Malformed"), st.warning.Render(fmt.Sprint(s.Malformed)))
	}
	fmt.Fprintf(tw, "%s\t%s\n", st.label.Render("Elapsed"), st.muted.Render(s.Elapsed.String()))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.WinningCategories) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, st.label.Render("Winning categories"))
		tw = tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
		for _, c := range sortedCategories(s.WinningCategories) {
			fmt.Fprintf(tw, "  %s\t%d\t\n", c, s.WinningCategories[c])
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if len(s.Errors) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, st.warning.Render("Malformed records"))
		for _, e := range s.Errors {
			fmt.Fprintf(&buf, "  %s\n", st.muted.Render(e))
		}
		if extra := s.Malformed - len(s.Errors); extra > 0 {
			fmt.Fprintf(&buf, "  %s\n", st.muted.Render(fmt.Sprintf("... and %d more", extra)))
		}
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// JSON writes the summary as indented JSON.
func JSON(w io.Writer, s batch.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Write renders s in the named format.
func Write(w io.Writer, format string, s batch.Summary, styled bool) error {
	switch format {
	case FormatText, "":
		return Text(w, s, styled)
	case FormatJSON:
		return JSON(w, s)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Save writes the summary to path atomically. Text reports are never styled.
func Save(path, format string, s batch.Summary) error {
	err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return Write(w, format, s, false)
	})
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// sortedCategories orders categories strongest first.
func sortedCategories(m map[poker.Category]int) []poker.Category {
	cats := make([]poker.Category, 0, len(m))
	for c := range m {
		cats = append(cats, c)
	}
	slices.Sort(cats)
	slices.Reverse(cats)
	return cats
}

func countWithShare(n, total int) string {
	if total == 0 {
		return fmt.Sprint(n)
	}
	return fmt.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(total))
}
