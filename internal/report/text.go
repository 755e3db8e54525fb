package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/AndresGarciaEscovar/latexlattices/internal/fixture"
	"github.com/AndresGarciaEscovar/latexlattices/internal/lattice"
)

// TextReporter renders validation and fixture results as plain text.
type TextReporter struct {
	Verbose   bool
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colWhite     = "\033[37m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
	colBoldWhite = "\033[1;37m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

// WriteValidation prints the diagnostics of one validated document.
func (tr *TextReporter) WriteValidation(w io.Writer, path string, r lattice.Report) error {
	if r.IsValid() {
		_, err := fmt.Fprintf(w, "%s %s\n", tr.cs(colGreen, "[VALID]"), path)
		return err
	}

	fmt.Fprintf(w, "%s %s %s\n",
		tr.cs(colRed, "[INVALID]"), path,
		tr.cs(colRed, fmt.Sprintf("(%d diagnostics)", len(r.Diagnostics))))
	for _, d := range r.Diagnostics {
		fmt.Fprintf(w, "  %s %s %s\n",
			tr.cs(colRed, "✗"),
			tr.cs(colBoldWhite, d.FieldPath),
			tr.cs(colGrey, "["+string(d.Rule)+"]"))
		if d.Value != "" {
			fmt.Fprintf(w, "    %s %s\n", tr.cs(colGrey, "value:"), d.Value)
		}
		if _, err := fmt.Fprintf(w, "    %s\n", d.Detail); err != nil {
			return err
		}
	}
	return nil
}

// WriteFixtures prints the outcome of a fixture corpus run.
func (tr *TextReporter) WriteFixtures(w io.Writer, r *fixture.RunReport) error {
	divider := strings.Repeat("-", 40)

	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprint(w, tr.cs(colBoldWhite, "FIXTURE REPORT\n\n"))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Started: "), tr.cs(colWhite, r.StartTime.Format("15:04:05")))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Duration:"), tr.cs(colWhite, r.EndTime.Sub(r.StartTime).String()))
	fmt.Fprintf(w, "%s\n", divider)

	if tr.Verbose {
		for _, o := range r.Passed {
			fmt.Fprintf(w, "  %s %s (%s)\n",
				tr.cs(colGreen, "✓"),
				tr.cs(colGrey, o.Case.Name()),
				tr.cs(colGreen, o.Reason))
		}
	}
	for _, o := range r.Failed {
		fmt.Fprintf(w, "  %s %s:\n",
			tr.cs(colRed, "✗"),
			tr.cs(colGrey, o.Case.Name()))
		fmt.Fprintf(w, "    %s\n", o.Reason)
	}

	fmt.Fprintf(w, "%s\n", divider)
	summaryLabel := tr.cs(colBoldWhite, "Fixture summary: ")
	summaryStats := fmt.Sprintf("%d passed, %d failed", len(r.Passed), len(r.Failed))
	statsColour := colBoldGreen
	if len(r.Failed) > 0 {
		statsColour = colBoldRed
	}
	_, err := fmt.Fprintf(w, "%s%s\n", summaryLabel, tr.cs(statsColour, summaryStats))
	return err
}
