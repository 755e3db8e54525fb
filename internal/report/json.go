// Package report provides output formatting for validation and fixture runs.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/AndresGarciaEscovar/latexlattices/internal/fixture"
	"github.com/AndresGarciaEscovar/latexlattices/internal/lattice"
)

// JSONReporter renders validation and fixture results as indented JSON.
type JSONReporter struct{}

type jsonValidation struct {
	Path        string               `json:"path,omitempty"`
	Valid       bool                 `json:"valid"`
	Diagnostics []lattice.Diagnostic `json:"diagnostics"`
}

// WriteValidation encodes the diagnostics of one validated document.
func (jr *JSONReporter) WriteValidation(w io.Writer, path string, r lattice.Report) error {
	out := jsonValidation{
		Path:        path,
		Valid:       r.IsValid(),
		Diagnostics: r.Diagnostics,
	}
	if out.Diagnostics == nil {
		out.Diagnostics = []lattice.Diagnostic{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type jsonCase struct {
	Case   string `json:"case"`
	Reason string `json:"reason,omitempty"`
}

type jsonFixtures struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
	Stats     struct {
		TotalPassed int `json:"totalPassed"`
		TotalFailed int `json:"totalFailed"`
	} `json:"stats"`
	Passed []jsonCase `json:"passed"`
	Failed []jsonCase `json:"failed"`
}

// WriteFixtures encodes the outcome of a fixture corpus run.
func (jr *JSONReporter) WriteFixtures(w io.Writer, r *fixture.RunReport) error {
	out := jsonFixtures{
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Duration:  r.EndTime.Sub(r.StartTime).String(),
		Passed:    []jsonCase{},
		Failed:    []jsonCase{},
	}
	for _, o := range r.Passed {
		out.Passed = append(out.Passed, jsonCase{Case: o.Case.Name(), Reason: o.Reason})
	}
	for _, o := range r.Failed {
		out.Failed = append(out.Failed, jsonCase{Case: o.Case.Name(), Reason: o.Reason})
	}
	out.Stats.TotalPassed = len(out.Passed)
	out.Stats.TotalFailed = len(out.Failed)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
