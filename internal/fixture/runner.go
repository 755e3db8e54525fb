package fixture

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AndresGarciaEscovar/latexlattices/internal/lattice"
)

// Case identifies one invalid document derived from the manifest: the value
// at ValueIndex of the substitution targeting FieldPath.
type Case struct {
	FieldPath  string
	ValueIndex int
	Value      lattice.Value
}

// Name returns a stable human-readable identifier for the case.
func (c Case) Name() string {
	return fmt.Sprintf("%s#%d", c.FieldPath, c.ValueIndex)
}

// Outcome records how a single case fared.
type Outcome struct {
	Case   Case
	Report lattice.Report
	Reason string
}

// RunReport collects the results of one corpus run.
type RunReport struct {
	mu sync.Mutex

	StartTime time.Time
	EndTime   time.Time
	Passed    []Outcome
	Failed    []Outcome
}

// NewRunReport creates an empty RunReport.
func NewRunReport() *RunReport {
	return &RunReport{}
}

// AddPassed adds a case that behaved as the manifest promised.
func (r *RunReport) AddPassed(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Passed = append(r.Passed, o)
}

// AddFailed adds a case that did not behave as the manifest promised.
func (r *RunReport) AddFailed(o Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failed = append(r.Failed, o)
}

// Sort orders both outcome lists by case name so reports are deterministic
// regardless of worker scheduling.
func (r *RunReport) Sort() {
	r.mu.Lock()
	defer r.mu.Unlock()
	byName := func(s []Outcome) {
		sort.Slice(s, func(i, j int) bool { return s[i].Case.Name() < s[j].Case.Name() })
	}
	byName(r.Passed)
	byName(r.Failed)
}

// OK reports whether every case behaved as promised.
func (r *RunReport) OK() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Failed) == 0
}

// Runner executes a manifest's cases against the validation engine.
type Runner struct {
	jobs int
}

// NewRunner creates a Runner. jobs <= 0 selects one worker per CPU.
func NewRunner(jobs int) *Runner {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return &Runner{jobs: jobs}
}

// Run validates the baseline document and then every derived invalid case.
// Cases run in parallel; the report orders outcomes deterministically.
func (r *Runner) Run(ctx context.Context, m *Manifest) (*RunReport, error) {
	report := NewRunReport()
	report.StartTime = time.Now()
	defer func() { report.EndTime = time.Now() }()

	baseline, err := lattice.Validate(m.Valid)
	if err != nil {
		return nil, err
	}
	if !baseline.IsValid() {
		return nil, &BaselineInvalidError{Diagnostics: len(baseline.Diagnostics)}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.jobs)

	for _, sub := range m.Invalid {
		for i, v := range sub.Values {
			c := Case{FieldPath: sub.FieldPath, ValueIndex: i, Value: v}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return r.runCase(m.Valid, c, report)
			})
		}
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	report.Sort()
	return report, nil
}

// runCase substitutes one value into a copy of the baseline, validates the
// result and records whether the expected failure materialised.
func (r *Runner) runCase(valid lattice.Value, c Case, report *RunReport) error {
	doc, err := substitute(valid, c.FieldPath, c.Value)
	if err != nil {
		return err
	}
	rep, err := lattice.Validate(doc)
	if err != nil {
		// Contract-breach errors count as a detected failure too; the
		// substitution destroyed the document structure itself.
		report.AddPassed(Outcome{Case: c, Reason: err.Error()})
		return nil
	}
	if reason, ok := expectedFailure(rep, c.FieldPath); ok {
		report.AddPassed(Outcome{Case: c, Report: rep, Reason: reason})
		return nil
	}
	report.AddFailed(Outcome{Case: c, Report: rep, Reason: "validation did not flag the substituted value"})
	return nil
}

// expectedFailure decides whether a report demonstrates that the substituted
// value was rejected. A diagnostic anchored at the substituted path always
// counts; so does any relational diagnostic, since those may surface on a
// partner field rather than the one that changed.
func expectedFailure(rep lattice.Report, fieldPath string) (string, bool) {
	if rep.IsValid() {
		return "", false
	}
	anchor := fieldPath
	if i := strings.IndexByte(anchor, '['); i >= 0 {
		anchor = anchor[:i]
	}
	for _, d := range rep.Diagnostics {
		if d.FieldPath == fieldPath || strings.HasPrefix(d.FieldPath, anchor) {
			return fmt.Sprintf("%s at %s", d.Rule, d.FieldPath), true
		}
	}
	for _, d := range rep.Diagnostics {
		switch d.Rule {
		case lattice.RuleContainmentViolation, lattice.RuleRoleConflict, lattice.RuleOutOfBoundsIndex:
			return fmt.Sprintf("%s at %s", d.Rule, d.FieldPath), true
		}
	}
	return "", false
}

// substitute returns a copy of doc with the value at path replaced. Paths
// have the form group.field or group.field[i].
func substitute(doc lattice.Value, path string, v lattice.Value) (lattice.Value, error) {
	group, field, index, err := splitPath(path)
	if err != nil {
		return lattice.Value{}, err
	}
	if !doc.Has(group) {
		return lattice.Value{}, &UnknownFieldPathError{FieldPath: path}
	}
	gv := doc.FieldValue(group)
	if index < 0 {
		if !gv.Has(field) {
			return lattice.Value{}, &UnknownFieldPathError{FieldPath: path}
		}
		return doc.WithFieldValue(group, gv.WithFieldValue(field, v)), nil
	}

	fv := gv.FieldValue(field)
	if fv.Kind() != lattice.KindSequence || index >= fv.Len() {
		return lattice.Value{}, &UnknownFieldPathError{FieldPath: path}
	}
	elems := append([]lattice.Value(nil), fv.Elements()...)
	elems[index] = v
	return doc.WithFieldValue(group, gv.WithFieldValue(field, lattice.Sequence(elems...))), nil
}

func splitPath(path string) (group, field string, index int, err error) {
	index = -1
	dot := strings.IndexByte(path, '.')
	if dot <= 0 || dot == len(path)-1 {
		return "", "", -1, &BadFieldPathError{FieldPath: path}
	}
	group, field = path[:dot], path[dot+1:]
	if open := strings.IndexByte(field, '['); open >= 0 {
		if !strings.HasSuffix(field, "]") {
			return "", "", -1, &BadFieldPathError{FieldPath: path}
		}
		n, convErr := strconv.Atoi(field[open+1 : len(field)-1])
		if convErr != nil || n < 0 {
			return "", "", -1, &BadFieldPathError{FieldPath: path}
		}
		field, index = field[:open], n
	}
	if group == "" || field == "" {
		return "", "", -1, &BadFieldPathError{FieldPath: path}
	}
	return group, field, index, nil
}
