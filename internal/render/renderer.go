// Package render turns a validated lattice configuration into a standalone
// LaTeX/TikZ document. It only ever receives already-validated data: a
// Renderer refuses to run when the validation report carries diagnostics.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/AndresGarciaEscovar/latexlattices/internal/lattice"
)

// documentShell is the LaTeX document wrapper; the tikz body is generated
// line by line from the configuration geometry.
const documentShell = `\documentclass[tikz]{standalone}
\usetikzlibrary{arrows.meta}

\begin{document}
\begin{tikzpicture}
{{- range .Lines}}
    {{.}}
{{- end}}
\end{tikzpicture}
\end{document}
`

// Renderer generates TikZ diagrams from validated configurations.
type Renderer struct {
	tmpl *template.Template
}

// New creates a Renderer with the standard document shell.
func New() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("document").Parse(documentShell)),
	}
}

// Render produces the LaTeX source for the configured diagram. The report
// must come from validating the same configuration; a non-valid report is
// refused.
func (r *Renderer) Render(report lattice.Report, cfg *lattice.Config) ([]byte, error) {
	if !report.IsValid() {
		return nil, &RefusedInvalidConfigError{Diagnostics: len(report.Diagnostics)}
	}

	var buf bytes.Buffer
	data := struct{ Lines []string }{Lines: bodyLines(cfg)}
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, &TemplateExecutionError{Wrapped: err}
	}
	return buf.Bytes(), nil
}

// bodyLines computes the drawing commands for one diagram.
func bodyLines(cfg *lattice.Config) []string {
	var lines []string
	g := newGeometry(cfg)

	// Bounding box and label region.
	lines = append(lines, fmt.Sprintf(`\draw %s rectangle %s;`,
		point(g.boxLeft, g.boxBottom), point(g.boxLeft+cfg.Box.Width, g.boxTop)))
	lines = append(lines, fmt.Sprintf(`\draw %s rectangle %s;`,
		point(g.boxLeft, g.boxTop-cfg.BoxLabel.Height),
		point(g.boxLeft+cfg.BoxLabel.Width, g.boxTop)))

	// Baseline with evenly spaced tick marks.
	lines = append(lines, fmt.Sprintf(`\draw[thick] %s -- %s;`,
		point(g.startX, g.startY), point(g.endX, g.endY)))
	for tick := 1; tick <= cfg.Parameters.NTicks; tick++ {
		x, y := g.tickPosition(tick)
		lines = append(lines, fmt.Sprintf(`\draw %s -- %s;`,
			point(x, y), point(x, y+cfg.Elements.TickHeight)))
	}

	lines = append(lines, particleLines(cfg, g)...)
	return lines
}

// particleLines draws one marker per occupied tick, arrows for adsorbing,
// desorbing and jumping particles, and optional vacancy circles.
func particleLines(cfg *lattice.Config, g geometry) []string {
	var lines []string
	radius := cfg.Elements.CircleRadius
	arrow := cfg.Elements.ArrowHeight
	spacing := cfg.Lattice.VerticalSpacing

	for _, tick := range cfg.Parameters.Fixed {
		x, y := g.particleCenter(cfg, tick)
		lines = append(lines, fmt.Sprintf(`\filldraw %s circle (%s);`, point(x, y), num(radius)))
	}

	for _, tick := range cfg.Parameters.Adsorbing {
		x, y := g.particleCenter(cfg, tick)
		top := y + radius + spacing + arrow
		lines = append(lines, fmt.Sprintf(`\draw %s circle (%s);`, point(x, top+radius), num(radius)))
		lines = append(lines, fmt.Sprintf(`\draw[-{Stealth}] %s -- %s;`,
			point(x, top), point(x, y+radius+spacing)))
	}

	for _, tick := range cfg.Parameters.Desorbing {
		x, y := g.particleCenter(cfg, tick)
		lines = append(lines, fmt.Sprintf(`\draw %s circle (%s);`, point(x, y), num(radius)))
		lines = append(lines, fmt.Sprintf(`\draw[-{Stealth}] %s -- %s;`,
			point(x, y+radius+spacing), point(x, y+radius+spacing+arrow)))
	}

	for _, move := range cfg.Parameters.Moves() {
		x, y := g.particleCenter(cfg, move.From)
		lines = append(lines, fmt.Sprintf(`\draw %s circle (%s);`, point(x, y), num(radius)))
		leftX, _ := g.tickPosition(move.From - move.Left)
		rightX, _ := g.tickPosition(move.From + move.Right)
		arrowY := y + radius + spacing
		lines = append(lines, fmt.Sprintf(`\draw[-{Stealth}] %s -- %s;`,
			point(x, arrowY), point(leftX, arrowY)))
		lines = append(lines, fmt.Sprintf(`\draw[-{Stealth}] %s -- %s;`,
			point(x, arrowY), point(rightX, arrowY)))
	}

	if cfg.Elements.VacanciesVisible {
		for tick := 1; tick <= cfg.Parameters.NTicks; tick++ {
			if cfg.Parameters.Occupied(tick) {
				continue
			}
			x, y := g.particleCenter(cfg, tick)
			lines = append(lines, fmt.Sprintf(`\draw[dashed] %s circle (%s);`, point(x, y), num(radius)))
		}
	}

	return lines
}

// geometry resolves the configured offsets and positions into absolute
// plane coordinates.
type geometry struct {
	boxLeft, boxTop, boxBottom float64
	startX, startY             float64
	endX, endY                 float64
	nticks                     int
}

func newGeometry(cfg *lattice.Config) geometry {
	left := cfg.Box.PositionTop[0]
	top := cfg.Box.PositionTop[1]
	bottom := top - cfg.Box.Height
	return geometry{
		boxLeft:   left,
		boxTop:    top,
		boxBottom: bottom,
		startX:    left + cfg.Lattice.Offsets[0] + cfg.Lattice.PositionStart[0],
		startY:    bottom + cfg.Lattice.Offsets[1] + cfg.Lattice.PositionStart[1],
		endX:      left + cfg.Lattice.Offsets[0] + cfg.Lattice.PositionEnd[0],
		endY:      bottom + cfg.Lattice.Offsets[1] + cfg.Lattice.PositionEnd[1],
		nticks:    cfg.Parameters.NTicks,
	}
}

// tickPosition returns the baseline coordinates of a 1-based tick index.
func (g geometry) tickPosition(tick int) (float64, float64) {
	if g.nticks <= 1 {
		return g.startX, g.startY
	}
	f := float64(tick-1) / float64(g.nticks-1)
	return g.startX + f*(g.endX-g.startX), g.startY + f*(g.endY-g.startY)
}

// particleCenter returns the circle center associated with a tick.
func (g geometry) particleCenter(cfg *lattice.Config, tick int) (float64, float64) {
	x, y := g.tickPosition(tick)
	return x, y + cfg.Elements.TickHeight + cfg.Elements.CircleRadius
}

func point(x, y float64) string {
	return "(" + num(x) + ", " + num(y) + ")"
}

func num(f float64) string {
	s := fmt.Sprintf("%.3f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
