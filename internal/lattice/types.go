package lattice

// Typed view of a validated configuration. These structs exist for the
// Renderer; Decode only produces them from trees that validated cleanly.

// Config is the complete validated configuration of a diagram.
type Config struct {
	Box        BoxConfig               `mapstructure:"box"`
	BoxLabel   BoxLabelConfig          `mapstructure:"box_label"`
	Lattice    LatticeConfig           `mapstructure:"lattice"`
	Elements   LatticeElementsConfig   `mapstructure:"lattice_elements"`
	Parameters LatticeParametersConfig `mapstructure:"lattice_parameters"`
}

// BoxConfig describes the bounding box of the diagram.
type BoxConfig struct {
	PositionTop []float64 `mapstructure:"position_top"`
	Height      float64   `mapstructure:"height"`
	Width       float64   `mapstructure:"width"`
}

// BoxLabelConfig describes the label region inside the box.
type BoxLabelConfig struct {
	Height float64 `mapstructure:"height"`
	Width  float64 `mapstructure:"width"`
}

// LatticeConfig describes the geometry of the lattice baseline.
type LatticeConfig struct {
	Offsets         []float64 `mapstructure:"offsets"`
	PositionStart   []float64 `mapstructure:"position_start"`
	PositionEnd     []float64 `mapstructure:"position_end"`
	VerticalSpacing float64   `mapstructure:"vertical_spacing"`
}

// LatticeElementsConfig sizes the visual elements drawn on the lattice.
type LatticeElementsConfig struct {
	ArrowHeight      float64 `mapstructure:"arrow_height"`
	CircleRadius     float64 `mapstructure:"circle_radius"`
	TickHeight       float64 `mapstructure:"tick_height"`
	VacanciesVisible bool    `mapstructure:"vacancies_visible"`
}

// LatticeParametersConfig places particles on the discrete sites.
type LatticeParametersConfig struct {
	NTicks    int     `mapstructure:"nticks"`
	NMers     int     `mapstructure:"nmers"`
	Adsorbing []int   `mapstructure:"adsorbing"`
	Desorbing []int   `mapstructure:"desorbing"`
	Fixed     []int   `mapstructure:"fixed"`
	Jumping   [][]int `mapstructure:"jumping"`
}

// JumpMove is one decoded jump triple: a particle at From that may move Left
// sites leftward or Right sites rightward.
type JumpMove struct {
	From  int
	Left  int
	Right int
}

// Moves returns the jump triples in their typed form.
func (p LatticeParametersConfig) Moves() []JumpMove {
	out := make([]JumpMove, 0, len(p.Jumping))
	for _, t := range p.Jumping {
		out = append(out, JumpMove{From: t[0], Left: t[1], Right: t[2]})
	}
	return out
}

// Occupied reports whether a tick carries any particle role.
func (p LatticeParametersConfig) Occupied(tick int) bool {
	for _, sets := range [][]int{p.Adsorbing, p.Desorbing, p.Fixed} {
		for _, t := range sets {
			if t == tick {
				return true
			}
		}
	}
	for _, m := range p.Jumping {
		if m[0] == tick {
			return true
		}
	}
	return false
}
