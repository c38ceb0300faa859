// Package scroll computes the layout of the home page's scroll-driven
// narrative: where each stacked section starts, how far it has slid in, which
// navigation label is active, and how programmatic nav scrolls animate.
//
// Everything here is plain arithmetic over a viewport height and a scroll
// offset. Applying the results to real elements is a Renderer's job.
package scroll

import "math"

const (
	// MaxBase caps the viewport height used as the layout unit so very tall
	// screens don't produce excessively long scroll distances.
	MaxBase = 800.0
	// DefaultBase is used when the reported viewport height is unusable.
	DefaultBase = 800.0

	displayRatio = 0.8
	heroLead     = 0.5
	// trailingBases reserves room after the last narrative section so the
	// footer can be fully shown before the document ends.
	trailingBases = 2.0
)

// SectionName identifies a narrative section. The values are shared with
// the front end as element ids.
type SectionName string

const (
	Hero             SectionName = "hero"
	Achievements     SectionName = "achievements"
	Brands           SectionName = "brands"
	Testimonials     SectionName = "testimonials"
	Services         SectionName = "services"
	Quote            SectionName = "quote"
	ServicesShowcase SectionName = "servicesShowcase"
	Founder          SectionName = "founder"
	Team             SectionName = "team"
	CTA              SectionName = "cta"
	LatestProjects   SectionName = "latestProjects"
	Footer           SectionName = "footer"
)

// sectionSpec is the static part of a section: how long it is held, in
// display units (0.8 × base), and over how many display units its internal
// animation progresses (0 means it has none).
type sectionSpec struct {
	name         SectionName
	hold         float64
	progressSpan float64
}

var narrative = []sectionSpec{
	{name: Hero},
	{name: Achievements, hold: 1, progressSpan: 1},
	{name: Brands, hold: 8, progressSpan: 8},
	{name: Testimonials, hold: 2.2, progressSpan: 2.2},
	{name: Services, hold: 2, progressSpan: 2},
	{name: Quote, hold: 2.5, progressSpan: 1.8},
	{name: ServicesShowcase, hold: 1},
	{name: Founder, hold: 1},
	{name: Team, hold: 1},
	{name: CTA, hold: 1},
	{name: LatestProjects, hold: 1},
	// The footer holds for one base so that its end lands exactly on the
	// document height: latestProjects.End + 2 × base.
	{name: Footer, hold: trailingBases - 1},
}

// Breakpoint is the scroll range over which one section slides in and is
// held. End == Start + SlideDuration + HoldDuration.
type Breakpoint struct {
	Name          SectionName `json:"name"`
	Start         float64     `json:"start"`
	SlideDuration float64     `json:"slideDuration"`
	HoldDuration  float64     `json:"holdDuration"`
	End           float64     `json:"end"`
	ZIndex        int         `json:"zIndex"`
	ProgressSpan  float64     `json:"progressSpan,omitempty"`
}

// Targets are the scroll offsets navigation controls can request.
type Targets struct {
	Home           float64 `json:"home"`
	About          float64 `json:"about"`
	Projects       float64 `json:"projects"`
	Contact        float64 `json:"contact"`
	CTA            float64 `json:"cta"`
	LatestProjects float64 `json:"latestProjects"`
}

// Lookup returns the target for a nav key ("home", "about", ...).
func (t Targets) Lookup(key string) (float64, bool) {
	switch key {
	case "home":
		return t.Home, true
	case "about":
		return t.About, true
	case "projects":
		return t.Projects, true
	case "contact":
		return t.Contact, true
	case "cta":
		return t.CTA, true
	case "latestprojects", "latestProjects":
		return t.LatestProjects, true
	}
	return 0, false
}

// Anchors are the thresholds used to resolve the active nav label.
type Anchors struct {
	AboutStart    float64 `json:"aboutStart"`
	ProjectsStart float64 `json:"projectsStart"`
	ContactStart  float64 `json:"contactStart"`
}

// Plan is the full layout derived from one viewport height.
type Plan struct {
	ViewportHeight float64      `json:"viewportHeight"`
	Base           float64      `json:"base"`
	Sections       []Breakpoint `json:"sections"`
	TotalHeight    float64      `json:"totalHeight"`
	Targets        Targets      `json:"targets"`
	Anchors        Anchors      `json:"anchors"`
}

// Section returns the breakpoint for name.
func (p Plan) Section(name SectionName) (Breakpoint, bool) {
	for _, b := range p.Sections {
		if b.Name == name {
			return b, true
		}
	}
	return Breakpoint{}, false
}

// ClampViewport turns a reported viewport height into the layout base unit.
func ClampViewport(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return DefaultBase
	}
	return math.Min(h, MaxBase)
}

// Compute derives the section breakpoints and document height for a
// viewport height. Sections are chained: each starts where the previous one
// ends. The hero starts half a base before zero so the second section
// begins sliding in at 0.5 × base.
func Compute(viewportHeight float64) Plan {
	base := ClampViewport(viewportHeight)
	display := base * displayRatio

	p := Plan{
		ViewportHeight: viewportHeight,
		Base:           base,
		Sections:       make([]Breakpoint, 0, len(narrative)),
	}

	start := heroLead*base - base
	for i, s := range narrative {
		hold := s.hold * display
		if s.name == Footer {
			hold = s.hold * base
		}
		b := Breakpoint{
			Name:          s.name,
			Start:         start,
			SlideDuration: base,
			HoldDuration:  hold,
			End:           start + base + hold,
			ZIndex:        (i + 1) * 10,
			ProgressSpan:  s.progressSpan * display,
		}
		p.Sections = append(p.Sections, b)
		start = b.End
	}

	p.TotalHeight = p.Sections[len(p.Sections)-1].End

	founder, _ := p.Section(Founder)
	latest, _ := p.Section(LatestProjects)
	cta, _ := p.Section(CTA)
	footer, _ := p.Section(Footer)

	p.Anchors = Anchors{
		AboutStart:    founder.Start,
		ProjectsStart: latest.Start,
		ContactStart:  footer.Start,
	}
	p.Targets = Targets{
		Home:           0,
		About:          founder.Start + base,
		Projects:       latest.Start + base,
		LatestProjects: latest.Start + base,
		CTA:            cta.Start,
		Contact:        footer.Start + base,
	}
	return p
}
