package hardware

import (
	"log/slog"
	"sort"
)

// Criteria maps a selectable attribute name to its match specification.
// All criteria must hold for a detector to match (logical AND); an empty
// Criteria matches every detector.
type Criteria map[string]MatchSpec

// chain is the resolved ownership chain for one detector. All hops are
// present on a validated model.
type chain struct {
	name      string
	det       *Detector
	wafer     *WaferSlot
	tube      *TubeSlot
	telescope *Telescope
	crateSlot string
}

func (m *Model) chainOf(name string, det *Detector) chain {
	c := chain{name: name, det: det}
	c.wafer, _ = m.WaferSlots.Get(det.WaferSlot)
	if c.wafer != nil {
		c.tube, _ = m.TubeSlots.Get(c.wafer.TubeSlot)
	}
	if c.tube != nil {
		c.telescope, _ = m.Telescopes.Get(c.tube.Telescope)
	}
	c.crateSlot = m.crateOf(det.CardSlot)
	return c
}

// detectorAttrs is the static resolution table for selectable attribute
// names. Direct detector attributes read from the detector record itself;
// chain attributes walk the ownership references upward (detector → wafer
// slot → tube slot → telescope, and detector → card slot → crate slot).
var detectorAttrs = map[string]func(c *chain) any{
	// Direct detector attributes.
	"wafer_slot":    func(c *chain) any { return c.det.WaferSlot },
	"band":          func(c *chain) any { return c.det.Band },
	"pol":           func(c *chain) any { return c.det.Pol },
	"pixel":         func(c *chain) any { return c.det.Pixel },
	"card_slot":     func(c *chain) any { return c.det.CardSlot },
	"handed":        func(c *chain) any { return c.det.Handed },
	"channel":       func(c *chain) any { return c.det.Channel },
	"AMC":           func(c *chain) any { return c.det.AMC },
	"bias":          func(c *chain) any { return c.det.Bias },
	"bondpad":       func(c *chain) any { return c.det.BondPad },
	"mux_position":  func(c *chain) any { return c.det.MuxPosition },
	"ID":            func(c *chain) any { return c.det.ID },
	"fwhm":          func(c *chain) any { return c.det.FWHM },
	"detector_name": func(c *chain) any { return c.det.DetectorName },

	// Owning-chain attributes.
	"tube_slot":      func(c *chain) any { return c.wafer.TubeSlot },
	"telescope":      func(c *chain) any { return c.tube.Telescope },
	"crate_slot":     func(c *chain) any { return c.crateSlot },
	"bands":          func(c *chain) any { return c.wafer.Bands },
	"wafer_type":     func(c *chain) any { return c.wafer.Type },
	"tube_type":      func(c *chain) any { return c.tube.Type },
	"telescope_type": func(c *chain) any { return c.telescope.Type },
}

// SelectableAttributes returns the attribute names recognized by Select
// and MatchDetectors, sorted.
func SelectableAttributes() []string {
	names := make([]string, 0, len(detectorAttrs))
	for name := range detectorAttrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// criterion is one compiled selection criterion.
type criterion struct {
	attribute string
	resolve   func(c *chain) any
	matcher   *matcher
}

// compileCriteria resolves and compiles criteria up front, so attribute and
// pattern errors surface before any matching occurs. The compiled list is
// sorted by attribute name for deterministic evaluation and reporting.
func compileCriteria(criteria Criteria) ([]criterion, error) {
	attrs := make([]string, 0, len(criteria))
	for attr := range criteria {
		attrs = append(attrs, attr)
	}
	sort.Strings(attrs)

	compiled := make([]criterion, 0, len(attrs))
	for _, attr := range attrs {
		resolve, ok := detectorAttrs[attr]
		if !ok {
			return nil, &UnknownAttributeError{Attribute: attr, Known: SelectableAttributes()}
		}
		m, err := criteria[attr].compile(attr)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, criterion{attribute: attr, resolve: resolve, matcher: m})
	}
	return compiled, nil
}

// MatchDetectors returns the names of the detectors satisfying all
// criteria, in the insertion order of the detector collection. An empty
// result is valid and distinct from the error cases: unknown attribute
// names fail with *UnknownAttributeError and uncompilable patterns with
// *InvalidPatternError, both before any matching occurs.
func (m *Model) MatchDetectors(criteria Criteria, opts ...Option) ([]string, error) {
	cfg := newConfig(opts)

	compiled, err := compileCriteria(criteria)
	if err != nil {
		return nil, err
	}

	matched := make([]string, 0, m.Detectors.Len())
	for name, det := range m.Detectors.All() {
		ch := m.chainOf(name, det)
		ok := true
		for i := range compiled {
			if !compiled[i].matcher.match(compiled[i].resolve(&ch)) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, name)
		}
	}

	cfg.logger.Debug("matched detectors",
		slog.Int("criteria", len(compiled)),
		slog.Int("candidates", m.Detectors.Len()),
		slog.Int("matched", len(matched)))
	return matched, nil
}

// Select matches detectors against criteria and trims the model to the
// minimal consistent sub-model containing them. The source model is left
// unchanged; the returned Selection owns an independent model plus the
// matched names, the resolved criteria and aggregate counts for audit
// logging. An empty match yields a valid selection whose model has empty
// collections.
func (m *Model) Select(criteria Criteria, opts ...Option) (*Selection, error) {
	cfg := newConfig(opts)

	matched, err := m.MatchDetectors(criteria, opts...)
	if err != nil {
		return nil, err
	}

	sub, err := m.Trim(matched)
	if err != nil {
		return nil, err
	}

	sel := &Selection{
		Model:    sub,
		Matched:  matched,
		Criteria: appliedCriteria(criteria),
		Summary:  summarize(m, sub, len(matched)),
	}
	cfg.logger.Debug("selection complete",
		slog.Int("matched", sel.Summary.MatchedDetectors),
		slog.Int("total", sel.Summary.TotalDetectors),
		slog.Int("wafer_slots", sel.Summary.WaferSlots),
		slog.Int("bands", sel.Summary.Bands))
	return sel, nil
}
