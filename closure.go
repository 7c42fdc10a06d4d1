package hardware

import (
	"maps"
	"slices"
)

// retained tracks the entity names to keep in a trimmed model, one set per
// collection.
type retained struct {
	telescopes map[string]bool
	tubeSlots  map[string]bool
	waferSlots map[string]bool
	cardSlots  map[string]bool
	crateSlots map[string]bool
	bands      map[string]bool
	detectors  map[string]bool
}

// Trim computes the minimal consistent sub-model containing the given
// detectors. For each detector it follows the ownership references upward
// (wafer slot, the wafer's tube slot and card slot, the tube's telescope,
// the card's crate slot, the crate's telescope, and the detector's band),
// deduplicates the collected entities, and reassembles a new model that
// preserves each collection's original relative order. Downward membership
// lists (a telescope's tube slots, a tube's wafer slots, a crate's card
// slots, a wafer's bands) are filtered to retained members, so the result
// satisfies the referential invariants without re-validation.
//
// The source model must have been validated and is not modified. Detector
// names absent from the source fail with *MalformedModelError. An empty
// detector set yields a valid model with empty collections.
func (m *Model) Trim(detectors []string) (*Model, error) {
	keep := retained{
		telescopes: map[string]bool{},
		tubeSlots:  map[string]bool{},
		waferSlots: map[string]bool{},
		cardSlots:  map[string]bool{},
		crateSlots: map[string]bool{},
		bands:      map[string]bool{},
		detectors:  map[string]bool{},
	}

	for _, name := range detectors {
		det, ok := m.Detectors.Get(name)
		if !ok {
			return nil, &MalformedModelError{Collection: "detectors",
				Field: "selection", Ref: name, Target: "detectors"}
		}
		keep.detectors[name] = true
		keep.bands[det.Band] = true
		keep.waferSlots[det.WaferSlot] = true
		keep.cardSlots[det.CardSlot] = true

		wafer, _ := m.WaferSlots.Get(det.WaferSlot)
		keep.tubeSlots[wafer.TubeSlot] = true
		keep.cardSlots[wafer.CardSlot] = true

		tube, _ := m.TubeSlots.Get(wafer.TubeSlot)
		keep.telescopes[tube.Telescope] = true
	}
	// Crates follow from the retained cards; a crate pulls in its
	// telescope so the crate's own reference never dangles.
	for card := range keep.cardSlots {
		crate := m.crateOf(card)
		keep.crateSlots[crate] = true
		if c, ok := m.CrateSlots.Get(crate); ok {
			keep.telescopes[c.Telescope] = true
		}
	}

	sub := NewModel()
	for name, tel := range m.Telescopes.All() {
		if keep.telescopes[name] {
			_ = sub.Telescopes.Add(name, trimTelescope(tel, keep.tubeSlots))
		}
	}
	for name, tube := range m.TubeSlots.All() {
		if keep.tubeSlots[name] {
			_ = sub.TubeSlots.Add(name, trimTubeSlot(tube, keep.waferSlots))
		}
	}
	for name, wafer := range m.WaferSlots.All() {
		if keep.waferSlots[name] {
			_ = sub.WaferSlots.Add(name, trimWaferSlot(wafer, keep.bands))
		}
	}
	for name, card := range m.CardSlots.All() {
		if keep.cardSlots[name] {
			clone := *card
			_ = sub.CardSlots.Add(name, &clone)
		}
	}
	for name, crate := range m.CrateSlots.All() {
		if keep.crateSlots[name] {
			_ = sub.CrateSlots.Add(name, trimCrateSlot(crate, keep.cardSlots))
		}
	}
	for name, band := range m.Bands.All() {
		if keep.bands[name] {
			clone := *band
			_ = sub.Bands.Add(name, &clone)
		}
	}
	for name, det := range m.Detectors.All() {
		if keep.detectors[name] {
			clone := *det
			_ = sub.Detectors.Add(name, &clone)
		}
	}

	// Closure only ever adds entities already validated in the source, so
	// the reverse index can be rebuilt directly from the retained crates.
	sub.cardCrate = make(map[string]string, len(keep.cardSlots))
	for name, crate := range sub.CrateSlots.All() {
		for _, card := range crate.CardSlots {
			sub.cardCrate[card] = name
		}
	}
	return sub, nil
}

func trimTelescope(t *Telescope, tubes map[string]bool) *Telescope {
	clone := *t
	clone.TubeSlots = filterNames(t.TubeSlots, tubes)
	clone.FWHM = maps.Clone(t.FWHM)
	return &clone
}

func trimTubeSlot(t *TubeSlot, wafers map[string]bool) *TubeSlot {
	clone := *t
	clone.WaferSlots = filterNames(t.WaferSlots, wafers)
	return &clone
}

func trimWaferSlot(w *WaferSlot, bands map[string]bool) *WaferSlot {
	clone := *w
	clone.Bands = filterNames(w.Bands, bands)
	return &clone
}

func trimCrateSlot(c *CrateSlot, cards map[string]bool) *CrateSlot {
	clone := *c
	clone.CardSlots = filterNames(c.CardSlots, cards)
	return &clone
}

// filterNames returns the members of names present in keep, preserving
// relative order. The result is always a fresh slice.
func filterNames(names []string, keep map[string]bool) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if keep[n] {
			out = append(out, n)
		}
	}
	return slices.Clip(out)
}
