package hardware

// Model is the entity store: one insertion-ordered collection per hardware
// kind. A model is assembled by adding entities to the collections, then
// finalized with Validate, which checks referential integrity eagerly and
// builds the internal reverse indexes. After Validate the model is treated
// as read-only; Select and Trim allocate fresh models and never mutate the
// source.
type Model struct {
	Telescopes *Collection[*Telescope] `yaml:"telescopes" json:"telescopes"`
	TubeSlots  *Collection[*TubeSlot]  `yaml:"tube_slots" json:"tube_slots"`
	WaferSlots *Collection[*WaferSlot] `yaml:"wafer_slots" json:"wafer_slots"`
	CardSlots  *Collection[*CardSlot]  `yaml:"card_slots" json:"card_slots"`
	CrateSlots *Collection[*CrateSlot] `yaml:"crate_slots" json:"crate_slots"`
	Bands      *Collection[*Band]      `yaml:"bands" json:"bands"`
	Detectors  *Collection[*Detector]  `yaml:"detectors" json:"detectors"`

	// cardCrate maps each card slot to its owning crate slot, built by
	// Validate.
	cardCrate map[string]string
}

// NewModel returns an empty model with initialized collections.
func NewModel() *Model {
	m := &Model{}
	m.init()
	return m
}

// init replaces nil collections with empty ones. Models decoded from YAML
// may be missing sections entirely.
func (m *Model) init() {
	if m.Telescopes == nil {
		m.Telescopes = NewCollection[*Telescope]()
	}
	if m.TubeSlots == nil {
		m.TubeSlots = NewCollection[*TubeSlot]()
	}
	if m.WaferSlots == nil {
		m.WaferSlots = NewCollection[*WaferSlot]()
	}
	if m.CardSlots == nil {
		m.CardSlots = NewCollection[*CardSlot]()
	}
	if m.CrateSlots == nil {
		m.CrateSlots = NewCollection[*CrateSlot]()
	}
	if m.Bands == nil {
		m.Bands = NewCollection[*Band]()
	}
	if m.Detectors == nil {
		m.Detectors = NewCollection[*Detector]()
	}
}

// Validate checks that every reference held by any entity resolves within
// the model, and finalizes the model for selection. It returns a
// *MalformedModelError describing the first dangling reference found;
// nothing about the model is partially repaired on failure.
//
// Checks, per collection:
//
//   - telescopes: every tube_slots member exists
//   - tube_slots: the telescope exists; every wafer_slots member exists
//   - wafer_slots: the tube slot, card slot and every bands member exist
//   - crate_slots: the telescope exists; every card_slots member exists,
//     and no card slot is claimed by two crates
//   - detectors: the wafer slot, band and card slot exist
//   - every card slot belongs to exactly one crate slot
func (m *Model) Validate() error {
	m.init()

	for name, tel := range m.Telescopes.All() {
		for _, tube := range tel.TubeSlots {
			if !m.TubeSlots.Has(tube) {
				return &MalformedModelError{Collection: "telescopes", Name: name,
					Field: "tube_slots", Ref: tube, Target: "tube_slots"}
			}
		}
	}

	for name, tube := range m.TubeSlots.All() {
		if !m.Telescopes.Has(tube.Telescope) {
			return &MalformedModelError{Collection: "tube_slots", Name: name,
				Field: "telescope", Ref: tube.Telescope, Target: "telescopes"}
		}
		for _, wafer := range tube.WaferSlots {
			if !m.WaferSlots.Has(wafer) {
				return &MalformedModelError{Collection: "tube_slots", Name: name,
					Field: "wafer_slots", Ref: wafer, Target: "wafer_slots"}
			}
		}
	}

	for name, wafer := range m.WaferSlots.All() {
		if !m.TubeSlots.Has(wafer.TubeSlot) {
			return &MalformedModelError{Collection: "wafer_slots", Name: name,
				Field: "tube_slot", Ref: wafer.TubeSlot, Target: "tube_slots"}
		}
		if !m.CardSlots.Has(wafer.CardSlot) {
			return &MalformedModelError{Collection: "wafer_slots", Name: name,
				Field: "card_slot", Ref: wafer.CardSlot, Target: "card_slots"}
		}
		for _, band := range wafer.Bands {
			if !m.Bands.Has(band) {
				return &MalformedModelError{Collection: "wafer_slots", Name: name,
					Field: "bands", Ref: band, Target: "bands"}
			}
		}
	}

	cardCrate := make(map[string]string, m.CardSlots.Len())
	for name, crate := range m.CrateSlots.All() {
		if !m.Telescopes.Has(crate.Telescope) {
			return &MalformedModelError{Collection: "crate_slots", Name: name,
				Field: "telescope", Ref: crate.Telescope, Target: "telescopes"}
		}
		for _, card := range crate.CardSlots {
			if !m.CardSlots.Has(card) {
				return &MalformedModelError{Collection: "crate_slots", Name: name,
					Field: "card_slots", Ref: card, Target: "card_slots"}
			}
			if owner, claimed := cardCrate[card]; claimed {
				return &MalformedModelError{Collection: "crate_slots", Name: name,
					Field: "card_slots", Ref: card, Target: "crate_slots[" + owner + "]"}
			}
			cardCrate[card] = name
		}
	}
	for _, card := range m.CardSlots.Names() {
		if _, owned := cardCrate[card]; !owned {
			return &MalformedModelError{Collection: "card_slots", Name: card,
				Field: "crate", Ref: card, Target: "crate_slots"}
		}
	}

	for name, det := range m.Detectors.All() {
		if !m.WaferSlots.Has(det.WaferSlot) {
			return &MalformedModelError{Collection: "detectors", Name: name,
				Field: "wafer_slot", Ref: det.WaferSlot, Target: "wafer_slots"}
		}
		if !m.Bands.Has(det.Band) {
			return &MalformedModelError{Collection: "detectors", Name: name,
				Field: "band", Ref: det.Band, Target: "bands"}
		}
		if !m.CardSlots.Has(det.CardSlot) {
			return &MalformedModelError{Collection: "detectors", Name: name,
				Field: "card_slot", Ref: det.CardSlot, Target: "card_slots"}
		}
	}

	m.cardCrate = cardCrate
	return nil
}

// crateOf returns the crate slot owning card. Valid on validated models.
func (m *Model) crateOf(card string) string {
	return m.cardCrate[card]
}

// WaferInfo summarizes the hardware chain above one wafer slot.
type WaferInfo struct {
	// TubeSlot and Telescope locate the wafer optically.
	TubeSlot  string
	Telescope string

	// CardSlot and CrateSlot locate the wafer in the readout chain.
	CardSlot  string
	CrateSlot string

	// Bands lists the band names the wafer observes.
	Bands []string
}

// WaferMap returns, for every wafer slot, the tube slot, telescope, card
// slot, crate slot and bands it is associated with. The model must have
// been validated.
func (m *Model) WaferMap() map[string]WaferInfo {
	out := make(map[string]WaferInfo, m.WaferSlots.Len())
	for name, wafer := range m.WaferSlots.All() {
		tube, _ := m.TubeSlots.Get(wafer.TubeSlot)
		info := WaferInfo{
			TubeSlot: wafer.TubeSlot,
			CardSlot: wafer.CardSlot,
			Bands:    append([]string(nil), wafer.Bands...),
		}
		if tube != nil {
			info.Telescope = tube.Telescope
		}
		info.CrateSlot = m.crateOf(wafer.CardSlot)
		out[name] = info
	}
	return out
}
