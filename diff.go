package hardware

import "reflect"

// EntityRef identifies one entity by collection and name.
type EntityRef struct {
	// Collection is the collection name, e.g. "wafer_slots".
	Collection string `json:"collection" yaml:"collection"`

	// Name is the entity name.
	Name string `json:"name" yaml:"name"`
}

// ModelDiff describes the differences between two hardware models.
//
// This is useful for:
//   - auditing what a selection trimmed away
//   - reviewing hardware config updates before deployment
//   - CI checks validating config changes
type ModelDiff struct {
	// Added contains entities present in the new model but not the old.
	Added []EntityRef `json:"added,omitempty" yaml:"added,omitempty"`

	// Removed contains entities present in the old model but not the new.
	Removed []EntityRef `json:"removed,omitempty" yaml:"removed,omitempty"`

	// Changed contains entities present in both whose records differ.
	// Membership-list trimming counts as a change.
	Changed []EntityRef `json:"changed,omitempty" yaml:"changed,omitempty"`
}

// IsEmpty reports whether the two models were identical.
func (d *ModelDiff) IsEmpty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// Diff compares two models collection by collection. Entities are compared
// by name and deep record equality; ordering differences alone are not
// reported. Output follows the new model's insertion order for additions
// and changes, and the old model's for removals.
func Diff(oldModel, newModel *Model) *ModelDiff {
	d := &ModelDiff{}
	diffCollection(d, "telescopes", oldModel.Telescopes, newModel.Telescopes)
	diffCollection(d, "tube_slots", oldModel.TubeSlots, newModel.TubeSlots)
	diffCollection(d, "wafer_slots", oldModel.WaferSlots, newModel.WaferSlots)
	diffCollection(d, "card_slots", oldModel.CardSlots, newModel.CardSlots)
	diffCollection(d, "crate_slots", oldModel.CrateSlots, newModel.CrateSlots)
	diffCollection(d, "bands", oldModel.Bands, newModel.Bands)
	diffCollection(d, "detectors", oldModel.Detectors, newModel.Detectors)
	return d
}

func diffCollection[E any](d *ModelDiff, collection string, oldC, newC *Collection[E]) {
	for name, item := range newC.All() {
		prev, ok := oldC.Get(name)
		switch {
		case !ok:
			d.Added = append(d.Added, EntityRef{Collection: collection, Name: name})
		case !reflect.DeepEqual(prev, item):
			d.Changed = append(d.Changed, EntityRef{Collection: collection, Name: name})
		}
	}
	for name := range oldC.All() {
		if !newC.Has(name) {
			d.Removed = append(d.Removed, EntityRef{Collection: collection, Name: name})
		}
	}
}
