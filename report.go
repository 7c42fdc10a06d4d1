package hardware

import "sort"

// Selection is the result of Select: the trimmed sub-model together with
// the audit report of what was matched and why.
type Selection struct {
	// Model is the minimal consistent sub-model containing the matched
	// detectors. It is independently owned and already valid.
	Model *Model

	// Matched lists the matched detector names in the insertion order of
	// the source detector collection.
	Matched []string

	// Criteria lists each applied criterion and its resolved
	// specification, sorted by attribute name.
	Criteria []AppliedCriterion

	// Summary provides aggregate counts for the selection.
	Summary Summary
}

// AppliedCriterion reports one selection criterion in resolved form.
type AppliedCriterion struct {
	// Attribute is the selectable attribute name.
	Attribute string `json:"attribute" yaml:"attribute"`

	// Kind is "literal" or "pattern".
	Kind string `json:"kind" yaml:"kind"`

	// Values holds the literal set (literal form only).
	Values []string `json:"values,omitempty" yaml:"values,omitempty"`

	// Pattern holds the expression without the implied anchors (pattern
	// form only).
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Summary provides aggregate statistics about a selection result.
type Summary struct {
	// TotalDetectors is the detector count of the source model.
	TotalDetectors int `json:"total_detectors" yaml:"total_detectors"`

	// MatchedDetectors is the number of detectors retained.
	MatchedDetectors int `json:"matched_detectors" yaml:"matched_detectors"`

	// Per-collection entity counts of the trimmed model.
	Telescopes int `json:"telescopes" yaml:"telescopes"`
	TubeSlots  int `json:"tube_slots" yaml:"tube_slots"`
	WaferSlots int `json:"wafer_slots" yaml:"wafer_slots"`
	CardSlots  int `json:"card_slots" yaml:"card_slots"`
	CrateSlots int `json:"crate_slots" yaml:"crate_slots"`
	Bands      int `json:"bands" yaml:"bands"`
}

func appliedCriteria(criteria Criteria) []AppliedCriterion {
	out := make([]AppliedCriterion, 0, len(criteria))
	for attr, spec := range criteria {
		ac := AppliedCriterion{Attribute: attr}
		if spec.IsPattern() {
			ac.Kind = "pattern"
			ac.Pattern = spec.PatternExpr()
		} else {
			ac.Kind = "literal"
			ac.Values = spec.Values()
		}
		out = append(out, ac)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Attribute < out[j].Attribute })
	return out
}

func summarize(src, sub *Model, matched int) Summary {
	return Summary{
		TotalDetectors:   src.Detectors.Len(),
		MatchedDetectors: matched,
		Telescopes:       sub.Telescopes.Len(),
		TubeSlots:        sub.TubeSlots.Len(),
		WaferSlots:       sub.WaferSlots.Len(),
		CardSlots:        sub.CardSlots.Len(),
		CrateSlots:       sub.CrateSlots.Len(),
		Bands:            sub.Bands.Len(),
	}
}
