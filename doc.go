// Package hardware models a telescope instrument's physical hardware
// hierarchy (telescopes, optics tube slots, detector wafer slots, readout
// card and crate slots, frequency bands, and individual detectors) and
// implements selection of consistent sub-models by detector attribute
// matching.
//
// # Overview
//
// The package provides three main components:
//
//   - Model: an in-memory entity store holding one insertion-ordered
//     collection per hardware kind, validated for referential integrity
//   - Criteria / MatchSpec: attribute-match predicates supporting literal
//     sets and full-string regular-expression patterns
//   - Select / Trim: the selection pipeline that matches detectors and
//     computes the minimal consistent sub-model containing them
//
// # Quick Start
//
// Build or load a model, then select by detector attributes:
//
//	sel, err := model.Select(hardware.Criteria{
//	    "band": hardware.Pattern("PC_f350"),
//	    "pol":  hardware.Literal("A"),
//	})
//	if err != nil {
//	    // *UnknownAttributeError or *InvalidPatternError
//	}
//	sub := sel.Model // trimmed model, no dangling references
//
// Criteria compose under logical AND; matching by properties of the
// hardware a detector belongs to (its tube slot, telescope, readout crate)
// works without manual joins:
//
//	sel, err := model.Select(hardware.Criteria{
//	    "tube_slot": hardware.Literal("c1", "i5"),
//	    "pol":       hardware.Pattern("A"),
//	})
//
// # Immutability
//
// A Model is assembled once, finalized by Validate, and read-only from then
// on. Select and Trim never mutate their receiver: they allocate a fresh,
// independently owned sub-model, so any number of selections may run
// concurrently against the same source model.
//
// Loading and dumping models in the on-disk YAML configuration format lives
// in the hwio subpackage.
package hardware
