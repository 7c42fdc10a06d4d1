package hardware

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for model assembly failures.
var (
	// ErrDuplicateName indicates an entity name was added twice to the
	// same collection.
	ErrDuplicateName = errors.New("duplicate entity name")
)

// MalformedModelError reports a reference held by one entity that does not
// resolve within the model. It is returned by Validate and by Trim when the
// detector input set names detectors absent from the source model.
type MalformedModelError struct {
	// Collection is the collection holding the offending record.
	Collection string

	// Name is the offending record's name. Empty when the reference comes
	// from a selection input rather than a stored record.
	Name string

	// Field is the attribute holding the reference.
	Field string

	// Ref is the referenced name that failed to resolve.
	Ref string

	// Target is the collection the reference should resolve in.
	Target string
}

func (e *MalformedModelError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("malformed model: %s references unknown %s entry %q",
			e.Field, e.Target, e.Ref)
	}
	return fmt.Sprintf("malformed model: %s[%s].%s references unknown %s entry %q",
		e.Collection, e.Name, e.Field, e.Target, e.Ref)
}

// UnknownAttributeError reports a selection criterion naming an attribute
// that is not recognized on detectors or on their owning hardware chain.
type UnknownAttributeError struct {
	// Attribute is the unrecognized attribute name.
	Attribute string

	// Known lists the selectable attribute names, sorted.
	Known []string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown selection attribute %q (selectable: %s)",
		e.Attribute, strings.Join(e.Known, ", "))
}

// InvalidPatternError reports a match specification whose regular
// expression failed to compile.
type InvalidPatternError struct {
	// Attribute is the criterion's attribute name.
	Attribute string

	// Pattern is the pattern as supplied by the caller, without the
	// implied full-string anchors.
	Pattern string

	// Err is the underlying regexp compile error.
	Err error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q for attribute %q: %v", e.Pattern, e.Attribute, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}
