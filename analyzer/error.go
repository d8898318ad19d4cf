package analyzer

import "fmt"

// Kind classifies why an analyzer rejected a form, so callers can branch
// on the kind of mistake without parsing an error message.
type Kind int

const (
	// Shape covers wrong arity for a special form, a missing parameter
	// vector, or a malformed binding vector.
	Shape Kind = iota
	// Name covers unbound symbols, qualified-where-unqualified-required,
	// and arity conflicts within one fn*.
	Name
	// PositionKind covers recur appearing outside tail position or outside
	// any function.
	PositionKind
	// Type covers native/raw given a non-string, or var/def given a
	// non-symbol.
	Type
	// Interpolation covers unbalanced #{ }# delimiters or more than one
	// form inside an interpolation.
	Interpolation
	// Internal covers violated invariants that indicate a bug in the
	// analyzer itself rather than a mistake in the source being analyzed.
	Internal
)

func (k Kind) String() string {
	switch k {
	case Shape:
		return "shape"
	case Name:
		return "name"
	case PositionKind:
		return "position"
	case Type:
		return "type"
	case Interpolation:
		return "interpolation"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the analyzer's diagnostic type. Every analyzer function returns one of these instead of a bare
// error so callers can branch on Kind without string matching.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func errorf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
