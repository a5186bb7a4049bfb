package prim

// TypeName is the display form of a checked type. A type is either resolved
// to a named type, void, or not known yet.
type TypeName struct {
	id   string
	kind uint8
}

const (
	typeUnknown uint8 = iota
	typeVoid
	typeResolved
)

var (
	// Void is the type of statements and other valueless constructs.
	Void = TypeName{kind: typeVoid}
	// Unknown is the state of a type before resolution. It is the zero
	// value of TypeName.
	Unknown = TypeName{}
)

// Resolved returns the TypeName of a type resolved to the named type id.
func Resolved(id string) TypeName {
	return TypeName{id: id, kind: typeResolved}
}

// IsResolved reports whether the type resolved to a named type.
func (t TypeName) IsResolved() bool {
	return t.kind == typeResolved
}

// String returns the resolved type's name, "void", or "!!unknown!!".
func (t TypeName) String() string {
	switch t.kind {
	case typeResolved:
		return t.id
	case typeVoid:
		return "void"
	}
	return "!!unknown!!"
}
