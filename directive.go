package prim

import "github.com/tinywasm/fmt"

// Directive is one of the special instructions given to the runtime context
// rather than evaluated as an expression. There is only a limited set of
// them, mostly useful for debugging.
type Directive uint8

const (
	Dump Directive = iota
	Quit
	Ir
)

// ParseDirective returns the directive called name in source code, without
// its leading "@".
func ParseDirective(name string) (Directive, error) {
	switch name {
	case "dump":
		return Dump, nil
	case "quit":
		return Quit, nil
	case "ir":
		return Ir, nil
	}
	return 0, fmt.Errf("unknown ctx directive @%s", name)
}

// String returns the directive as written in source, "@" included.
func (d Directive) String() string {
	switch d {
	case Dump:
		return "@dump"
	case Quit:
		return "@quit"
	case Ir:
		return "@ir"
	}
	return ""
}
