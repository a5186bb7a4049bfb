package prim

import "github.com/tinywasm/fmt"

// VarDecl prints a variable declaration. When the variable's type is
// resolved it is shown as an inline comment between the name and the value.
func VarDecl(name string, ty TypeName, value string) string {
	if ty.IsResolved() {
		return fmt.Sprintf("%s /* : %s */ = %s", name, ty.String(), value)
	}
	return fmt.Sprintf("%s = %s", name, value)
}

// BinaryExpr prints a binary expression with one space on each side of the
// operator.
func BinaryExpr(lhs string, op Operator, rhs string) string {
	return fmt.Sprintf("%s %s %s", lhs, op.String(), rhs)
}

// IfExpr prints an if expression without an else branch.
func IfExpr(cond, body string) string {
	return fmt.Sprintf("if %s %s", cond, body)
}

// IfElseExpr prints an if expression followed by its else branch.
func IfElseExpr(cond, body, elseBody string) string {
	return fmt.Sprintf("%s else %s", IfExpr(cond, body), elseBody)
}
