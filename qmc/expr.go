// This file renders prime implicants as Boolean expressions.

package qmc

import (
	"fmt"
	"strings"
)

// DefaultVars returns n variable names: A through Z, then x26, x27, and so on.
func DefaultVars(n int) []string {
	vs := make([]string, n)
	for i := range vs {
		if i < 26 {
			vs[i] = string(rune('A' + i))
		} else {
			vs[i] = fmt.Sprintf("x%d", i)
		}
	}
	return vs
}

// Product renders a single term as a product of literals, with a trailing
// apostrophe marking a complemented variable.  A term with no defined bits
// renders as "1".
func Product(t Term, vars []string) string {
	if vars == nil {
		vars = DefaultVars(t.Width())
	}
	var sb strings.Builder
	for i, b := range t.Bits {
		switch b {
		case One:
			sb.WriteString(vars[i])
		case Zero:
			sb.WriteString(vars[i])
			sb.WriteByte('\'')
		}
	}
	if sb.Len() == 0 {
		return "1"
	}
	return sb.String()
}

// Expression renders a list of terms as a sum of products, as in
// "A'B + CD'".  An empty list renders as "0".  If vars is nil, DefaultVars
// supplies the variable names.
func Expression(ts []Term, vars []string) string {
	if len(ts) == 0 {
		return "0"
	}
	ps := make([]string, len(ts))
	for i, t := range ts {
		ps[i] = Product(t, vars)
	}
	return strings.Join(ps, " + ")
}
