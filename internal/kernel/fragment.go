package kernel

import (
	"fmt"
	"strings"
)

// Fragment is one self-contained piece of generated kernel source: a single
// function definition together with the metadata callers need to compose it
// into a larger program. The function name and guard symbol are part of the
// contract — callers must use FunctionName verbatim when emitting a call site,
// never a hard-coded guess.
type Fragment struct {
	// FunctionName is the exact callable name defined in Body
	FunctionName string
	// GuardSymbol is the include-guard symbol wrapped around the rendered source
	GuardSymbol string
	// Params are the names of the additional parameters beyond the obligatory
	// leading arguments, in declaration order
	Params []string
	// Body is the complete function definition, without guards
	Body string
}

// Render returns the fragment source wrapped in its include guard, so that
// repeated inclusion across multiple generated programs is a no-op instead of
// a duplicate-definition error.
func (f Fragment) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#ifndef %s\n", f.GuardSymbol)
	fmt.Fprintf(&b, "#define %s\n\n", f.GuardSymbol)
	b.WriteString(strings.TrimRight(f.Body, "\n"))
	fmt.Fprintf(&b, "\n\n#endif // %s\n", f.GuardSymbol)
	return b.String()
}

// Qualify returns a copy of the fragment with the function name and guard
// symbol prefixed, and every occurrence inside the body rewritten to match.
// Integrating layers use this to namespace per-instance copies of the same
// fragment kind so they can coexist in one program.
func (f Fragment) Qualify(prefix string) Fragment {
	if prefix == "" {
		return f
	}
	qualified := Fragment{
		FunctionName: prefix + "_" + f.FunctionName,
		GuardSymbol:  strings.ToUpper(prefix) + "_" + f.GuardSymbol,
		Params:       append([]string(nil), f.Params...),
		Body:         strings.ReplaceAll(f.Body, f.FunctionName, prefix+"_"+f.FunctionName),
	}
	return qualified
}

// isASCII reports whether s contains only ASCII bytes. Generated source must
// stay ASCII so the backend binding can hand it to any kernel compiler.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}
