package kernel

import (
	"fmt"
	"strings"
)

// Program composes kernel-source fragments into one compilable unit. Fragments
// are emitted in the order they were added. Adding two fragments that define
// the same function name is rejected, which turns what would be a downstream
// compiler error into an immediate composition error.
type Program struct {
	fragments []Fragment
	names     map[string]struct{}
}

// NewProgram creates an empty program
func NewProgram() *Program {
	return &Program{
		names: make(map[string]struct{}),
	}
}

// Add appends a fragment to the program. It fails if the fragment's function
// name collides with one already added, or if the fragment is not ASCII.
func (p *Program) Add(f Fragment) error {
	if f.FunctionName == "" {
		return fmt.Errorf("fragment has no function name")
	}
	if !isASCII(f.Body) || !isASCII(f.FunctionName) || !isASCII(f.GuardSymbol) {
		return fmt.Errorf("fragment %s contains non-ASCII source", f.FunctionName)
	}
	if _, exists := p.names[f.FunctionName]; exists {
		return fmt.Errorf("duplicate kernel function name %s", f.FunctionName)
	}
	p.names[f.FunctionName] = struct{}{}
	p.fragments = append(p.fragments, f)
	return nil
}

// Contains reports whether a function with the given name was added
func (p *Program) Contains(functionName string) bool {
	_, exists := p.names[functionName]
	return exists
}

// Source renders all fragments, in insertion order, into one source string
func (p *Program) Source() string {
	parts := make([]string, len(p.fragments))
	for i, f := range p.fragments {
		parts[i] = f.Render()
	}
	return strings.Join(parts, "\n")
}
