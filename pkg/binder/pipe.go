package binder

import (
	"fmt"
	"strings"
)

// Pipe transforms a resolved event-handler argument. Registered pipes are
// applied left to right along a Handler's PipeChain (spec.md §4.6).
type Pipe func(any) any

// PipeRegistry resolves pipe names used in "fn(arg|pipe1|pipe2)" handler
// expressions.
type PipeRegistry struct {
	pipes map[string]Pipe
}

// NewPipeRegistry returns a registry seeded with the built-in pipes
// (upper, lower, trim, int) every kiln view gets for free, mirroring the
// teacher's convention of registering a small default command set before
// any user-supplied one.
func NewPipeRegistry() *PipeRegistry {
	r := &PipeRegistry{pipes: map[string]Pipe{}}
	r.Register("upper", pipeUpper)
	r.Register("lower", pipeLower)
	r.Register("trim", pipeTrim)
	r.Register("int", pipeInt)
	return r
}

// Register adds or replaces a named pipe.
func (r *PipeRegistry) Register(name string, p Pipe) {
	r.pipes[name] = p
}

// Apply runs value through each named pipe in chain, in order. An unknown
// pipe name is an error; the value is returned unchanged for the pipes
// applied before the failure.
func (r *PipeRegistry) Apply(value any, chain []string) (any, error) {
	for _, name := range chain {
		p, ok := r.pipes[name]
		if !ok {
			return value, fmt.Errorf("binder: unknown pipe %q", name)
		}
		value = p(value)
	}
	return value, nil
}

func pipeUpper(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.ToUpper(s)
}

func pipeLower(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.ToLower(s)
}

func pipeTrim(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return strings.TrimSpace(s)
}

func pipeInt(v any) any {
	f, ok := v.(float64)
	if !ok {
		return v
	}
	return float64(int64(f))
}
