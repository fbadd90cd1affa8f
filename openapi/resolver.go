package openapi

import "log/slog"

// MaxResolveDepth bounds reference resolution so cyclic or deeply chained
// definitions terminate.
const MaxResolveDepth = 20

// Resolve follows a named reference to its definition.
//
// Resolution is lazy: it is applied exactly at the point of use during
// synthesis and flattening, never as a whole-tree pre-pass. Unresolved names
// and exceeded depth degrade to an empty object placeholder rather than
// failing the pass.
func Resolve(s *Schema, defs Definitions, depth int) *Schema {
	if s == nil {
		return &Schema{Type: TypeObject}
	}
	if !s.IsRef() {
		return s
	}

	if depth > MaxResolveDepth {
		slog.Warn("max reference resolution depth reached", "ref", s.Ref, "depth", depth)
		return &Schema{Type: TypeObject}
	}

	target, ok := defs[s.Ref]
	if !ok {
		slog.Warn("unresolved schema reference", "ref", s.Ref)
		return &Schema{Type: TypeObject}
	}

	return Resolve(target, defs, depth+1)
}
