package schema

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"mvconfig-generator/internal/diagnostic"
)

// Diagnostic codes reported while checking a registry.
const (
	CodeUnknownReference   = "unknown_reference"
	CodeDuplicateID        = "duplicate_pattern_id"
	CodeDuplicateSymbol    = "duplicate_symbol"
	CodeUnknownGenerator   = "unknown_generator"
	CodeMissingExtra       = "missing_extra"
	CodeInvalidKind        = "invalid_kind"
	CodeMissingPatternName = "missing_name"
	CodeNoMembers          = "no_members"
	CodeArrayWithoutSource = "array_without_source"
)

var (
	// ErrSchemaOrder is matched by every *OrderError.
	ErrSchemaOrder = errors.New("schema order violation")
	// ErrInvalidSchema reports any other registry misconfiguration.
	ErrInvalidSchema = errors.New("invalid schema")
)

// ForwardReference is a member that refers to a pattern not declared before it.
type ForwardReference struct {
	Pattern        PatternID
	Member         string
	Target         PatternID
	Position       int
	TargetPosition int
}

// OrderError reports references that point at the same or a later position.
type OrderError struct {
	References []ForwardReference
	// Suggested is a valid order for the same patterns, empty when the
	// references form a cycle.
	Suggested []PatternID
	// Cycle lists the patterns of a reference loop, first and last equal.
	// Set only when no valid order exists.
	Cycle []PatternID
}

func (e *OrderError) Error() string {
	parts := make([]string, 0, len(e.References))
	for _, ref := range e.References {
		parts = append(parts, fmt.Sprintf("%s.%s refers to %s at position %d, not before %d",
			ref.Pattern, ref.Member, ref.Target, ref.TargetPosition, ref.Position))
	}

	msg := "schema order: " + strings.Join(parts, "; ")

	switch {
	case len(e.Suggested) > 0:
		msg += " (valid order: " + joinIDs(e.Suggested, ", ") + ")"
	case len(e.Cycle) > 0:
		msg += " (reference cycle: " + joinIDs(e.Cycle, " -> ") + ")"
	}

	return msg
}

func joinIDs(ids []PatternID, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}

	return strings.Join(parts, sep)
}

func (e *OrderError) Is(target error) bool { return target == ErrSchemaOrder }

// Registry is the ordered, validated list of patterns. It is immutable once built.
type Registry struct {
	patterns   []Pattern
	positions  map[PatternID]int
	generators *Generators
	warnings   []diagnostic.Diagnostic
}

// NewRegistry builds a registry from patterns in declaration order and checks
// it before anything is generated. References must point at strictly earlier
// patterns; the list is never reordered. gens defaults to Builtins().
func NewRegistry(gens *Generators, patterns ...Pattern) (*Registry, error) {
	if gens == nil {
		gens = Builtins()
	}

	r := &Registry{
		patterns:   slices.Clone(patterns),
		positions:  make(map[PatternID]int, len(patterns)),
		generators: gens,
	}

	diags, forward := r.check()

	if len(forward) > 0 {
		suggested, cycle := r.declarationOrder()

		return nil, &OrderError{
			References: forward,
			Suggested:  suggested,
			Cycle:      cycle,
		}
	}

	if err := diags.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	r.warnings = diags.Warnings

	return r, nil
}

func (r *Registry) check() (*diagnostic.Diagnostics, []ForwardReference) {
	diags := &diagnostic.Diagnostics{}
	symbols := make(map[string]PatternID, len(r.patterns))

	for i := range r.patterns {
		p := &r.patterns[i]
		id := p.Key()

		if id == "" || p.StructName == "" {
			diags.AddError(CodeMissingPatternName, "pattern needs a struct and symbol name", string(id), "")
		}

		if p.Kind != KindArray && p.Kind != KindScalar {
			diags.AddError(CodeInvalidKind, fmt.Sprintf("unknown pattern kind %s", p.Kind), string(id), "")
		}

		if len(p.Members) == 0 {
			diags.AddWarning(CodeNoMembers, "pattern has no members", string(id), "")
		}

		if p.Kind == KindArray && p.SourceKey == "" {
			diags.AddWarning(CodeArrayWithoutSource, "array pattern reads the whole document", string(id), "")
		}

		if _, dup := r.positions[id]; dup {
			diags.AddError(CodeDuplicateID, fmt.Sprintf("pattern id %q declared twice", id), string(id), "")
			continue
		}

		if other, dup := symbols[p.SymbolName]; dup {
			diags.AddError(CodeDuplicateSymbol,
				fmt.Sprintf("symbol %q already emitted by %s", p.SymbolName, other), string(id), "")
		}

		r.positions[id] = i
		symbols[p.SymbolName] = id
	}

	var forward []ForwardReference

	for i := range r.patterns {
		p := &r.patterns[i]
		id := string(p.Key())

		for _, m := range p.Members {
			switch m.Encoding {
			case EncodingInteger, EncodingString, EncodingHexLiteral, EncodingSizeWithUnit:
			case EncodingGenerator:
				if m.Generator == "" {
					diags.AddError(CodeMissingExtra, "generator member names no generator", id, m.Name)
				} else if _, ok := r.generators.Get(m.Generator); !ok {
					diags.AddError(CodeUnknownGenerator,
						fmt.Sprintf("field generator %q is not registered", m.Generator), id, m.Name,
						r.generators.Names()...)
				}
			case EncodingStructReference, EncodingElementCount:
				target, ok := r.positions[m.Ref]
				if !ok {
					diags.AddError(CodeUnknownReference,
						fmt.Sprintf("%s refers to unknown pattern %q", m.Encoding, m.Ref), id, m.Name)
					continue
				}

				if target >= i {
					forward = append(forward, ForwardReference{
						Pattern:        p.Key(),
						Member:         m.Name,
						Target:         m.Ref,
						Position:       i,
						TargetPosition: target,
					})
				}
			}
		}
	}

	return diags, forward
}

// Patterns returns the patterns in declaration order.
func (r *Registry) Patterns() []Pattern {
	return slices.Clone(r.patterns)
}

// Len returns the number of patterns.
func (r *Registry) Len() int {
	return len(r.patterns)
}

// PatternAt returns the pattern at position i.
func (r *Registry) PatternAt(i int) *Pattern {
	return &r.patterns[i]
}

// Lookup returns the pattern registered under id.
func (r *Registry) Lookup(id PatternID) (*Pattern, bool) {
	pos, ok := r.positions[id]
	if !ok {
		return nil, false
	}

	return &r.patterns[pos], true
}

// Warnings returns the non-fatal diagnostics found while checking the registry.
func (r *Registry) Warnings() []diagnostic.Diagnostic {
	return slices.Clone(r.warnings)
}

// Generator returns the field generator registered under name.
func (r *Registry) Generator(name string) (FieldGenerator, bool) {
	return r.generators.Get(name)
}
