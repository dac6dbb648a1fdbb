package schema

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"mvconfig-generator/internal/document"
)

// Names of the built-in field generators.
const (
	GeneratorVCPUAffinity = "vcpu_affinity"
	GeneratorMemSecType   = "mem_sectype"
)

// FieldGenerator produces the complete text of one field, including the
// field name, assignment, value and trailing separator. It is used for
// fields whose shape depends on other fields of the same record.
type FieldGenerator interface {
	Name() string
	Generate(rec document.Record) (string, error)
}

type generatorFunc struct {
	name string
	fn   func(document.Record) (string, error)
}

func (g generatorFunc) Name() string { return g.name }

func (g generatorFunc) Generate(rec document.Record) (string, error) { return g.fn(rec) }

// NewGenerator adapts a plain function into a FieldGenerator.
func NewGenerator(name string, fn func(document.Record) (string, error)) FieldGenerator {
	return generatorFunc{name: name, fn: fn}
}

// Generators is a set of named field generators.
type Generators struct {
	byName map[string]FieldGenerator
}

// NewGenerators creates a set holding the given generators.
// It panics on duplicate names, which is a programming error.
func NewGenerators(gens ...FieldGenerator) *Generators {
	g := &Generators{byName: make(map[string]FieldGenerator, len(gens))}
	for _, gen := range gens {
		if err := g.Register(gen); err != nil {
			panic(err)
		}
	}

	return g
}

// Builtins returns a fresh set of the built-in generators.
func Builtins() *Generators {
	return NewGenerators(
		NewGenerator(GeneratorVCPUAffinity, vcpuAffinity),
		NewGenerator(GeneratorMemSecType, memSecType),
	)
}

// Register adds gen to the set.
func (g *Generators) Register(gen FieldGenerator) error {
	if _, ok := g.byName[gen.Name()]; ok {
		return fmt.Errorf("field generator %q already registered", gen.Name())
	}

	g.byName[gen.Name()] = gen

	return nil
}

// Get returns the generator registered under name.
func (g *Generators) Get(name string) (FieldGenerator, bool) {
	gen, ok := g.byName[name]
	return gen, ok
}

// Names returns the registered generator names in sorted order.
func (g *Generators) Names() []string {
	names := make([]string, 0, len(g.byName))
	for name := range g.byName {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// vcpuAffinity emits ".vcpu_affinity = {a0, a1, ...},\n" with one entry per
// vCPU. Entry i comes from the optional "vcpu<i>_affinity" field, else 0.
func vcpuAffinity(rec document.Record) (string, error) {
	raw, ok := rec.Value("nr_vcpu")
	if !ok {
		return "", &document.MissingFieldError{Field: "nr_vcpu"}
	}

	nr, ok := document.Int(raw)
	if !ok || nr < 0 {
		return "", fmt.Errorf("nr_vcpu: %q is not a vCPU count", document.Text(raw))
	}

	affinity := make([]string, 0, nr)

	for i := range nr {
		v, ok := rec.Value("vcpu" + strconv.FormatInt(i, 10) + "_affinity")
		if !ok {
			affinity = append(affinity, "0")
			continue
		}

		if n, isInt := document.Int(v); isInt {
			affinity = append(affinity, strconv.FormatInt(n, 10))
		} else {
			affinity = append(affinity, document.Text(v))
		}
	}

	return ".vcpu_affinity = {" + strings.Join(affinity, ", ") + "},\n", nil
}

// memSecType maps the "sectype" letter to its numeric value:
// S (secure) is 0, N (normal) is 1, anything else is 2.
func memSecType(rec document.Record) (string, error) {
	raw, ok := rec.Value("sectype")
	if !ok {
		return "", &document.MissingFieldError{Field: "sectype"}
	}

	value := "2"

	switch document.Text(raw) {
	case "S":
		value = "0"
	case "N":
		value = "1"
	}

	return ".sectype = " + value + ",\n", nil
}
