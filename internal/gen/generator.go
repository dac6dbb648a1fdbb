package gen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"mvconfig-generator/internal/document"
	"mvconfig-generator/internal/output"
	"mvconfig-generator/internal/schema"
)

// Preamble opens every generated file.
const Preamble = "#include <minos/compiler.h>\n\n#include <minos/virt.h>\n"

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for progress and debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator renders a document through a schema registry.
type Generator struct {
	registry *schema.Registry
	logger   *zap.Logger
}

// NewGenerator creates a Generator for the given, already validated, registry.
func NewGenerator(registry *schema.Registry, opts ...Option) *Generator {
	g := &Generator{
		registry: registry,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	for _, w := range registry.Warnings() {
		g.logger.Warn(w.Message,
			zap.String("code", w.Code),
			zap.String("pattern", w.Pattern),
			zap.String("member", w.Member),
		)
	}

	return g
}

// Generate renders every pattern of the registry, in registry order, and
// returns the complete file text. Nothing is returned on error.
func (g *Generator) Generate(doc *document.Document) (string, error) {
	var b strings.Builder

	b.WriteString(Preamble)

	for i := range g.registry.Len() {
		p := g.registry.PatternAt(i)

		data, err := g.sliceFor(doc, p)
		if err != nil {
			return "", err
		}

		g.logger.Info("Parsing "+p.StructName+" ...",
			zap.String("symbol", p.SymbolName),
			zap.Stringer("kind", p.Kind),
		)

		decl, err := emitDeclaration(g.registry, p, data, g.warnLiteral)
		if err != nil {
			return "", fmt.Errorf("generating %s: %w", p.SymbolName, err)
		}

		b.WriteString(decl)
	}

	return b.String(), nil
}

// GenerateFile loads the document at inputPath, generates the configuration
// source and atomically replaces outputPath with it. On any error the
// output path is left untouched.
func (g *Generator) GenerateFile(inputPath, outputPath string) error {
	doc, err := document.Load(inputPath)
	if err != nil {
		return err
	}

	if ce := g.logger.Check(zap.DebugLevel, "parsed document"); ce != nil {
		ce.Write(zap.String("path", doc.Path()), zap.String("dump", spew.Sdump(doc.Root())))
	}

	content, err := g.Generate(doc)
	if err != nil {
		return err
	}

	written, err := output.WriteAtomic(outputPath, []byte(content))
	if err != nil {
		return err
	}

	if !written {
		g.logger.Info("output unchanged", zap.String("path", outputPath))
	}

	return nil
}

// warnLiteral flags hex values that reached the generator as numbers.
// YAML reads an unquoted 0x1000 as an integer, which renders as 0x0.
func (g *Generator) warnLiteral(p *schema.Pattern, member string, value any) {
	g.logger.Warn("hex literal is not text, rendering 0x0; quote the value in the document",
		zap.String("pattern", p.StructName),
		zap.String("member", member),
		zap.Any("value", value),
	)
}

// sliceFor selects the part of the document p is rendered from.
func (g *Generator) sliceFor(doc *document.Document, p *schema.Pattern) (any, error) {
	if p.SourceKey == "" {
		return doc.Root(), nil
	}

	data, err := doc.Section(p.SourceKey)
	if err != nil {
		var missing *document.MissingSectionError
		if errors.As(err, &missing) {
			missing.Pattern = p.StructName
		}

		return nil, err
	}

	return data, nil
}
