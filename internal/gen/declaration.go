package gen

import (
	"fmt"
	"strings"

	"mvconfig-generator/internal/document"
	"mvconfig-generator/internal/encode"
	"mvconfig-generator/internal/schema"
)

// Text framing of a declaration.
const (
	configSection = "__section(.__config)"
	elementOpen   = "        {\n"
	elementClose  = "        },\n"
	declEnd       = "};\n\n"
)

// EmitDeclaration renders the full C declaration of p from its slice of the
// document: a sequence of records for array patterns, a single mapping for
// scalar patterns. An array with no records still yields a valid, empty
// initializer.
func EmitDeclaration(res encode.Resolver, p *schema.Pattern, data any) (string, error) {
	return emitDeclaration(res, p, data, nil)
}

func emitDeclaration(res encode.Resolver, p *schema.Pattern, data any, notice literalNotice) (string, error) {
	var b strings.Builder

	b.WriteString(declarationHeader(p))

	switch p.Kind {
	case schema.KindArray:
		records, err := document.Records(p.StructName, data)
		if err != nil {
			return "", err
		}

		for i, rec := range records {
			body, err := renderRecord(res, p, rec, notice)
			if err != nil {
				return "", fmt.Errorf("%s[%d]: %w", p.SymbolName, i, err)
			}

			b.WriteString(elementOpen)
			b.WriteString(body)
			b.WriteString(elementClose)
		}
	case schema.KindScalar:
		rec, err := document.AsRecord(p.StructName, data)
		if err != nil {
			return "", err
		}

		body, err := renderRecord(res, p, rec, notice)
		if err != nil {
			return "", err
		}

		b.WriteString(body)
	default:
		return "", fmt.Errorf("pattern %s: unknown kind %s", p.StructName, p.Kind)
	}

	b.WriteString(declEnd)

	return b.String(), nil
}

// declarationHeader renders e.g.
// "static struct vmtag __section(.__config) vmtags[] = {\n".
func declarationHeader(p *schema.Pattern) string {
	var b strings.Builder

	if p.Static {
		b.WriteString("static ")
	}

	b.WriteString("struct ")
	b.WriteString(p.StructName)
	b.WriteString(" ")
	b.WriteString(configSection)
	b.WriteString(" ")
	b.WriteString(p.SymbolName)

	if p.Kind == schema.KindArray {
		b.WriteString("[]")
	}

	b.WriteString(" = {\n")

	return b.String()
}
