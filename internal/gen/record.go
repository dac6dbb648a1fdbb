package gen

import (
	"errors"
	"fmt"
	"strings"

	"mvconfig-generator/internal/document"
	"mvconfig-generator/internal/encode"
	"mvconfig-generator/internal/schema"
)

// literalNotice is called for a record value the encoder can only render
// as a placeholder, such as a hex literal that was not written as text.
type literalNotice func(p *schema.Pattern, member string, value any)

// RenderRecord renders one record of p, one line per member in declared
// order regardless of the field order in rec.
func RenderRecord(res encode.Resolver, p *schema.Pattern, rec document.Record) (string, error) {
	return renderRecord(res, p, rec, nil)
}

func renderRecord(res encode.Resolver, p *schema.Pattern, rec document.Record, notice literalNotice) (string, error) {
	var b strings.Builder

	for _, m := range p.Members {
		var value any

		if m.Encoding.FromRecord() {
			v, ok := rec.Value(m.Name)
			if !ok {
				return "", &document.MissingFieldError{Pattern: p.StructName, Field: m.Name}
			}

			value = v

			if _, isText := v.(string); !isText && m.Encoding == schema.EncodingHexLiteral && notice != nil {
				notice(p, m.Name, v)
			}
		}

		text, err := encode.Member(value, m, rec, res)
		if err != nil {
			var mf *document.MissingFieldError
			if errors.As(err, &mf) && mf.Pattern == "" {
				mf.Pattern = p.StructName
			}

			return "", fmt.Errorf("%s.%s: %w", p.StructName, m.Name, err)
		}

		if m.Encoding == schema.EncodingGenerator {
			b.WriteString(text)
			continue
		}

		b.WriteString(encode.FieldIndent)
		b.WriteString(".")
		b.WriteString(m.Name)
		b.WriteString(" = ")
		b.WriteString(text)
		b.WriteString(",\n")
	}

	return b.String(), nil
}
