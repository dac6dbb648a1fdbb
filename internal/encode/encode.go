package encode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mvconfig-generator/internal/document"
	"mvconfig-generator/internal/schema"
)

// FieldIndent prefixes every field line inside a record block.
const FieldIndent = "                "

// ErrUnsupportedEncoding is matched by every *UnsupportedEncodingError.
var ErrUnsupportedEncoding = errors.New("unsupported field encoding")

// UnsupportedEncodingError reports a member whose encoding has no encoder case.
type UnsupportedEncodingError struct {
	Encoding schema.Encoding
}

func (e *UnsupportedEncodingError) Error() string {
	return fmt.Sprintf("unsupported field encoding %s", e.Encoding)
}

func (e *UnsupportedEncodingError) Is(target error) bool { return target == ErrUnsupportedEncoding }

// Resolver looks up the patterns and generators members refer to.
// *schema.Registry implements it.
type Resolver interface {
	Lookup(id schema.PatternID) (*schema.Pattern, bool)
	Generator(name string) (schema.FieldGenerator, bool)
}

// Member encodes one member of rec. value is the raw record value for
// encodings read from the record and is ignored otherwise.
//
// For EncodingGenerator the result is the generator's complete field text,
// indented; every other encoding yields a bare value.
func Member(value any, m schema.Member, rec document.Record, res Resolver) (string, error) {
	switch m.Encoding {
	case schema.EncodingInteger, schema.EncodingString, schema.EncodingHexLiteral, schema.EncodingSizeWithUnit:
		return Value(value, m.Encoding)
	case schema.EncodingGenerator:
		gen, ok := res.Generator(m.Generator)
		if !ok {
			return "", fmt.Errorf("field generator %q is not registered", m.Generator)
		}

		return Generated(gen, rec)
	case schema.EncodingStructReference:
		target, ok := res.Lookup(m.Ref)
		if !ok {
			return "", fmt.Errorf("reference to unknown pattern %q", m.Ref)
		}

		return Reference(target), nil
	case schema.EncodingElementCount:
		target, ok := res.Lookup(m.Ref)
		if !ok {
			return "", fmt.Errorf("element count of unknown pattern %q", m.Ref)
		}

		return Count(target).String(), nil
	default:
		return "", &UnsupportedEncodingError{Encoding: m.Encoding}
	}
}

// Value encodes a raw record value. Only the encodings read from the record
// are accepted here.
func Value(value any, enc schema.Encoding) (string, error) {
	switch enc {
	case schema.EncodingInteger:
		return Integer(value), nil
	case schema.EncodingString:
		return String(value), nil
	case schema.EncodingHexLiteral:
		return HexLiteral(value), nil
	case schema.EncodingSizeWithUnit:
		return SizeWithUnit(value), nil
	default:
		return "", &UnsupportedEncodingError{Encoding: enc}
	}
}

// Integer renders numbers and decimal text as a base-10 literal.
// Anything else, including unparsable text, degrades to "0".
func Integer(value any) string {
	n, ok := document.Int(value)
	if !ok {
		return "0"
	}

	return strconv.FormatInt(n, 10)
}

var cStringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// String renders value as a quoted C string literal, stringifying
// non-text values first.
func String(value any) string {
	return `"` + cStringEscaper.Replace(document.Text(value)) + `"`
}

// HexLiteral passes pre-formatted text through verbatim; any other value
// becomes "0x0".
func HexLiteral(value any) string {
	s, ok := value.(string)
	if !ok {
		return "0x0"
	}

	return s
}

// SizeWithUnit converts "<count><K|M|G>" into a byte count. An unknown
// suffix, a bad count or a non-text value yields "0".
func SizeWithUnit(value any) string {
	s, ok := value.(string)
	if !ok {
		return "0"
	}

	n, ok := ParseSize(s)
	if !ok {
		return "0"
	}

	return strconv.FormatInt(n, 10)
}

// ParseSize parses a decimal count followed by a one letter binary unit
// (K, M or G, either case).
func ParseSize(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return 0, false
	}

	var shift uint

	switch s[len(s)-1] {
	case 'K', 'k':
		shift = 10
	case 'M', 'm':
		shift = 20
	case 'G', 'g':
		shift = 30
	default:
		return 0, false
	}

	count, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil || count < 0 || count > (1<<(63-shift))-1 {
		return 0, false
	}

	return count << shift, true
}

// Generated runs a field generator and indents its self-contained text.
func Generated(gen schema.FieldGenerator, rec document.Record) (string, error) {
	text, err := gen.Generate(rec)
	if err != nil {
		return "", fmt.Errorf("generator %s: %w", gen.Name(), err)
	}

	return FieldIndent + text, nil
}

// Reference names target's storage: arrays decay to a pointer, scalar
// records are referenced by address.
func Reference(target *schema.Pattern) string {
	if target.Kind == schema.KindScalar {
		return "&" + target.SymbolName
	}

	return target.SymbolName
}
