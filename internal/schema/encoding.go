package schema

//go:generate go tool stringer -type=Encoding -linecomment -output=encoding_string.go
//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Encoding selects how a member's value is turned into initializer text.
type Encoding int

const (
	_ Encoding = iota // zero value is not a valid encoding

	EncodingInteger         // INTEGER
	EncodingString          // STRING
	EncodingHexLiteral      // HEX_LITERAL
	EncodingSizeWithUnit    // SIZE_WITH_UNIT
	EncodingGenerator       // GENERATOR
	EncodingStructReference // STRUCT_REFERENCE
	EncodingElementCount    // ELEMENT_COUNT
)

// FromRecord reports whether the member's value is read from the record.
// References, counts and generators produce their text without a record field.
func (e Encoding) FromRecord() bool {
	switch e {
	case EncodingInteger, EncodingString, EncodingHexLiteral, EncodingSizeWithUnit:
		return true
	default:
		return false
	}
}

// IsReference reports whether the encoding resolves to another pattern.
func (e Encoding) IsReference() bool {
	return e == EncodingStructReference || e == EncodingElementCount
}

// Kind tells whether a pattern emits an array or a single record.
type Kind int

const (
	_ Kind = iota

	KindArray  // ARRAY
	KindScalar // SCALAR
)
