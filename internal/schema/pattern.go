package schema

// PatternID is the symbolic identifier other patterns use to refer to a pattern.
type PatternID string

// Pattern describes one emitted C declaration: its struct type, symbol,
// where its data comes from and how each member is encoded.
type Pattern struct {
	// ID is the symbolic name used by references. Defaults to SymbolName.
	ID PatternID
	// StructName is the emitted C struct tag (e.g., "vmtag").
	StructName string
	// SymbolName is the emitted instance or array name (e.g., "vmtags").
	SymbolName string
	// SourceKey selects this pattern's data in the document.
	// Empty means the whole document is the data.
	SourceKey string
	// Kind is KindArray or KindScalar.
	Kind Kind
	// Static marks the declaration file-local.
	Static bool
	// Members in emission order.
	Members []Member
}

// Key returns the pattern's identifier, falling back to its symbol name.
func (p *Pattern) Key() PatternID {
	if p.ID != "" {
		return p.ID
	}

	return PatternID(p.SymbolName)
}

// Member is one field of a pattern.
type Member struct {
	Name     string
	Encoding Encoding
	// Generator names a registered FieldGenerator (EncodingGenerator only).
	Generator string
	// Ref names the referenced pattern (EncodingStructReference and
	// EncodingElementCount only).
	Ref PatternID
}

// Field declares a member whose value is read from the record.
func Field(name string, enc Encoding) Member {
	return Member{Name: name, Encoding: enc}
}

// Generated declares a member produced by the named field generator.
func Generated(name, generator string) Member {
	return Member{Name: name, Encoding: EncodingGenerator, Generator: generator}
}

// Reference declares a member pointing at another pattern's storage.
func Reference(name string, ref PatternID) Member {
	return Member{Name: name, Encoding: EncodingStructReference, Ref: ref}
}

// Count declares a member holding another array pattern's element count.
func Count(name string, ref PatternID) Member {
	return Member{Name: name, Encoding: EncodingElementCount, Ref: ref}
}
