// Package schema holds the declarative description of the emitted C
// declarations.
//
// A Pattern names a struct type, the symbol it is emitted under and the
// document key its data comes from. Members carry an Encoding that tells
// the field encoder how to render them. Members may refer to other
// patterns by PatternID; the Registry checks once, up front, that every
// such reference points at a pattern declared earlier.
//
// Fields whose text depends on other fields of the same record are built
// by named FieldGenerators kept in a Generators set.
package schema
