// Package encode turns one member of a record into C initializer text.
//
// Value encodings (integer, string, hex literal, size with unit) never fail:
// malformed input degrades to a zero literal. References resolve to another
// pattern's symbol, and element counts are emitted as DeferredExpr values
// that the compiler evaluates. Encodings without a case here are rejected
// with an UnsupportedEncodingError.
package encode
