// Package diagnostic provides structured warnings and errors reported while
// checking a generator schema before any output is produced.
//
// Key capabilities:
//   - Unknown pattern and generator references
//   - Duplicate identifier and symbol detection
//   - Non-fatal warnings for empty or sourceless patterns
//
// Reference order violations are not diagnostics; the schema package
// reports them as a dedicated error carrying a suggested order.
package diagnostic
