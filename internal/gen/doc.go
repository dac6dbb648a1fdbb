// Package gen renders the hypervisor configuration document into C static
// initializers placed in the .__config linker section.
//
// Generation layers:
//   - RenderRecord: one record, one line per member
//   - EmitDeclaration: header, record blocks and terminator of one pattern
//   - Generator: preamble plus every pattern in registry order, written
//     atomically so a failed run never leaves partial output behind
package gen
