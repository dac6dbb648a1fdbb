package schema

// Pattern IDs of the hypervisor configuration schema.
const (
	PatternVMTags     PatternID = "vmtags"
	PatternIRQTags    PatternID = "irqtags"
	PatternMemTags    PatternID = "memtags"
	PatternVirtConfig PatternID = "virt_config"
)

// MinosPatterns returns the hypervisor configuration patterns in
// declaration order: the three tag arrays, then the virt_config record
// that points at them.
func MinosPatterns() []Pattern {
	return []Pattern{
		{
			ID:         PatternVMTags,
			StructName: "vmtag",
			SymbolName: "vmtags",
			SourceKey:  "vmtags",
			Kind:       KindArray,
			Static:     true,
			Members: []Member{
				Field("vmid", EncodingInteger),
				Field("name", EncodingString),
				Field("type", EncodingString),
				Field("nr_vcpu", EncodingInteger),
				Field("entry", EncodingHexLiteral),
				Field("setup_data", EncodingHexLiteral),
				Field("cmdline", EncodingString),
				Generated("vcpu_affinity", GeneratorVCPUAffinity),
				Field("bit64", EncodingInteger),
			},
		},
		{
			ID:         PatternIRQTags,
			StructName: "irqtag",
			SymbolName: "irqtags",
			SourceKey:  "irqtags",
			Kind:       KindArray,
			Static:     true,
			Members: []Member{
				Field("vno", EncodingInteger),
				Field("hno", EncodingInteger),
				Field("vmid", EncodingInteger),
				Field("vcpu_id", EncodingInteger),
				Field("name", EncodingString),
			},
		},
		{
			ID:         PatternMemTags,
			StructName: "memtag",
			SymbolName: "memtags",
			SourceKey:  "memtags",
			Kind:       KindArray,
			Static:     true,
			Members: []Member{
				Field("mem_base", EncodingHexLiteral),
				Field("mem_end", EncodingHexLiteral),
				Field("enable", EncodingInteger),
				Field("type", EncodingInteger),
				Field("vmid", EncodingInteger),
				Field("name", EncodingString),
			},
		},
		{
			ID:         PatternVirtConfig,
			StructName: "virt_config",
			SymbolName: "virt_config",
			Kind:       KindScalar,
			Members: []Member{
				Field("version", EncodingString),
				Field("platform", EncodingString),
				Reference("vmtags", PatternVMTags),
				Reference("irqtags", PatternIRQTags),
				Reference("memtags", PatternMemTags),
				Count("nr_vmtag", PatternVMTags),
				Count("nr_irqtag", PatternIRQTags),
				Count("nr_memtag", PatternMemTags),
			},
		},
	}
}

// Default returns the validated hypervisor configuration registry with the
// built-in field generators.
func Default() (*Registry, error) {
	return NewRegistry(Builtins(), MinosPatterns()...)
}
