// Package document loads the hypervisor configuration document that feeds
// the generator.
//
// The document is a mapping whose keys select the data of each pattern:
// "vmtags", "irqtags" and "memtags" hold sequences of records while the
// scalar fields (version, platform) live at the top level.
package document
