package defconfig

import "slices"

// Entry is one configuration item.
type Entry struct {
	Key   string
	Value string
}

var defaultEntries = []Entry{
	{Key: "CONFIG_MAX_VM", Value: "64"},
	{Key: "CONFIG_MINOS_RESCHED_IRQ", Value: "7"},
	{Key: "CONFIG_MAX_SLAB_BLOCKS", Value: "10"},
	{Key: "CONFIG_PLATFORM_ADDRESS_RANGE", Value: "40"},
	{Key: "CONFIG_LOG_LEVEL", Value: "3"},
	{Key: "CONFIG_MINOS_START_ADDRESS", Value: "0x0"},
	{Key: "CONFIG_BOOTMEM_SIZE", Value: "64K"},
	{Key: "CONFIG_MAX_MAILBOX_NR", Value: "10"},
	{Key: "CONFIG_TASK_RUN_TIME", Value: "100"},
}

// Defaults returns the hypervisor's default configuration. Every call
// returns a fresh copy.
func Defaults() []Entry {
	return slices.Clone(defaultEntries)
}

// Config is the result of layering explicit settings over defaults.
type Config struct {
	entries  []Entry
	explicit map[string]bool
}

// Resolve layers overrides on top of defaults. Explicit entries come first,
// in the order given, followed by every default that was not overridden.
// A key repeated in overrides keeps its first position and its last value.
func Resolve(defaults, overrides []Entry) *Config {
	c := &Config{explicit: make(map[string]bool, len(overrides))}
	pos := make(map[string]int, len(overrides)+len(defaults))

	for _, e := range overrides {
		if i, ok := pos[e.Key]; ok {
			c.entries[i].Value = e.Value
			continue
		}

		pos[e.Key] = len(c.entries)
		c.explicit[e.Key] = true
		c.entries = append(c.entries, e)
	}

	for _, e := range defaults {
		if _, ok := pos[e.Key]; ok {
			continue
		}

		pos[e.Key] = len(c.entries)
		c.entries = append(c.entries, e)
	}

	return c
}

// Entries returns the resolved entries in output order.
func (c *Config) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Explicit reports whether key was set by the user rather than defaulted.
func (c *Config) Explicit(key string) bool {
	return c.explicit[key]
}

// Lookup returns the resolved value of key.
func (c *Config) Lookup(key string) (string, bool) {
	for _, e := range c.entries {
		if e.Key == key {
			return e.Value, true
		}
	}

	return "", false
}
