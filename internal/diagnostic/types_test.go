package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostics_Error(t *testing.T) {
	d := &Diagnostics{}
	assert.NoError(t, d.Error())
	assert.True(t, d.IsValid())

	d.AddWarning("no_members", "pattern has no members", "empty", "")
	assert.True(t, d.IsValid())
	assert.Len(t, d.Warnings, 1)

	d.AddError("unknown_generator", `field generator "x" is not registered`, "vmtags", "affinity", "vcpu_affinity")
	d.AddError("unknown_reference", "refers to unknown pattern", "", "")

	assert.False(t, d.IsValid())
	assert.EqualError(t, d.Error(),
		`[vmtags] affinity: [unknown_generator] field generator "x" is not registered (try: vcpu_affinity); `+
			"[unknown_reference] refers to unknown pattern")
}
