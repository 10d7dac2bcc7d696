package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openclc-dev/openclc-front-sdk/dialect"
)

func cfgAt(v dialect.Version) dialect.Config {
	return dialect.Config{Version: v}
}

func Test_Info_IsCore_IsOptionalCore(t *testing.T) {
	assert.False(t, Info{}.IsCore())
	assert.False(t, Info{}.IsOptionalCore())

	assert.True(t, Info{Core: MaskV200}.IsCore())
	assert.True(t, Info{OptionalCore: MaskV300}.IsOptionalCore())
}

func Test_Info_IsAvailableIn_Monotonic(t *testing.T) {
	for _, from := range dialect.Versions() {
		info := Info{Available: from}
		available := false
		for _, v := range dialect.Versions() {
			got := info.IsAvailableIn(cfgAt(v))
			if got {
				available = true
			}
			// Once available, available at every later tier.
			assert.Equal(t, available, got, "available from %s at %s", from, v)
		}
		assert.True(t, available)
	}
}

// A capability available from 1.1 and core in 1.1 and 1.2 only: before 1.1
// it does not exist, in 1.1/1.2 it is mandated, and from 2.0 on it drops
// back to extension status without leaving the table.
func Test_Info_DiscontinuousCoreRange(t *testing.T) {
	info := Info{Available: dialect.V110, Core: MaskV110 | MaskV120}

	assert.False(t, info.IsAvailableIn(cfgAt(dialect.V100)))
	assert.False(t, info.IsCoreIn(cfgAt(dialect.V100)))

	assert.True(t, info.IsAvailableIn(cfgAt(dialect.V110)))
	assert.True(t, info.IsCoreIn(cfgAt(dialect.V110)))
	assert.True(t, info.IsCoreIn(cfgAt(dialect.V120)))

	assert.True(t, info.IsAvailableIn(cfgAt(dialect.V300)))
	assert.False(t, info.IsCoreIn(cfgAt(dialect.V300)))
}

func Test_Info_CoreMaskAloneIsNotEnough(t *testing.T) {
	// Core bit set for a tier below availability: availability gates it.
	info := Info{Available: dialect.V120, Core: MaskAll}
	assert.False(t, info.IsCoreIn(cfgAt(dialect.V100)))
	assert.True(t, info.IsCoreIn(cfgAt(dialect.V120)))
}

func Test_Info_CPlusPlusModeBehavesAs200(t *testing.T) {
	info := Info{Available: dialect.V100, Core: MaskV200, OptionalCore: MaskV300}

	for _, raw := range dialect.Versions() {
		cpp := dialect.Config{Version: raw, CPlusPlus: true}
		plain := cfgAt(dialect.V200)

		assert.Equal(t, info.IsAvailableIn(plain), info.IsAvailableIn(cpp), raw.String())
		assert.Equal(t, info.IsCoreIn(plain), info.IsCoreIn(cpp), raw.String())
		assert.Equal(t, info.IsOptionalCoreIn(plain), info.IsOptionalCoreIn(cpp), raw.String())
	}
}
