package capability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openclc-dev/openclc-front-sdk/dialect"
)

func Test_Mask_Contains(t *testing.T) {
	assert.True(t, MaskV110Plus.Contains(dialect.V110))
	assert.True(t, MaskV110Plus.Contains(dialect.V300))
	assert.False(t, MaskV110Plus.Contains(dialect.V100))

	assert.True(t, MaskV120Plus.Contains(dialect.V120))
	assert.False(t, MaskV120Plus.Contains(dialect.V110))

	for _, v := range dialect.Versions() {
		assert.True(t, MaskAll.Contains(v), v.String())
		assert.False(t, MaskNone.Contains(v), v.String())
	}
}

func Test_Mask_Contains_PanicsOnUnrecognizedVersion(t *testing.T) {
	// An unrecognized tier reaching the encoder is an upstream caller bug
	// and must fail hard rather than silently misclassify.
	assert.Panics(t, func() {
		MaskAll.Contains(dialect.Version(150))
	})
}

func Test_Mask_Versions(t *testing.T) {
	m := MaskV110 | MaskV300
	assert.Equal(t, []dialect.Version{dialect.V110, dialect.V300}, m.Versions())
	assert.Nil(t, MaskNone.Versions())
}

func Test_Mask_String(t *testing.T) {
	assert.Equal(t, "none", MaskNone.String())
	assert.Equal(t, "1.1|3.0", (MaskV110 | MaskV300).String())
	assert.Equal(t, "1.0|1.1|1.2|2.0|3.0", MaskAll.String())
}
