package langs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	supported := Supported()

	require.Len(t, supported, 20)
	assert.Equal(t, Language{Code: "eng_Latn", Name: "English"}, supported[0])
	assert.Equal(t, Language{Code: "khm_Khmr", Name: "Khmer"}, supported[1])

	// Mutating the returned slice must not touch the catalog.
	supported[0].Name = "mutated"
	assert.Equal(t, "English", Supported()[0].Name)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Khmer", DisplayName("khm_Khmr"))
	assert.Equal(t, "Chinese (Simplified)", DisplayName("zho_Hans"))
	assert.Equal(t, "xxx_Test", DisplayName("xxx_Test"), "unknown tags come back verbatim")
}
