package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileFor_DenseScripts(t *testing.T) {
	for _, tag := range []string{"khm_Khmr", "zho_Hans", "zho_Hant", "jpn_Jpan", "tha_Thai"} {
		p := ProfileFor(tag)
		assert.False(t, p.HasWordSpaces, "%s should not rely on word spaces", tag)
		assert.InDelta(t, DenseCharsPerToken, p.CharsPerToken, 1e-9, tag)
	}
}

func TestProfileFor_SpacedScripts(t *testing.T) {
	for _, tag := range []string{"eng_Latn", "rus_Cyrl", "ara_Arab", "vie_Latn"} {
		p := ProfileFor(tag)
		assert.True(t, p.HasWordSpaces, tag)
		assert.InDelta(t, DefaultCharsPerToken, p.CharsPerToken, 1e-9, tag)
	}
}

func TestProfileFor_UnknownAndMalformedTags(t *testing.T) {
	assert.Equal(t, defaultProfile, ProfileFor("xxx_Test"))
	assert.Equal(t, defaultProfile, ProfileFor(""))
	assert.Equal(t, defaultProfile, ProfileFor("_Latn"))
	// Bare prefix without a script suffix still resolves.
	assert.False(t, ProfileFor("khm").HasWordSpaces)
	assert.False(t, ProfileFor("KHM_Khmr").HasWordSpaces)
}

func TestIsSentenceEnder(t *testing.T) {
	p := ProfileFor("khm_Khmr")

	for _, r := range []rune{'.', '!', '?', '\n', '។', '。', '！', '？'} {
		assert.True(t, p.IsSentenceEnder(r), "%q", r)
	}
	for _, r := range []rune{',', ' ', 'a', 'ក'} {
		assert.False(t, p.IsSentenceEnder(r), "%q", r)
	}
}
