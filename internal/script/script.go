// Package script describes how chunking behaves for a given writing system.
// All script-dependent decisions (word spacing, sentence punctuation, token
// density fallback) live in one Profile lookup so the chunker and the token
// oracle never branch on language codes directly.
package script

import "strings"

// Default chars-per-token ratios used when the tokenizer is unavailable.
// Dense scripts such as Khmer or Han pack more tokens per character.
const (
	DefaultCharsPerToken = 4.0
	DenseCharsPerToken   = 2.5
)

// Sentence-ending runes shared by most languages, including the Khmer khan
// (U+17D4) and CJK full-width punctuation.
const commonEnders = ".!?\n។。！？"

// Profile captures the chunking-relevant traits of a writing system.
type Profile struct {
	// HasWordSpaces reports whether the script separates words with
	// whitespace. Scripts without it (Khmer, Han, Kana) get no
	// word-boundary fallback when splitting.
	HasWordSpaces bool

	// CharsPerToken is the estimated character count per model token,
	// used only when the tokenizer collaborator fails.
	CharsPerToken float64

	// SentenceEnders is the set of runes that may terminate a sentence.
	SentenceEnders string
}

// IsSentenceEnder reports whether r can terminate a sentence in this script.
func (p Profile) IsSentenceEnder(r rune) bool {
	return strings.ContainsRune(p.SentenceEnders, r)
}

// profiles is keyed by the ISO 639-3 prefix of an NLLB language tag
// (e.g. "khm" from "khm_Khmr"). Tags not listed use the default profile.
var profiles = map[string]Profile{
	"khm": {HasWordSpaces: false, CharsPerToken: DenseCharsPerToken, SentenceEnders: commonEnders},
	"zho": {HasWordSpaces: false, CharsPerToken: DenseCharsPerToken, SentenceEnders: commonEnders},
	"jpn": {HasWordSpaces: false, CharsPerToken: DenseCharsPerToken, SentenceEnders: commonEnders},
	"tha": {HasWordSpaces: false, CharsPerToken: DenseCharsPerToken, SentenceEnders: commonEnders},
}

// defaultProfile covers spaced scripts (Latin, Cyrillic, Arabic, ...).
var defaultProfile = Profile{
	HasWordSpaces:  true,
	CharsPerToken:  DefaultCharsPerToken,
	SentenceEnders: commonEnders,
}

// ProfileFor returns the profile for an NLLB-style language tag such as
// "khm_Khmr" or "eng_Latn". Unknown and malformed tags fall back to the
// spaced-script default, which is the safe direction for splitting.
func ProfileFor(langTag string) Profile {
	prefix := langTag
	if i := strings.IndexByte(langTag, '_'); i > 0 {
		prefix = langTag[:i]
	}
	if p, ok := profiles[strings.ToLower(prefix)]; ok {
		return p
	}
	return defaultProfile
}
