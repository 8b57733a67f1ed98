package translator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReassemble_JoinsWithSpaces(t *testing.T) {
	out := Reassemble([]string{"First part.", "Second part.", "Third part."}, "plain text, no paragraphs")

	assert.Equal(t, "First part. Second part. Third part.", out)
}

func TestReassemble_SingleChunk(t *testing.T) {
	assert.Equal(t, "Only chunk.", Reassemble([]string{"Only chunk."}, "anything"))
	assert.Equal(t, "", Reassemble(nil, "anything"))
}

func TestReassemble_RestoresParagraphBreaks(t *testing.T) {
	original := "Paragraph one here.\n\nParagraph two here.\n\nParagraph three here."
	translated := []string{"One translated. Two translated.", "Three translated. Four translated."}

	out := Reassemble(translated, original)

	// Three original paragraphs: the first two sentence gaps become breaks.
	assert.Equal(t, 2, strings.Count(out, "\n\n"))
	assert.Equal(t,
		strings.ReplaceAll(out, "\n\n", " "),
		"One translated. Two translated. Three translated. Four translated.",
		"restoring breaks must not change the text itself")
}

func TestReassemble_NoBreaksWithoutParagraphs(t *testing.T) {
	original := "Single paragraph with\na plain newline."
	out := Reassemble([]string{"First. Second.", "Third."}, original)

	assert.NotContains(t, out, "\n\n")
	assert.Equal(t, "First. Second. Third.", out)
}

func TestReassemble_FewerGapsThanParagraphs(t *testing.T) {
	// More paragraphs than sentence gaps in the output: Replace stops when
	// it runs out of matches.
	original := "A.\n\nB.\n\nC.\n\nD.\n\nE."
	out := Reassemble([]string{"Only one. Gap here"}, original)

	assert.Equal(t, "Only one.\n\nGap here", out)
}
