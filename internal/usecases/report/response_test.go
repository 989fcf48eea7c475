package report

import (
	"strings"
	"testing"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validReply = `{"sun_sign": "Leo", "moon_sign": "Cancer", "ascendant": "Virgo", "life_path": 7, "soul_urge": 2, "expression": 5, "texto": "## Who You Are\nA report."}`

func requireStructured(t *testing.T, result domain.ReportResult) *domain.StructuredReport {
	t.Helper()
	rep, ok := result.(*domain.StructuredReport)
	require.True(t, ok, "expected structured report, got %T", result)
	return rep
}

func TestInterpretReplyPlainJSON(t *testing.T) {
	rep := requireStructured(t, InterpretReply(validReply))
	assert.Equal(t, "Leo", rep.SunSign)
	assert.Equal(t, 7, rep.LifePath)
	assert.Contains(t, rep.Texto, "## Who You Are")
}

func TestInterpretReplyStripsFences(t *testing.T) {
	fenced := "```json\n" + validReply + "\n```"
	rep := requireStructured(t, InterpretReply(fenced))
	assert.Equal(t, "Leo", rep.SunSign)
}

func TestInterpretReplyStripsFenceWithoutTag(t *testing.T) {
	fenced := "```\n" + validReply + "\n```"
	rep := requireStructured(t, InterpretReply(fenced))
	assert.Equal(t, "Cancer", rep.MoonSign)
}

func TestInterpretReplySlicesSurroundingProse(t *testing.T) {
	wrapped := "Here is your report:\n" + validReply + "\nHope you like it!"
	rep := requireStructured(t, InterpretReply(wrapped))
	assert.Equal(t, "Virgo", rep.Ascendant)
}

func TestInterpretReplyEscapesNewlinesInTexto(t *testing.T) {
	// literal line breaks inside the texto value break plain JSON parsing
	broken := `{"sun_sign": "Leo", "moon_sign": "Cancer", "ascendant": "Virgo", "life_path": 7, "soul_urge": 2, "expression": 5, "texto": "## Who You Are
line two	tabbed"}`

	rep := requireStructured(t, InterpretReply(broken))
	assert.Equal(t, "## Who You Are\nline two\ttabbed", rep.Texto)
}

func TestInterpretReplyEscapesQuotesInTexto(t *testing.T) {
	// unescaped quotes inside the texto value must repair, not degrade to raw
	broken := `{"sun_sign": "Leo", "moon_sign": "Cancer", "ascendant": "Virgo", "life_path": 7, "soul_urge": 2, "expression": 5, "texto": "She said "hello" today"}`

	rep := requireStructured(t, InterpretReply(broken))
	assert.Equal(t, `She said "hello" today`, rep.Texto)
}

func TestInterpretReplyEscapesBackslashesInTexto(t *testing.T) {
	// \U is not a JSON escape, so the plain parse fails first
	broken := `{"sun_sign": "Leo", "moon_sign": "Cancer", "ascendant": "Virgo", "life_path": 7, "soul_urge": 2, "expression": 5, "texto": "a path C:\Users ends here"}`

	rep := requireStructured(t, InterpretReply(broken))
	assert.Equal(t, `a path C:\Users ends here`, rep.Texto)
}

func TestInterpretReplyFallsBackToRawText(t *testing.T) {
	raw := "The stars were not aligned for JSON today."
	result := InterpretReply(raw)

	rep, ok := result.(*domain.RawTextReport)
	require.True(t, ok, "expected raw text report, got %T", result)
	assert.Equal(t, raw, rep.Text)
	assert.Equal(t, raw, result.Narrative())
}

func TestInterpretReplyRejectsEmptyTexto(t *testing.T) {
	noTexto := `{"sun_sign": "Leo", "moon_sign": "Cancer", "ascendant": "Virgo", "life_path": 7, "soul_urge": 2, "expression": 5, "texto": ""}`
	result := InterpretReply(noTexto)

	_, ok := result.(*domain.RawTextReport)
	assert.True(t, ok, "a reply without texto is kept as raw text")
}

func TestDedupeSections(t *testing.T) {
	text := "intro\n" +
		"## Who You Are\nfirst body\n" +
		"## Your 30-Day Plan\nplan body\n" +
		"## Your 30-Day Plan\nrepeated plan\n" +
		"## Career and Purpose\ncareer body"

	deduped := DedupeSections(text)

	assert.Contains(t, deduped, "plan body")
	assert.NotContains(t, deduped, "repeated plan")
	assert.Contains(t, deduped, "career body")
	assert.Equal(t, 1, strings.Count(deduped, "## Your 30-Day Plan"))
}

func TestDedupeSectionsCaseInsensitiveHeadings(t *testing.T) {
	text := "## Your 30-Day Plan\nfirst\n## YOUR 30-DAY PLAN\nsecond"
	deduped := DedupeSections(text)

	assert.Contains(t, deduped, "first")
	assert.NotContains(t, deduped, "second")
}

func TestDedupeSectionsLeavesCleanTextAlone(t *testing.T) {
	text := "## A\none\n## B\ntwo"
	assert.Equal(t, text, DedupeSections(text))
}
