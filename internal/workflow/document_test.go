package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, content string) *Document {
	t.Helper()
	status, _, doc, err := Parse([]byte(content))
	require.NoError(t, err)
	require.Equal(t, StatusOK, status)
	return doc
}

func TestDocument_KeyStyles(t *testing.T) {
	doc := mustParse(t, `plain: 1
'single': 2
"double": 3
!!str tagged: 4
`)
	entries := doc.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, KeyPlain, entries[0].Style)
	assert.Equal(t, KeySingleQuoted, entries[1].Style)
	assert.Equal(t, KeyDoubleQuoted, entries[2].Style)
	assert.Equal(t, KeyTagged, entries[3].Style)
	assert.False(t, entries[0].Style.Quoted())
	assert.True(t, entries[1].Style.Quoted())
}

func TestDocument_LookupIgnoresBoolKeys(t *testing.T) {
	doc := mustParse(t, "true:\n  push:\n")

	_, ok := doc.Lookup("on")
	assert.False(t, ok)
	_, ok = doc.Lookup("true")
	assert.False(t, ok, "boolean key must not match a string lookup")

	bools := doc.BoolKeys()
	require.Len(t, bools, 1)
	assert.Equal(t, "true", bools[0].Key)
}

func TestDocument_PlainOnIsString(t *testing.T) {
	doc := mustParse(t, "on:\n  push:\n")
	e, ok := doc.Lookup("on")
	require.True(t, ok)
	assert.Equal(t, KeyPlain, e.Style)
	assert.Equal(t, KindMapping, KindName(e.Value))
}

func TestDocument_LookupLastDuplicateWins(t *testing.T) {
	doc := mustParse(t, "'on': push\n'on':\n  pull_request:\n")
	e, ok := doc.Lookup("on")
	require.True(t, ok)
	assert.Equal(t, KindMapping, KindName(e.Value))
}

func TestDocument_AliasValue(t *testing.T) {
	doc := mustParse(t, "base: &triggers\n  push:\n'on': *triggers\n")
	e, ok := doc.Lookup("on")
	require.True(t, ok)
	assert.Equal(t, KindMapping, KindName(e.Value))
}

func TestKindName(t *testing.T) {
	doc := mustParse(t, `m: {}
s: []
n: null
b: true
i: 3
f: 1.5
str: hello
ts: 2024-01-02
`)
	want := map[string]string{
		"m":   KindMapping,
		"s":   KindSequence,
		"n":   KindNull,
		"b":   KindBool,
		"i":   KindInt,
		"f":   KindFloat,
		"str": KindString,
		"ts":  KindTimestamp,
	}
	for _, e := range doc.Entries() {
		assert.Equal(t, want[e.Key], KindName(e.Value), e.Key)
	}
	assert.Equal(t, KindNull, KindName(nil))
}
