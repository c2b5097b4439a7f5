package design

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skyerrors "github.com/alexisbeaulieu97/skyui/pkg/errors"
)

func TestParseDirectivesPreservesOrder(t *testing.T) {
	t.Parallel()

	doc := `
- ma: 1
- mt: 2
- jcb: true
- font: mono
- pa: $space.s
  bp: gtPhone
- style:
    color: $color.text
    flex: 1
`
	directives, err := ParseDirectives("inline.yaml", []byte(doc))
	require.NoError(t, err)
	require.Len(t, directives, 6)
	assert.Equal(t, "gtPhone", directives[4].Breakpoint())

	narrow, err := Resolve(Light(), directives, 320)
	require.NoError(t, err)
	assert.Equal(t, Style{
		"marginTop":      2,
		"marginBottom":   1,
		"marginLeft":     1,
		"marginRight":    1,
		"justifyContent": "space-between",
		"fontFamily":     "monospace",
		"color":          "#000",
		"flex":           1,
	}, narrow)

	wide, err := Resolve(Dark(), directives, 640)
	require.NoError(t, err)
	assert.Equal(t, 10, wide["paddingLeft"])
	assert.Equal(t, "#fff", wide["color"])
}

func TestParseDirectivesAcceptsJSON(t *testing.T) {
	t.Parallel()

	directives, err := ParseDirectives("inline.json", []byte(`[{"pa": "$space.m"}]`))
	require.NoError(t, err)

	got, err := Resolve(Light(), directives, 0)
	require.NoError(t, err)
	assert.Equal(t, Style{"paddingTop": 16, "paddingBottom": 16, "paddingLeft": 16, "paddingRight": 16}, got)
}

func TestParseDirectivesErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		doc  string
		msg  string
	}{
		{name: "not a list", doc: "pa: 1\n", msg: "must be a list"},
		{name: "two entries", doc: "- pa: 1\n  mt: 2\n", msg: "more than one entry"},
		{name: "empty directive", doc: "- bp: gtPhone\n", msg: "directive is empty"},
		{name: "scalar item", doc: "- pa\n", msg: "must be a mapping"},
		{name: "malformed token", doc: "- pa: $space\n", msg: "malformed token reference"},
		{name: "nested alias value", doc: "- pa: [1, 2]\n", msg: "must be a scalar"},
		{name: "scalar style", doc: "- style: red\n", msg: "style must be a mapping"},
		{name: "invalid yaml", doc: "- pa: [1,\n", msg: ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseDirectives("bad.yaml", []byte(tc.doc))
			var parseErr *skyerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "bad.yaml", parseErr.Path)
			if tc.msg != "" {
				assert.Contains(t, parseErr.Message, tc.msg)
			}
		})
	}
}

func TestParseDirectivesReportsLine(t *testing.T) {
	t.Parallel()

	_, err := ParseDirectives("bad.yaml", []byte("- pa: 1\n- mt: 1\n  ml: 2\n"))
	var parseErr *skyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Line)
}

func TestParseDirectivesUnknownAliasFailsAtResolve(t *testing.T) {
	t.Parallel()

	directives, err := ParseDirectives("doc.yaml", []byte("- zz: 1\n"))
	require.NoError(t, err)

	_, err = Resolve(Light(), directives, 0)
	var aliasErr *UnknownAliasError
	require.ErrorAs(t, err, &aliasErr)
	assert.Equal(t, "zz", aliasErr.Alias)
	assert.True(t, aliasErr.OrMacro)
}

func TestParseDirectivesMisspelledMacro(t *testing.T) {
	t.Parallel()

	directives, err := ParseDirectives("doc.yaml", []byte("- jcx: true\n"))
	require.NoError(t, err)

	_, err = Resolve(Light(), directives, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown style alias or macro "jcx"`)

	_, err = Resolve(Light(), []Directive{Alias("jcx", true)}, 0)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "or macro")
}

func TestParseDirectivesEmptyDocument(t *testing.T) {
	t.Parallel()

	directives, err := ParseDirectives("empty.yaml", nil)
	require.NoError(t, err)
	assert.Empty(t, directives)
}

func TestLoadDirectives(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- jcb: true\n"), 0o644))

	directives, err := LoadDirectives(path)
	require.NoError(t, err)
	require.Len(t, directives, 1)

	_, err = LoadDirectives(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *skyerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}
