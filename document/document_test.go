/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package document_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/wmtokens/document"
	"bennypowers.dev/wmtokens/testutil"
)

func TestParseCSS(t *testing.T) {
	css := `
/* comment */
:root, .theme-dark {
  --wm-color-primary: #FF7250;
  --wm-border: 1px solid var(--wm-color-primary);
  color: RED !important;
}
@media (min-width: 600px) {
  :root { --wm-space-6: 32px; }
}
.btn { --wm-btn-background: blue; }
`
	rules, err := document.ParseCSS([]byte(css))
	require.NoError(t, err)
	require.Len(t, rules, 2)

	root := rules[0]
	assert.Equal(t, []string{":root", ".theme-dark"}, root.Selectors())
	assert.True(t, root.TargetsRoot())
	require.Len(t, root.Declarations, 3)
	assert.Equal(t, "--wm-color-primary", root.Declarations[0].Property)
	assert.Equal(t, "#FF7250", root.Declarations[0].Value)
	assert.Equal(t, "1px solid var(--wm-color-primary)", root.Declarations[1].Value)
	assert.Equal(t, "color", root.Declarations[2].Property)
	assert.True(t, root.Declarations[2].Important)

	assert.False(t, rules[1].TargetsRoot())
}

func TestRuleTargetsRoot(t *testing.T) {
	tests := []struct {
		selector string
		expected bool
	}{
		{":root", true},
		{"html", true},
		{"HTML", true},
		{".a, :root", true},
		{":root .btn", false},
		{"html body", false},
		{".app-button", false},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			r := document.Rule{Selector: tt.selector}
			if got := r.TargetsRoot(); got != tt.expected {
				t.Errorf("TargetsRoot(%q) = %v, want %v", tt.selector, got, tt.expected)
			}
		})
	}
}

func TestPageComputedValue(t *testing.T) {
	page := document.NewPage("http://localhost:6006")
	require.NoError(t, page.AddStyleSheet("a.css", []byte(`
html { --wm-space-1: 1px; }
:root {
  --wm-space-1: 2px;
  --wm-space-6: 24px;
  --wm-gap: var(--wm-space-6);
  --wm-inset: var(--wm-missing, var(--wm-space-1));
  --wm-loop-a: var(--wm-loop-b);
  --wm-loop-b: var(--wm-loop-a);
  --wm-locked: 1px !important;
  --wm-shadow: 0 0 var(--wm-missing, rgba(0, 0, 0, .5));
  --wm-upper: VAR( --wm-space-6 );
  --wm-quoted: "var(--wm-space-6)";
  --wm-calc: calc(var(--wm-space-1) + 1px);
}`)))
	require.NoError(t, page.AddStyleSheet("b.css", []byte(`
html { --wm-space-6: 30px; }
:root { --wm-locked: 9px; }`)))
	page.SetRootStyle("--wm-gap: 8px")

	tests := []struct {
		property string
		expected string
		ok       bool
	}{
		{"--wm-space-1", "2px", true},   // :root outranks html
		{"--wm-space-6", "24px", true},  // html in a later sheet still loses
		{"--wm-gap", "8px", true},       // inline style wins
		{"--wm-inset", "2px", true},     // fallback branch of var()
		{"--wm-locked", "1px", true},    // !important beats later normal
		{"--wm-loop-a", "", false},      // cycle
		{"--wm-shadow", "0 0 rgba(0, 0, 0, .5)", true},
		{"--wm-upper", "24px", true},
		{"--wm-quoted", `"var(--wm-space-6)"`, true},
		{"--wm-calc", "calc(2px + 1px)", true},
		{"--wm-not-declared", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			got, ok := page.ComputedValue(tt.property)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCrossOriginSheet(t *testing.T) {
	page := document.NewPage("http://localhost:6006")
	require.NoError(t, page.AddCrossOriginStyleSheet("https://cdn.example.com/theme.css",
		[]byte(`:root { --wm-radius-sm: 6px; }`)))

	sheets := page.StyleSheets()
	require.Len(t, sheets, 1)
	_, err := sheets[0].Rules()
	assert.True(t, errors.Is(err, document.ErrCrossOrigin))

	// Inaccessible rules still take part in the cascade.
	v, ok := page.ComputedValue("--wm-radius-sm")
	assert.True(t, ok)
	assert.Equal(t, "6px", v)
}

func TestNilPage(t *testing.T) {
	var page *document.Page
	assert.False(t, page.Ready())
	assert.Nil(t, page.StyleSheets())
	_, ok := page.ComputedValue("--wm-space-0")
	assert.False(t, ok)
}

func TestLoadHTML(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/preview", "/site")
	loader := document.NewLoader(mfs, nil)

	page, err := loader.LoadHTML("/site/index.html", "http://localhost:6006")
	require.NoError(t, err)
	require.True(t, page.Ready())

	sheets := page.StyleSheets()
	require.Len(t, sheets, 3)
	assert.Equal(t, "theme.css", sheets[0].Href())
	assert.Equal(t, "https://fonts.example.com/roboto.css", sheets[1].Href())
	assert.Equal(t, "", sheets[2].Href())

	_, err = sheets[1].Rules()
	assert.ErrorIs(t, err, document.ErrCrossOrigin)

	tests := map[string]string{
		"--wm-color-primary": "#112233", // <html style>
		"--wm-space-6":       "24px",    // later <style> block
		"--wm-btn-gap":       "24px",
		"--wm-radius-sm":     "4px",
	}
	for prop, want := range tests {
		got, ok := page.ComputedValue(prop)
		assert.True(t, ok, prop)
		assert.Equal(t, want, got, prop)
	}
}

func TestLoadCSS(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/preview", "/site")
	loader := document.NewLoader(mfs, nil)

	page, err := loader.LoadCSS("http://localhost:6006", "/site/theme.css")
	require.NoError(t, err)
	require.Len(t, page.StyleSheets(), 1)

	rules, err := page.StyleSheets()[0].Rules()
	require.NoError(t, err)
	assert.Len(t, rules, 2)

	_, err = loader.LoadCSS("http://localhost:6006", "/site/missing.css")
	assert.Error(t, err)
}
