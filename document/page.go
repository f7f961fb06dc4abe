/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package document

import (
	"slices"
	"strings"
	"sync"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Page is an in-memory preview document.
type Page struct {
	mu        sync.RWMutex
	origin    string
	sheets    []*Sheet
	rootStyle []Declaration
	ready     bool
}

// Sheet is a stylesheet attached to a Page.
type Sheet struct {
	href        string
	rules       []Rule
	crossOrigin bool
}

// Href implements StyleSheet.
func (s *Sheet) Href() string {
	return s.href
}

// Rules implements StyleSheet.
func (s *Sheet) Rules() ([]Rule, error) {
	if s.crossOrigin {
		return nil, ErrCrossOrigin
	}
	return s.rules, nil
}

// CrossOrigin reports whether the sheet was loaded from another origin.
func (s *Sheet) CrossOrigin() bool {
	return s.crossOrigin
}

// NewPage creates an empty, ready page for the given origin.
func NewPage(origin string) *Page {
	return &Page{origin: origin, ready: true}
}

// Origin returns the page's origin, e.g. "http://localhost:6006".
func (p *Page) Origin() string {
	return p.origin
}

// SetReady marks the page as loaded or not.
func (p *Page) SetReady(ready bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ready = ready
}

// Ready implements Document.
func (p *Page) Ready() bool {
	if p == nil {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.ready
}

// AddStyleSheet parses css and appends it as a same-origin sheet.
func (p *Page) AddStyleSheet(href string, css []byte) error {
	rules, err := ParseCSS(css)
	p.append(&Sheet{href: href, rules: rules})
	return err
}

// AddCrossOriginStyleSheet appends a sheet whose rules take part in the
// cascade but cannot be enumerated. css may be nil when the content is unknown.
func (p *Page) AddCrossOriginStyleSheet(href string, css []byte) error {
	var (
		rules []Rule
		err   error
	)
	if css != nil {
		rules, err = ParseCSS(css)
	}
	p.append(&Sheet{href: href, rules: rules, crossOrigin: true})
	return err
}

// SetRootStyle sets the inline style attribute of the root element.
func (p *Page) SetRootStyle(style string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rootStyle = ParseInlineStyle(style)
}

func (p *Page) append(s *Sheet) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sheets = append(p.sheets, s)
}

// StyleSheets implements Document.
func (p *Page) StyleSheets() []StyleSheet {
	if p == nil {
		return nil
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]StyleSheet, len(p.sheets))
	for i, s := range p.sheets {
		out[i] = s
	}
	return out
}

// cascaded is the winning declaration for one property.
type cascaded struct {
	value       string
	important   bool
	inline      bool
	specificity int
}

func (c cascaded) beats(other cascaded) bool {
	if c.important != other.important {
		return c.important
	}
	if c.inline != other.inline {
		return c.inline
	}
	return c.specificity >= other.specificity
}

// rootDeclarations runs the cascade over every sheet, accessible or not,
// and the inline style, and returns the winning value per property.
func (p *Page) rootDeclarations() map[string]cascaded {
	p.mu.RLock()
	defer p.mu.RUnlock()

	winners := make(map[string]cascaded)
	apply := func(d Declaration, c cascaded) {
		if prev, ok := winners[d.Property]; ok && !c.beats(prev) {
			return
		}
		winners[d.Property] = c
	}

	for _, s := range p.sheets {
		for _, r := range s.rules {
			spec := rootSpecificity(r)
			if spec == 0 {
				continue
			}
			for _, d := range r.Declarations {
				apply(d, cascaded{value: d.Value, important: d.Important, specificity: spec})
			}
		}
	}
	for _, d := range p.rootStyle {
		apply(d, cascaded{value: d.Value, important: d.Important, inline: true})
	}
	return winners
}

// ComputedValue implements Document. Custom properties have their var()
// references substituted; a reference cycle makes the property invalid.
func (p *Page) ComputedValue(property string) (string, bool) {
	if p == nil {
		return "", false
	}
	winners := p.rootDeclarations()
	return computeValue(property, winners, map[string]bool{})
}

func computeValue(property string, winners map[string]cascaded, visiting map[string]bool) (string, bool) {
	c, ok := winners[property]
	if !ok {
		return "", false
	}
	if visiting[property] {
		return "", false
	}
	visiting[property] = true
	defer delete(visiting, property)

	value, ok := substituteVars(c.value, winners, visiting)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(value), true
}

// substituteVars replaces every var(--name[, fallback]) in value. A var()
// inside a string or a url() is left alone, and an unterminated one is
// kept as written.
func substituteVars(value string, winners map[string]cascaded, visiting map[string]bool) (string, bool) {
	return substituteTokens(lexValue(value), winners, visiting)
}

type valueToken struct {
	tt   css.TokenType
	text string
}

// lexValue splits a declaration value into css tokens whose texts
// concatenate back to value. Whatever follows a lexer error is kept as one
// raw token.
func lexValue(value string) []valueToken {
	l := css.NewLexer(parse.NewInputString(value))
	var toks []valueToken
	consumed := 0
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if consumed < len(value) {
				toks = append(toks, valueToken{css.ErrorToken, value[consumed:]})
			}
			return toks
		}
		consumed += len(data)
		toks = append(toks, valueToken{tt, string(data)})
	}
}

func substituteTokens(toks []valueToken, winners map[string]cascaded, visiting map[string]bool) (string, bool) {
	var sb strings.Builder
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		if t.tt != css.FunctionToken || !strings.EqualFold(t.text, "var(") {
			sb.WriteString(t.text)
			continue
		}
		end := closingParen(toks, i)
		if end < 0 {
			for _, rest := range toks[i:] {
				sb.WriteString(rest.text)
			}
			return sb.String(), true
		}
		resolved, ok := resolveVar(toks[i+1:end], winners, visiting)
		if !ok {
			return "", false
		}
		sb.WriteString(resolved)
		i = end
	}
	return sb.String(), true
}

// closingParen returns the index of the token closing the function or
// parenthesis opened at open, or -1.
func closingParen(toks []valueToken, open int) int {
	depth := 0
	for i := open; i < len(toks); i++ {
		switch toks[i].tt {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// resolveVar resolves the arguments of one var() call: the property name,
// then an optional fallback after the first comma.
func resolveVar(args []valueToken, winners map[string]cascaded, visiting map[string]bool) (string, bool) {
	nameToks, fallback := args, []valueToken(nil)
	comma := slices.IndexFunc(args, func(t valueToken) bool { return t.tt == css.CommaToken })
	if comma >= 0 {
		nameToks, fallback = args[:comma], args[comma+1:]
	}

	var name strings.Builder
	for _, t := range nameToks {
		if t.tt != css.WhitespaceToken && t.tt != css.CommentToken {
			name.WriteString(t.text)
		}
	}
	if resolved, ok := computeValue(name.String(), winners, visiting); ok {
		return resolved, true
	}
	if comma < 0 {
		return "", false
	}
	resolved, ok := substituteTokens(fallback, winners, visiting)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(resolved), true
}
