/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package document

import (
	"errors"
	"io"
	"regexp"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var importantPattern = regexp.MustCompile(`(?i)\s*!\s*important\s*$`)

// ParseCSS parses stylesheet text into its top-level style rules.
// At-rule blocks (@media, @supports, @font-face, ...) are skipped; custom
// property values are kept verbatim. Syntax errors end parsing and return
// the rules read so far together with the error.
func ParseCSS(data []byte) ([]Rule, error) {
	p := css.NewParser(parse.NewInputBytes(data), false)

	var rules []Rule
	for {
		gt, _, tokData := p.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return rules, err
			}
			return rules, nil

		case css.BeginAtRuleGrammar:
			skipAtRuleBlock(p)

		case css.BeginRulesetGrammar:
			rule := Rule{Selector: selectorText(tokData, p.Values())}
			rule.Declarations = parseDeclarations(p)
			rules = append(rules, rule)
		}
	}
}

// selectorText joins the selector tokens of a ruleset.
func selectorText(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}

// parseDeclarations reads declarations up to the end of the current ruleset.
func parseDeclarations(p *css.Parser) []Declaration {
	var decls []Declaration
	for {
		gt, _, data := p.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return decls

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			decls = append(decls, newDeclaration(string(data), p.Values()))

		case css.BeginRulesetGrammar:
			// Nested rules are not part of the root scope.
			skipRuleset(p)

		case css.BeginAtRuleGrammar:
			skipAtRuleBlock(p)
		}
	}
}

func newDeclaration(property string, values []css.Token) Declaration {
	var sb strings.Builder
	for _, v := range values {
		sb.Write(v.Data)
	}
	value := strings.TrimSpace(sb.String())

	d := Declaration{Property: strings.TrimSpace(property)}
	if !IsCustomProperty(d.Property) {
		d.Property = strings.ToLower(d.Property)
	}
	if loc := importantPattern.FindStringIndex(value); loc != nil {
		d.Important = true
		value = strings.TrimSpace(value[:loc[0]])
	}
	d.Value = value
	return d
}

func skipRuleset(p *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginRulesetGrammar:
			depth++
		case css.EndRulesetGrammar:
			depth--
		}
	}
}

func skipAtRuleBlock(p *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar:
			depth++
		case css.EndAtRuleGrammar:
			depth--
		}
	}
}

// ParseInlineStyle parses the body of a style attribute.
func ParseInlineStyle(style string) []Declaration {
	rules, _ := ParseCSS([]byte(":root{" + style + "}"))
	if len(rules) == 0 {
		return nil
	}
	return rules[0].Declarations
}
