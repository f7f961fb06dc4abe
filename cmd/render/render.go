/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/wmtokens/tokens"
)

// Formats lists the output formats Rows can be written in.
var Formats = []string{"table", "markdown", "json", "css", "names", "snippets"}

// Row holds computed display values for a single token.
type Row struct {
	Name        string // CSS custom property
	Label       string
	Type        string // Token type or "-"
	Control     string
	Value       string
	Description string
	Category    string
	IsColor     bool // Whether the value parses as a color
}

// ComputeRows transforms definitions into display rows.
func ComputeRows(defs []tokens.Definition) []Row {
	rows := make([]Row, 0, len(defs))
	for _, d := range defs {
		row := Row{
			Name:        d.Name,
			Label:       d.Label,
			Type:        string(d.Type),
			Control:     string(d.ControlType),
			Value:       d.Value,
			Description: d.Description,
			Category:    d.Category,
		}
		if row.Type == "" {
			row.Type = "-"
		}
		if d.ControlType == tokens.ControlColor && !strings.HasPrefix(row.Value, "{") {
			if _, err := csscolorparser.Parse(row.Value); err == nil {
				row.IsColor = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Write renders rows in format. selector is used by the css format.
func Write(w io.Writer, format, selector string, rows []Row) error {
	switch format {
	case "", "table":
		return Table(w, rows)
	case "markdown", "md":
		return Markdown(w, rows)
	case "json":
		return JSON(w, rows)
	case "css":
		return CSS(w, selector, rows)
	case "snippets":
		return Snippets(w, rows)
	case "names":
		return Names(w, rows)
	default:
		return fmt.Errorf("unknown format %q, want one of %s", format, strings.Join(Formats, ", "))
	}
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, typ, val int) {
	name, typ, val = 4, 4, 5 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		typ = max(typ, len(r.Type))
		val = max(val, len(r.Value))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as an aligned table.
func Table(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, typeW, _ := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if r.IsColor {
			swatch = ColorSwatch(r.Value)
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s%s\n", nameW, r.Name, typeW, r.Type, swatch, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by category, in order of
// first appearance.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	var order []string
	byCategory := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byCategory[r.Category]; !exists {
			order = append(order, r.Category)
		}
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	var sb strings.Builder
	for i, category := range order {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s\n\n", Heading(category))
		renderTable(&sb, byCategory[category])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func renderTable(sb *strings.Builder, rows []Row) {
	nameW, valW, descW := 4, 5, 0
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		valW = max(valW, len(r.Value))
		descW = max(descW, len(r.Description))
	}

	if descW == 0 {
		fmt.Fprintf(sb, "| %-*s | %-*s |\n", nameW, "Name", valW, "Value")
		fmt.Fprintf(sb, "|-%s-|-%s-|\n", strings.Repeat("-", nameW), strings.Repeat("-", valW))
		for _, r := range rows {
			fmt.Fprintf(sb, "| %-*s | %-*s |\n", nameW, r.Name, valW, r.Value)
		}
		return
	}

	descW = max(descW, 11) // "Description"
	fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, "Name", valW, "Value", descW, "Description")
	fmt.Fprintf(sb, "|-%s-|-%s-|-%s-|\n",
		strings.Repeat("-", nameW), strings.Repeat("-", valW), strings.Repeat("-", descW))
	for _, r := range rows {
		fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, r.Name, valW, r.Value, descW, r.Description)
	}
}

// Heading turns a category such as "text-transform" into "Text Transform".
func Heading(category string) string {
	if category == "" {
		return "Other"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(category, "-", " "))
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	type rowOutput struct {
		Name        string `json:"name"`
		Label       string `json:"label"`
		Value       string `json:"value"`
		Type        string `json:"type"`
		Control     string `json:"control"`
		Category    string `json:"category,omitempty"`
		Description string `json:"description,omitempty"`
	}

	output := make([]rowOutput, 0, len(rows))
	for _, r := range rows {
		output = append(output, rowOutput{
			Name:        r.Name,
			Label:       r.Label,
			Value:       r.Value,
			Type:        r.Type,
			Control:     r.Control,
			Category:    r.Category,
			Description: r.Description,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// CSS renders rows as custom properties on selector. Values with an
// unresolved reference are skipped.
func CSS(w io.Writer, selector string, rows []Row) error {
	if selector == "" {
		selector = ":root"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s {\n", selector)
	for _, r := range rows {
		if strings.Contains(r.Value, "{") {
			continue
		}
		fmt.Fprintf(&sb, "  %s: %s;\n", r.Name, r.Value)
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// Names renders just the token names, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// Snippet is a VS Code snippet entry.
type Snippet struct {
	Scope       string   `json:"scope"`
	Prefix      []string `json:"prefix"`
	Body        []string `json:"body"`
	Description string   `json:"description,omitempty"`
}

// Snippets renders rows as a VS Code snippets file. Each body expands to
// var() with the token's current value as the fallback placeholder.
func Snippets(w io.Writer, rows []Row) error {
	out := make(map[string]Snippet, len(rows))
	for _, r := range rows {
		name := strings.TrimPrefix(r.Name, "--")
		body := "var(" + r.Name + ")"
		if r.Value != "" && !strings.Contains(r.Value, "{") {
			body = fmt.Sprintf("var(%s, ${1:%s})", r.Name, escapeSnippet(r.Value))
		}
		desc := r.Description
		if desc == "" {
			desc = r.Value
		}
		out[name] = Snippet{
			Scope:       "css,scss,less",
			Prefix:      []string{name, r.Name},
			Body:        []string{body},
			Description: desc,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

var snippetEscaper = strings.NewReplacer(`\`, `\\`, "$", `\$`, "}", `\}`)

func escapeSnippet(s string) string {
	return snippetEscaper.Replace(s)
}
