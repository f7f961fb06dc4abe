/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package css

import (
	"bytes"
	"errors"
	"testing"

	"go.uber.org/multierr"

	"bennypowers.dev/wmtokens/panel"
	"bennypowers.dev/wmtokens/tokens"
	"bennypowers.dev/wmtokens/tokentree"
)

func TestParseEdits(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []Edit
		wantErr bool
	}{
		{"single", []string{"--wm-chip-radius=4px"}, []Edit{{"--wm-chip-radius", "4px"}}, false},
		{"value with equals", []string{"--wm-x=a=b"}, []Edit{{"--wm-x", "a=b"}}, false},
		{"trims", []string{" --wm-x = 1px "}, []Edit{{"--wm-x", "1px"}}, false},
		{"empty value", []string{"--wm-x="}, []Edit{{"--wm-x", ""}}, false},
		{"missing equals", []string{"--wm-x"}, nil, true},
		{"missing name", []string{"=1px"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEdits(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEdits() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d edits, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("edit %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

const chipYAML = `
chip:
  mapping:
    background:
      value: "{color.surface-container.@.value}"
      type: color
      attributes:
        subtype: color
    radius:
      value: "{radius.pill.value}"
      type: border-radius
      attributes:
        subtype: radius
`

func TestApply(t *testing.T) {
	tree, err := tokentree.Parse([]byte(chipYAML))
	if err != nil {
		t.Fatal(err)
	}
	pn := panel.New(tree, "chip")
	if err := pn.Load(nil); err != nil {
		t.Fatal(err)
	}

	err = Apply(pn, []Edit{
		{"--wm-chip-radius", "4px"},
		{"--wm-chip-background", "nope"},
		{"--wm-chip-missing", "1px"},
	})
	if n := len(multierr.Errors(err)); n != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", n, err)
	}
	if !errors.Is(err, panel.ErrInvalidValue) || !errors.Is(err, panel.ErrUnknownToken) {
		t.Errorf("expected both invalid value and unknown token, got %v", err)
	}

	want := ".app-chip {\n  --wm-chip-radius: 4px !important;\n}\n"
	if got := pn.CSS(); got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func TestWriteGroups(t *testing.T) {
	groups := []panel.Group{
		{Heading: "Radius", Controls: []panel.Control{
			{Definition: tokens.Definition{Label: "radius", ControlType: tokens.ControlText}, Current: "4px", Edited: true},
		}},
		{Heading: "Text Transform", Controls: []panel.Control{
			{Definition: tokens.Definition{Label: "text.transform", ControlType: tokens.ControlSelect}, Current: "none"},
		}},
	}

	var buf bytes.Buffer
	writeGroups(&buf, groups)

	want := "Radius\n" +
		" * radius                   text    4px\n" +
		"\n" +
		"Text Transform\n" +
		"   text.transform           select  none\n"
	if buf.String() != want {
		t.Errorf("writeGroups() =\n%q\nwant\n%q", buf.String(), want)
	}
}
