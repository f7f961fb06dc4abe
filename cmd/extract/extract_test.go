/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract

import (
	"bytes"
	"testing"
)

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := writeText(&buf, map[string]string{
		"--wm-space-6":       "24px",
		"--wm-color-primary": "#112233",
	})
	if err != nil {
		t.Fatal(err)
	}

	want := "--wm-color-primary:  #112233\n" +
		"--wm-space-6:        24px\n"
	if buf.String() != want {
		t.Errorf("writeText() =\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWriteText_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := writeText(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
