/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Command wm-tokens inspects component design tokens and edits them as CSS
// overrides against a preview document.
package main

import (
	"os"

	"bennypowers.dev/wmtokens/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
