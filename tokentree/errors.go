/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokentree

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrConfiguration indicates token-definition data the pipeline cannot use:
// malformed files, misplaced structure, or a component that does not exist.
var ErrConfiguration = errors.New("token configuration error")

func structureError(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrConfiguration, n.Line, fmt.Sprintf(format, args...))
}
