/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package tokens

import (
	"strings"

	"bennypowers.dev/wmtokens/catalog"
	"bennypowers.dev/wmtokens/cssvars"
)

var fallbacks = cssvars.ReferenceMap(catalog.Fallbacks())

// ResolveValue resolves the raw value of a token.
//
// An escaped string (~"…" or ~'…') is unwrapped first. References are then
// replaced from refs, and any reference still unresolved from the catalog
// fallbacks. References outside the catalog are kept verbatim.
func ResolveValue(raw string, refs cssvars.ReferenceMap) string {
	v := unescape(raw)
	if len(refs) > 0 {
		v = cssvars.ResolveReference(v, refs)
	}
	if strings.Contains(v, "{") {
		v = cssvars.ResolveReference(v, fallbacks)
	}
	return v
}

var quoteUnescaper = strings.NewReplacer(`\"`, `"`, `\'`, `'`)

// unescape unwraps ~"…" and ~'…' values. Escaped quotes of either kind are
// unescaped.
func unescape(raw string) string {
	if len(raw) < 2 || raw[0] != '~' || (raw[1] != '"' && raw[1] != '\'') {
		return raw
	}
	quote := raw[1:2]
	s := strings.TrimSuffix(raw[2:], quote)
	return quoteUnescaper.Replace(s)
}
