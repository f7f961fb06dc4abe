/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package matcher

import (
	"slices"
	"strings"
)

// matchExact matches the whole class string against a variant key.
func matchExact(in *Input) (string, bool) {
	return in.ClassName, in.HasKey(in.ClassName)
}

// matchSelector matches variant selectors declared under meta.appearances,
// either against the whole class string or against one class.
func matchSelector(in *Input) (string, bool) {
	for _, vs := range in.Selectors {
		if vs.Selector != in.ClassName && !slices.Contains(in.Classes, vs.Selector) {
			continue
		}
		if in.HasKey(vs.Key) {
			return vs.Key, true
		}
	}
	return "", false
}

// matchSingleClass matches any one class against a variant key.
func matchSingleClass(in *Input) (string, bool) {
	for _, c := range in.Classes {
		if in.HasKey(c) {
			return c, true
		}
	}
	return "", false
}

// matchHyphenJoin joins two or more base names, all of them first, then the
// first and the last.
func matchHyphenJoin(in *Input) (string, bool) {
	if len(in.BaseNames) < 2 {
		return "", false
	}
	if key := strings.Join(in.BaseNames, "-"); in.HasKey(key) {
		return key, true
	}
	key := in.BaseNames[0] + "-" + in.BaseNames[len(in.BaseNames)-1]
	return key, in.HasKey(key)
}

// matchDefaultPrefixed matches bare size or tag classes such as "h1" to
// "default-h1".
func matchDefaultPrefixed(in *Input) (string, bool) {
	for _, c := range in.Classes {
		if key := "default-" + c; in.HasKey(key) {
			return key, true
		}
	}
	return "", false
}

// matchPartial matches a key when each of its parts occurs in some class.
func matchPartial(in *Input) (string, bool) {
	for _, key := range in.Keys {
		if key == "" {
			continue
		}
		matched := true
		for part := range strings.SplitSeq(key, "-") {
			if !slices.ContainsFunc(in.Classes, func(c string) bool { return strings.Contains(c, part) }) {
				matched = false
				break
			}
		}
		if matched {
			return key, true
		}
	}
	return "", false
}

// matchPositional matches a key whose parts equal the base names in order.
func matchPositional(in *Input) (string, bool) {
	for _, key := range in.Keys {
		if slices.Equal(strings.Split(key, "-"), in.BaseNames) {
			return key, true
		}
	}
	return "", false
}
