/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "slices"

// Merge deep-merges src into dst. Where both sides hold a mapping the merge
// recurses; otherwise the value from src replaces the one in dst.
// It returns the dot paths of values that were replaced.
func Merge(dst, src *Mapping) []string {
	var overwritten []string
	merge(dst, src, nil, &overwritten)
	return overwritten
}

func merge(dst, src *Mapping, path []string, overwritten *[]string) {
	for k, sv := range src.All() {
		keyPath := slices.Concat(path, []string{k})
		dv, exists := dst.Get(k)
		if !exists {
			dst.Set(k, Clone(sv))
			continue
		}
		dm, dIsMap := dv.(*Mapping)
		sm, sIsMap := sv.(*Mapping)
		if dIsMap && sIsMap {
			merge(dm, sm, keyPath, overwritten)
			continue
		}
		*overwritten = append(*overwritten, joinPath(keyPath))
		dst.Set(k, Clone(sv))
	}
}
