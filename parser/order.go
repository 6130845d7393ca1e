/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"cmp"
	"math"
	"slices"
	"strconv"

	"bennypowers.dev/tokenbuild/token"
)

// orderNodes sorts sibling nodes the way JavaScript enumerates object
// properties: array-index keys first in ascending numeric order, then every
// other key in document order.
func orderNodes(nodes []*token.Node) {
	slices.SortStableFunc(nodes, func(a, b *token.Node) int {
		ai, aok := indexKey(a.Key)
		bi, bok := indexKey(b.Key)
		switch {
		case aok && bok:
			return cmp.Compare(ai, bi)
		case aok:
			return -1
		case bok:
			return 1
		default:
			return 0
		}
	})
}

// indexKey reports whether key is a canonical array index ("0", "12", but
// not "012", "1.5" or "-1").
func indexKey(key string) (uint64, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	return n, true
}
