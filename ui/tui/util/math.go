// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import "cmp"

// Clamp bounds wanted to [lo, hi]; hi wins when the range is empty.
func Clamp[T cmp.Ordered](lo, wanted, hi T) T {
	return min(max(lo, wanted), hi)
}
