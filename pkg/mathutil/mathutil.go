// Copyright (c) 2025 Old Aged Footballers. All Rights Reserved.
// This is licensed software from Old Aged Footballers, for limitations
// and restrictions contact your company contract manager.

package mathutil

import "cmp"

// Max returns the larger of x and y.
func Max[T cmp.Ordered](x T, y T) T {
	return max(x, y)
}

// Min returns the smaller of x and y.
func Min[T cmp.Ordered](x T, y T) T {
	return min(x, y)
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](v T, lo T, hi T) T {
	return max(lo, min(hi, v))
}
