// SPDX-License-Identifier: MIT
// Package: tierplan/dfs
//
// utils.go - small slice helpers shared by the traversals and their callers.

package dfs

// IndexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n).
func IndexOf(s []int, val int) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// Reverse reverses s in place.
// Time Complexity: O(n).
func Reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
