// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bindiff

import "slices"

// LongestCommonSubstring returns the longest match between first and second,
// or a zero Match if there is none at least as long as the minimum match
// length of spec. Among equally long matches, the one appearing earliest in
// the second input wins.
//
// It panics if spec is invalid, see [HashMatch] and [TreeMatch].
func LongestCommonSubstring(first, second []byte, spec AlgoSpec) Match {
	var longest Match
	it := NewMatchIterator(first, second, spec)
	for m := range it.All() {
		if m.Length > longest.Length {
			longest = m
		}
	}
	return longest
}

// LongestCommonSubstrings returns up to n of the longest matches between
// first and second in decreasing order of length. Matches are drawn from the
// same non-overlapping match sequence a [MatchIterator] produces; among
// equally long matches the one appearing earlier in the second input sorts
// first.
//
// It panics if spec is invalid, see [HashMatch] and [TreeMatch].
func LongestCommonSubstrings(first, second []byte, spec AlgoSpec, n int) []Match {
	if n <= 0 {
		return nil
	}
	// n+1 capacity so inserting before truncating never reallocates.
	top := make([]Match, 0, n+1)
	threshold := 0
	it := NewMatchIterator(first, second, spec)
	for m := range it.All() {
		if m.Length <= threshold {
			continue
		}
		pos := 0
		for pos < len(top) && top[pos].Length >= m.Length {
			pos++
		}
		top = slices.Insert(top, pos, m)
		if len(top) > n {
			top = top[:n]
			threshold = top[len(top)-1].Length
		}
	}
	return top
}

// UniqueStrings returns the [start, end) spans of the second input that are
// not covered by any match with the first input: the parts of second that
// cannot be found in first given the minimum match length of spec. The spans
// are exactly the Insert spans of [PatchSet].
//
// It panics if spec is invalid, see [HashMatch] and [TreeMatch].
func UniqueStrings(first, second []byte, spec AlgoSpec) [][2]int {
	var uniques [][2]int
	covered := 0
	it := NewMatchIterator(first, second, spec)
	for m := range it.All() {
		if m.SecondPos > covered {
			uniques = append(uniques, [2]int{covered, m.SecondPos})
		}
		covered = m.SecondEnd()
	}
	if covered < len(second) {
		uniques = append(uniques, [2]int{covered, len(second)})
	}
	return uniques
}
