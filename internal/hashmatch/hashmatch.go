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

// Package hashmatch contains a substring matching engine based on a hash
// index over the first input.
//
// The index maps every window of minLength bytes in the first input to the
// ascending list of offsets it occurs at. Scanning the second input is then a
// single left-to-right pass: at each position the window is looked up, every
// candidate occurrence is extended as far as it goes, and the longest
// extension wins. A successful match advances the scan past the matched
// bytes, so the emitted matches never overlap in the second input.
//
// The expected runtime is O(len(first) + len(second)): lookups are amortized
// O(1) and the total extension work is bounded by the total length of the
// emitted matches. Highly repetitive inputs degrade the candidate scans (many
// offsets share a window); the suffix tree engine in internal/treematch is
// immune to that at the cost of a larger constant factor.
package hashmatch

import "znkr.io/bindiff/internal/match"

// Iterator produces the matches between two byte slices, longest-first at
// each scan position, left to right.
type Iterator struct {
	first, second []byte
	minLength     int
	index         map[string][]int
	pos           int // scan cursor in second
}

// New builds the window index over first and returns an iterator over the
// matches with second. minLength must be >= 1, validated by the caller.
func New(first, second []byte, minLength int) *Iterator {
	index := make(map[string][]int)
	for i := 0; i+minLength <= len(first); i++ {
		key := string(first[i : i+minLength])
		index[key] = append(index[key], i)
	}
	return &Iterator{
		first:     first,
		second:    second,
		minLength: minLength,
		index:     index,
	}
}

// Next returns the next match and true, or a zero match and false once the
// second input is exhausted.
func (it *Iterator) Next() (match.Match, bool) {
	k := it.minLength
	for it.pos+k <= len(it.second) {
		window := it.second[it.pos : it.pos+k]
		var bestLen, bestPos int
		// Candidate offsets are ascending, so strict > keeps the smallest
		// offset among equally long extensions.
		for _, p := range it.index[string(window)] {
			if n := commonPrefix(it.first[p:], it.second[it.pos:]); n > bestLen {
				bestLen, bestPos = n, p
			}
		}
		if bestLen >= k {
			m := match.Match{FirstPos: bestPos, SecondPos: it.pos, Length: bestLen}
			it.pos += bestLen
			return m, true
		}
		it.pos++
	}
	return match.Match{}, false
}

// commonPrefix returns the length of the longest common prefix of a and b.
func commonPrefix(a, b []byte) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
