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

// Package treematch contains a substring matching engine based on a
// generalized suffix tree.
//
// The engine produces exactly the same kind of output as internal/hashmatch
// (the longest match starting at each scan position, emitted greedily left to
// right), but its runtime is O(len(first) + len(second)) unconditionally:
// independent of the minimum match length and unaffected by repetitive or
// adversarial content.
//
// # Generalized suffix tree
//
// A suffix tree of a string is a compressed trie of all its suffixes: every
// suffix corresponds to a root-to-leaf path, and every edge is labeled with a
// substring of the input (stored as a start/end index pair, not a copy). A
// generalized suffix tree contains the suffixes of two strings at once. We
// build it over the concatenation
//
//	first ⧺ 0x100 ⧺ second ⧺ 0x101
//
// where 0x100 and 0x101 are sentinel symbols that cannot occur in either
// input (the text is widened to uint16 to make room for them). The sentinels
// guarantee that no suffix is a prefix of another — every suffix ends in its
// own leaf — and that no path label crosses from first content into second
// content.
//
// The tree is built with Ukkonen's online algorithm, see suffixtree.go.
//
// # Matching statistics
//
// For every position i in second we want the length of the longest substring
// of second starting at i that occurs anywhere in first, together with one
// (the smallest) occurrence offset. In a generalized suffix tree this is a
// structural property: consider the leaf for the suffix second[i:] and walk
// towards the root. The deepest ancestor whose subtree also contains a leaf
// from first spells — by definition of the tree — the longest prefix of
// second[i:] shared with some suffix of first, and its string depth is the
// match length. All first-origin leaves below that ancestor diverge from the
// path to our leaf exactly there, so each one is an occurrence of maximal
// length and the smallest occurrence offset in its subtree is the correct
// tie-break.
//
// Both properties are computed for every position in two sweeps over the node
// arena: a bottom-up sweep aggregates, per node, the string depth, whether
// the subtree reaches a first-origin leaf, and the smallest first-origin
// offset below it; a top-down sweep then carries the deepest such ancestor
// along every root-to-leaf path and records it at each second-origin leaf.
// Sweeping an arena of O(n) nodes is O(n), so the whole engine is linear.
package treematch

import (
	"math"

	"znkr.io/bindiff/internal/match"
)

// Iterator produces the matches between two byte slices, longest-first at
// each scan position, left to right. All tree work happens at construction
// time, iteration itself is a simple scan over the precomputed matching
// statistics.
type Iterator struct {
	minLength int
	msLen     []int // longest match starting at each position of second
	msFirst   []int // smallest offset in first realizing that match
	pos       int   // scan cursor in second
}

// New builds the generalized suffix tree over first and second, derives the
// matching statistics, and returns an iterator over the matches. minLength
// must be >= 1, validated by the caller.
func New(first, second []byte, minLength int) *Iterator {
	msLen, msFirst := matchingStatistics(first, second)
	return &Iterator{
		minLength: minLength,
		msLen:     msLen,
		msFirst:   msFirst,
	}
}

// Next returns the next match and true, or a zero match and false once the
// second input is exhausted.
func (it *Iterator) Next() (match.Match, bool) {
	for it.pos < len(it.msLen) {
		if n := it.msLen[it.pos]; n >= it.minLength {
			m := match.Match{FirstPos: it.msFirst[it.pos], SecondPos: it.pos, Length: n}
			it.pos += n
			return m, true
		}
		it.pos++
	}
	return match.Match{}, false
}

// matchingStatistics returns, for every position i of second, the length of
// the longest substring of second[i:] that occurs in first (0 if none) and
// the smallest offset in first where it occurs.
func matchingStatistics(first, second []byte) (msLen, msFirst []int) {
	t := build(first, second)
	n := len(t.nodes)

	// Pre-order walk over the arena. The reverse of a pre-order sequence
	// visits all children before their parent, which is all the bottom-up
	// sweep needs.
	depth := make([]int, n) // string depth at the bottom of the node's edge
	order := make([]int32, 0, n)
	stack := []int32{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, v)
		for _, c := range t.nodes[v].next {
			depth[c] = depth[v] + int(t.nodes[c].end-t.nodes[c].start)
			stack = append(stack, c)
		}
	}

	// Bottom-up: aggregate first-origin reachability and the smallest
	// first-origin suffix offset per subtree. A leaf at string depth d is the
	// suffix starting at len(text)-d; suffixes starting before the first
	// sentinel originate from first.
	hasFirst := make([]bool, n)
	minFirst := make([]int, n)
	for i := range minFirst {
		minFirst[i] = math.MaxInt
	}
	for i := len(order) - 1; i >= 0; i-- {
		v := order[i]
		if t.nodes[v].next == nil {
			if j := len(t.text) - depth[v]; j < len(first) {
				hasFirst[v] = true
				minFirst[v] = j
			}
			continue
		}
		for _, c := range t.nodes[v].next {
			if hasFirst[c] {
				hasFirst[v] = true
				minFirst[v] = min(minFirst[v], minFirst[c])
			}
		}
	}

	// Top-down: carry the deepest ancestor reaching a first-origin leaf down
	// every path and record it at the second-origin leaves.
	msLen = make([]int, len(second))
	msFirst = make([]int, len(second))
	type frame struct {
		v       int32
		bestLen int
		bestPos int
	}
	frames := []frame{{v: root}}
	for len(frames) > 0 {
		f := frames[len(frames)-1]
		frames = frames[:len(frames)-1]
		if hasFirst[f.v] {
			f.bestLen, f.bestPos = depth[f.v], minFirst[f.v]
		}
		if t.nodes[f.v].next == nil {
			j := len(t.text) - depth[f.v]
			if j > len(first) && j < len(t.text)-1 {
				i := j - len(first) - 1
				msLen[i], msFirst[i] = f.bestLen, f.bestPos
			}
			continue
		}
		for _, c := range t.nodes[f.v].next {
			frames = append(frames, frame{v: c, bestLen: f.bestLen, bestPos: f.bestPos})
		}
	}
	return msLen, msFirst
}
