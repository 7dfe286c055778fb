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

import (
	"fmt"
	"iter"

	"znkr.io/bindiff/internal/hashmatch"
	"znkr.io/bindiff/internal/match"
	"znkr.io/bindiff/internal/treematch"
)

// A Match is a common substring of the two compared inputs: Length bytes
// starting at FirstPos in the first input and at SecondPos in the second.
//
// Matches produced by a [MatchIterator] are maximal at their position in the
// second input, never shorter than the minimum match length of the producing
// [AlgoSpec], and never overlap each other in the second input. Submatches
// are not reported separately; they can be derived from the encompassing
// match if needed.
type Match = match.Match

type algorithm int

const (
	algoHashMatch algorithm = iota
	algoTreeMatch
)

// An AlgoSpec selects one of the two matching engines together with its
// minimum match length. Use [HashMatch] or [TreeMatch] to construct one; the
// zero AlgoSpec is invalid.
type AlgoSpec struct {
	algo      algorithm
	minLength int
}

// HashMatch selects the hash index engine: every window of minLength bytes
// in the first input is indexed in a hash map, and the second input is
// scanned against that index. Expected linear time, degrades on highly
// repetitive inputs.
//
// minLength must be >= 1 or constructing an iterator or patch set panics.
func HashMatch(minLength int) AlgoSpec {
	return AlgoSpec{algo: algoHashMatch, minLength: minLength}
}

// TreeMatch selects the suffix tree engine: a generalized suffix tree over
// both inputs is built with Ukkonen's algorithm and scanned via matching
// statistics. Guaranteed linear time, independent of minLength and of the
// input's repetitiveness.
//
// minLength must be >= 1 or constructing an iterator or patch set panics.
func TreeMatch(minLength int) AlgoSpec {
	return AlgoSpec{algo: algoTreeMatch, minLength: minLength}
}

func (s AlgoSpec) validate() {
	if s.minLength < 1 {
		panic(fmt.Sprintf("bindiff: minimum match length must be >= 1, got %d", s.minLength))
	}
}

// engine is the capability both matching engines provide: produce the next
// match at or after the current scan position.
type engine interface {
	Next() (match.Match, bool)
}

// A MatchIterator lazily produces the matches between two inputs, in strictly
// increasing order of position in the second input.
//
// The iterator borrows both inputs: they must not be mutated and must outlive
// the iterator. It is forward-only and not restartable; construct a new one
// to scan again. Two iterators over identical inputs and spec produce
// identical match sequences.
type MatchIterator struct {
	engine engine
}

// NewMatchIterator returns an iterator over the matches between first and
// second using the engine selected by spec.
//
// It panics if spec is invalid, see [HashMatch] and [TreeMatch].
func NewMatchIterator(first, second []byte, spec AlgoSpec) *MatchIterator {
	spec.validate()
	switch spec.algo {
	case algoHashMatch:
		return &MatchIterator{engine: hashmatch.New(first, second, spec.minLength)}
	case algoTreeMatch:
		return &MatchIterator{engine: treematch.New(first, second, spec.minLength)}
	default:
		panic("never reached")
	}
}

// Next returns the next match and true, or a zero Match and false once the
// iterator is exhausted.
func (it *MatchIterator) Next() (Match, bool) {
	return it.engine.Next()
}

// All returns the remaining matches as a single-use sequence. Like the
// iterator itself the sequence is not restartable: ranging over it a second
// time yields nothing.
func (it *MatchIterator) All() iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for m, ok := it.Next(); ok; m, ok = it.Next() {
			if !yield(m) {
				return
			}
		}
	}
}
