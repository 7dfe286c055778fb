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

import "fmt"

// Op describes a patch instruction.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Copy   Op = iota // Copy bytes from the first input
	Insert           // Insert literal bytes not found in the first input
)

// A Patch is a single reconstruction instruction covering a contiguous span
// of the second input.
//
//   - For Copy, the span second[SecondPos:SecondEnd()] is obtained by copying
//     first[FirstPos:FirstEnd()]; Literal is nil.
//   - For Insert, the span is covered by Literal and FirstPos is unset.
//
// Literal aliases the second input rather than copying it, so it is only
// valid as long as that buffer is alive and unmodified.
type Patch struct {
	Op        Op
	FirstPos  int    // start in the first input, Copy only
	SecondPos int    // start of the covered span in the second input
	Length    int    // length of the covered span
	Literal   []byte // the covered bytes themselves, Insert only
}

// FirstEnd returns the position just after the copied span in the first
// input. Only meaningful for Copy patches.
func (p Patch) FirstEnd() int { return p.FirstPos + p.Length }

// SecondEnd returns the position just after the covered span in the second
// input.
func (p Patch) SecondEnd() int { return p.SecondPos + p.Length }

// PatchSet returns the ordered instruction list that rebuilds second from
// first: a Copy patch for every match found by the engine selected with
// spec, and an Insert patch for every span in between without a sufficiently
// long match.
//
// The returned patches tile second exactly: they are ordered and mutually
// adjacent, the first starts at position 0 and the last ends at len(second).
// If second is empty the result is empty.
//
// It panics if spec is invalid, see [HashMatch] and [TreeMatch].
func PatchSet(first, second []byte, spec AlgoSpec) []Patch {
	it := NewMatchIterator(first, second, spec)
	var patches []Patch
	cursor := 0
	for m, ok := it.Next(); ok; m, ok = it.Next() {
		if m.SecondPos > cursor {
			patches = append(patches, Patch{
				Op:        Insert,
				SecondPos: cursor,
				Length:    m.SecondPos - cursor,
				Literal:   second[cursor:m.SecondPos],
			})
		}
		patches = append(patches, Patch{
			Op:        Copy,
			FirstPos:  m.FirstPos,
			SecondPos: m.SecondPos,
			Length:    m.Length,
		})
		cursor = m.SecondEnd()
	}
	if cursor < len(second) {
		patches = append(patches, Patch{
			Op:        Insert,
			SecondPos: cursor,
			Length:    len(second) - cursor,
			Literal:   second[cursor:],
		})
	}
	return patches
}

// Apply replays a patch set produced by [PatchSet] against the first input
// and returns the reconstructed second input.
func Apply(first []byte, patches []Patch) []byte {
	var n int
	for _, p := range patches {
		n += p.Length
	}
	out := make([]byte, 0, n)
	for _, p := range patches {
		switch p.Op {
		case Copy:
			out = append(out, first[p.FirstPos:p.FirstEnd()]...)
		case Insert:
			out = append(out, p.Literal...)
		default:
			panic(fmt.Sprintf("unknown op: %v", p.Op))
		}
	}
	return out
}
