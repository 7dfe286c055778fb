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
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPatchSet(t *testing.T) {
	tests := []struct {
		name          string
		first, second string
		minLength     int
		want          []Patch
	}{
		{
			name:      "identical",
			first:     "abcdefg",
			second:    "abcdefg",
			minLength: 1,
			want: []Patch{
				{Op: Copy, FirstPos: 0, SecondPos: 0, Length: 7},
			},
		},
		{
			name:      "interleaved",
			first:     "abcdefg",
			second:    "012abc34cdef56efg78abcdefg",
			minLength: 2,
			want: []Patch{
				{Op: Insert, SecondPos: 0, Length: 3, Literal: []byte("012")},
				{Op: Copy, FirstPos: 0, SecondPos: 3, Length: 3},
				{Op: Insert, SecondPos: 6, Length: 2, Literal: []byte("34")},
				{Op: Copy, FirstPos: 2, SecondPos: 8, Length: 4},
				{Op: Insert, SecondPos: 12, Length: 2, Literal: []byte("56")},
				{Op: Copy, FirstPos: 4, SecondPos: 14, Length: 3},
				{Op: Insert, SecondPos: 17, Length: 2, Literal: []byte("78")},
				{Op: Copy, FirstPos: 0, SecondPos: 19, Length: 7},
			},
		},
		{
			name:      "disjoint",
			first:     "xyz",
			second:    "abc",
			minLength: 3,
			want: []Patch{
				{Op: Insert, SecondPos: 0, Length: 3, Literal: []byte("abc")},
			},
		},
		{
			name:      "first-empty",
			first:     "",
			second:    "hello",
			minLength: 1,
			want: []Patch{
				{Op: Insert, SecondPos: 0, Length: 5, Literal: []byte("hello")},
			},
		},
		{
			name:      "second-empty",
			first:     "hello",
			second:    "",
			minLength: 1,
			want:      nil,
		},
		{
			name:      "min-length-above-overlap",
			first:     "aaaa",
			second:    "aaaa",
			minLength: 10,
			want: []Patch{
				{Op: Insert, SecondPos: 0, Length: 4, Literal: []byte("aaaa")},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, spec := range specsFor(tc.minLength) {
				t.Run(specName(spec), func(t *testing.T) {
					got := PatchSet([]byte(tc.first), []byte(tc.second), spec)
					if diff := cmp.Diff(tc.want, got); diff != "" {
						t.Errorf("patch set differs [-want, +got]:\n%s", diff)
					}
				})
			}
		})
	}
}

// TestPatchSetProperties checks the tiling and reconstruction guarantees on
// randomized inputs for both engines.
func TestPatchSetProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 42))
	for round := range 50 {
		first, second := randomPair(rng)
		for _, k := range []int{1, 2, 4, 8} {
			for _, spec := range specsFor(k) {
				patches := PatchSet(first, second, spec)

				cursor := 0
				for i, p := range patches {
					if p.SecondPos != cursor {
						t.Fatalf("round %d %s: patch %d starts at %d, want %d", round, specName(spec), i, p.SecondPos, cursor)
					}
					if p.Length <= 0 {
						t.Fatalf("round %d %s: patch %d has non-positive length %d", round, specName(spec), i, p.Length)
					}
					cursor = p.SecondEnd()
				}
				if cursor != len(second) {
					t.Fatalf("round %d %s: patches end at %d, want %d", round, specName(spec), cursor, len(second))
				}

				if got := Apply(first, patches); !bytes.Equal(got, second) {
					t.Fatalf("round %d %s: reconstruction differs:\ngot  %q\nwant %q", round, specName(spec), got, second)
				}
			}
		}
	}
}

func TestApply(t *testing.T) {
	first := []byte("the quick brown fox")
	patches := []Patch{
		{Op: Copy, FirstPos: 4, SecondPos: 0, Length: 5},
		{Op: Insert, SecondPos: 5, Length: 2, Literal: []byte("ly")},
		{Op: Copy, FirstPos: 9, SecondPos: 7, Length: 6},
	}
	want := []byte("quickly brown")
	if got := Apply(first, patches); !bytes.Equal(got, want) {
		t.Errorf("Apply() = %q, want %q", got, want)
	}

	if got := Apply(first, nil); len(got) != 0 {
		t.Errorf("Apply() on empty patch set = %q, want empty", got)
	}
}
