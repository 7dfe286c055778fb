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

package treematch

import (
	"math/rand/v2"
	"testing"
)

// walkSuffix follows s from the root and reports whether the full string is
// spelled by the tree and ends exactly at a leaf.
func walkSuffix(t *tree, s []uint16) bool {
	v := root
	i := 0
	for i < len(s) {
		c, ok := t.nodes[v].next[s[i]]
		if !ok {
			return false
		}
		for j := t.nodes[c].start; j < t.nodes[c].end; j++ {
			if i == len(s) {
				return false // suffix ends inside an edge
			}
			if t.text[j] != s[i] {
				return false
			}
			i++
		}
		v = c
	}
	return t.nodes[v].next == nil
}

func checkTree(t *testing.T, first, second []byte) {
	t.Helper()
	tr := build(first, second)

	// Every suffix of the concatenated text must be spelled by a
	// root-to-leaf path.
	for i := range tr.text {
		if !walkSuffix(tr, tr.text[i:]) {
			t.Fatalf("first=%q second=%q: suffix %d not spelled by a root-to-leaf path", first, second, i)
		}
	}

	// The trailing sentinel makes every suffix end in its own leaf, so the
	// number of leaves must equal the text length.
	leaves := 0
	for _, n := range tr.nodes {
		if n.next == nil {
			leaves++
		}
	}
	if leaves != len(tr.text) {
		t.Fatalf("first=%q second=%q: got %d leaves, want %d", first, second, leaves, len(tr.text))
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name          string
		first, second string
	}{
		{"plain", "abcdefg", "012abc34cdef56efg78abcdefg"},
		{"repetitive", "aaaaaaa", "aaaa"},
		{"alternating", "abababab", "babab"},
		{"single-bytes", "a", "b"},
		{"first-empty", "", "abc"},
		{"second-empty", "abc", ""},
		{"both-empty", "", ""},
		{"banana", "banana", "ananas"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			checkTree(t, []byte(tc.first), []byte(tc.second))
		})
	}
}

func TestBuildRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 99))
	for range 200 {
		alphabet := 2 + rng.IntN(4)
		first := make([]byte, rng.IntN(80))
		for i := range first {
			first[i] = 'a' + byte(rng.IntN(alphabet))
		}
		second := make([]byte, rng.IntN(80))
		for i := range second {
			second[i] = 'a' + byte(rng.IntN(alphabet))
		}
		checkTree(t, first, second)
	}
}
