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

// This file implements Ukkonen's online suffix tree construction.
//
// The tree is stored as a flat arena of nodes indexed by int32 handles; child
// edges and suffix links are index-valued fields, so the backward-pointing
// suffix links never form ownership cycles. Edge labels are (start, end)
// index pairs into the text. While the tree is under construction, leaf edges
// are "open": they end at the current position and grow implicitly with
// every phase, tracked by the global end marker t.pos instead of per-leaf
// updates. build resolves the open ends once construction is done.
//
// Construction maintains the active point (activeNode, activeEdge,
// activeLen): the position in the tree where the next suffix has to be
// inserted. Each phase extends the tree by one text symbol, applying the
// classic extension rules:
//
//   - rule 1: existing leaves extend implicitly via the open end marker;
//   - rule 2: no continuation exists at the active point — create a new leaf,
//     splitting the active edge if the point is in the middle of it, and link
//     the previously created internal node of this phase to the new one;
//   - rule 3: the continuation already exists — advance the active point and
//     end the phase early.
//
// After every insertion the active point follows a suffix link (or drops one
// symbol at the root) and walkDown canonicalizes it by descending edges that
// are shorter than the active length.

const (
	// Sentinel symbols terminating the first and second input in the
	// concatenated text. Outside the byte range, so they can't collide with
	// input content.
	sep1 = 0x100
	sep2 = 0x101

	root = int32(0)
	open = int32(-1) // edge end of a growing leaf during construction
)

type node struct {
	start, end int32            // edge label text[start:end] leading to this node
	link       int32            // suffix link, root if none
	next       map[uint16]int32 // child edges by first symbol, nil for leaves
}

type tree struct {
	text  []uint16
	nodes []node

	// Construction state, meaningless after build returns.
	activeNode int32
	activeEdge int // index into text of the active edge's first symbol
	activeLen  int
	remainder  int   // number of suffixes still to be inserted
	pos        int   // current phase, also the global end marker
	needLink   int32 // node created in this phase still waiting for its suffix link
}

// build constructs the generalized suffix tree over first ⧺ sep1 ⧺ second ⧺
// sep2. The trailing sentinel guarantees that every suffix ends in a leaf, so
// no implicit suffixes remain after the last phase.
func build(first, second []byte) *tree {
	text := make([]uint16, 0, len(first)+len(second)+2)
	for _, b := range first {
		text = append(text, uint16(b))
	}
	text = append(text, sep1)
	for _, b := range second {
		text = append(text, uint16(b))
	}
	text = append(text, sep2)

	t := &tree{
		text:  text,
		nodes: make([]node, 1, 2*len(text)),
	}
	for t.pos = 0; t.pos < len(text); t.pos++ {
		t.extend()
	}

	// Resolve the open leaf edges now that the text is fully inserted.
	end := int32(len(text))
	for i := range t.nodes {
		if t.nodes[i].end == open {
			t.nodes[i].end = end
		}
	}
	return t
}

// extend runs one phase of Ukkonen's algorithm, inserting text[pos].
func (t *tree) extend() {
	c := t.text[t.pos]
	t.needLink = root
	t.remainder++
	for t.remainder > 0 {
		if t.activeLen == 0 {
			t.activeEdge = t.pos
		}
		sym := t.text[t.activeEdge]
		nxt, ok := t.nodes[t.activeNode].next[sym]
		if !ok {
			// Rule 2: no edge starts with sym, add a leaf.
			leaf := t.newNode(int32(t.pos), open)
			t.setChild(t.activeNode, sym, leaf)
			t.addLink(t.activeNode)
		} else {
			if t.walkDown(nxt) {
				continue
			}
			if t.text[int(t.nodes[nxt].start)+t.activeLen] == c {
				// Rule 3: the suffix is already present, stop the phase.
				t.activeLen++
				t.addLink(t.activeNode)
				break
			}
			// Rule 2: split the edge and branch off a new leaf.
			start := t.nodes[nxt].start
			split := t.newNode(start, start+int32(t.activeLen))
			t.setChild(t.activeNode, sym, split)
			leaf := t.newNode(int32(t.pos), open)
			t.setChild(split, c, leaf)
			t.nodes[nxt].start += int32(t.activeLen)
			t.setChild(split, t.text[t.nodes[nxt].start], nxt)
			t.addLink(split)
		}
		t.remainder--
		if t.activeNode == root && t.activeLen > 0 {
			t.activeLen--
			t.activeEdge = t.pos - t.remainder + 1
		} else {
			t.activeNode = t.nodes[t.activeNode].link
		}
	}
}

// walkDown canonicalizes the active point: if the active length reaches past
// the edge leading to v, descend into v and retry from there.
func (t *tree) walkDown(v int32) bool {
	if l := t.edgeLen(v); t.activeLen >= l {
		t.activeEdge += l
		t.activeLen -= l
		t.activeNode = v
		return true
	}
	return false
}

// edgeLen returns the current length of the edge leading to v. Open leaf
// edges reach up to the global end marker.
func (t *tree) edgeLen(v int32) int {
	n := t.nodes[v]
	if n.end == open {
		return t.pos + 1 - int(n.start)
	}
	return int(n.end - n.start)
}

// addLink resolves the suffix link of the internal node created earlier in
// this phase, if any, and makes v the new pending node.
func (t *tree) addLink(v int32) {
	if t.needLink != root {
		t.nodes[t.needLink].link = v
	}
	t.needLink = v
}

func (t *tree) newNode(start, end int32) int32 {
	t.nodes = append(t.nodes, node{start: start, end: end, link: root})
	return int32(len(t.nodes) - 1)
}

func (t *tree) setChild(parent int32, sym uint16, child int32) {
	if t.nodes[parent].next == nil {
		t.nodes[parent].next = make(map[uint16]int32)
	}
	t.nodes[parent].next[sym] = child
}
