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

// Package bindiff compares two arbitrary byte sequences by finding their
// common substrings and describing how the second sequence can be rebuilt
// from the first with copy and insert instructions.
//
// The main entry points are [NewMatchIterator], which lazily produces the
// common substrings between two inputs, and [PatchSet], which assembles them
// into an ordered instruction list that tiles the second input exactly and
// can be replayed with [Apply].
//
// Two interchangeable matching engines are available, selected with an
// [AlgoSpec]: [HashMatch] indexes every window of the minimum match length in
// the first input and is the fastest choice for typical data; [TreeMatch]
// builds a generalized suffix tree of both inputs and guarantees linear
// runtime independent of the minimum match length, even on highly repetitive
// or adversarial inputs.
//
// Performance: both engines run in time linear in the combined input size,
// HashMatch in expectation and TreeMatch unconditionally. All work happens in
// memory on the calling goroutine; nothing is retained between calls.
package bindiff
