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

// Package benchmarks compares the bindiff matching engines against
// third-party diff implementations on byte inputs.
//
// The implementations don't produce comparable outputs (patch sets vs. diff
// scripts vs. unified diffs), so only the runtime is comparable; the returned
// size measure is reported for context.
package benchmarks

import (
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/bindiff"
)

type Impl struct {
	Name string

	// Diff computes some delta representation of first -> second and returns
	// a size measure of it.
	Diff func(first, second []byte) int
}

var Impls = []Impl{
	{
		Name: "bindiff-hashmatch",
		Diff: func(first, second []byte) int {
			return len(bindiff.PatchSet(first, second, bindiff.HashMatch(8)))
		},
	},
	{
		Name: "bindiff-treematch",
		Diff: func(first, second []byte) int {
			return len(bindiff.PatchSet(first, second, bindiff.TreeMatch(8)))
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(first, second []byte) int {
			dmp := diffmatchpatch.New()
			return len(dmp.DiffMain(string(first), string(second), false))
		},
	},
	{
		Name: "go-internal",
		Diff: func(first, second []byte) int {
			return len(gointernal.Diff("first", first, "second", second))
		},
	},
}
