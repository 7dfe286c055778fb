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

// Package match contains the common-substring representation shared by the
// matching engines. It is an implementation detail, the user facing type is
// bindiff.Match.
package match

// A Match is a run of identical bytes present in both inputs.
type Match struct {
	FirstPos  int // start of the run in the first input
	SecondPos int // start of the run in the second input
	Length    int // number of bytes in the run
}

// FirstEnd returns the position just after the run in the first input.
func (m Match) FirstEnd() int { return m.FirstPos + m.Length }

// SecondEnd returns the position just after the run in the second input.
func (m Match) SecondEnd() int { return m.SecondPos + m.Length }
