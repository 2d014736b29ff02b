// Copyright 2026 The Cayley Authors. All rights reserved.
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

package rdf

import "strings"

// ScanNaive splits a line the way the historical converter did: subject ends
// at the first space, predicate at the second one. For N-Triples
// (terms == 3) the object ends at the last dot, minus the spaces before it;
// for N-Quads the object ends at the second-to-last space.
//
// The result is only correct when no term contains a space. Positions the
// old tool would have crashed on are reported as errors.
func ScanNaive(line string, terms int) ([]Span, error) {
	const sep = ' '
	first := strings.IndexByte(line, sep)
	if first < 0 {
		return nil, errAt(len(line), ErrTooFewTerms)
	}
	second := strings.IndexByte(line[first+1:], sep)
	if second < 0 {
		return nil, errAt(len(line), ErrTooFewTerms)
	}
	second += first + 1

	var end int
	if terms == 4 {
		last := strings.LastIndexByte(line, sep)
		end = strings.LastIndexByte(line[:last], sep)
	} else {
		end = strings.LastIndexByte(line, '.')
		if end < 0 {
			return nil, errAt(len(line), ErrMissingTerminator)
		}
		for end > 0 && line[end-1] == sep {
			end--
		}
	}
	if end < second+1 {
		return nil, errAt(second, ErrMalformedLine)
	}
	return []Span{
		{Start: 0, End: first},
		{Start: first + 1, End: second},
		{Start: second + 1, End: end},
	}, nil
}
