// Copyright 2022 Dolthub, Inc.
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

package analyzer

import (
	"sort"
	"strings"
)

// RewriteSet is an immutable ordered set of rewrite kinds. Kinds are kept in
// ascending order, so iterating a set built from detection results is
// deterministic no matter what order the constructs appear in a tree.
type RewriteSet struct {
	kinds []RewriteKind
}

// NewRewriteSet returns the set of the given kinds, deduplicated.
func NewRewriteSet(kinds ...RewriteKind) RewriteSet {
	if len(kinds) == 0 {
		return RewriteSet{}
	}

	sorted := make([]RewriteKind, len(kinds))
	copy(sorted, kinds)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	deduped := sorted[:1]
	for _, k := range sorted[1:] {
		if k != deduped[len(deduped)-1] {
			deduped = append(deduped, k)
		}
	}
	return RewriteSet{kinds: deduped}
}

// Empty reports whether the set has no kinds.
func (s RewriteSet) Empty() bool {
	return len(s.kinds) == 0
}

// Len returns the number of kinds in the set.
func (s RewriteSet) Len() int {
	return len(s.kinds)
}

// Contains reports whether the set holds the given kind.
func (s RewriteSet) Contains(kind RewriteKind) bool {
	for _, k := range s.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Kinds returns the kinds of the set in ascending order.
func (s RewriteSet) Kinds() []RewriteKind {
	kinds := make([]RewriteKind, len(s.kinds))
	copy(kinds, s.kinds)
	return kinds
}

// Add returns the set with the given kind added.
func (s RewriteSet) Add(kind RewriteKind) RewriteSet {
	if s.Contains(kind) {
		return s
	}
	return NewRewriteSet(append(s.Kinds(), kind)...)
}

// Remove returns the set with the given kind removed.
func (s RewriteSet) Remove(kind RewriteKind) RewriteSet {
	if !s.Contains(kind) {
		return s
	}
	kinds := make([]RewriteKind, 0, len(s.kinds)-1)
	for _, k := range s.kinds {
		if k != kind {
			kinds = append(kinds, k)
		}
	}
	return RewriteSet{kinds: kinds}
}

// Intersect returns the set of kinds present in both sets.
func (s RewriteSet) Intersect(other RewriteSet) RewriteSet {
	var kinds []RewriteKind
	for _, k := range s.kinds {
		if other.Contains(k) {
			kinds = append(kinds, k)
		}
	}
	return RewriteSet{kinds: kinds}
}

// Equal reports whether both sets hold exactly the same kinds.
func (s RewriteSet) Equal(other RewriteSet) bool {
	if len(s.kinds) != len(other.kinds) {
		return false
	}
	for i, k := range s.kinds {
		if other.kinds[i] != k {
			return false
		}
	}
	return true
}

func (s RewriteSet) String() string {
	names := make([]string, len(s.kinds))
	for i, k := range s.kinds {
		names[i] = k.String()
	}
	return "{" + strings.Join(names, ", ") + "}"
}
