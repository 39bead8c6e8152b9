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
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/hashstructure"

	"github.com/dolthub/go-sql-rewriter/sql"
)

// RewriterStats accumulates accounting for one rewriter across passes.
type RewriterStats struct {
	// Count is the number of times the rewriter ran.
	Count int
	// Wall is the total wall time the rewriter spent.
	Wall time.Duration
}

// PassStats describes one pass of the main rewrite loop.
type PassStats struct {
	// Applied is the set of kinds whose rewriters ran in the pass.
	Applied RewriteSet
	// Fingerprint is a hash of the tree after the pass, used to notice
	// passes that applied rewriters without changing anything.
	Fingerprint uint64
	// Wall is the wall time of the pass.
	Wall time.Duration
}

// RuntimeInfo accumulates accounting for rewrite runs. Accounting never
// changes results; it exists so slow or non-converging queries can be
// diagnosed from logs.
type RuntimeInfo struct {
	// RunID identifies the run in logs.
	RunID uuid.UUID

	// RewriteWall is the total wall time spent rewriting.
	RewriteWall time.Duration

	// ValidateWall is the wall time spent validating the final tree.
	ValidateWall time.Duration

	// Passes describes each pass of the main loop in order.
	Passes []PassStats

	rewriters map[string]*RewriterStats
}

func newRuntimeInfo() *RuntimeInfo {
	return &RuntimeInfo{
		RunID:     uuid.New(),
		rewriters: make(map[string]*RewriterStats),
	}
}

// RewriterStats returns the accumulated stats for the named rewriter, or
// nil when it never ran.
func (i *RuntimeInfo) RewriterStats(name string) *RewriterStats {
	return i.rewriters[name]
}

// recordRewriter charges one invocation of the named rewriter.
func (i *RuntimeInfo) recordRewriter(name string, wall time.Duration) {
	if i.rewriters == nil {
		i.rewriters = make(map[string]*RewriterStats)
	}
	stats := i.rewriters[name]
	if stats == nil {
		stats = &RewriterStats{}
		i.rewriters[name] = stats
	}
	stats.Count++
	stats.Wall += wall
}

// recordPass appends one pass of the main loop.
func (i *RuntimeInfo) recordPass(applied RewriteSet, fingerprint uint64, wall time.Duration) {
	i.Passes = append(i.Passes, PassStats{
		Applied:     applied,
		Fingerprint: fingerprint,
		Wall:        wall,
	})
}

// AccumulateAll merges another run's accounting into this one. Pass lists
// concatenate and per-rewriter stats add up; the run id keeps the first
// run's value.
func (i *RuntimeInfo) AccumulateAll(other *RuntimeInfo) {
	if other == nil {
		return
	}

	i.RewriteWall += other.RewriteWall
	i.ValidateWall += other.ValidateWall
	i.Passes = append(i.Passes, other.Passes...)

	if i.rewriters == nil {
		i.rewriters = make(map[string]*RewriterStats)
	}
	for name, stats := range other.rewriters {
		mine := i.rewriters[name]
		if mine == nil {
			mine = &RewriterStats{}
			i.rewriters[name] = mine
		}
		mine.Count += stats.Count
		mine.Wall += stats.Wall
	}
}

// fingerprint hashes a tree's rendered form. Hash collisions only weaken a
// diagnostic, so the string form is plenty.
func fingerprint(node sql.Node) uint64 {
	if node == nil {
		return 0
	}
	hash, err := hashstructure.Hash(node.String(), nil)
	if err != nil {
		return 0
	}
	return hash
}
