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
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/expression"
	"github.com/dolthub/go-sql-rewriter/sql/plan"
	"github.com/dolthub/go-sql-rewriter/sql/types"
)

func TestRuntimeInfoRecordsRewriters(t *testing.T) {
	require := require.New(t)

	info := newRuntimeInfo()
	require.NotEqual("00000000-0000-0000-0000-000000000000", info.RunID.String())
	require.Nil(info.RewriterStats("typeof"))

	info.recordRewriter("typeof", 2*time.Millisecond)
	info.recordRewriter("typeof", 3*time.Millisecond)
	info.recordRewriter("inline", time.Millisecond)

	stats := info.RewriterStats("typeof")
	require.NotNil(stats)
	require.Equal(2, stats.Count)
	require.Equal(5*time.Millisecond, stats.Wall)

	require.Equal(1, info.RewriterStats("inline").Count)
	require.Nil(info.RewriterStats("nulliferror"))
}

func TestRuntimeInfoRecordsPasses(t *testing.T) {
	require := require.New(t)

	info := newRuntimeInfo()
	info.recordPass(NewRewriteSet(RewriteTypeof), 7, time.Millisecond)
	info.recordPass(NewRewriteSet(RewriteInlineFunctions, RewriteTypeof), 8, 2*time.Millisecond)

	require.Len(info.Passes, 2)
	require.Equal(NewRewriteSet(RewriteTypeof), info.Passes[0].Applied)
	require.Equal(uint64(7), info.Passes[0].Fingerprint)
	require.Equal(uint64(8), info.Passes[1].Fingerprint)
}

func TestRuntimeInfoAccumulateAll(t *testing.T) {
	require := require.New(t)

	first := newRuntimeInfo()
	first.RewriteWall = time.Second
	first.ValidateWall = time.Millisecond
	first.recordRewriter("typeof", time.Millisecond)
	first.recordPass(NewRewriteSet(RewriteTypeof), 1, time.Millisecond)
	firstID := first.RunID

	second := newRuntimeInfo()
	second.RewriteWall = 2 * time.Second
	second.ValidateWall = 2 * time.Millisecond
	second.recordRewriter("typeof", 2*time.Millisecond)
	second.recordRewriter("inline", time.Millisecond)
	second.recordPass(NewRewriteSet(RewriteInlineFunctions), 2, time.Millisecond)

	first.AccumulateAll(second)

	require.Equal(firstID, first.RunID)
	require.Equal(3*time.Second, first.RewriteWall)
	require.Equal(3*time.Millisecond, first.ValidateWall)
	require.Len(first.Passes, 2)
	require.Equal(3, first.RewriterStats("typeof").Count+first.RewriterStats("inline").Count)
	require.Equal(3*time.Millisecond, first.RewriterStats("typeof").Wall)

	// Accumulating nil is a no-op.
	first.AccumulateAll(nil)
	require.Len(first.Passes, 2)

	// The zero value can accumulate.
	var zero RuntimeInfo
	zero.AccumulateAll(first)
	require.Equal(2, zero.RewriterStats("typeof").Count)
}

func TestFingerprint(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(0), fingerprint(nil))

	scan := testScan()
	require.Equal(fingerprint(scan), fingerprint(scan))
	require.Equal(fingerprint(scan), fingerprint(testScan()))

	project := plan.NewProject([]sql.Expression{
		expression.NewLiteral(int64(1), types.Int64),
	}, testScan())
	require.NotEqual(fingerprint(scan), fingerprint(project))
}
