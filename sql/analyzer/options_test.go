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

	"github.com/stretchr/testify/require"

	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/types"
)

func TestNewOptions(t *testing.T) {
	require := require.New(t)

	opts := NewOptions()
	require.True(opts.EnabledRewrites.Equal(DefaultEnabledRewrites()))
	require.True(opts.AllowUndeclaredParameters)
	require.False(opts.FeatureEnabled(FeatureWithExpression))
	require.False(opts.FeatureEnabled(FeatureAnonymization))
}

func TestOptionsFeatures(t *testing.T) {
	require := require.New(t)

	opts := NewOptions()
	opts.SetFeature(FeatureAnonymization, true)
	require.True(opts.FeatureEnabled(FeatureAnonymization))
	require.False(opts.FeatureEnabled(FeatureWithExpression))

	opts.SetFeature(FeatureAnonymization, false)
	require.False(opts.FeatureEnabled(FeatureAnonymization))

	// SetFeature on a zero value allocates the feature map.
	var zero Options
	zero.SetFeature(FeatureWithExpression, true)
	require.True(zero.FeatureEnabled(FeatureWithExpression))
}

func TestOptionsCopy(t *testing.T) {
	require := require.New(t)

	seq := sql.NewColumnIDSequence()
	pool := sql.NewIDPool()
	registry := NewRegistry()

	opts := NewOptions()
	opts.EnabledRewrites = NewRewriteSet(RewriteTypeof)
	opts.LeadingRewriters = []Rewriter{countingRewriter("lead", new(int))}
	opts.Parameters = map[string]sql.Type{"p": types.Int64}
	opts.ExpressionColumns = map[string]sql.Type{"total": types.Float64}
	opts.ColumnIDSequence = seq
	opts.IDPool = pool
	opts.Registry = registry
	opts.SetFeature(FeatureWithExpression, true)

	copied := opts.Copy()

	// Same settings...
	require.True(copied.EnabledRewrites.Equal(opts.EnabledRewrites))
	require.Len(copied.LeadingRewriters, 1)
	require.True(types.Int64.Equals(copied.Parameters["p"]))
	require.True(copied.FeatureEnabled(FeatureWithExpression))

	// ...shared infrastructure...
	require.Same(seq, copied.ColumnIDSequence)
	require.Same(pool, copied.IDPool)
	require.Same(registry, copied.Registry)

	// ...but private collections.
	copied.Parameters["q"] = types.Text
	copied.ExpressionColumns["x"] = types.Text
	copied.LeadingRewriters = append(copied.LeadingRewriters, countingRewriter("x", new(int)))
	copied.SetFeature(FeatureWithExpression, false)

	require.Len(opts.Parameters, 1)
	require.Len(opts.ExpressionColumns, 1)
	require.Len(opts.LeadingRewriters, 1)
	require.True(opts.FeatureEnabled(FeatureWithExpression))
}

func TestOptionsIntern(t *testing.T) {
	require := require.New(t)

	opts := NewOptions()
	require.Equal("$inline_x", opts.intern("$inline_x"))

	opts.IDPool = sql.NewIDPool()
	require.Equal("$inline_x", opts.intern("$inline_x"))
	require.Equal(1, opts.IDPool.Size())
	opts.intern("$inline_x")
	require.Equal(1, opts.IDPool.Size())
}
