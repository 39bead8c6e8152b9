// Copyright 2023 Dolthub, Inc.
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
	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/expression"
	"github.com/dolthub/go-sql-rewriter/sql/expression/function"
	"github.com/dolthub/go-sql-rewriter/sql/plan"
	"github.com/dolthub/go-sql-rewriter/sql/transform"
	"github.com/dolthub/go-sql-rewriter/sql/types"
)

// groupCountColumn names the noised group size column the anonymization
// lowering appends.
const groupCountColumn = "$group_count"

// AnonymizationRewriter lowers anonymized aggregates: every aggregation is
// wrapped in noise addition, a noised group size is appended, and a filter
// above the node drops groups below the k threshold. The anonymized
// aggregate node itself survives so engines can see the anonymization
// boundary; the registry exempts it from redetection for that reason.
type AnonymizationRewriter struct{}

var _ Rewriter = AnonymizationRewriter{}

// Name implements the Rewriter interface.
func (AnonymizationRewriter) Name() string {
	return "anonymization"
}

// Rewrite implements the Rewriter interface.
func (AnonymizationRewriter) Rewrite(ctx *sql.Context, opts *Options, node sql.Node, catalog *sql.Catalog, props *OutputProperties) (sql.Node, error) {
	builder := function.NewCallBuilder(catalog.FunctionRegistry)

	newNode, _, err := transform.Node(node, func(n sql.Node) (sql.Node, transform.TreeIdentity, error) {
		agg, ok := n.(*plan.AnonymizedAggregate)
		if !ok || anonymized(agg) {
			return n, transform.SameTree, nil
		}
		if opts.ColumnIDSequence == nil {
			return nil, transform.SameTree, ErrRewriteInternal.New("anonymization needs a column id sequence")
		}

		noised := make([]sql.Expression, 0, len(agg.Aggregations)+1)
		for _, e := range agg.Aggregations {
			call, err := builder.AnonNoise(e, agg.Epsilon)
			if err != nil {
				return nil, transform.SameTree, err
			}
			noised = append(noised, call)
		}

		count, err := builder.Build("count")
		if err != nil {
			return nil, transform.SameTree, err
		}
		noisedCount, err := builder.AnonNoise(count, agg.Epsilon)
		if err != nil {
			return nil, transform.SameTree, err
		}
		noised = append(noised, noisedCount)

		lowered := plan.NewAnonymizedAggregate(noised, agg.Groupings, agg.Child, agg.Epsilon, agg.KThreshold)

		id := opts.ColumnIDSequence.Next()
		countRef := expression.NewColumnRef(id, opts.intern(groupCountColumn), types.Int64, false)
		condition, err := builder.GreaterOrEqual(countRef, expression.NewLiteral(agg.KThreshold, types.Int64))
		if err != nil {
			return nil, transform.SameTree, err
		}
		return plan.NewFilter(condition, lowered), transform.NewTree, nil
	})
	return newNode, err
}

// anonymized reports whether the aggregate was already lowered, so running
// the rewrite again cannot stack noise on noise.
func anonymized(agg *plan.AnonymizedAggregate) bool {
	if len(agg.Aggregations) == 0 {
		return false
	}
	call, ok := agg.Aggregations[0].(*expression.FunctionCall)
	return ok && call.Name() == "$anon_noise"
}
