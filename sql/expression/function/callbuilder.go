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

package function

import (
	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/expression"
	"github.com/dolthub/go-sql-rewriter/sql/types"
)

// CallBuilder mints calls to catalog functions. The rewrite stage uses it so
// replacement expressions go through the same lookup and arity checks user
// queries do.
type CallBuilder struct {
	registry sql.FunctionRegistry
}

// NewCallBuilder returns a builder minting calls against the given registry.
func NewCallBuilder(registry sql.FunctionRegistry) *CallBuilder {
	return &CallBuilder{registry: registry}
}

// Build creates a call to the named function after checking its arity.
func (b *CallBuilder) Build(name string, args ...sql.Expression) (*expression.FunctionCall, error) {
	def, err := b.registry.Function(name)
	if err != nil {
		return nil, err
	}
	if err := def.CheckArity(len(args)); err != nil {
		return nil, err
	}
	return expression.NewFunctionCall(def, args...), nil
}

// IfError builds a call evaluating try and producing the value of handle
// when try fails.
func (b *CallBuilder) IfError(try, handle sql.Expression) (*expression.FunctionCall, error) {
	return b.Build("iferror", try, handle)
}

// GreaterOrEqual builds the comparison threshold filters use.
func (b *CallBuilder) GreaterOrEqual(left, right sql.Expression) (*expression.FunctionCall, error) {
	return b.Build("$greater_or_equal", left, right)
}

// AnonNoise wraps an aggregate in the noise adding function of the
// anonymization lowering.
func (b *CallBuilder) AnonNoise(agg sql.Expression, epsilon float64) (*expression.FunctionCall, error) {
	return b.Build("$anon_noise", agg, expression.NewLiteral(epsilon, types.Float64))
}
