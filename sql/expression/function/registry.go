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

// Package function contains the builtin functions of the analyzed vocabulary
// and the builder the rewrite stage uses to mint calls to them.
package function

import (
	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/types"
)

// Defaults are the builtin functions every catalog starts with. A nil
// argument type accepts any expression, a nil return type means calls take
// the type of their first argument.
var Defaults = []*sql.FunctionDef{
	{Name: "abs", Builtin: true, ArgTypes: []sql.Type{nil}},
	{Name: "lower", Builtin: true, ArgTypes: []sql.Type{types.Text}, ReturnType: types.Text},
	{Name: "upper", Builtin: true, ArgTypes: []sql.Type{types.Text}, ReturnType: types.Text},
	{Name: "concat", Builtin: true, ArgTypes: []sql.Type{types.Text}, Variadic: true, ReturnType: types.Text},

	{Name: "sum", Builtin: true, ArgTypes: []sql.Type{nil}},
	{Name: "min", Builtin: true, ArgTypes: []sql.Type{nil}},
	{Name: "max", Builtin: true, ArgTypes: []sql.Type{nil}},
	{Name: "avg", Builtin: true, ArgTypes: []sql.Type{nil}, ReturnType: types.Float64},
	{Name: "count", Builtin: true, ArgTypes: []sql.Type{}, ReturnType: types.Int64},

	{Name: "iferror", Builtin: true, ArgTypes: []sql.Type{nil, nil}},
	{Name: "nulliferror", Builtin: true, ArgTypes: []sql.Type{nil}},
	{Name: "typeof", Builtin: true, ArgTypes: []sql.Type{nil}, ReturnType: types.Text},

	// Internal functions the rewrite stage emits. Their names are not
	// reachable from query text.
	{Name: "$anon_noise", Builtin: true, ArgTypes: []sql.Type{nil, types.Float64}},
	{Name: "$greater_or_equal", Builtin: true, ArgTypes: []sql.Type{nil, nil}, ReturnType: types.Boolean},
}

// NewRegistry returns a function registry preloaded with Defaults.
func NewRegistry() sql.FunctionRegistry {
	r := sql.NewFunctionRegistry()
	r.MustRegister(Defaults...)
	return r
}
