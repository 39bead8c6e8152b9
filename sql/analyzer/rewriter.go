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
	"github.com/dolthub/go-sql-rewriter/sql"
)

// Rewriter transforms one class of resolved construct into simpler plan
// nodes and expressions. Implementations must be stateless: the same
// Rewriter value is shared by every rewrite run in the process.
//
// Rewrite returns the rewritten tree, which may be the input tree unchanged
// when the rewriter found nothing to do. Returning nil is an internal error.
type Rewriter interface {
	// Name returns a short stable name used for spans and accounting.
	Name() string
	// Rewrite transforms node, allocating any new column ids from
	// opts.ColumnIDSequence and recording interned names in props.
	Rewrite(ctx *sql.Context, opts *Options, node sql.Node, catalog *sql.Catalog, props *OutputProperties) (sql.Node, error)
}

// RewriterFunc adapts a function to the Rewriter interface.
type RewriterFunc struct {
	RewriterName string
	Fn           func(ctx *sql.Context, opts *Options, node sql.Node, catalog *sql.Catalog, props *OutputProperties) (sql.Node, error)
}

var _ Rewriter = RewriterFunc{}

// Name implements the Rewriter interface.
func (f RewriterFunc) Name() string {
	return f.RewriterName
}

// Rewrite implements the Rewriter interface.
func (f RewriterFunc) Rewrite(ctx *sql.Context, opts *Options, node sql.Node, catalog *sql.Catalog, props *OutputProperties) (sql.Node, error) {
	return f.Fn(ctx, opts, node, catalog, props)
}
