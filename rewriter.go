// Package sqlr rewrites analyzed SQL trees: it lowers the scoped constructs
// a resolver leaves behind (SQL defined function calls, NULLIFERROR, TYPEOF,
// WITH expressions, anonymized aggregates) into the core vocabulary engines
// execute.
package sqlr

import (
	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/analyzer"
	"github.com/dolthub/go-sql-rewriter/sql/expression/function"
)

// Rewriter rewrites analyzed trees.
type Rewriter struct {
	Catalog *sql.Catalog
	Options *analyzer.Options
}

// New creates a Rewriter with the builtin functions and the default rewrites
// enabled.
func New() *Rewriter {
	return &Rewriter{
		Catalog: &sql.Catalog{FunctionRegistry: function.NewRegistry()},
		Options: analyzer.NewOptions(),
	}
}

// RewriteStatement rewrites a statement tree until no enabled construct
// remains. The returned output holds the final tree and the accounting of
// the run.
func (r *Rewriter) RewriteStatement(ctx *sql.Context, statement sql.Statement) (*analyzer.Output, error) {
	out := analyzer.NewStatementOutput(statement)
	if err := analyzer.Rewrite(ctx, r.Options, r.Catalog, out); err != nil {
		return nil, err
	}
	return out, nil
}

// RewriteExpression rewrites a standalone expression tree, e.g. a check
// constraint or a default value.
func (r *Rewriter) RewriteExpression(ctx *sql.Context, expression sql.Expression) (*analyzer.Output, error) {
	out := analyzer.NewExpressionOutput(expression)
	if err := analyzer.Rewrite(ctx, r.Options, r.Catalog, out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddFunction registers a function with the catalog. Definitions carrying a
// body are expanded by the function inlining rewrite.
func (r *Rewriter) AddFunction(def *sql.FunctionDef) error {
	return r.Catalog.Register(def)
}
