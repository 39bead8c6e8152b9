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

// NameResolutionMode controls how loosely names bind during analysis.
type NameResolutionMode byte

const (
	// NameResolutionDefault resolves names with the default lookup rules.
	NameResolutionDefault NameResolutionMode = iota
	// NameResolutionStrict rejects any name that does not resolve exactly.
	// Rewriters always run under strict resolution so the constructs they
	// build cannot depend on lookup leniency.
	NameResolutionStrict
)

// ParameterMode controls how query parameters are referenced.
type ParameterMode byte

const (
	// ParameterModeNamed references parameters by name, as in @param.
	ParameterModeNamed ParameterMode = iota
	// ParameterModePositional references parameters by position, as in ?.
	ParameterModePositional
)

// StatementContext describes the surrounding construct a statement is
// analyzed for.
type StatementContext byte

const (
	// StatementContextDefault analyzes a statement standing alone.
	StatementContextDefault StatementContext = iota
	// StatementContextModule analyzes a statement inside a module body.
	StatementContextModule
)

// FieldsAccessedMode selects how accessed-column bookkeeping behaves after
// a rewrite run.
type FieldsAccessedMode byte

const (
	// ClearFields leaves access tracking to the caller.
	ClearFields FieldsAccessedMode = iota
	// LegacyFieldsAccessed marks every column referenced by the final tree
	// as accessed, matching the pre-tracking behavior older callers expect.
	LegacyFieldsAccessed
)

// Feature identifies an optional language feature.
type Feature int

const (
	// FeatureWithExpression allows WITH expressions in the analyzed query.
	// Rewriters that build WITH expressions force it on in their derived
	// options regardless of the caller's setting.
	FeatureWithExpression Feature = iota
	// FeatureAnonymization allows anonymization clauses in the analyzed
	// query.
	FeatureAnonymization
)

// Options configures a rewrite run. The zero value is not usable; call
// NewOptions.
type Options struct {
	// EnabledRewrites is the set of rewrites the caller wants applied.
	// Detection may find more, but only enabled kinds run.
	EnabledRewrites RewriteSet

	// LeadingRewriters run exactly once before the main loop, in order.
	LeadingRewriters []Rewriter

	// TrailingRewriters run exactly once after the main loop, in order.
	TrailingRewriters []Rewriter

	// MaxRewriteIterations caps the number of passes the main loop makes
	// before giving up on convergence. Zero means the default cap.
	MaxRewriteIterations int

	// DisableRewriteChecker makes the run trust the resolver-reported
	// relevant rewrites instead of detecting them from the tree.
	DisableRewriteChecker bool

	// ValidateAfterRewrite runs plan validation on the final tree.
	ValidateAfterRewrite bool

	// FieldsAccessedMode selects accessed-column bookkeeping after the run.
	FieldsAccessedMode FieldsAccessedMode

	// ErrorFormat selects how error locations are rendered by the
	// analysis entry points.
	ErrorFormat ErrorFormat

	// NameResolutionMode is the name binding mode of the original analysis.
	NameResolutionMode NameResolutionMode

	// ParameterMode is the parameter reference mode of the original
	// analysis.
	ParameterMode ParameterMode

	// StatementContext is the statement context of the original analysis.
	StatementContext StatementContext

	// AllowUndeclaredParameters permits parameters with no declared type.
	AllowUndeclaredParameters bool

	// Parameters declares the named parameters available to the query.
	Parameters map[string]sql.Type

	// ExpressionColumns declares the in-scope columns of a standalone
	// expression.
	ExpressionColumns map[string]sql.Type

	// ColumnIDSequence allocates column ids for new columns. When nil, the
	// run advances a private sequence past the maximum id in the tree.
	ColumnIDSequence *sql.ColumnIDSequence

	// IDPool interns identifier strings minted during the run. When nil,
	// the run reuses the output's pool.
	IDPool *sql.IDPool

	// Registry supplies the rewriters. When nil, DefaultRegistry is used.
	Registry *Registry

	// PreRewriteCallback runs on the resolved tree before any rewriting.
	// A non-nil error aborts the run.
	PreRewriteCallback func(ctx *sql.Context, node sql.Node) error

	features map[Feature]bool
}

// NewOptions returns options with the default rewrites enabled and
// undeclared parameters allowed.
func NewOptions() *Options {
	return &Options{
		EnabledRewrites:           DefaultEnabledRewrites(),
		AllowUndeclaredParameters: true,
		features:                  make(map[Feature]bool),
	}
}

// SetFeature enables or disables a language feature.
func (o *Options) SetFeature(f Feature, enabled bool) {
	if o.features == nil {
		o.features = make(map[Feature]bool)
	}
	o.features[f] = enabled
}

// FeatureEnabled reports whether a language feature is enabled.
func (o *Options) FeatureEnabled(f Feature) bool {
	return o.features[f]
}

// Copy returns a deep copy of the options. Shared infrastructure such as
// the registry, the id sequence, and the intern pool is carried by
// reference.
func (o *Options) Copy() *Options {
	copied := *o

	copied.EnabledRewrites = NewRewriteSet(o.EnabledRewrites.Kinds()...)

	if o.LeadingRewriters != nil {
		copied.LeadingRewriters = make([]Rewriter, len(o.LeadingRewriters))
		copy(copied.LeadingRewriters, o.LeadingRewriters)
	}
	if o.TrailingRewriters != nil {
		copied.TrailingRewriters = make([]Rewriter, len(o.TrailingRewriters))
		copy(copied.TrailingRewriters, o.TrailingRewriters)
	}

	if o.Parameters != nil {
		copied.Parameters = make(map[string]sql.Type, len(o.Parameters))
		for name, typ := range o.Parameters {
			copied.Parameters[name] = typ
		}
	}
	if o.ExpressionColumns != nil {
		copied.ExpressionColumns = make(map[string]sql.Type, len(o.ExpressionColumns))
		for name, typ := range o.ExpressionColumns {
			copied.ExpressionColumns[name] = typ
		}
	}

	copied.features = make(map[Feature]bool, len(o.features))
	for f, enabled := range o.features {
		copied.features[f] = enabled
	}

	return &copied
}

// maxIterations returns the configured pass cap, or the default.
func (o *Options) maxIterations() int {
	if o.MaxRewriteIterations > 0 {
		return o.MaxRewriteIterations
	}
	return defaultMaxRewriteIterations
}

// registry returns the configured registry, or the default one.
func (o *Options) registry() *Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return DefaultRegistry()
}

// intern returns the pooled copy of an identifier, or the identifier itself
// when no pool is configured.
func (o *Options) intern(name string) string {
	if o.IDPool == nil {
		return name
	}
	return o.IDPool.Intern(name)
}
