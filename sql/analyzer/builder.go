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

// Builder provides an easy way to generate rewrite options with custom
// rewriters and properties.
type Builder struct {
	enabledRewrites      RewriteSet
	enabledSet           bool
	leadingRewriters     []Rewriter
	trailingRewriters    []Rewriter
	maxRewriteIterations int
	disableChecker       bool
	validateAfterRewrite bool
	errorFormat          ErrorFormat
	registry             *Registry
	parameters           map[string]sql.Type
}

// NewBuilder creates a new Builder with the default rewrites enabled.
func NewBuilder() *Builder {
	return &Builder{
		parameters: make(map[string]sql.Type),
	}
}

// WithEnabledRewrites replaces the enabled rewrite set.
func (b *Builder) WithEnabledRewrites(kinds ...RewriteKind) *Builder {
	b.enabledRewrites = NewRewriteSet(kinds...)
	b.enabledSet = true

	return b
}

// AddLeadingRewriter appends a rewriter that runs once before the main loop.
func (b *Builder) AddLeadingRewriter(rewriter Rewriter) *Builder {
	b.leadingRewriters = append(b.leadingRewriters, rewriter)

	return b
}

// AddTrailingRewriter appends a rewriter that runs once after the main loop.
func (b *Builder) AddTrailingRewriter(rewriter Rewriter) *Builder {
	b.trailingRewriters = append(b.trailingRewriters, rewriter)

	return b
}

// WithMaxRewriteIterations caps the number of passes the main loop makes.
func (b *Builder) WithMaxRewriteIterations(max int) *Builder {
	b.maxRewriteIterations = max

	return b
}

// WithValidateAfterRewrite runs plan validation on the final tree.
func (b *Builder) WithValidateAfterRewrite() *Builder {
	b.validateAfterRewrite = true

	return b
}

// WithoutRewriteChecker makes runs trust the resolver-reported relevant
// rewrites instead of detecting them from the tree.
func (b *Builder) WithoutRewriteChecker() *Builder {
	b.disableChecker = true

	return b
}

// WithRegistry replaces the rewriter registry.
func (b *Builder) WithRegistry(registry *Registry) *Builder {
	b.registry = registry

	return b
}

// WithErrorFormat selects how error locations are rendered.
func (b *Builder) WithErrorFormat(format ErrorFormat) *Builder {
	b.errorFormat = format

	return b
}

// WithParameter declares a named parameter and its type.
func (b *Builder) WithParameter(name string, typ sql.Type) *Builder {
	b.parameters[name] = typ

	return b
}

// Build generates the rewrite options.
func (b *Builder) Build() *Options {
	opts := NewOptions()
	if b.enabledSet {
		opts.EnabledRewrites = b.enabledRewrites
	}
	opts.LeadingRewriters = b.leadingRewriters
	opts.TrailingRewriters = b.trailingRewriters
	opts.MaxRewriteIterations = b.maxRewriteIterations
	opts.DisableRewriteChecker = b.disableChecker
	opts.ValidateAfterRewrite = b.validateAfterRewrite
	opts.ErrorFormat = b.errorFormat
	opts.Registry = b.registry
	if len(b.parameters) > 0 {
		opts.Parameters = make(map[string]sql.Type, len(b.parameters))
		for name, typ := range b.parameters {
			opts.Parameters[name] = typ
		}
		opts.AllowUndeclaredParameters = false
	}
	return opts
}
