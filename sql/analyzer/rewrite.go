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
	"fmt"
	"os"
	"sort"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/expression"
	"github.com/dolthub/go-sql-rewriter/sql/transform"
)

const debugRewriterKey = "DEBUG_REWRITER"

const defaultMaxRewriteIterations = 25

// debugRewriteChecks makes every run cross-check the resolver reported
// relevant rewrites against the tree, even when the run would otherwise
// trust them. Set with the DEBUG_REWRITER environment variable.
var debugRewriteChecks = func() bool {
	_, ok := os.LookupEnv(debugRewriterKey)
	return ok
}()

// ErrMaxRewriteIterations is returned when the rewrite loop still finds
// applicable rewrites after the configured number of passes.
var ErrMaxRewriteIterations = errors.NewKind("query exceeded configured maximum number of rewriter iterations (%d) without converging")

// ErrRewriteInternal is returned when rewriting breaks one of its own
// invariants. It always indicates a bug in a rewriter or in the rewrite
// loop, never in the query.
var ErrRewriteInternal = errors.NewKind("internal rewriter error: %s")

// Rewrite lowers the enabled constructs of the output's tree until none
// remain, running rewriters to a fixpoint. The tree is replaced in place;
// on error the output holds the tree as of the last completed rewriter.
//
// Errors carrying query offsets are rendered according to opts.ErrorFormat
// against the context's query text.
func Rewrite(ctx *sql.Context, opts *Options, catalog *sql.Catalog, out *Output) error {
	if opts == nil {
		return ErrRewriteInternal.New("rewrite called with no options")
	}
	if out == nil {
		return ErrRewriteInternal.New("rewrite called with no output")
	}
	out.init()

	tags := opentracing.Tags{}
	if root := out.Root(); root != nil {
		tags["plan"] = root.String()
	}
	span, ctx := ctx.Span("rewrite", tags)

	start := time.Now()
	err := rewriteTree(ctx, opts, catalog, out)
	out.RuntimeInfo.RewriteWall += time.Since(start)

	span.SetTag("passes", len(out.RuntimeInfo.Passes))
	span.Finish()

	return convertErrorLocation(ctx.Query(), opts.ErrorFormat, err)
}

// rewriteTree runs the rewrite loop proper. Rewrite wraps it with tracing,
// accounting and error location rendering.
func rewriteTree(ctx *sql.Context, opts *Options, catalog *sql.Catalog, out *Output) error {
	if opts.PreRewriteCallback != nil {
		if err := opts.PreRewriteCallback(ctx, out.Root()); err != nil {
			return err
		}
	}
	if out.statement != nil && out.expression != nil {
		return ErrRewriteInternal.New("output has both a statement and an expression root")
	}

	hasUnits := len(opts.LeadingRewriters) > 0 || len(opts.TrailingRewriters) > 0
	if out.Root() == nil || (opts.EnabledRewrites.Empty() && !hasUnits) {
		return nil
	}

	registry := opts.registry()
	debug := debugRewriteChecks

	// The resolver reports which rewrites it saw constructs for, but
	// rewriters can disagree with it once they start changing the tree, so
	// by default the tree itself is detected against. Runs that disable the
	// checker trust the resolver; debug runs cross-check the two.
	var detected RewriteSet
	if debug || !opts.DisableRewriteChecker {
		var err error
		detected, err = FindRelevantRewriters(out.Root())
		if err != nil {
			return err
		}
		reported := out.Properties.RelevantRewrites
		if debug && !reported.Empty() && !detected.Equal(reported) {
			return ErrRewriteInternal.New(fmt.Sprintf(
				"resolver reported relevant rewrites %s, detected %s", reported, detected))
		}
	}
	if opts.DisableRewriteChecker {
		detected = out.Properties.RelevantRewrites
	}

	if detected.Empty() && !hasUnits {
		return nil
	}
	toApply := opts.EnabledRewrites.Intersect(detected)
	if toApply.Empty() && !hasUnits {
		return nil
	}

	// Rewriters run under options derived from the caller's, created the
	// first time any rewriter actually runs. A derived env doubling as the
	// "anything ran" flag keeps runs that fast path out from paying for it.
	var env *Options
	fallback := sql.NewColumnIDSequence()
	deriveEnv := func() *Options {
		if env == nil {
			env = optionsForRewrite(opts, out, fallback)
		}
		return env
	}

	apply := func(rewriter Rewriter) error {
		span, ctx := ctx.Span(rewriter.Name())
		start := time.Now()
		node, err := rewriter.Rewrite(ctx, deriveEnv(), out.Root(), catalog, &out.Properties)
		out.RuntimeInfo.recordRewriter(rewriter.Name(), time.Since(start))
		span.Finish()
		if err != nil {
			return err
		}
		if node == nil {
			return ErrRewriteInternal.New("rewriter " + rewriter.Name() + " returned no tree")
		}
		return out.installRoot(node)
	}

	for _, rewriter := range opts.LeadingRewriters {
		if err := apply(rewriter); err != nil {
			return err
		}
	}

	if !toApply.Empty() {
		ctx.Logger().Debugf("rewrites to apply: %s", toApply)
		prevFingerprint := fingerprint(out.Root())
		iterations := 0
		for {
			iterations++
			if iterations > opts.maxIterations() {
				return ErrMaxRewriteIterations.New(opts.maxIterations())
			}

			passStart := time.Now()
			applied := RewriteSet{}
			for _, kind := range registry.RegistrationOrder() {
				if !toApply.Contains(kind) {
					continue
				}
				rewriter := registry.Rewriter(kind)
				if rewriter == nil {
					return ErrRewriteInternal.New("no rewriter registered for " + kind.String())
				}
				if err := apply(rewriter); err != nil {
					return err
				}
				applied = applied.Add(kind)
			}

			// Rewriters eliminate their own constructs but may introduce each
			// other's, so the tree is re-detected after every pass. Kinds whose
			// constructs survive on purpose are dropped here or they would
			// schedule passes forever.
			redetected, err := FindRelevantRewriters(out.Root())
			if err != nil {
				return err
			}
			toApply = opts.EnabledRewrites.Intersect(registry.dropExempt(redetected))

			passFingerprint := fingerprint(out.Root())
			out.RuntimeInfo.recordPass(applied, passFingerprint, time.Since(passStart))
			if !applied.Empty() && passFingerprint == prevFingerprint {
				ctx.Logger().WithField("pass", iterations).
					Warnf("rewrites %s applied but the plan did not change", applied)
			}
			prevFingerprint = passFingerprint

			if toApply.Empty() {
				break
			}
		}
	}

	for _, rewriter := range opts.TrailingRewriters {
		if err := apply(rewriter); err != nil {
			return err
		}
	}

	if env != nil {
		out.MaxColumnID = env.ColumnIDSequence.Last()

		if opts.ValidateAfterRewrite {
			start := time.Now()
			err := validateOutput(ctx, env, out)
			out.RuntimeInfo.ValidateWall += time.Since(start)
			if err != nil {
				return err
			}
		}

		if opts.FieldsAccessedMode == LegacyFieldsAccessed {
			markFieldsAccessed(out)
		}
	}

	if out.Root() == nil {
		return ErrRewriteInternal.New("rewriting left the output with no tree")
	}
	return nil
}

// markFieldsAccessed records the id of every column the final tree
// references, for callers that predate access tracking and expect the
// whole tree to count as read.
func markFieldsAccessed(out *Output) {
	seen := make(map[sql.ColumnID]struct{})
	transform.Inspect(out.Root(), func(n sql.Node) bool {
		if ref, ok := n.(*expression.ColumnRef); ok {
			seen[ref.ID()] = struct{}{}
		}
		return true
	})

	ids := make([]sql.ColumnID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out.AccessedColumns = ids
}
