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
	"sync"

	"gopkg.in/src-d/go-errors.v1"
)

// ErrDuplicateRewrite is returned when a rewriter is registered twice for
// the same kind.
var ErrDuplicateRewrite = errors.NewKind("rewrite '%s' is already registered")

// Registry maps rewrite kinds to their rewriters. Iteration over a registry
// follows registration order, which fixes the order rewriters run in within
// a pass independently of the order their target constructs were detected.
type Registry struct {
	mu         sync.RWMutex
	order      []RewriteKind
	rewriters  map[RewriteKind]Rewriter
	noRedetect map[RewriteKind]struct{}
}

// NewRegistry returns an empty rewriter registry.
func NewRegistry() *Registry {
	return &Registry{
		rewriters:  make(map[RewriteKind]Rewriter),
		noRedetect: make(map[RewriteKind]struct{}),
	}
}

// Register adds a rewriter for the given kind. Registering the same kind
// twice is an error.
func (r *Registry) Register(kind RewriteKind, rewriter Rewriter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rewriters[kind]; ok {
		return ErrDuplicateRewrite.New(kind)
	}
	r.rewriters[kind] = rewriter
	r.order = append(r.order, kind)
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// registration at package init time.
func (r *Registry) MustRegister(kind RewriteKind, rewriter Rewriter) {
	if err := r.Register(kind, rewriter); err != nil {
		panic(err)
	}
}

// ExemptFromRedetection marks a kind whose target constructs survive its own
// rewriter, so detecting them again after a pass must not schedule another
// round. Anonymization is the canonical case: it decorates the anonymized
// aggregate in place rather than eliminating it.
func (r *Registry) ExemptFromRedetection(kind RewriteKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.noRedetect[kind] = struct{}{}
}

// RegistrationOrder returns the registered kinds in registration order.
func (r *Registry) RegistrationOrder() []RewriteKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order := make([]RewriteKind, len(r.order))
	copy(order, r.order)
	return order
}

// Rewriter returns the rewriter registered for the given kind, or nil.
func (r *Registry) Rewriter(kind RewriteKind) Rewriter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rewriters[kind]
}

// dropExempt removes redetection-exempt kinds from a freshly detected set.
func (r *Registry) dropExempt(detected RewriteSet) RewriteSet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for kind := range r.noRedetect {
		detected = detected.Remove(kind)
	}
	return detected
}

var defaultRegistry *Registry
var defaultRegistryOnce sync.Once

// DefaultRegistry returns the registry holding the built-in rewriters. The
// registration order below is load-bearing: within a pass, rewriters run in
// this order regardless of which constructs triggered the pass.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		defaultRegistry.MustRegister(RewriteInlineFunctions, InlineFunctionsRewriter{})
		defaultRegistry.MustRegister(RewriteNullIfError, NullIfErrorRewriter{})
		defaultRegistry.MustRegister(RewriteTypeof, TypeofRewriter{})
		defaultRegistry.MustRegister(RewriteWithExpr, WithExprRewriter{})
		defaultRegistry.MustRegister(RewriteAnonymization, AnonymizationRewriter{})
		defaultRegistry.ExemptFromRedetection(RewriteAnonymization)
	})
	return defaultRegistry
}

// DefaultEnabledRewrites returns the rewrites enabled when the caller does
// not choose a set. Anonymization is opt-in because it changes query results.
func DefaultEnabledRewrites() RewriteSet {
	return NewRewriteSet(
		RewriteInlineFunctions,
		RewriteNullIfError,
		RewriteTypeof,
		RewriteWithExpr,
	)
}
