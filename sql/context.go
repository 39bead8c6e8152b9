// Copyright 2021 Dolthub, Inc.
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

package sql

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Context of the analysis. It carries the values and deadline of a standard
// context plus the query text being analyzed, a logger and a tracer.
type Context struct {
	context.Context
	query    string
	logger   *logrus.Entry
	tracer   opentracing.Tracer
	rootSpan opentracing.Span
}

// ContextOption is a function to configure the context.
type ContextOption func(*Context)

// WithQuery adds the original query text to the context.
func WithQuery(query string) ContextOption {
	return func(ctx *Context) {
		ctx.query = query
	}
}

// WithLogger adds the given logger to the context.
func WithLogger(logger *logrus.Entry) ContextOption {
	return func(ctx *Context) {
		ctx.logger = logger
	}
}

// WithTracer adds the given tracer to the context.
func WithTracer(t opentracing.Tracer) ContextOption {
	return func(ctx *Context) {
		ctx.tracer = t
	}
}

// WithRootSpan sets the root span of the context.
func WithRootSpan(s opentracing.Span) ContextOption {
	return func(ctx *Context) {
		ctx.rootSpan = s
	}
}

// NewContext creates a new query context. Options can be passed to configure
// the context. If some aspect of the context is not configured, the default
// value will be used.
// By default the logger is the logrus standard logger and the tracer is a
// noop tracer.
func NewContext(ctx context.Context, opts ...ContextOption) *Context {
	c := &Context{
		Context: ctx,
		tracer:  opentracing.NoopTracer{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return c
}

// NewEmptyContext returns a default context with no values set.
func NewEmptyContext() *Context {
	return NewContext(context.TODO())
}

// Query returns the query text under analysis, if any.
func (c *Context) Query() string {
	return c.query
}

// Logger returns the logger of this context.
func (c *Context) Logger() *logrus.Entry {
	return c.logger
}

// Span creates a new tracing span with the given context.
// It will return the span and a new context that should be passed to all
// children of this span.
func (c *Context) Span(
	opName string,
	opts ...opentracing.StartSpanOption,
) (opentracing.Span, *Context) {
	parentSpan := opentracing.SpanFromContext(c.Context)
	if parentSpan != nil {
		opts = append(opts, opentracing.ChildOf(parentSpan.Context()))
	}

	span := c.tracer.StartSpan(opName, opts...)
	ctx := opentracing.ContextWithSpan(c.Context, span)

	return span, c.WithContext(ctx)
}

// RootSpan returns the root span, if any.
func (c *Context) RootSpan() opentracing.Span {
	return c.rootSpan
}

// WithContext returns a copy of this context carrying the given standard
// context as its inner one.
func (c *Context) WithContext(ctx context.Context) *Context {
	nc := *c
	nc.Context = ctx
	return &nc
}

// NewErrgroup returns an errgroup for this context. Subcontexts of this
// context should be used for the goroutines the group runs.
func (c *Context) NewErrgroup() (*errgroup.Group, *Context) {
	eg, egCtx := errgroup.WithContext(c.Context)
	return eg, c.WithContext(egCtx)
}
