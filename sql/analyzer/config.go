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
	"io"

	"gopkg.in/src-d/go-errors.v1"
	"gopkg.in/yaml.v2"

	"github.com/dolthub/go-sql-rewriter/sql"
	"github.com/dolthub/go-sql-rewriter/sql/types"
)

// ErrUnknownErrorFormat is returned for config files naming an error format
// that does not exist.
var ErrUnknownErrorFormat = errors.NewKind("unknown error format: '%s'")

// Config is the file form of rewrite options. Anything config files cannot
// express, such as custom rewriters, is set on the built Options afterwards.
type Config struct {
	// EnabledRewrites names the rewrites to enable. Omitting the key keeps
	// the default set; an explicitly empty list disables all rewrites.
	EnabledRewrites []string `yaml:"enabled_rewrites"`

	// MaxRewriteIterations caps rewrite passes. Zero keeps the default cap.
	MaxRewriteIterations int `yaml:"max_rewrite_iterations"`

	// DisableRewriteChecker trusts resolver reported relevant rewrites.
	DisableRewriteChecker bool `yaml:"disable_rewrite_checker"`

	// ValidateAfterRewrite validates the final tree of every run.
	ValidateAfterRewrite bool `yaml:"validate_after_rewrite"`

	// ErrorFormat is one of "payload", "one_line" or "caret". Empty means
	// payload.
	ErrorFormat string `yaml:"error_format"`

	// Parameters maps parameter names to type names.
	Parameters map[string]string `yaml:"parameters"`
}

// LoadConfig reads a YAML config.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Options builds rewrite options from the config, resolving rewrite and
// type names.
func (c *Config) Options() (*Options, error) {
	opts := NewOptions()

	if c.EnabledRewrites != nil {
		kinds := make([]RewriteKind, len(c.EnabledRewrites))
		for i, name := range c.EnabledRewrites {
			kind, err := ParseRewriteKind(name)
			if err != nil {
				return nil, err
			}
			kinds[i] = kind
		}
		opts.EnabledRewrites = NewRewriteSet(kinds...)
	}

	opts.MaxRewriteIterations = c.MaxRewriteIterations
	opts.DisableRewriteChecker = c.DisableRewriteChecker
	opts.ValidateAfterRewrite = c.ValidateAfterRewrite

	switch c.ErrorFormat {
	case "", "payload":
		opts.ErrorFormat = ErrorFormatPayload
	case "one_line":
		opts.ErrorFormat = ErrorFormatOneLine
	case "caret":
		opts.ErrorFormat = ErrorFormatMultiLineWithCaret
	default:
		return nil, ErrUnknownErrorFormat.New(c.ErrorFormat)
	}

	if len(c.Parameters) > 0 {
		opts.Parameters = make(map[string]sql.Type, len(c.Parameters))
		for name, typeName := range c.Parameters {
			typ, err := types.LookupByName(typeName)
			if err != nil {
				return nil, err
			}
			opts.Parameters[name] = typ
		}
		opts.AllowUndeclaredParameters = false
	}

	return opts, nil
}
