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
	"strings"

	"gopkg.in/src-d/go-errors.v1"

	"github.com/dolthub/go-sql-rewriter/internal/similartext"
)

// RewriteKind identifies one registered rewrite. The declaration order below
// is the registration order of the default registry, which is also the order
// the rewrite loop applies rewrites in.
type RewriteKind int

const (
	// RewriteInlineFunctions replaces calls to SQL defined functions with
	// their bodies.
	RewriteInlineFunctions RewriteKind = iota
	// RewriteNullIfError lowers NULLIFERROR calls onto IFERROR.
	RewriteNullIfError
	// RewriteTypeof lowers TYPEOF calls to type name literals.
	RewriteTypeof
	// RewriteWithExpr lowers with-expressions by substituting their bindings.
	RewriteWithExpr
	// RewriteAnonymization lowers anonymized aggregations to noised ones
	// behind a group size threshold.
	RewriteAnonymization
)

// ErrUnknownRewrite is returned when a name does not match any rewrite kind.
var ErrUnknownRewrite = errors.NewKind("unknown rewrite: '%s'%s")

var rewriteKindNames = map[RewriteKind]string{
	RewriteInlineFunctions: "inline_functions",
	RewriteNullIfError:     "nulliferror",
	RewriteTypeof:          "typeof",
	RewriteWithExpr:        "with_expr",
	RewriteAnonymization:   "anonymization",
}

func (k RewriteKind) String() string {
	if name, ok := rewriteKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("rewrite(%d)", int(k))
}

// ParseRewriteKind resolves a rewrite kind from its name, case insensitively.
func ParseRewriteKind(name string) (RewriteKind, error) {
	lowered := strings.ToLower(name)
	for kind, kindName := range rewriteKindNames {
		if kindName == lowered {
			return kind, nil
		}
	}

	names := make([]string, 0, len(rewriteKindNames))
	for _, kindName := range rewriteKindNames {
		names = append(names, kindName)
	}
	return 0, ErrUnknownRewrite.New(name, similartext.Find(names, lowered))
}
