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

package types

import (
	"strings"

	"github.com/dolthub/go-sql-rewriter/internal/similartext"
	"github.com/dolthub/go-sql-rewriter/sql"
)

// Default contains every scalar type of the vocabulary.
var Default = []sql.Type{
	Int64,
	Float64,
	Boolean,
	Text,
}

// LookupByName resolves a type from its name, case insensitively.
func LookupByName(name string) (sql.Type, error) {
	for _, t := range Default {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}

	names := make([]string, len(Default))
	for i, t := range Default {
		names[i] = t.String()
	}
	similar := similartext.Find(names, strings.ToUpper(name))
	return nil, sql.ErrTypeNotFound.New(name, similar)
}
