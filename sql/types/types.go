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

// Package types contains the scalar types of the analyzed vocabulary.
package types

import (
	"github.com/spf13/cast"

	"github.com/dolthub/go-sql-rewriter/sql"
)

var (
	// Int64 is a 64 bit signed integer type.
	Int64 sql.Type = numberType{name: "INT64"}

	// Float64 is a 64 bit floating point type.
	Float64 sql.Type = numberType{name: "FLOAT64", float: true}

	// Boolean is a true/false type.
	Boolean sql.Type = boolType{}

	// Text is a variable length string type.
	Text sql.Type = textType{}
)

type numberType struct {
	name  string
	float bool
}

func (t numberType) String() string {
	return t.name
}

func (t numberType) Equals(other sql.Type) bool {
	ot, ok := other.(numberType)
	return ok && ot.name == t.name
}

func (t numberType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	if t.float {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil, sql.ErrValueNotConvertible.New(v, t.name)
		}
		return f, nil
	}

	i, err := cast.ToInt64E(v)
	if err != nil {
		return nil, sql.ErrValueNotConvertible.New(v, t.name)
	}
	return i, nil
}

type boolType struct{}

func (t boolType) String() string {
	return "BOOL"
}

func (t boolType) Equals(other sql.Type) bool {
	_, ok := other.(boolType)
	return ok
}

func (t boolType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	b, err := cast.ToBoolE(v)
	if err != nil {
		return nil, sql.ErrValueNotConvertible.New(v, t.String())
	}
	return b, nil
}

type textType struct{}

func (t textType) String() string {
	return "TEXT"
}

func (t textType) Equals(other sql.Type) bool {
	_, ok := other.(textType)
	return ok
}

func (t textType) Convert(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, sql.ErrValueNotConvertible.New(v, t.String())
	}
	return s, nil
}
