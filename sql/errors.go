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
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrInvalidType is thrown when there is an unexpected type at some part of
	// the analysis where a specific type was expected.
	ErrInvalidType = errors.NewKind("invalid type: %s")

	// ErrInvalidChildrenNumber is returned from WithChildren when the wrong
	// number of children is given to a node.
	ErrInvalidChildrenNumber = errors.NewKind("%T: invalid children number, got %d, expected %d")

	// ErrInvalidChildType is returned from WithChildren when a child has the
	// wrong flavor for its slot, e.g. a statement where an expression belongs.
	ErrInvalidChildType = errors.NewKind("%T: invalid child type, got %T, expected %s")

	// ErrFunctionNotFound is thrown when a function is not found.
	ErrFunctionNotFound = errors.NewKind("function: '%s' not found%s")

	// ErrFunctionAlreadyRegistered is thrown when a function is already registered.
	ErrFunctionAlreadyRegistered = errors.NewKind("function '%s' already registered")

	// ErrInvalidArgumentNumber is returned when the number of arguments to call a
	// function is different from the function arity.
	ErrInvalidArgumentNumber = errors.NewKind("function '%s' expected %v arguments, %v received")

	// ErrTypeNotFound is thrown when a type name does not resolve against the
	// known scalar types.
	ErrTypeNotFound = errors.NewKind("type not found: %s%s")

	// ErrValueNotConvertible is thrown when a value can not be converted to a
	// type it is being coerced to.
	ErrValueNotConvertible = errors.NewKind("value %v can't be converted to %s")
)
