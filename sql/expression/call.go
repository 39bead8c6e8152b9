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

package expression

import (
	"fmt"
	"strings"

	"github.com/dolthub/go-sql-rewriter/sql"
)

// Hint is an engine hint attached to a function call. Hints never change the
// meaning of a call.
type Hint struct {
	Name  string
	Value string
}

// FunctionCall is a call to a catalog function.
type FunctionCall struct {
	def    *sql.FunctionDef
	args   []sql.Expression
	hints  []Hint
	offset int
}

var _ sql.Expression = (*FunctionCall)(nil)

// NewFunctionCall creates a call to the given function definition. The call
// carries no hints and an unknown source offset.
func NewFunctionCall(def *sql.FunctionDef, args ...sql.Expression) *FunctionCall {
	return &FunctionCall{def: def, args: args, offset: -1}
}

// WithHints returns a copy of the call carrying the given hints.
func (f *FunctionCall) WithHints(hints ...Hint) *FunctionCall {
	nf := *f
	nf.hints = hints
	return &nf
}

// WithOffset returns a copy of the call marked with the byte offset of the
// call in the original query text.
func (f *FunctionCall) WithOffset(offset int) *FunctionCall {
	nf := *f
	nf.offset = offset
	return &nf
}

// Func returns the called function definition.
func (f *FunctionCall) Func() *sql.FunctionDef {
	return f.def
}

// Name returns the name of the called function.
func (f *FunctionCall) Name() string {
	return f.def.Name
}

// Arguments returns the call arguments.
func (f *FunctionCall) Arguments() []sql.Expression {
	return f.args
}

// Hints returns the hints attached to the call, if any.
func (f *FunctionCall) Hints() []Hint {
	return f.hints
}

// Offset returns the byte offset of the call in the original query text, or
// -1 when it is unknown.
func (f *FunctionCall) Offset() int {
	return f.offset
}

// Resolved implements sql.Node.
func (f *FunctionCall) Resolved() bool {
	for _, arg := range f.args {
		if !arg.Resolved() {
			return false
		}
	}
	return true
}

// Type implements sql.Expression. Calls to functions without a declared
// return type take the type of their first argument.
func (f *FunctionCall) Type() sql.Type {
	if f.def.ReturnType != nil {
		return f.def.ReturnType
	}
	if len(f.args) > 0 {
		return f.args[0].Type()
	}
	return nil
}

// IsNullable implements sql.Expression.
func (f *FunctionCall) IsNullable() bool {
	return true
}

// Children implements sql.Node.
func (f *FunctionCall) Children() []sql.Node {
	if len(f.args) == 0 {
		return nil
	}
	children := make([]sql.Node, len(f.args))
	for i, arg := range f.args {
		children[i] = arg
	}
	return children
}

// WithChildren implements sql.Node.
func (f *FunctionCall) WithChildren(children ...sql.Node) (sql.Node, error) {
	if len(children) != len(f.args) {
		return nil, sql.ErrInvalidChildrenNumber.New(f, len(children), len(f.args))
	}

	args := make([]sql.Expression, len(children))
	for i, child := range children {
		arg, err := sql.ExpressionChild(f, child)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	nf := *f
	nf.args = args
	return &nf, nil
}

func (f *FunctionCall) String() string {
	args := make([]string, len(f.args))
	for i, arg := range f.args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", strings.ToLower(f.def.Name), strings.Join(args, ", "))
}
