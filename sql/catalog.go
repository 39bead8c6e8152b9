package sql

import (
	"strings"

	"github.com/dolthub/go-sql-rewriter/internal/similartext"
)

// Catalog holds the functions available to analyzed queries.
type Catalog struct {
	FunctionRegistry
}

// NewCatalog returns a new empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		FunctionRegistry: NewFunctionRegistry(),
	}
}

// FunctionDef describes one function known to the catalog. Definitions are
// created once at setup time and never modified afterwards.
type FunctionDef struct {
	// Name of the function, case insensitive.
	Name string
	// ArgTypes are the declared argument types. A nil entry accepts any type.
	ArgTypes []Type
	// Variadic, when set, lets the last declared argument repeat.
	Variadic bool
	// ReturnType of calls to this function. A nil ReturnType means calls take
	// the type of their first argument.
	ReturnType Type
	// Builtin is true for engine defined functions. Functions defined by a
	// SQL body are not builtin and are candidates for inlining.
	Builtin bool
	// Body is the analyzed body of a SQL defined function, nil for builtins.
	Body Expression
	// ArgNames are the names the body refers to its arguments by. Set only
	// when Body is.
	ArgNames []string
}

// CheckArity returns an error unless the function accepts n arguments.
func (d *FunctionDef) CheckArity(n int) error {
	want := len(d.ArgTypes)
	if d.Variadic {
		if n < want-1 {
			return ErrInvalidArgumentNumber.New(d.Name, want-1, n)
		}
		return nil
	}
	if n != want {
		return ErrInvalidArgumentNumber.New(d.Name, want, n)
	}
	return nil
}

// FunctionRegistry is used to register functions. It is used both for builtin
// and SQL defined functions.
type FunctionRegistry map[string]*FunctionDef

// NewFunctionRegistry creates a new FunctionRegistry.
func NewFunctionRegistry() FunctionRegistry {
	return make(FunctionRegistry)
}

// Register registers the given function definitions. Names are case
// insensitive and may not repeat.
func (r FunctionRegistry) Register(defs ...*FunctionDef) error {
	for _, def := range defs {
		name := strings.ToLower(def.Name)
		if _, ok := r[name]; ok {
			return ErrFunctionAlreadyRegistered.New(name)
		}
		r[name] = def
	}
	return nil
}

// MustRegister registers the given function definitions. If any function is
// already registered it panics.
func (r FunctionRegistry) MustRegister(defs ...*FunctionDef) {
	if err := r.Register(defs...); err != nil {
		panic(err)
	}
}

// Function returns the function with the given name.
func (r FunctionRegistry) Function(name string) (*FunctionDef, error) {
	if len(r) == 0 {
		return nil, ErrFunctionNotFound.New(name, "")
	}

	name = strings.ToLower(name)
	if def, ok := r[name]; ok {
		return def, nil
	}

	similar := similartext.FindFromMap(r, name)
	return nil, ErrFunctionNotFound.New(name, similar)
}
