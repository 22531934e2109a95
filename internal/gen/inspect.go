// Package gen generates Tabular implementations for struct types.
package gen

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"
	"slices"

	"github.com/bjaus/tablefy"
	"github.com/bjaus/tablefy/internal/annotation"
)

// ErrTypeNotFound is returned when a requested type is not declared in the
// package.
var ErrTypeNotFound = errors.New("type not found")

// Struct describes one record type to generate methods for.
type Struct struct {
	Name   string
	Fields []Field
}

// Field describes one struct field in declaration order.
type Field struct {
	Name   string
	Header string
	Type   types.Type

	// Optional is the number of pointer levels wrapping the value. Any nil
	// level renders as the empty string.
	Optional int

	// Direct is set when the dereferenced value is a plain string and needs
	// no conversion.
	Direct bool

	// Addr is set when only the pointer type has a String or Error method.
	// The value is formatted through its address so that method is used.
	Addr bool
}

// methodNames are declared by the generated code and cannot also be fields
// or existing methods of the type.
var methodNames = []string{"Headers", "Row"}

// Inspect describes the named struct types of pkg.
func Inspect(pkg *types.Package, names ...string) ([]Struct, error) {
	out := make([]Struct, 0, len(names))
	for _, name := range names {
		s, err := inspectType(pkg, name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func inspectType(pkg *types.Package, name string) (Struct, error) {
	tn, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return Struct{}, fmt.Errorf("%w: %s.%s", ErrTypeNotFound, pkg.Path(), name)
	}
	named, ok := tn.Type().(*types.Named)
	if !ok {
		return Struct{}, fmt.Errorf("%w: %s is an alias", tablefy.ErrUnsupportedShape, name)
	}
	if named.TypeParams().Len() > 0 {
		return Struct{}, fmt.Errorf("%w: %s has type parameters", tablefy.ErrUnsupportedShape, name)
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return Struct{}, fmt.Errorf("%w: %s is %s, not a struct", tablefy.ErrUnsupportedShape, name, named.Underlying())
	}
	if st.NumFields() == 0 {
		return Struct{}, fmt.Errorf("%w: %s has no fields", tablefy.ErrUnsupportedShape, name)
	}

	for m := range named.Methods() {
		if slices.Contains(methodNames, m.Name()) {
			return Struct{}, fmt.Errorf("%w: %s already declares %s", tablefy.ErrUnsupportedShape, name, m.Name())
		}
	}

	s := Struct{Name: name, Fields: make([]Field, 0, st.NumFields())}
	seen := make(map[string]string, st.NumFields())
	for i := range st.NumFields() {
		v := st.Field(i)
		if v.Name() == "_" {
			return Struct{}, fmt.Errorf("%w: %s has a blank field", tablefy.ErrUnsupportedShape, name)
		}
		if slices.Contains(methodNames, v.Name()) {
			return Struct{}, fmt.Errorf("%w: field %s.%s clashes with the generated method", tablefy.ErrUnsupportedShape, name, v.Name())
		}
		f, err := inspectField(v, st.Tag(i))
		if err != nil {
			return Struct{}, fmt.Errorf("%s.%s: %w", name, v.Name(), err)
		}
		if prev, ok := seen[f.Header]; ok {
			return Struct{}, fmt.Errorf("%w: %s.%s and %s.%s are both %q", tablefy.ErrDuplicateHeader, name, prev, name, v.Name(), f.Header)
		}
		seen[f.Header] = v.Name()
		s.Fields = append(s.Fields, f)
	}
	return s, nil
}

func inspectField(v *types.Var, tag string) (Field, error) {
	h, err := annotation.Lookup(reflect.StructTag(tag))
	if err != nil {
		return Field{}, err
	}
	f := Field{Name: v.Name(), Header: v.Name(), Type: v.Type()}
	if h.Set {
		f.Header = h.Name
	}

	t := v.Type()
	for {
		p, ok := t.Underlying().(*types.Pointer)
		if !ok {
			break
		}
		t = p.Elem()
		f.Optional++
	}
	if !displayable(t) {
		return Field{}, fmt.Errorf("%w: %s", tablefy.ErrNotDisplayable, v.Type())
	}
	f.Addr = pointerText(t)
	f.Direct = !f.Addr && types.Identical(t, types.Typ[types.String])
	return f, nil
}

// pointerText reports whether String or Error is declared on *t but not t,
// as with url.URL and big.Int.
func pointerText(t types.Type) bool {
	if types.IsInterface(t) {
		return false
	}
	return !hasTextMethod(t) && hasTextMethod(types.NewPointer(t))
}

func hasTextMethod(t types.Type) bool {
	mset := types.NewMethodSet(t)
	for _, name := range []string{"String", "Error"} {
		sel := mset.Lookup(nil, name)
		if sel == nil {
			continue
		}
		sig, ok := sel.Type().(*types.Signature)
		if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
			continue
		}
		if types.Identical(sig.Results().At(0).Type(), types.Typ[types.String]) {
			return true
		}
	}
	return false
}

func displayable(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Signature, *types.Chan:
		return false
	case *types.Basic:
		return u.Kind() != types.UnsafePointer
	default:
		return true
	}
}
