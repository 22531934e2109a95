package tablefy

import (
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/bjaus/tablefy/internal/annotation"
)

// Schema produces headers and rows for struct type T at run time. It
// follows the same rules as the generated code and exists for callers that
// cannot run the generator.
type Schema[T any] struct {
	s *schema
}

// Reflect returns the schema of struct type T. Schemas are built once per
// type and shared.
func Reflect[T any]() (*Schema[T], error) {
	s, err := schemaFor(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return &Schema[T]{s: s}, nil
}

// Headers returns the column headers of T.
func (s *Schema[T]) Headers() []string {
	out := make([]string, len(s.s.headers))
	copy(out, s.s.headers)
	return out
}

// Row returns the column values of v in header order.
func (s *Schema[T]) Row(v T) []string {
	return s.s.row(reflect.ValueOf(v))
}

// ReflectTable assembles items into a new [Table] using the schema of T.
func ReflectTable[T any](items []T) (*Table, error) {
	s, err := Reflect[T]()
	if err != nil {
		return nil, err
	}
	t := NewTable()
	t.SetHeader(s.Headers())
	for _, item := range items {
		t.AddRow(s.Row(item))
	}
	return t, nil
}

type schema struct {
	headers []string
	fields  []schemaField
}

type schemaField struct {
	index    int
	optional int // pointer depth
	addr     bool
}

var schemas sync.Map // reflect.Type -> *schema

func schemaFor(rt reflect.Type) (*schema, error) {
	if s, ok := schemas.Load(rt); ok {
		return s.(*schema), nil
	}
	s, err := buildSchema(rt)
	if err != nil {
		return nil, err
	}
	actual, _ := schemas.LoadOrStore(rt, s)
	return actual.(*schema), nil
}

func buildSchema(rt reflect.Type) (*schema, error) {
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is %s, not a struct", ErrUnsupportedShape, rt, rt.Kind())
	}
	if rt.NumField() == 0 {
		return nil, fmt.Errorf("%w: %s has no fields", ErrUnsupportedShape, rt)
	}

	s := &schema{
		headers: make([]string, 0, rt.NumField()),
		fields:  make([]schemaField, 0, rt.NumField()),
	}
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if sf.Name == "_" {
			return nil, fmt.Errorf("%w: %s has a blank field", ErrUnsupportedShape, rt)
		}
		h, err := annotation.Lookup(sf.Tag)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", rt, sf.Name, err)
		}

		ft, depth := sf.Type, 0
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
			depth++
		}
		switch ft.Kind() {
		case reflect.Func, reflect.Chan, reflect.UnsafePointer:
			return nil, fmt.Errorf("%w: %s.%s is %s", ErrNotDisplayable, rt, sf.Name, sf.Type)
		}

		label := sf.Name
		if h.Set {
			label = h.Name
		}
		if j := slices.Index(s.headers, label); j >= 0 {
			return nil, fmt.Errorf("%w: %s.%s and %s.%s are both %q", ErrDuplicateHeader, rt, rt.Field(s.fields[j].index).Name, rt, sf.Name, label)
		}
		s.headers = append(s.headers, label)
		s.fields = append(s.fields, schemaField{index: i, optional: depth, addr: pointerText(ft)})
	}
	return s, nil
}

func (s *schema) row(v reflect.Value) []string {
	out := make([]string, len(s.fields))
	for i, f := range s.fields {
		out[i] = display(v.Field(f.index), f.optional, f.addr)
	}
	return out
}

var (
	stringType   = reflect.TypeFor[string]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
	errorType    = reflect.TypeFor[error]()
)

// pointerText reports whether String or Error is declared on *t but not t,
// as with url.URL and big.Int.
func pointerText(t reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	pt := reflect.PointerTo(t)
	return !t.Implements(stringerType) && !t.Implements(errorType) &&
		(pt.Implements(stringerType) || pt.Implements(errorType))
}

// display renders v the way fmt.Sprint would, dereferencing depth pointer
// levels first. A nil level renders as the empty string. With addr set the
// value is formatted through a pointer to it.
func display(v reflect.Value, depth int, addr bool) string {
	for i := range depth {
		if v.IsNil() {
			return ""
		}
		if addr && i == depth-1 {
			return sprint(v)
		}
		v = v.Elem()
	}
	if addr && v.CanInterface() {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		return sprint(p)
	}
	if v.Type() == stringType {
		return v.String()
	}
	return sprint(v)
}

func sprint(v reflect.Value) string {
	if v.CanInterface() {
		return fmt.Sprint(v.Interface())
	}
	return fmt.Sprint(v)
}
