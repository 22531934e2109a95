package gen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"golang.org/x/tools/imports"
)

const generatedHeader = "// Code generated by tablefy; DO NOT EDIT."

var fileTemplate = template.Must(template.New("tablefy").Parse(`{{.Header}}

package {{.Package}}

import "fmt"
{{range .Types}}
// Headers returns the column headers of {{.Name}}.
func ({{.Name}}) Headers() []string {
	return []string{
{{- range .Headers}}
		{{.}},
{{- end}}
	}
}

// Row returns the column values of {{.Recv}} in header order.
func ({{.Recv}} {{.Name}}) Row() []string {
{{- range .Optionals}}
	var {{.Var}} string
	if {{.Guard}} {
		{{.Var}} = {{.Value}}
	}
{{- end}}
	return []string{
{{- range .Values}}
		{{.}},
{{- end}}
	}
}
{{end}}`))

type fileView struct {
	Header  string
	Package string
	Types   []typeView
}

type typeView struct {
	Name      string
	Recv      string
	Headers   []string
	Optionals []optionalView
	Values    []string
}

type optionalView struct {
	Var   string
	Guard string
	Value string
}

// Render returns the formatted source of a file in package pkgName holding
// Headers and Row methods for structs. filename is used to resolve imports.
func Render(filename, pkgName string, structs []Struct) ([]byte, error) {
	view := fileView{Header: generatedHeader, Package: pkgName}
	for _, s := range structs {
		view.Types = append(view.Types, newTypeView(s))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

func newTypeView(s Struct) typeView {
	recv := receiverName(s.Name)
	tv := typeView{Name: s.Name, Recv: recv}
	for i, f := range s.Fields {
		tv.Headers = append(tv.Headers, strconv.Quote(f.Header))

		access := recv + "." + f.Name
		if f.Optional == 0 {
			if f.Addr {
				access = "&" + access
			}
			tv.Values = append(tv.Values, textExpr(access, f.Direct))
			continue
		}

		// Each pointer level is checked before it is dereferenced.
		guards := make([]string, f.Optional)
		for level := range f.Optional {
			guards[level] = strings.Repeat("*", level) + access + " != nil"
		}
		// The last pointer is kept when only it carries the text method.
		derefs := f.Optional
		if f.Addr {
			derefs--
		}
		v := "col" + strconv.Itoa(i)
		tv.Optionals = append(tv.Optionals, optionalView{
			Var:   v,
			Guard: strings.Join(guards, " && "),
			Value: textExpr(strings.Repeat("*", derefs)+access, f.Direct),
		})
		tv.Values = append(tv.Values, v)
	}
	return tv
}

func textExpr(expr string, direct bool) string {
	if direct {
		return expr
	}
	return "fmt.Sprint(" + expr + ")"
}

// receiverName follows the usual convention of a lowercase first letter.
func receiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if !unicode.IsLetter(r) {
		return "r"
	}
	return string(unicode.ToLower(r))
}
