// Package annotation parses the tablefy struct tag.
//
// A field opts into a custom column header with a tag of the form
//
//	Name string `tablefy:"header(name = \"Full Name\")"`
//
// The tag value is a list of segments shaped like calls, separated by
// commas or semicolons. header is the only segment; any other name is
// rejected so that a misspelled segment never falls back to the field name.
package annotation

import (
	"errors"
	"fmt"
	"go/scanner"
	"go/token"
	"reflect"
)

// Key is the struct tag key read by [Lookup].
const Key = "tablefy"

const headerSegment = "header"

// Sentinel errors for programmatic error handling.
var (
	ErrMalformed = errors.New("malformed header annotation")
	ErrDuplicate = errors.New("duplicate header annotation")
)

// Header is the result of parsing a tag. Set is false when the tag carries
// no header segment, in which case callers use the field name.
type Header struct {
	Name string
	Set  bool
}

// SyntaxError reports a header segment whose arguments do not match
// name = "<text>". Token is the 1-based position inside the parentheses.
type SyntaxError struct {
	Token int
	Want  string
	Got   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: token %d: expected %s, found %s", ErrMalformed, e.Token, e.Want, e.Got)
}

func (e *SyntaxError) Unwrap() error { return ErrMalformed }

// Lookup parses the tablefy key of a struct tag. A missing key is not an
// error.
func Lookup(tag reflect.StructTag) (Header, error) {
	v, ok := tag.Lookup(Key)
	if !ok {
		return Header{}, nil
	}
	return Parse(v)
}

// Parse parses a tag value.
func Parse(tag string) (Header, error) {
	p := newParser(tag)
	var h Header
	for {
		switch p.tok {
		case token.EOF:
			if p.err != nil {
				return Header{}, p.err
			}
			return h, nil
		case token.SEMICOLON, token.COMMA:
			p.next()
			continue
		case token.IDENT:
		default:
			return Header{}, fmt.Errorf("%w: expected annotation name, found %s", ErrMalformed, p.found())
		}

		name := p.lit
		p.next()
		if p.tok != token.LPAREN {
			return Header{}, fmt.Errorf("%w: expected ( after %s, found %s", ErrMalformed, name, p.found())
		}
		p.next()

		if name != headerSegment {
			return Header{}, fmt.Errorf("%w: unknown segment %s, expected %s", ErrMalformed, name, headerSegment)
		}
		if h.Set {
			return Header{}, ErrDuplicate
		}
		label, err := p.header()
		if err != nil {
			return Header{}, err
		}
		h = Header{Name: label, Set: true}
	}
}

type parser struct {
	s   scanner.Scanner
	tok token.Token
	lit string
	err error
}

func newParser(src string) *parser {
	p := &parser{}
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	p.s.Init(file, []byte(src), func(_ token.Position, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%w: %s", ErrMalformed, msg)
		}
	}, 0)
	p.next()
	return p
}

func (p *parser) next() {
	_, p.tok, p.lit = p.s.Scan()
}

func (p *parser) found() string {
	switch {
	case p.tok == token.EOF, p.tok == token.SEMICOLON && p.lit == "\n":
		return "end of tag"
	case p.lit != "":
		return p.lit
	default:
		return p.tok.String()
	}
}

// header consumes name = "<text>" ) and returns the text without its quotes.
func (p *parser) header() (string, error) {
	if p.tok != token.IDENT || p.lit != "name" {
		return "", &SyntaxError{Token: 1, Want: `identifier "name"`, Got: p.found()}
	}
	p.next()
	if p.tok != token.ASSIGN {
		return "", &SyntaxError{Token: 2, Want: `"="`, Got: p.found()}
	}
	p.next()
	if p.tok != token.STRING {
		return "", &SyntaxError{Token: 3, Want: "string literal", Got: p.found()}
	}
	lit := p.lit
	p.next()
	if p.tok != token.RPAREN {
		return "", &SyntaxError{Token: 4, Want: `")"`, Got: p.found()}
	}
	p.next()
	if p.err != nil {
		return "", p.err
	}
	return lit[1 : len(lit)-1], nil
}
