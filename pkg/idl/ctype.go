package idl

import (
	"fmt"
	"strings"
	"unicode"
)

// TypeDecl is a tokenized C type in the restricted grammar used by method
// declarations: an optional "const", one base identifier and any number of
// pointer stars.
type TypeDecl struct {
	Tokens []string
}

// ParseType parses a C type such as "const uint64_t *".
func ParseType(raw string) (TypeDecl, error) {
	tokens, err := tokenize(raw)
	if err != nil {
		return TypeDecl{}, err
	}
	return typeFromTokens(tokens)
}

func typeFromTokens(tokens []string) (TypeDecl, error) {
	var base string
	seenStar := false
	for _, tok := range tokens {
		switch {
		case tok == "*":
			if base == "" {
				return TypeDecl{}, fmt.Errorf("pointer before base type in %q", strings.Join(tokens, " "))
			}
			seenStar = true
		case tok == "const":
			if seenStar {
				return TypeDecl{}, fmt.Errorf("const pointers are not supported in %q", strings.Join(tokens, " "))
			}
		default:
			if base != "" {
				return TypeDecl{}, fmt.Errorf("multiple base types in %q", strings.Join(tokens, " "))
			}
			base = tok
		}
	}
	if base == "" {
		return TypeDecl{}, fmt.Errorf("missing base type in %q", strings.Join(tokens, " "))
	}
	return TypeDecl{Tokens: tokens}, nil
}

func tokenize(raw string) ([]string, error) {
	var tokens []string
	var ident strings.Builder
	flush := func() {
		if ident.Len() > 0 {
			tokens = append(tokens, ident.String())
			ident.Reset()
		}
	}
	for i, r := range raw {
		switch {
		case r == '*':
			flush()
			tokens = append(tokens, "*")
		case unicode.IsSpace(r):
			flush()
		case r == '_' || unicode.IsLetter(r) || (unicode.IsDigit(r) && ident.Len() > 0):
			ident.WriteRune(r)
		default:
			return nil, fmt.Errorf("unexpected character %q at %d in %q", r, i, raw)
		}
	}
	flush()
	return tokens, nil
}

// Base returns the base type identifier.
func (t TypeDecl) Base() string {
	for _, tok := range t.Tokens {
		if tok != "*" && tok != "const" {
			return tok
		}
	}
	return ""
}

// Depth returns the pointer depth.
func (t TypeDecl) Depth() int {
	n := 0
	for _, tok := range t.Tokens {
		if tok == "*" {
			n++
		}
	}
	return n
}

// Const reports whether the pointee is const-qualified.
func (t TypeDecl) Const() bool {
	for _, tok := range t.Tokens {
		if tok == "const" {
			return true
		}
	}
	return false
}

// Mangle returns a copy with every token for which rename returns a non-empty
// string replaced.
func (t TypeDecl) Mangle(rename func(string) string) TypeDecl {
	out := make([]string, len(t.Tokens))
	for i, tok := range t.Tokens {
		if r := rename(tok); r != "" {
			out[i] = r
		} else {
			out[i] = tok
		}
	}
	return TypeDecl{Tokens: out}
}

func (t TypeDecl) String() string {
	var b strings.Builder
	for _, tok := range t.Tokens {
		if b.Len() > 0 && tok != "*" {
			b.WriteByte(' ')
		}
		if tok == "*" && b.Len() > 0 && !strings.HasSuffix(b.String(), "*") {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}

// Arg is a named method argument.
type Arg struct {
	Type TypeDecl
	Name string
}

// ParseArg parses the compact "type name" notation, e.g.
// "const uint64_t * complete_value".
func ParseArg(raw string) (Arg, error) {
	tokens, err := tokenize(raw)
	if err != nil {
		return Arg{}, err
	}
	if len(tokens) < 2 {
		return Arg{}, fmt.Errorf("argument %q needs a type and a name", raw)
	}
	name := tokens[len(tokens)-1]
	if name == "*" || name == "const" {
		return Arg{}, fmt.Errorf("argument %q has no name", raw)
	}
	typ, err := typeFromTokens(tokens[:len(tokens)-1])
	if err != nil {
		return Arg{}, err
	}
	return Arg{Type: typ, Name: name}, nil
}

func (a Arg) String() string {
	return a.Type.String() + " " + a.Name
}
