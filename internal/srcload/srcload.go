package srcload

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
)

// Source is a parsed Go source file with original bytes and syntax tree.
type Source struct {
	Filename string
	Binary   []byte
	Fset     *token.FileSet
	File     *ast.File
}

// LoadSource loads a Go source file from disk and parses it, including comments.
func LoadSource(filename string) (*Source, error) {
	bytez, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseSource(filename, bytez)
}

// ParseSource parses Go source from memory. filename is used for positions only.
func ParseSource(filename string, src []byte) (s *Source, err error) {
	s = &Source{Filename: filename, Binary: src, Fset: token.NewFileSet()}
	s.File, err = parser.ParseFile(s.Fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("cannot parse Go source %s: %w", filename, err)
	}
	return s, nil
}

// PackageName returns the name of the source's package clause.
func (s *Source) PackageName() string {
	if s == nil || s.File == nil || s.File.Name == nil {
		return ""
	}
	return s.File.Name.Name
}

// Position returns a human readable position for a syntax node.
func (s *Source) Position(pos token.Pos) string {
	return s.Fset.Position(pos).String()
}
