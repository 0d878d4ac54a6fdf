package widegen

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"strings"

	"github.com/npillmayer/widestr/internal/srcload"
)

const (
	directiveEncode = "wide:encode"
	directiveNull   = "wide:null"
)

// directive is a wide directive attached to a constant.
type directive struct {
	null    bool
	varName string // empty for default
}

// parseDirective checks a comment group for a wide directive.
func parseDirective(cg *ast.CommentGroup) (directive, bool, error) {
	if cg == nil {
		return directive{}, false, nil
	}
	for _, c := range cg.List {
		text := strings.TrimPrefix(c.Text, "//")
		if !strings.HasPrefix(text, "wide:") {
			continue
		}
		fields := strings.Fields(text)
		d := directive{}
		switch fields[0] {
		case directiveEncode:
		case directiveNull:
			d.null = true
		default:
			return d, false, fmt.Errorf("unknown directive %q", fields[0])
		}
		switch len(fields) {
		case 1:
		case 2:
			if !token.IsIdentifier(fields[1]) {
				return d, false, fmt.Errorf("invalid variable name %q", fields[1])
			}
			d.varName = fields[1]
		default:
			return d, false, fmt.Errorf("too many arguments for %s", fields[0])
		}
		return d, true, nil
	}
	return directive{}, false, nil
}

// constSpec is a top-level constant of the source file.
type constSpec struct {
	name  *ast.Ident
	value ast.Expr // nil for implicit repetition in a const group
	dir   directive
	isDir bool
	err   error
}

// collectConstants gathers all top-level constants of a source file, together
// with their directives. Doc comments of an unparenthesized const declaration
// count as doc comments of its single spec.
func collectConstants(src *srcload.Source) []*constSpec {
	var consts []*constSpec
	for _, decl := range src.File.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			vspec := spec.(*ast.ValueSpec)
			cs := &constSpec{}
			cs.dir, cs.isDir, cs.err = parseDirective(vspec.Doc)
			if !cs.isDir && cs.err == nil {
				cs.dir, cs.isDir, cs.err = parseDirective(vspec.Comment)
			}
			if !cs.isDir && cs.err == nil && !gen.Lparen.IsValid() {
				cs.dir, cs.isDir, cs.err = parseDirective(gen.Doc)
			}
			for i, name := range vspec.Names {
				c := *cs
				c.name = name
				if i < len(vspec.Values) {
					c.value = vspec.Values[i]
				}
				consts = append(consts, &c)
			}
		}
	}
	return consts
}

// --- Constant evaluation ---------------------------------------------------

// evaluator computes the string values of constant expressions.
type evaluator struct {
	consts   map[string]*constSpec
	values   map[string]string
	visiting map[string]bool
}

func newEvaluator(consts []*constSpec) *evaluator {
	ev := &evaluator{
		consts:   make(map[string]*constSpec, len(consts)),
		values:   make(map[string]string),
		visiting: make(map[string]bool),
	}
	for _, c := range consts {
		if c.name.Name != "_" {
			ev.consts[c.name.Name] = c
		}
	}
	return ev
}

// stringValue returns the string value of constant c.
func (ev *evaluator) stringValue(c *constSpec) (string, error) {
	if s, ok := ev.values[c.name.Name]; ok {
		return s, nil
	}
	if c.value == nil {
		return "", fmt.Errorf("constant has no explicit value")
	}
	if ev.visiting[c.name.Name] {
		return "", fmt.Errorf("constant definition cycle")
	}
	ev.visiting[c.name.Name] = true
	defer delete(ev.visiting, c.name.Name)
	v, err := ev.eval(c.value)
	if err != nil {
		return "", err
	}
	if v.Kind() != constant.String {
		return "", fmt.Errorf("value is of kind %s, not a string", v.Kind())
	}
	s := constant.StringVal(v)
	ev.values[c.name.Name] = s
	return s, nil
}

func (ev *evaluator) eval(x ast.Expr) (constant.Value, error) {
	switch e := x.(type) {
	case *ast.BasicLit:
		v := constant.MakeFromLiteral(e.Value, e.Kind, 0)
		if v.Kind() == constant.Unknown {
			return nil, fmt.Errorf("malformed literal %s", e.Value)
		}
		return v, nil
	case *ast.ParenExpr:
		return ev.eval(e.X)
	case *ast.Ident:
		c, ok := ev.consts[e.Name]
		if !ok {
			return nil, fmt.Errorf("%s is not a constant of this file", e.Name)
		}
		s, err := ev.stringValue(c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name, err)
		}
		return constant.MakeString(s), nil
	case *ast.BinaryExpr:
		if e.Op != token.ADD {
			return nil, fmt.Errorf("unsupported operator %s", e.Op)
		}
		l, err := ev.eval(e.X)
		if err != nil {
			return nil, err
		}
		r, err := ev.eval(e.Y)
		if err != nil {
			return nil, err
		}
		if l.Kind() != constant.String || r.Kind() != constant.String {
			return nil, fmt.Errorf("can only concatenate strings")
		}
		return constant.BinaryOp(l, token.ADD, r), nil
	}
	return nil, fmt.Errorf("unsupported expression of type %T", x)
}
