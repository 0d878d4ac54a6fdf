package widegen

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/npillmayer/widestr/internal/srcload"
	"github.com/npillmayer/widestr/wide"
)

// Constant is a string constant selected for generation, together with its encoding.
type Constant struct {
	Name     string     // name of the Go constant
	Var      string     // name of the generated array variable
	Text     string     // value of the constant
	Null     bool       // encoding carries a terminating zero unit
	Units    wide.Units // UTF-16 encoding of Text
	Position string     // position of the constant in the source file
}

// Output is the result of a generator run over one source file.
type Output struct {
	Package   string     // package name of the source file
	Source    string     // file name of the source file
	Constants []Constant // constants in source order
}

// Generate collects all constants of src marked with a wide directive and
// encodes their values. Options are applied to every encoding.
//
// If any marked constant cannot be processed, Generate returns an error
// combining a GenError for every problem. If there is no directive in src,
// ErrNoDirectives is returned.
func Generate(src *srcload.Source, opts ...wide.Option) (*Output, error) {
	if src == nil || src.File == nil {
		return nil, fmt.Errorf("widegen: no source")
	}
	ec := &errorCollector{}
	consts := collectConstants(src)
	ev := newEvaluator(consts)
	out := &Output{Package: src.PackageName(), Source: src.Filename}
	vars := make(map[string]string)
	for _, c := range consts {
		pos := src.Position(c.name.Pos())
		if c.err != nil {
			ec.addError(pos, c.name.Name, c.err.Error())
			continue
		}
		if !c.isDir {
			continue
		}
		if c.name.Name == "_" {
			ec.addError(pos, "", "blank constant cannot be generated")
			continue
		}
		text, err := ev.stringValue(c)
		if err != nil {
			ec.addError(pos, c.name.Name, err.Error())
			continue
		}
		k := Constant{
			Name:     c.name.Name,
			Var:      c.dir.varName,
			Text:     text,
			Null:     c.dir.null,
			Position: pos,
		}
		if k.Var == "" {
			k.Var = k.Name + "W"
		}
		if prev, dup := vars[k.Var]; dup {
			ec.addError(pos, k.Name, fmt.Sprintf("variable %s already generated for %s", k.Var, prev))
			continue
		}
		vars[k.Var] = k.Name
		if k.Null {
			k.Units = wide.EncodeNullString(text, opts...)
		} else {
			k.Units = wide.EncodeString(text, opts...)
		}
		tracer().Debugf("%s: %s -> %s [%d]uint16", pos, k.Name, k.Var, len(k.Units))
		out.Constants = append(out.Constants, k)
	}
	if ec.hasErrors() {
		return nil, ec.err()
	}
	if len(out.Constants) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoDirectives, src.Filename)
	}
	tracer().Infof("%s: %d constant(s) selected for generation", src.Filename, len(out.Constants))
	return out, nil
}

// File returns the generated Go source as a jennifer file.
func (out *Output) File() *jen.File {
	f := jen.NewFile(out.Package)
	f.HeaderComment("Code generated by widegen. DO NOT EDIT.")
	if out.Source != "" {
		f.HeaderComment(fmt.Sprintf("Source: %s", filepath.Base(out.Source)))
	}
	for _, k := range out.Constants {
		doc := fmt.Sprintf("%s holds the UTF-16 encoding of %s.", k.Var, k.Name)
		if k.Null {
			doc = fmt.Sprintf("%s holds the UTF-16 encoding of %s, null-terminated.", k.Var, k.Name)
		}
		values := make([]jen.Code, len(k.Units))
		for i, u := range k.Units {
			values[i] = jen.Id(fmt.Sprintf("0x%04X", u))
		}
		f.Add(jen.Comment(doc).Line().
			Var().Id(k.Var).Op("=").Index(jen.Lit(len(k.Units))).Uint16().Values(values...))
	}
	return f
}

// Render writes the generated Go source to w.
func (out *Output) Render(w io.Writer) error {
	return out.File().Render(w)
}

// Save writes the generated Go source to a file.
func (out *Output) Save(path string) error {
	if err := out.File().Save(path); err != nil {
		return fmt.Errorf("failed to save file to '%s': %w", path, err)
	}
	tracer().Infof("saved '%s'", path)
	return nil
}

// Verify compares the generated Go source with the file at path.
// It returns ErrOutdated if they differ.
func (out *Output) Verify(path string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("missing file on disk: %s (%w)", path, err)
	}
	var buf bytes.Buffer
	if err := out.Render(&buf); err != nil {
		return fmt.Errorf("render error for '%s': %w", path, err)
	}
	if !bytes.Equal(existing, buf.Bytes()) {
		return fmt.Errorf("%w: '%s' has changed", ErrOutdated, path)
	}
	return nil
}

// OutputPath returns the default path of the generated file for a source
// file, e.g. "names_wide.go" for "names.go".
func OutputPath(source string) string {
	return strings.TrimSuffix(source, ".go") + "_wide.go"
}
