package srcload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	src, err := ParseSource("x.go", []byte("package demo\n\nconst A = \"a\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "demo", src.PackageName())
	assert.Len(t, src.File.Decls, 1)
	assert.Equal(t, "x.go:3:1", src.Position(src.File.Decls[0].Pos()))
}

func TestParseSourceError(t *testing.T) {
	_, err := ParseSource("broken.go", []byte("package\n"))
	assert.Error(t, err)
}

func TestLoadSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.go")
	require.NoError(t, os.WriteFile(path, []byte("package names\n"), 0o644))
	src, err := LoadSource(path)
	require.NoError(t, err)
	assert.Equal(t, path, src.Filename)
	assert.Equal(t, "names", src.PackageName())
	//
	_, err = LoadSource(filepath.Join(t.TempDir(), "missing.go"))
	assert.Error(t, err)
	var nilSource *Source
	assert.Equal(t, "", nilSource.PackageName())
}
