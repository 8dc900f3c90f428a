package docs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zipo2008/confdocs/pkg/logging"
)

func writeArtifact(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func artifactFor(key, def, typ, desc string) string {
	return `<table><tbody><tr><td>` + key + `</td><td>` + def + `</td><td>` + typ + `</td><td>` + desc + `</td></tr></tbody></table>`
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "core_configuration.html", artifactFor("a.key", "1", "Integer", "a"))

	p := New(WithLogger(logging.Nop))
	records, err := p.ParseFile(filepath.Join(dir, "core_configuration.html"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	// Records are tagged with the artifact's base name, not its full path.
	assert.Equal(t, "core_configuration.html", records[0].Origin)
}

func TestParseFileMissing(t *testing.T) {
	p := New(WithLogger(logging.Nop))
	_, err := p.ParseFile(filepath.Join(t.TempDir(), "absent.html"))
	assert.Error(t, err)
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "a_configuration.html", artifactFor("a.key", "1", "Integer", "a"))
	writeArtifact(t, dir, "b_configuration.html", artifactFor("b.key", "2", "Integer", "b"))
	writeArtifact(t, dir, "common_section.html", artifactFor("c.key", "3", "Integer", "c"))
	writeArtifact(t, dir, "notes.txt", "not html")

	p := New(WithLogger(logging.Nop))
	set, err := p.ParseDir(context.Background(), dir, IsReferenceFile)
	require.NoError(t, err)

	// Only the matching artifacts contribute, in lexical file order.
	assert.Equal(t, []string{"a.key", "b.key"}, set.Keys())
}

func TestParseDirCommonSection(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "common_section.html", artifactFor("c.key", "3", "Integer", "c"))
	writeArtifact(t, dir, "core_configuration.html", artifactFor("a.key", "1", "Integer", "a"))

	p := New(WithLogger(logging.Nop))
	set, err := p.ParseDir(context.Background(), dir, IsCommonSectionFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"c.key"}, set.Keys())
}

func TestParseDirMissing(t *testing.T) {
	p := New(WithLogger(logging.Nop))
	_, err := p.ParseDir(context.Background(), filepath.Join(t.TempDir(), "absent"), IsReferenceFile)
	assert.Error(t, err)
}

func TestParseDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeArtifact(t, dir, "core_configuration.html", artifactFor("a.key", "1", "Integer", "a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := New(WithLogger(logging.Nop))
	_, err := p.ParseDir(ctx, dir, IsReferenceFile)
	assert.ErrorIs(t, err, context.Canceled)
}
