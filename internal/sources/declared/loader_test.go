package declared

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zipo2008/confdocs/pkg/errors"
	"github.com/zipo2008/confdocs/pkg/logging"
	"github.com/zipo2008/confdocs/pkg/options"
)

const coreManifest = `units:
  - name: CoreOptions
    options:
      - key: parallelism.default
        default: "1"
        type: Integer
        description: "Default parallelism for jobs."
        sections: [common]
      - key: restart.strategy
        default: (none)
        type: String
        description: "Defines the restart strategy."
  - name: NetworkOptions
    options:
      - key: network.buffer.size
        default: 32kb
        type: MemorySize
        description: "Size of network buffers."
        sections: [common, network]
`

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "core.yaml", coreManifest)

	loader := New(WithPaths(dir), WithLogger(logging.Nop))
	set, err := loader.Load(context.Background(), options.All)
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"parallelism.default", "restart.strategy", "network.buffer.size"}, set.Keys())

	group := set.Get("parallelism.default")
	require.Len(t, group, 1)
	assert.Equal(t, "CoreOptions", group[0].Origin)
	assert.Equal(t, "1", group[0].Default)
	assert.Equal(t, "Integer", group[0].Type)
	assert.Equal(t, []string{"common"}, group[0].Sections)

	network := set.Get("network.buffer.size")
	require.Len(t, network, 1)
	assert.Equal(t, "NetworkOptions", network[0].Origin)
}

func TestLoadSectionFilter(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "core.yaml", coreManifest)

	loader := New(WithPaths(dir), WithLogger(logging.Nop))
	set, err := loader.Load(context.Background(), options.InSection("common"))
	require.NoError(t, err)

	assert.Equal(t, []string{"parallelism.default", "network.buffer.size"}, set.Keys())
}

func TestLoadNilFilterAcceptsAll(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "core.yaml", coreManifest)

	loader := New(WithPaths(dir), WithLogger(logging.Nop))
	set, err := loader.Load(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}

func TestLoadSingleFilePath(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "core.yaml", coreManifest)

	loader := New(WithPaths(path), WithLogger(logging.Nop))
	set, err := loader.Load(context.Background(), options.All)
	require.NoError(t, err)
	assert.Equal(t, 3, set.Len())
}

func TestLoadDirectoryLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "b.yaml", "units:\n  - name: B\n    options:\n      - key: b.key\n")
	writeManifest(t, dir, "a.yml", "units:\n  - name: A\n    options:\n      - key: a.key\n")
	writeManifest(t, dir, "ignored.txt", "not a manifest")

	loader := New(WithPaths(dir), WithLogger(logging.Nop))
	set, err := loader.Load(context.Background(), options.All)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.key", "b.key"}, set.Keys())
}

func TestLoadMissingPathIsHardError(t *testing.T) {
	loader := New(WithPaths(filepath.Join(t.TempDir(), "absent")), WithLogger(logging.Nop))
	_, err := loader.Load(context.Background(), options.All)

	require.Error(t, err)
	var scanErr *errors.ScanError
	assert.ErrorAs(t, err, &scanErr)
}

func TestLoadMalformedManifestIsHardError(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "bad.yaml", "units: [unclosed")

	loader := New(WithPaths(dir), WithLogger(logging.Nop))
	_, err := loader.Load(context.Background(), options.All)

	require.Error(t, err)
	var scanErr *errors.ScanError
	assert.ErrorAs(t, err, &scanErr)
}

func TestLoadEmptyKeyIsHardError(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "bad.yaml", "units:\n  - name: CoreOptions\n    options:\n      - default: \"1\"\n")

	loader := New(WithPaths(dir), WithLogger(logging.Nop))
	_, err := loader.Load(context.Background(), options.All)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty key")
	assert.Contains(t, err.Error(), "CoreOptions")
}

func TestLoadCancelled(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "core.yaml", coreManifest)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := New(WithPaths(dir), WithLogger(logging.Nop))
	_, err := loader.Load(ctx, options.All)
	assert.ErrorIs(t, err, context.Canceled)
}
