package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclc-dev/openclc-front-sdk/capability"
	"github.com/openclc-dev/openclc-front-sdk/dialect"
	"github.com/openclc-dev/openclc-front-sdk/snapshot"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func populatedRegistry(t *testing.T) *capability.Registry {
	t.Helper()
	reg := capability.New()
	reg.Support("cl_khr_fp16", true)
	reg.Enable("cl_khr_fp16", true)
	reg.Support("cl_khr_int64_base_atomics", true)
	reg.EnableSupportedCore(dialect.Config{Version: dialect.V300})
	return reg
}

func TestFileStore_SaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "caps", "registry.yaml")
	store := snapshot.NewFileStore()

	orig := populatedRegistry(t)
	require.NoError(t, store.Save(ctx, orig, path))

	exists, err := store.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	restored := capability.New()
	restored.DisableAll()
	loaded, err := store.Load(ctx, restored, path)
	require.NoError(t, err)
	require.True(t, loaded)

	// Every field of every record must come back bit for bit.
	assert.Equal(t, orig.ExportRecords(), restored.ExportRecords())
}

func TestFileStore_Load_MissingFile(t *testing.T) {
	store := snapshot.NewFileStore()
	reg := capability.New()

	loaded, err := store.Load(context.Background(), reg, filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, loaded)

	// The registry keeps its seeded table.
	assert.Greater(t, reg.Len(), 0)
}

func TestFileStore_Load_RejectsCorruptDocument(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")

	writeFile(t, path, "snapshot_version: 99\ncapabilities: {}\n")

	_, err := snapshot.NewFileStore().Load(ctx, capability.New(), path)
	assert.Error(t, err)
}

func TestEncodeDecodeJSON_RoundTrip(t *testing.T) {
	orig := populatedRegistry(t)

	data, err := snapshot.EncodeJSON(orig)
	require.NoError(t, err)

	restored := capability.New()
	restored.DisableAll()
	require.NoError(t, snapshot.DecodeJSON(restored, data))

	assert.Equal(t, orig.ExportRecords(), restored.ExportRecords())
}

func TestDecodeJSON_RejectsSchemaViolations(t *testing.T) {
	reg := capability.New()

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"wrong shape", `{"snapshot_version": "one"}`},
		{"bad record field", `{
			"snapshot_version": 1,
			"saved_at": "2026-08-23T00:00:00Z",
			"capabilities": {"cl_khr_fp16": {"available": "yes"}}
		}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, snapshot.DecodeJSON(reg, []byte(tt.data)))
		})
	}
}

func TestSchema_IsValidJSON(t *testing.T) {
	schema, err := snapshot.Schema()
	require.NoError(t, err)
	assert.Contains(t, schema, "snapshot_version")
	assert.Contains(t, schema, "capabilities")
}

func TestDocument_Validate(t *testing.T) {
	doc := snapshot.FromRecords(capability.New().ExportRecords())
	assert.NoError(t, doc.Validate())

	empty := &snapshot.Document{FormatVersion: snapshot.FormatVersion}
	assert.Error(t, empty.Validate())

	wrongVersion := snapshot.FromRecords(capability.New().ExportRecords())
	wrongVersion.FormatVersion = 2
	assert.Error(t, wrongVersion.Validate())
}
