package layout

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestWriteDebugFormats(t *testing.T) {
	doc := build(t, "Hello\nWorld", Options{Metrics: &monoMetrics{}, Meta: DocumentMeta{Title: "hello"}})
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "layout.json")
	require.NoError(t, WriteDebug(doc, jsonPath))
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON Document
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, doc.Pages, fromJSON.Pages)
	assert.Equal(t, "hello", fromJSON.Meta.Title)

	yamlPath := filepath.Join(dir, "layout.yaml")
	require.NoError(t, WriteDebug(doc, yamlPath))
	data, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML Document
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML.Pages, 1)
	assert.Equal(t, "World", fromYAML.Pages[0].Texts[1].Text)
}

func TestWriteDebugNilDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.json")
	require.NoError(t, WriteDebug(nil, path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
