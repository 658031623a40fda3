// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriter(t *testing.T) {
	writer := NewWriter()
	assert.NotNil(t, writer)
	assert.Equal(t, 2, writer.Indent)
}

func TestEncodingForPath(t *testing.T) {
	assert.Equal(t, EncodingJSON, EncodingForPath("openapi.json"))
	assert.Equal(t, EncodingJSON, EncodingForPath("OPENAPI.JSON"))
	assert.Equal(t, EncodingYAML, EncodingForPath("openapi.yaml"))
	assert.Equal(t, EncodingYAML, EncodingForPath("openapi.yml"))
	assert.Equal(t, EncodingYAML, EncodingForPath("openapi"))
}

func TestWriter_WriteYAML(t *testing.T) {
	doc, err := NewBuilder().Build(sampleDocumentation())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewWriter().WriteYAML(doc, &buf))

	out := buf.String()
	assert.Contains(t, out, "openapi: 3.0.3")
	assert.Contains(t, out, "title: Test API")
	assert.Contains(t, out, "/users/{id}:")
	assert.Contains(t, out, "x-source-file: app/api/users/[id]/route.ts")
}

func TestWriter_WriteJSON(t *testing.T) {
	doc, err := NewBuilder().Build(sampleDocumentation())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewWriter().WriteJSON(doc, &buf))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "3.0.3", decoded["openapi"])
	assert.Len(t, decoded["paths"], 4)
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"openapi\""))
}

func TestWriter_Write_UnsupportedEncoding(t *testing.T) {
	doc, err := NewBuilder().Build(sampleDocumentation())
	require.NoError(t, err)

	err = NewWriter().Write(doc, &bytes.Buffer{}, "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestWriter_WriteFile_RoundTrip(t *testing.T) {
	doc, err := NewBuilder().Build(sampleDocumentation())
	require.NoError(t, err)

	for _, name := range []string{"out/openapi.yaml", "out/openapi.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, NewWriter().WriteFile(doc, path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			read, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, doc.Info, read.Info)
			assert.Equal(t, SortedPaths(doc.Paths), SortedPaths(read.Paths))
			assert.Equal(t, "getUsersById", read.Paths["/users/{id}"].Get.OperationID)
		})
	}
}

func TestReadFile_Errors(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = ReadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}
