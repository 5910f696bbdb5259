package fileio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdStreams(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	s := Streams{Stdin: strings.NewReader("items[1],a\n1"), Stdout: &out}

	data, err := s.ReadAll("-")
	require.NoError(t, err)
	assert.Equal(t, "items[1],a\n1", string(data))

	require.NoError(t, s.WriteAll("", []byte("ok")))
	assert.Equal(t, "ok", out.String())
}

func TestPlainFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.csv")

	s := Streams{}
	require.NoError(t, s.WriteAll(path, []byte("plain")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(raw))

	data, err := s.ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(data))
}

func TestZstdFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json.zst")
	payload := []byte(strings.Repeat(`{"items":[{"id":1}]}`, 50))

	s := Streams{}
	require.NoError(t, s.WriteAll(path, payload))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Less(t, len(raw), len(payload))

	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()

	plain, err := dec.DecodeAll(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, payload, plain)

	data, err := s.ReadAll(path)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestMissingInput(t *testing.T) {
	t.Parallel()

	_, err := Streams{}.ReadAll(filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorContains(t, err, "failed to open input")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
