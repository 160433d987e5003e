package exporter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assets", "js", "data.js")

	err := WriteFile(path, func(w io.Writer) error {
		return WriteJS(w, "", nil)
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "const UNIVERSITY_DATA = [];", string(data))
}

func TestWriteFile_PropagatesWriteError(t *testing.T) {
	boom := errors.New("boom")
	err := WriteFile(filepath.Join(t.TempDir(), "out.js"), func(io.Writer) error { return boom })
	assert.ErrorIs(t, err, boom)
}
