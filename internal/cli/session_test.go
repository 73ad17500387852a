package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFile(t *testing.T) {
	s := sessionFile{path: filepath.Join(t.TempDir(), "nested", "session")}

	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, s.Save("abc"))
	token, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())

	token, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestSessionFile_EmptyPath(t *testing.T) {
	var s sessionFile

	require.NoError(t, s.Save("abc"))
	token, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.NoError(t, s.Clear())
}
