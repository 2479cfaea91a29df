package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	// nothing saved yet
	s, err := LoadSession(path)
	require.NoError(t, err)
	require.Nil(t, s)

	saved := &Session{ID: 1, Username: "admin", Email: "admin@primespace.com", Role: "admin", Token: "tok"}
	require.NoError(t, saved.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadSession(path)
	require.NoError(t, err)
	require.Equal(t, saved, loaded)

	require.NoError(t, ClearSession(path))
	s, err = LoadSession(path)
	require.NoError(t, err)
	require.Nil(t, s)

	// clearing twice is fine
	require.NoError(t, ClearSession(path))
}

func TestLoadSessionCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err := LoadSession(path)
	require.Error(t, err)
}
