package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	cfg, err := Initialize(tempDir, log.New(io.Discard, "", 0))
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// A second Initialize leaves the existing file alone.
	_, err = Initialize(tempDir, log.New(io.Discard, "", 0))
	require.NoError(t, err)

	t.Run("Load", func(t *testing.T) {
		loaded, err := Load(tempDir)
		require.NoError(t, err)
		assert.Equal(t, "> ", loaded.Prompt)
	})

	t.Run("LoadByFileName", func(t *testing.T) {
		loaded, err := Load(filepath.Join(tempDir, ConfigurationName))
		require.NoError(t, err)
		assert.Equal(t, "> ", loaded.Prompt)
	})

	t.Run("OpenEventLog", func(t *testing.T) {
		fd, err := cfg.OpenEventLog()
		require.NoError(t, err)
		require.NotNil(t, fd)
		_, err = fd.Write([]byte("{}\n"))
		assert.Nil(t, err)
		fd.Close()

		readFd, err := cfg.ReadEventLog()
		require.NoError(t, err)
		contents, err := io.ReadAll(readFd)
		readFd.Close()
		require.NoError(t, err)
		assert.Equal(t, "{}\n", string(contents))
	})
}

func TestLoadRejectsUnknownField(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tempDir, ConfigurationName),
		[]byte("prompt: \"$ \"\nbogus_field: 1\n"),
		0600))

	_, err := Load(tempDir)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidPolicy(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(tempDir, ConfigurationName),
		[]byte("prompt: \"$ \"\non_empty_line: sometimes\non_comment_line: ignore\ncolor: auto\nlog_file: \"\"\n"),
		0600))

	_, err := Load(tempDir)
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
