package audio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalService_Attach(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewLocalService(dir)
	require.NoError(t, err)

	src := filepath.Join(dir, "zdravo.mp3")
	require.NoError(t, os.WriteFile(src, []byte("not really audio"), 0o644))

	att, err := svc.Attach(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "zdravo.mp3", att.Name, "display name should keep the original base name")
	assert.True(t, strings.HasPrefix(att.URL, "file://"), "url = %q", att.URL)
	assert.True(t, strings.HasSuffix(att.URL, ".mp3"), "url = %q", att.URL)

	// The stored copy gets a unique name inside the media dir.
	stored := strings.TrimPrefix(att.URL, "file://")
	assert.Equal(t, filepath.Join(dir, "media"), filepath.Dir(stored))
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("not really audio"), data)
}

func TestLocalService_AttachTwiceUniqueNames(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewLocalService(dir)
	require.NoError(t, err)

	src := filepath.Join(dir, "hvala.mp3")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o644))

	a, err := svc.Attach(context.Background(), src)
	require.NoError(t, err)
	b, err := svc.Attach(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, a.Name, b.Name)
	assert.NotEqual(t, a.URL, b.URL, "each attach stores its own copy")
}

func TestLocalService_AttachMissingFile(t *testing.T) {
	svc, err := NewLocalService(t.TempDir())
	require.NoError(t, err)

	_, err = svc.Attach(context.Background(), "/no/such/file.mp3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open audio file")
}

func TestLocalService_AttachCanceledContext(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewLocalService(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Attach(ctx, filepath.Join(dir, "whatever.mp3"))
	assert.ErrorIs(t, err, context.Canceled)
}
