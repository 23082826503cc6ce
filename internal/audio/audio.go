// Package audio resolves audio files into attachments the editor can
// store on media elements. The core treats the service as opaque: it only
// keeps the returned name/URL descriptor.
package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Attachment is the descriptor stored on a media element.
type Attachment struct {
	Name string
	URL  string
}

// Service resolves a local file into an attachment. Implementations may
// take arbitrarily long; callers attach asynchronously and must not block
// editing while an upload is pending.
type Service interface {
	Attach(ctx context.Context, path string) (Attachment, error)
}

// LocalService copies audio files into the app data directory and serves
// them back as file:// URLs. It stands in for a real upload backend.
type LocalService struct {
	dir string
}

// NewLocalService creates a service storing media under dir/media.
func NewLocalService(dir string) (*LocalService, error) {
	mediaDir := filepath.Join(dir, "media")
	if err := os.MkdirAll(mediaDir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalService{dir: mediaDir}, nil
}

// Attach copies the file into the media directory under a unique name and
// returns its descriptor. The original base name is kept as the display
// name.
func (s *LocalService) Attach(ctx context.Context, path string) (Attachment, error) {
	if err := ctx.Err(); err != nil {
		return Attachment{}, err
	}

	src, err := os.Open(path)
	if err != nil {
		return Attachment{}, fmt.Errorf("open audio file: %w", err)
	}
	defer src.Close()

	name := filepath.Base(path)
	stored := filepath.Join(s.dir, uuid.NewString()+filepath.Ext(name))

	dst, err := os.Create(stored)
	if err != nil {
		return Attachment{}, fmt.Errorf("store audio file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(stored)
		return Attachment{}, fmt.Errorf("copy audio file: %w", err)
	}

	return Attachment{
		Name: name,
		URL:  "file://" + stored,
	}, nil
}
