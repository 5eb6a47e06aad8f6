package adapters

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mhindle4/marty-backend/application/ports/outbound"
)

const audioURLPrefix = "/static/audio"

// diskAudioStore writes synthesized audio into a local directory served as
// static content. Filenames combine a millisecond timestamp with a short
// random suffix so concurrent requests in the same millisecond cannot
// collide. Files are never cleaned up.
type diskAudioStore struct {
	dir    string
	logger outbound.LoggerPort
}

func NewDiskAudioStore(dir string, logger outbound.LoggerPort) (outbound.AudioStorePort, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory %s: %w", dir, err)
	}
	return &diskAudioStore{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save streams the audio to a uniquely named file. The file is closed before
// the URL is returned; a failed write removes the partial file and returns an
// error, so no caller ever links a half-written file.
func (d *diskAudioStore) Save(ctx context.Context, audio io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("marty_%d_%s.mp3", time.Now().UnixMilli(), uuid.NewString()[:8])
	path := filepath.Join(d.dir, filename)

	file, err := os.Create(path)
	if err != nil {
		d.logger.ErrorWithFields(err, "Failed to create audio file", map[string]interface{}{
			"path": path,
		})
		return "", err
	}

	if _, err := io.Copy(file, audio); err != nil {
		d.discard(file, path)
		d.logger.ErrorWithFields(err, "Failed to write audio file", map[string]interface{}{
			"path": path,
		})
		return "", err
	}

	if err := file.Close(); err != nil {
		d.discard(nil, path)
		d.logger.ErrorWithFields(err, "Failed to close audio file", map[string]interface{}{
			"path": path,
		})
		return "", err
	}

	return audioURLPrefix + "/" + filename, nil
}

func (d *diskAudioStore) discard(file *os.File, path string) {
	if file != nil {
		if err := file.Close(); err != nil {
			d.logger.Error(err, "Failed to close partial audio file")
		}
	}
	if err := os.Remove(path); err != nil {
		d.logger.Error(err, "Failed to remove partial audio file")
	}
}
