package service

import (
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/ipupy/tesoreria/internal/storage"
)

// UploadService persists receipt images. Filenames carry a wall-clock
// timestamp for operators plus a random suffix so that uploads within
// the same second never collide.
type UploadService struct {
	storage storage.Storage
	dir     string
}

func NewUploadService(storage storage.Storage, dir string) *UploadService {
	return &UploadService{
		storage: storage,
		dir:     dir,
	}
}

// SaveReceipt writes the payload to a new file and returns its path
// relative to the working directory, e.g. "uploads/informe_20250101_120000_1a2b3c4d.jpg".
func (s *UploadService) SaveReceipt(body io.Reader) (string, error) {
	filename := receiptFilename(time.Now())

	err := s.storage.Save(filename, body)
	if err != nil {
		return "", fmt.Errorf("failed to save receipt: %w", err)
	}

	return path.Join(s.dir, filename), nil
}

func receiptFilename(now time.Time) string {
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("informe_%s_%s.jpg", now.Format("20060102_150405"), suffix)
}
