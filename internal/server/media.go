package server

import (
	"os"
	"path/filepath"
	"strings"

	"quill/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// maxImageSize caps uploaded attachments at 5 MiB.
const maxImageSize = 5 << 20

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MediaStore writes uploaded post images under the configured media
// directory with collision-free names.
type MediaStore struct {
	dir string
}

// NewMediaStore returns a store rooted at dir.
func NewMediaStore(dir string) *MediaStore {
	return &MediaStore{dir: dir}
}

// Save stores the uploaded file under a fresh UUID name and returns the
// public path it will be served from.
func (m *MediaStore) Save(c *fiber.Ctx, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		// No file attached.
		return "", nil
	}

	if file.Size > maxImageSize {
		return "", models.NewValidationError("Image too large (max 5 MB)")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", models.NewValidationError("Unsupported image type")
	}

	// SaveFile does not create parent directories; a fresh install has none.
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(m.dir, name)); err != nil {
		return "", models.NewInternalError(err)
	}
	return "/media/" + name, nil
}

// saveUploadedImage stores an optional "image" form file and returns its
// public path, or "" when the form carried no file.
func (s *Server) saveUploadedImage(c *fiber.Ctx) (string, error) {
	return s.media.Save(c, "image")
}
