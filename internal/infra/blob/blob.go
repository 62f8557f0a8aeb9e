package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrObjectNotFound = errors.New("object not found")

type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

type UploadedMeta struct {
	Key      string
	Filename string
	SHA256   string
	MIME     string
	SizeB    int64
}

// Storage is the file store behind attachments and profile photos.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

// UploadFormFile stores fh under keyPrefix/<uuid>/<original name>. The uuid segment keeps
// two uploads with the same original name from overwriting each other.
func UploadFormFile(ctx context.Context, st Storage, keyPrefix string, fh *multipart.FileHeader) (*UploadedMeta, error) {
	name := sanitizeFilename(fh.Filename)
	key := path.Join(keyPrefix, uuid.NewString(), name)

	sumHex, err := sha256OfFileHeader(fh)
	if err != nil {
		return nil, fmt.Errorf("calc sha256: %w", err)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mime := fh.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}
	if err := st.Put(ctx, key, file, fh.Size, mime); err != nil {
		return nil, fmt.Errorf("store %s: %w", name, err)
	}

	return &UploadedMeta{
		Key:      key,
		Filename: name,
		SHA256:   sumHex,
		MIME:     mime,
		SizeB:    fh.Size,
	}, nil
}

func sha256OfFileHeader(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == "/" {
		return "fichier"
	}
	return name
}
