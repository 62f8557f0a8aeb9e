package blob

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

// LocalStorage keeps objects on a filesystem rooted at the public storage dir.
type LocalStorage struct {
	fs afero.Fs
}

func NewLocal(root string) *LocalStorage {
	return NewLocalFs(afero.NewBasePathFs(afero.NewOsFs(), root))
}

func NewLocalFs(fsys afero.Fs) *LocalStorage {
	return &LocalStorage{fs: fsys}
}

func (s *LocalStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	key = cleanKey(key)
	if err := s.fs.MkdirAll(path.Dir(key), 0o755); err != nil {
		return err
	}
	f, err := s.fs.Create(key)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(key)
		return err
	}
	return f.Close()
}

func (s *LocalStorage) Open(_ context.Context, key string) (io.ReadCloser, *ObjectInfo, error) {
	key = cleanKey(key)
	f, err := s.fs.Open(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, ErrObjectNotFound
		}
		return nil, nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, nil, ErrObjectNotFound
	}

	ct := mime.TypeByExtension(filepath.Ext(key))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return f, &ObjectInfo{Key: key, Size: st.Size(), ContentType: ct}, nil
}

func (s *LocalStorage) Exists(_ context.Context, key string) (bool, error) {
	return afero.Exists(s.fs, cleanKey(key))
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	err := s.fs.Remove(cleanKey(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func cleanKey(key string) string {
	return path.Clean("/" + key)
}
