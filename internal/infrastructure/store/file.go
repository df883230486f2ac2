package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var _ BlobStore = (*FileStore)(nil)

// FileStore blob store sobre el sistema de archivos: un JSON por colección
// dentro de un directorio. Backend por defecto.
type FileStore struct {
	dir string
}

// NewFileStore crea el directorio si no existe y construye el store.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(kind string) string {
	return filepath.Join(s.dir, kind+".json")
}

// Load lee el archivo del kind o devuelve (nil, nil) si no existe.
func (s *FileStore) Load(_ context.Context, kind string) ([]byte, error) {
	data, err := os.ReadFile(s.path(kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer colección %s: %w", kind, err)
	}
	return data, nil
}

// Save escribe el blob en un temporal y lo renombra (escritura atómica por archivo).
func (s *FileStore) Save(_ context.Context, kind string, data []byte) error {
	tmp := s.path(kind) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("escribir colección %s: %w", kind, err)
	}
	if err := os.Rename(tmp, s.path(kind)); err != nil {
		return fmt.Errorf("publicar colección %s: %w", kind, err)
	}
	return nil
}

// Delete elimina el archivo del kind; no es error si no existe.
func (s *FileStore) Delete(_ context.Context, kind string) error {
	err := os.Remove(s.path(kind))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("eliminar colección %s: %w", kind, err)
	}
	return nil
}
