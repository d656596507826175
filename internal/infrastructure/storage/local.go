// Package storage guarda las fotos de las órdenes en disco local y las expone
// por URL pública. Suficiente para una sola instancia; detrás de la interfaz
// usecase.ImageStorage se puede cambiar por un bucket sin tocar los casos de uso.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tu-usuario/logistica-api/internal/application/usecase"
)

var _ usecase.ImageStorage = (*LocalImageStorage)(nil)

// LocalImageStorage escribe archivos bajo dir y devuelve baseURL/<nombre>.
type LocalImageStorage struct {
	dir     string
	baseURL string
}

// NewLocalImageStorage crea el directorio si no existe.
func NewLocalImageStorage(dir, baseURL string) (*LocalImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio %s: %w", dir, err)
	}
	return &LocalImageStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save persiste el archivo con un nombre aleatorio (se conserva la extensión
// original) y devuelve la URL pública.
func (s *LocalImageStorage) Save(originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + sanitizeExt(originalName)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Dir devuelve el directorio físico (para montarlo como estáticos).
func (s *LocalImageStorage) Dir() string { return s.dir }

// sanitizeExt devuelve la extensión en minúsculas o vacío si no es razonable.
func sanitizeExt(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) > 5 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return ext
}
