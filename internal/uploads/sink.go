// Package uploads persiste archivos subidos por el usuario en disco.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sink escribe archivos bajo dir con nombres únicos y devuelve el path
// web-servible (basePath + nombre). No hay retención: acumula indefinido.
type Sink struct {
	dir      string
	basePath string
}

func NewSink(dir string) *Sink {
	return &Sink{
		dir:      dir,
		basePath: "/uploads",
	}
}

// Dir expone el directorio físico (lo monta el router como file server).
func (s *Sink) Dir() string {
	return s.dir
}

// Store escribe src bajo un nombre único derivado del original y devuelve
// el path relativo para guardar en la fila. Crea el directorio si falta.
func (s *Sink) Store(src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("uploads: mkdir %s: %w", s.dir, err)
	}

	name := fmt.Sprintf("%d-%s-%s",
		time.Now().UnixNano(),
		uuid.NewString()[:8],
		sanitizeName(originalName),
	)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("uploads: create: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("uploads: write: %w", err)
	}

	return s.basePath + "/" + name, nil
}

// sanitizeName reduce el nombre original a [a-zA-Z0-9._-]; lo demás se
// reemplaza por "_". Siempre se toma el base (sin directorios del cliente).
func sanitizeName(original string) string {
	base := filepath.Base(strings.TrimSpace(original))
	if base == "." || base == string(filepath.Separator) || base == "" {
		base = "file"
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
