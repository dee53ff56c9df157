package artifact

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"

	"car-price-service/internal/core/domain"
	"car-price-service/internal/core/ports/output"
)

type fileSource struct {
	path string
}

// NewFileSource reads the artifact from local disk.
func NewFileSource(path string) ports.ArtifactSource {
	return &fileSource{path: path}
}

func (s *fileSource) Read(_ context.Context) ([]byte, string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, s.path, fmt.Errorf("artifact file %s does not exist: %w", s.path, err)
		}
		return nil, s.path, fmt.Errorf("read artifact file: %w", err)
	}
	return data, s.path, nil
}

func (s *fileSource) Describe() string {
	return "file:" + s.path
}

// Load reads and decodes the artifact once. Every failure wraps
// domain.ErrArtifactLoad so callers can treat it as fatal.
func Load(ctx context.Context, src ports.ArtifactSource) (*LinearModel, error) {
	data, name, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrArtifactLoad, err)
	}

	model, err := Decode(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrArtifactLoad, src.Describe(), err)
	}
	model.info.Source = src.Describe()

	log.WithFields(log.Fields{
		"source":      src.Describe(),
		"kind":        model.info.Kind,
		"features":    model.features,
		"fingerprint": model.info.Fingerprint,
	}).Info("model artifact loaded")

	return model, nil
}
