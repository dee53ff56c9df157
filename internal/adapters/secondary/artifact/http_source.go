package artifact

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	log "github.com/sirupsen/logrus"

	"car-price-service/internal/core/ports/output"
)

// maxArtifactBytes caps a downloaded artifact.
const maxArtifactBytes = 64 << 20

type httpSource struct {
	httpClient *http.Client
	url        string
}

// NewHTTPSource downloads the artifact from a URL, e.g. a model registry or
// object store. The URL path suffix selects decompression.
func NewHTTPSource(rawURL string, timeout time.Duration) ports.ArtifactSource {
	return &httpSource{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url: rawURL,
	}
}

func (s *httpSource) Read(ctx context.Context) ([]byte, string, error) {
	name := s.url
	if u, err := url.Parse(s.url); err == nil {
		name = path.Base(u.Path)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, name, fmt.Errorf("create artifact request: %w", err)
	}

	log.WithFields(log.Fields{
		"method": http.MethodGet,
		"url":    s.url,
	}).Debug("fetching model artifact")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, name, fmt.Errorf("artifact request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, name, fmt.Errorf("artifact request: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxArtifactBytes+1))
	if err != nil {
		return nil, name, fmt.Errorf("read artifact body: %w", err)
	}
	if len(data) > maxArtifactBytes {
		return nil, name, fmt.Errorf("artifact exceeds %d bytes", maxArtifactBytes)
	}
	return data, name, nil
}

func (s *httpSource) Describe() string {
	return "http:" + s.url
}
