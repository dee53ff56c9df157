package ports

import "context"

// ArtifactSource yields the raw bytes of a serialized model artifact.
// name identifies the artifact (file path, configmap key) and its suffix
// selects the decompressor.
type ArtifactSource interface {
	Read(ctx context.Context) (data []byte, name string, err error)
	Describe() string
}
