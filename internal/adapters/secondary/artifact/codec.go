package artifact

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"car-price-service/internal/core/domain"
)

// document is the on-disk form of a model artifact.
type document struct {
	Kind         string     `json:"kind"`
	Features     []string   `json:"features"`
	Coefficients []float64  `json:"coefficients"`
	Intercept    float64    `json:"intercept"`
	Scaler       *scalerDoc `json:"scaler,omitempty"`
}

type scalerDoc struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Decode parses an artifact. name selects decompression by suffix:
// .zst, .lz4 and .gz are supported, anything else is read as plain JSON.
func Decode(name string, data []byte) (*LinearModel, error) {
	raw, err := decompress(name, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrArtifactFormat, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrArtifactFormat, err)
	}

	if domain.ModelKind(doc.Kind) != domain.ModelKindLinearRegression {
		return nil, fmt.Errorf("%w: unsupported kind %q", domain.ErrArtifactFormat, doc.Kind)
	}

	var scaler *Scaler
	if doc.Scaler != nil {
		scaler = &Scaler{Mean: doc.Scaler.Mean, Scale: doc.Scaler.Scale}
	}

	model, err := NewLinearModel(doc.Features, doc.Coefficients, doc.Intercept, scaler, name)
	if err != nil {
		return nil, err
	}
	model.info.Fingerprint = Fingerprint(data)
	return model, nil
}

// Encode serializes a model back into artifact form, compressed per name.
func Encode(name string, m *LinearModel) ([]byte, error) {
	doc := document{
		Kind:         string(domain.ModelKindLinearRegression),
		Features:     m.Features(),
		Coefficients: append([]float64(nil), m.coef.RawVector().Data...),
		Intercept:    m.intercept,
	}
	if m.scaler != nil {
		doc.Scaler = &scalerDoc{Mean: m.scaler.Mean, Scale: m.scaler.Scale}
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal artifact: %w", err)
	}
	return compress(name, raw)
}

// Fingerprint identifies artifact bytes in logs and the model endpoint.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// maxDecodedBytes caps the decompressed size of an artifact.
var maxDecodedBytes int64 = 64 << 20

func decompress(name string, data []byte) ([]byte, error) {
	var raw []byte
	var err error

	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		var dec *zstd.Decoder
		dec, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(maxDecodedBytes)))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		raw, err = dec.DecodeAll(data, nil)
	case ".lz4":
		raw, err = readLimited(lz4.NewReader(bytes.NewReader(data)))
	case ".gz":
		var r *gzip.Reader
		r, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		raw, err = readLimited(r)
	default:
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > maxDecodedBytes {
		return nil, fmt.Errorf("decompressed artifact exceeds %d bytes", maxDecodedBytes)
	}
	return raw, nil
}

// readLimited reads at most one byte past maxDecodedBytes so oversize
// input is detected without buffering all of it.
func readLimited(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, maxDecodedBytes+1))
}

func compress(name string, raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	case ".lz4":
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	case ".gz":
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
	default:
		return raw, nil
	}
	return buf.Bytes(), nil
}
