package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"car-price-service/internal/core/domain"
	"car-price-service/internal/core/ports/output"
)

type fileRepo struct {
	path string
}

// NewFileRepository reads a .csv or .xlsx dataset from disk on every Load,
// so edits to the file show up without a restart.
func NewFileRepository(path string) ports.DatasetRepository {
	return &fileRepo{path: path}
}

func (r *fileRepo) Load(_ context.Context) (*domain.DatasetTable, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s does not exist", domain.ErrDatasetUnavailable, r.path)
		}
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrDatasetUnavailable, r.path, err)
	}
	defer f.Close()

	var records [][]string
	switch strings.ToLower(filepath.Ext(r.path)) {
	case ".xlsx":
		records, err = readXLSX(f)
	default:
		records, err = readCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrDatasetUnavailable, r.path, err)
	}

	return toTable(records)
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

func readXLSX(r io.Reader) ([][]string, error) {
	xlsx, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	return xlsx.GetRows(sheets[0])
}

func toTable(records [][]string) (*domain.DatasetTable, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: dataset has no header row", domain.ErrDatasetUnavailable)
	}
	header := records[0]
	if len(header) > 0 {
		// Spreadsheet exports often prefix the first header cell with a UTF-8 BOM.
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return &domain.DatasetTable{
		Columns: header,
		Rows:    records[1:],
	}, nil
}

type unavailable struct{}

// NewUnavailable is used when no dataset source is configured.
func NewUnavailable() ports.DatasetRepository {
	return unavailable{}
}

func (unavailable) Load(context.Context) (*domain.DatasetTable, error) {
	return nil, fmt.Errorf("%w: no dataset source configured", domain.ErrDatasetUnavailable)
}
