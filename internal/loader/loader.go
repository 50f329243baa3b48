// =============================================================================
// Compute Sales - Input Loader
// =============================================================================
//
// This module reads the price catalogue and the sales record into untyped
// values (any) that the catalogue and sales packages then validate.
//
// SUPPORTED FORMATS (chosen by file extension):
//   .json (and anything unrecognised) - JSON document, numbers kept exact
//   .yaml / .yml                      - YAML document
//   .csv                              - one header row, one record per row
//   .xlsx                             - first sheet, same layout as .csv
//
// Files are always read completely before decoding. Any failure here is
// fatal to the run; shape problems inside a well-formed document are not
// detected here and are left to the validators.
//
// =============================================================================

package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DOCUMENT ROLES AND FORMATS
// =============================================================================

// Role tells the tabular readers how to shape rows.
type Role int

const (
	// Catalogue documents hold one product per record.
	Catalogue Role = iota

	// Sales documents hold sales, each with a list of line items.
	Sales
)

// Format identifies how a file is decoded.
type Format string

const (
	FormatJSON Format = "JSON"
	FormatYAML Format = "YAML"
	FormatCSV  Format = "CSV"
	FormatXLSX Format = "XLSX"
)

// DetectFormat picks the decoder for a path from its extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".csv":
		return FormatCSV
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatJSON
	}
}

// =============================================================================
// LOAD ERRORS
// =============================================================================

// ErrorKind classifies a load failure.
type ErrorKind int

const (
	// NotFound means the file does not exist.
	NotFound ErrorKind = iota

	// Invalid means the file was read but could not be decoded.
	Invalid

	// Unreadable means the file exists but could not be read.
	Unreadable
)

// LoadError describes why an input file could not be loaded.
type LoadError struct {
	Path   string
	Kind   ErrorKind
	Format Format
	Err    error
}

// Error renders the message printed before the run exits.
func (e *LoadError) Error() string {
	switch e.Kind {
	case NotFound:
		return fmt.Sprintf("Error: File '%s' not found.", e.Path)
	case Invalid:
		return fmt.Sprintf("Error: Invalid %s in '%s': %v", e.Format, e.Path, e.Err)
	default:
		return fmt.Sprintf("Error reading '%s': %v", e.Path, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// =============================================================================
// LOADING
// =============================================================================

// LoadCatalogue loads a price catalogue document.
func LoadCatalogue(path string) (any, error) {
	return Load(path, Catalogue)
}

// LoadSales loads a sales record document.
func LoadSales(path string) (any, error) {
	return Load(path, Sales)
}

// Load reads path fully and decodes it according to its extension.
func Load(path string, role Role) (any, error) {
	format := DetectFormat(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Kind: NotFound, Format: format, Err: err}
		}
		return nil, &LoadError{Path: path, Kind: Unreadable, Format: format, Err: err}
	}

	var doc any
	switch format {
	case FormatYAML:
		doc, err = decodeYAML(data)
	case FormatCSV:
		doc, err = decodeCSV(data, role)
	case FormatXLSX:
		doc, err = decodeXLSX(data, role)
	default:
		doc, err = decodeJSON(data)
	}
	if err != nil {
		return nil, &LoadError{Path: path, Kind: Invalid, Format: format, Err: err}
	}

	return doc, nil
}

// decodeJSON decodes exactly one JSON value. Numbers are kept as json.Number
// so that integer quantities are never rounded through float64.
func decodeJSON(data []byte) (any, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("input is not valid UTF-8")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}

	return doc, nil
}

func decodeYAML(data []byte) (any, error) {
	if !utf8.Valid(data) {
		return nil, errors.New("input is not valid UTF-8")
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return stringKeys(doc), nil
}

// stringKeys rewrites YAML mappings with non-string keys (such as `1: x`)
// into map[string]any, so every mapping has the same shape as in JSON.
func stringKeys(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = stringKeys(item)
		}
		return out
	case map[string]any:
		for k, item := range val {
			val[k] = stringKeys(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = stringKeys(item)
		}
		return val
	default:
		return v
	}
}
