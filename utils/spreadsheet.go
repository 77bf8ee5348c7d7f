package utils

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/net/html/charset"
)

// Sheet is a parsed upload: a header row plus string-valued cells.
// Everything stays a string here; typing happens in the pipeline.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of a header, or -1.
func (s *Sheet) ColumnIndex(name string) int {
	for i, h := range s.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns row[col] or "" when the row is short.
func (s *Sheet) Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// csvEncodings is tried in order until one decodes cleanly. The
// exports come from several tools, some of which still emit legacy
// Windows encodings.
var csvEncodings = []string{"utf-8", "utf-8-sig", "latin-1", "cp1252", "iso-8859-1"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadSheet parses an uploaded file. The filename is used only to pick
// the format: .xlsx/.xls goes through the Excel reader, everything
// else is treated as CSV. Header cells are trimmed of surrounding
// whitespace.
func ReadSheet(content []byte, filename string) (*Sheet, error) {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xls") {
		return readExcel(content)
	}
	return readCSV(content)
}

func readExcel(content []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("arquivo excel invalido: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("arquivo excel sem abas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("falha ao ler a aba %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, errors.New("planilha vazia")
	}
	return newSheet(rows), nil
}

func readCSV(content []byte) (*Sheet, error) {
	for _, enc := range csvEncodings {
		data := content
		switch enc {
		case "utf-8":
			// BOM-prefixed content is valid utf-8, but the marker
			// would stick to the first header cell; the sig pass
			// handles it.
			if bytes.HasPrefix(data, utf8BOM) || !utf8.Valid(data) {
				continue
			}
		case "utf-8-sig":
			if !bytes.HasPrefix(data, utf8BOM) {
				continue
			}
			data = bytes.TrimPrefix(data, utf8BOM)
		default:
			decoded, err := decodeLabel(data, enc)
			if err != nil {
				continue
			}
			data = decoded
		}

		rows, err := parseCSV(data)
		if err != nil {
			continue
		}
		return newSheet(rows), nil
	}
	return nil, errors.New("nao foi possivel ler o arquivo CSV com nenhum encoding")
}

func decodeLabel(data []byte, label string) ([]byte, error) {
	r, err := charset.NewReaderLabel(label, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("arquivo vazio")
	}
	return rows, nil
}

func newSheet(rows [][]string) *Sheet {
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	return &Sheet{Header: header, Rows: rows[1:]}
}
