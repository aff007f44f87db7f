package scene

import (
	"bytes"
	"encoding/base64"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"go-well-viewer/internal/model"
	"go-well-viewer/pkg/utils"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ------------------- Upload decoding -------------------

// DecodeUpload turns the contents string of an upload widget into raw bytes.
// Browser data URLs ("data:text/csv;base64,....") are decoded; anything else
// is taken as plain CSV text.
func DecodeUpload(contents string) ([]byte, error) {
	if !strings.HasPrefix(contents, "data:") {
		return []byte(contents), nil
	}

	meta, data, found := strings.Cut(contents, ",")
	if !found {
		return nil, malformedf("data URL has no payload separator")
	}

	if strings.HasSuffix(meta, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, malformed("invalid base64 payload", err)
		}
		return decoded, nil
	}

	decoded, err := url.PathUnescape(data)
	if err != nil {
		return nil, malformed("invalid percent-encoded payload", err)
	}
	return []byte(decoded), nil
}

// ------------------- CSV parsing -------------------

// ParseDataset reads a CSV table with a pozo,litologia,x,y,z header into a Dataset.
// Extra columns are ignored; rows keep their source order.
func ParseDataset(r io.Reader) (model.Dataset, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, malformed("failed to read payload", err)
	}
	if !utf8.Valid(payload) {
		return nil, malformedf("payload is not valid UTF-8 text")
	}
	payload = bytes.TrimPrefix(payload, utf8BOM)

	csvReader := csv.NewReader(bytes.NewReader(payload))
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err == io.EOF {
		return nil, malformedf("payload is empty: no header row")
	} else if err != nil {
		return nil, malformed("failed to read CSV header", err)
	}

	columns, err := indexColumns(headers)
	if err != nil {
		return nil, err
	}

	var ds model.Dataset
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			return ds, nil
		} else if err != nil {
			return nil, malformed("CSV read error", err)
		}

		rec, err := parseRecord(row, columns)
		if err != nil {
			line, _ := csvReader.FieldPos(0)
			return nil, malformedf("line %d: %s", line, err.Error())
		}
		ds = append(ds, rec)
	}
}

// columnIndex maps required column names to their position in the header
type columnIndex map[string]int

func indexColumns(headers []string) (columnIndex, error) {
	columns := make(columnIndex, len(headers))
	for i, h := range headers {
		name := utils.CleanHeader(h)
		// First occurrence wins on duplicate headers
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}

	var missing []string
	for _, name := range model.RequiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, malformedf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

func parseRecord(row []string, columns columnIndex) (model.Record, error) {
	rec := model.Record{
		WellID:      row[columns[model.ColumnWell]],
		LithologyID: row[columns[model.ColumnLithology]],
	}

	coords := []struct {
		name string
		dst  *float64
	}{
		{model.ColumnX, &rec.X},
		{model.ColumnY, &rec.Y},
		{model.ColumnZ, &rec.Z},
	}
	for _, c := range coords {
		raw := row[columns[c.name]]
		v, err := utils.ParseFloat(raw)
		if err != nil {
			return rec, fmt.Errorf("column %s: not a number: %q", c.name, raw)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return rec, fmt.Errorf("column %s: not a finite number: %q", c.name, raw)
		}
		*c.dst = v
	}
	return rec, nil
}
