package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Row is one exported assessment record parsed from a CSV dump.
type Row struct {
	Email     string
	Timestamp time.Time
	Responses map[string]int
}

// Required CSV columns. Extra columns are ignored.
const (
	columnEmail     = "email"
	columnTimestamp = "timestamp"
	columnResponses = "responses"
)

// ParseCSV reads exported assessment rows. The responses column holds
// "id=value" pairs separated by semicolons, e.g. "gov1=3;gov2=4". Rows with a
// malformed responses column fail the whole parse; the caller decides what to
// recompute.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{columnEmail, columnResponses} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var out []Row
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row := Row{Email: strings.TrimSpace(record[cols[columnEmail]])}
		if idx, ok := cols[columnTimestamp]; ok && idx < len(record) {
			if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(record[idx])); err == nil {
				row.Timestamp = ts
			}
		}
		responses, err := ParseResponses(record[cols[columnResponses]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		row.Responses = responses
		out = append(out, row)
	}
	return out, nil
}

// ParseResponses parses the "id=value" pair encoding of a responses column.
func ParseResponses(raw string) (map[string]int, error) {
	out := make(map[string]int)
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed response pair %q", pair)
		}
		id = strings.TrimSpace(id)
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("response %s: %w", id, err)
		}
		out[id] = parsed
	}
	return out, nil
}
