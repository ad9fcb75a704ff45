package ingest

import (
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"email,timestamp,osrl_level,responses",
		"ana@example.com,2026-03-01T10:00:00Z,4,gov1=3;gov2=4;delivery1=2",
		"bruno@example.com,2026-03-02T11:30:00Z,2,gov1=1",
	}, "\n")

	rows, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Email != "ana@example.com" {
		t.Errorf("email = %q", first.Email)
	}
	if first.Timestamp.IsZero() {
		t.Errorf("timestamp not parsed")
	}
	if len(first.Responses) != 3 || first.Responses["gov2"] != 4 {
		t.Errorf("responses = %v", first.Responses)
	}
	if rows[1].Responses["gov1"] != 1 {
		t.Errorf("second row responses = %v", rows[1].Responses)
	}
}

func TestParseCSVMissingColumn(t *testing.T) {
	input := "email,osrl_level\nana@example.com,4\n"
	if _, err := ParseCSV(strings.NewReader(input)); err == nil {
		t.Fatalf("expected error for missing responses column")
	}
}

func TestParseCSVMalformedPair(t *testing.T) {
	input := "email,responses\nana@example.com,gov1:3\n"
	if _, err := ParseCSV(strings.NewReader(input)); err == nil {
		t.Fatalf("expected error for malformed pair")
	}
}

func TestParseResponses(t *testing.T) {
	got, err := ParseResponses(" gov1=3; delivery2=5 ;")
	if err != nil {
		t.Fatalf("ParseResponses: %v", err)
	}
	if len(got) != 2 || got["gov1"] != 3 || got["delivery2"] != 5 {
		t.Fatalf("responses = %v", got)
	}
}

func TestParseResponsesBadValue(t *testing.T) {
	if _, err := ParseResponses("gov1=x"); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
}
