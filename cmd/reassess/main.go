package main

// Recompute assessments from a CSV export:
//   go run ./cmd/reassess -in export.csv

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"osrl-backend/internal/assessments"
	"osrl-backend/internal/ingest"
)

func main() {
	inPath := flag.String("in", "", "Path to the CSV export")
	fullResult := flag.Bool("full", false, "Emit the full result instead of the summary")
	flag.Parse()

	if *inPath == "" {
		exitErr("input path is required")
	}

	f, err := os.Open(*inPath)
	if err != nil {
		exitErr(fmt.Sprintf("open input: %v", err))
	}
	defer f.Close()

	rows, err := ingest.ParseCSV(f)
	if err != nil {
		exitErr(fmt.Sprintf("parse csv: %v", err))
	}

	enc := json.NewEncoder(os.Stdout)
	for i, row := range rows {
		result, err := assessments.Compute(row.Responses)
		if err != nil {
			fmt.Fprintf(os.Stderr, "row %d (%s): %v\n", i+1, row.Email, err)
			continue
		}
		if *fullResult {
			if err := enc.Encode(map[string]any{"email": row.Email, "result": result}); err != nil {
				exitErr(fmt.Sprintf("encode row %d: %v", i+1, err))
			}
			continue
		}
		if err := enc.Encode(map[string]any{
			"email":        row.Email,
			"osrlLevel":    result.OSRLLevel,
			"overallScore": result.OverallScore,
			"pillarScores": result.PillarScores,
			"risks":        len(result.Risks),
			"patterns":     len(result.Patterns),
		}); err != nil {
			exitErr(fmt.Sprintf("encode row %d: %v", i+1, err))
		}
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
