package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrymomot/formfield/pkg/validator"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type report struct {
	Field string `json:"field"`
	validator.FormResult
}

func writeReports(w io.Writer, format string, reports []report) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case outputText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, r := range reports {
			status := "PASS"
			if !r.Passed {
				status = "FAIL"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", status, r.Field, r.Kind, r.Message)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q: must be %q or %q", format, outputText, outputJSON)
	}
}
