package main

import (
	"encoding/json"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderParseTable(w io.Writer, results []parseResult) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"File", "ID", "Category", "Type", "Event", "Outcome"})
	for _, r := range results {
		kind, event, outcome := "", "", "ok"
		if r.Record != nil {
			kind = string(r.Record.Kind())
			event = r.Record.EventName()
		}
		if r.Rejected != "" {
			outcome = "rejected: " + string(r.Rejected)
		}
		tw.AppendRow(table.Row{r.File, r.ID, r.Category, kind, event, outcome})
	}
	tw.Render()
	return nil
}

func renderCategorizeTable(w io.Writer, results []categorizeResult) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"File", "ID", "Category", "Event"})
	for _, r := range results {
		tw.AppendRow(table.Row{r.File, r.ID, r.Category, r.Event})
	}
	tw.Render()
	return nil
}
