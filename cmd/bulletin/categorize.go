package main

import (
	"github.com/spf13/cobra"

	"github.com/couchcryptid/storm-bulletin-etl/internal/cap"
	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
)

type categorizeResult struct {
	File     string          `json:"file"`
	ID       string          `json:"id"`
	Category domain.Category `json:"category"`
	Event    string          `json:"event,omitempty"`
}

func categorizeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categorize FILE...",
		Short: "Classify bulletins without normalizing them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := opts.lists()
			if err != nil {
				return err
			}
			msgs, err := opts.loadMessages(args)
			if err != nil {
				return err
			}

			categorizer := domain.NewCategorizer(lists, opts.logger())
			results := make([]categorizeResult, 0, len(msgs))
			for i, msg := range msgs {
				d := categorizer.Categorize(msg)
				res := categorizeResult{File: args[i], ID: msg.ID, Category: d.Category}
				if d.Alert != nil {
					res.Event = cap.EventName(d.Alert)
				}
				results = append(results, res)
			}

			if opts.table {
				return renderCategorizeTable(cmd.OutOrStdout(), results)
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}
}
