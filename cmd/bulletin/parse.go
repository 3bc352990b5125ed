package main

import (
	"github.com/spf13/cobra"

	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
)

// parseResult is one line of parse output.
type parseResult struct {
	File     string          `json:"file"`
	ID       string          `json:"id"`
	Category domain.Category `json:"category"`
	Record   domain.Record   `json:"record,omitempty"`
	Rejected domain.Reason   `json:"rejected,omitempty"`
	Detail   string          `json:"detail,omitempty"`
}

func parseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE...",
		Short: "Normalize bulletins into alert or storm report records",
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

			processor := domain.NewProcessor(lists, opts.sourceTag, opts.logger())
			results := make([]parseResult, 0, len(msgs))
			for i, msg := range msgs {
				out, err := processor.Process(msg)
				res := parseResult{File: args[i], ID: msg.ID, Category: out.Category, Record: out.Record}
				if rej, ok := domain.AsRejection(err); ok {
					res.Rejected = rej.Reason
					res.Detail = rej.Detail
				}
				results = append(results, res)
			}

			if opts.table {
				return renderParseTable(cmd.OutOrStdout(), results)
			}
			return printJSON(cmd.OutOrStdout(), results)
		},
	}
}
