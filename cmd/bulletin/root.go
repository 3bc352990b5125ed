package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/storm-bulletin-etl/internal/adapter/webpage"
	"github.com/couchcryptid/storm-bulletin-etl/internal/cap"
	"github.com/couchcryptid/storm-bulletin-etl/internal/domain"
	"github.com/couchcryptid/storm-bulletin-etl/internal/filter"
	"github.com/couchcryptid/storm-bulletin-etl/internal/observability"
	"github.com/couchcryptid/storm-bulletin-etl/internal/pipeline"
)

type options struct {
	filtersFile string
	sourceTag   string
	envelope    string
	logLevel    string
	table       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "bulletin",
		Short: "Categorize and normalize NWS bulletins from files",
		Long: `bulletin runs NWS text products through the same categorizer and
normalizers as the streaming service. Each FILE holds one bulletin as plain
text, an HTML product page, or the JSON envelope form used on the source topic.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.filtersFile, "filters", "", "YAML allow/deny list file (default: built-in lists)")
	pf.StringVar(&opts.sourceTag, "source-tag", "nwws-oi", "source tag stamped on records")
	pf.StringVar(&opts.envelope, "envelope", "", "XML message envelope to pair with a single FILE")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.BoolVar(&opts.table, "table", false, "print a summary table instead of JSON")

	root.AddCommand(parseCmd(opts), categorizeCmd(opts))
	return root
}

// loadMessages reads each file into a RawMessage keyed by its base name.
func (o *options) loadMessages(paths []string) ([]domain.RawMessage, error) {
	if o.envelope != "" && len(paths) != 1 {
		return nil, fmt.Errorf("--envelope needs exactly one FILE, got %d", len(paths))
	}

	var envelope *cap.Element
	if o.envelope != "" {
		data, err := os.ReadFile(o.envelope)
		if err != nil {
			return nil, fmt.Errorf("read envelope: %w", err)
		}
		envelope, err = cap.ParseElement(data)
		if err != nil {
			return nil, fmt.Errorf("parse envelope %s: %w", o.envelope, err)
		}
	}

	logger := o.logger()
	msgs := make([]domain.RawMessage, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read bulletin: %w", err)
		}
		if webpage.IsHTML(data) {
			text, err := webpage.ExtractBulletinText(bytes.NewReader(data))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p, err)
			}
			data = []byte(text)
		}
		msg := pipeline.DecodeMessage(data, filepath.Base(p), logger)
		if envelope != nil {
			msg.Envelope = envelope
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}

func (o *options) lists() (*filter.Lists, error) {
	return filter.Load(o.filtersFile)
}

// logger writes to stderr so JSON output on stdout stays clean.
func (o *options) logger() *slog.Logger {
	return observability.NewWriterLogger(os.Stderr, o.logLevel, "text")
}
