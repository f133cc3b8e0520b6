package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/cours-de-latin/greeknames"
)

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file|->",
		Short: "Correct one name per line, or one JSON record per line",
		Long: `Read names from a file (or stdin with "-"), one per line, and print the
results in input order. With --json-key every line is a JSON object whose
field holds the name; the corrected record is printed as a JSON line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args[0])
		},
	}
	cmd.Flags().String("json-key", "", "Treat each line as a JSON record and read the name from this field")
	cmd.Flags().String("output-key", "", "Record field receiving the corrected name (default correctedFullname)")
	cmd.Flags().Int("workers", 0, "Concurrent workers (default from BATCH_WORKERS)")
	cmd.Flags().BoolP("quiet", "q", false, "Hide the progress bar")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, path string) error {
	opts, err := optionsFromFlags(cmd)
	if err != nil {
		return err
	}
	jsonKey := mustGetString(cmd, "json-key")
	if jsonKey != "" {
		opts.JSONKey = jsonKey
	}
	if k := mustGetString(cmd, "output-key"); k != "" {
		opts.OutputKey = k
	}
	workers := mustGetInt(cmd, "workers")
	if workers < 1 {
		workers = a.cfg.Batch.Workers
	}

	p, err := newPrinter(cmd.OutOrStdout(), mustGetString(cmd, "output"), mustGetBool(cmd, "no-color"))
	if err != nil {
		return err
	}

	lines, err := readLines(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(lines),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("Correcting names"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("names"),
		progressbar.OptionSetVisibility(!mustGetBool(cmd, "quiet")),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if jsonKey != "" {
		records, err := processRecords(ctx, a.corrector, lines, opts, workers, func() { _ = bar.Add(1) })
		if err != nil {
			return err
		}
		_ = bar.Finish()
		for _, rec := range records {
			if err := p.jsonLine(rec); err != nil {
				return err
			}
		}
		return nil
	}

	results, err := processNames(ctx, a.corrector, lines, opts, workers, func() { _ = bar.Add(1) })
	if err != nil {
		return err
	}
	_ = bar.Finish()
	return printResults(p, results)
}

// readLines returns the non-blank lines of path, or of stdin for "-".
func readLines(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// processNames corrects every name with at most workers goroutines, calling
// done after each one. Results keep the input order.
func processNames(ctx context.Context, c *greeknames.Corrector, names []string, opts greeknames.Options, workers int, done func()) ([]*greeknames.Result, error) {
	results := make([]*greeknames.Result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer done()
			res, err := c.Process(name, opts)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// processRecords decodes every line as a JSON object and corrects the name
// under opts.JSONKey.
func processRecords(ctx context.Context, c *greeknames.Corrector, lines []string, opts greeknames.Options, workers int, done func()) ([]map[string]any, error) {
	out := make([]map[string]any, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, line := range lines {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			defer done()
			var rec map[string]any
			if err := json.Unmarshal([]byte(line), &rec); err != nil {
				return fmt.Errorf("line %d: decode record: %w", i+1, err)
			}
			out[i] = c.ProcessRecord(rec, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func printResults(p *printer, results []*greeknames.Result) error {
	switch p.format {
	case "json":
		for _, res := range results {
			if err := p.jsonLine(newOutputRecord(res)); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		records := make([]outputRecord, 0, len(results))
		for _, res := range results {
			records = append(records, newOutputRecord(res))
		}
		return p.yaml(records)
	default:
		for _, res := range results {
			if _, err := fmt.Fprintln(p.w, res.Output()); err != nil {
				return err
			}
		}
		return nil
	}
}
