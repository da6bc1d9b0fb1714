// SPDX-License-Identifier: EPL-2.0

package fathomwt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Record is one planned conversion.
type Record struct {
	Source    string
	Target    string
	PatchName string
}

// Outcome is the result of one Record. Err is nil on success.
type Outcome struct {
	Record Record
	Err    error
}

// OK reports whether the conversion succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// Messages returns the report lines of a failed outcome.
func (o Outcome) Messages() []string {
	if o.Err == nil {
		return nil
	}

	var convErr *ConversionError
	if errors.As(o.Err, &convErr) && len(convErr.Messages) > 0 {
		return convErr.Messages
	}

	return []string{o.Err.Error()}
}

// RunBatch encodes every record with at most cfg.Workers conversions at a
// time. A failure never stops the other records. Outcomes are returned in
// the order of records.
func RunBatch(records []Record, cfg Config) []Outcome {
	outcomes := make([]Outcome, len(records))

	var g errgroup.Group
	g.SetLimit(max(cfg.Workers, 1))

	for i, rec := range records {
		g.Go(func() error {
			err := EncodeFile(rec, cfg)
			if err != nil {
				cfg.Logger.Debug().Err(err).Str("source", rec.Source).Msg("conversion failed")
			}

			outcomes[i] = Outcome{Record: rec, Err: err}

			return nil
		})
	}

	// workers never return an error, failures live in outcomes
	_ = g.Wait()

	return outcomes
}

// Failed returns the failed outcomes, keeping their order.
func Failed(outcomes []Outcome) []Outcome {
	var failed []Outcome

	for _, o := range outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}

	return failed
}

// FormatConditions describes what a source must look like to convert.
func FormatConditions(cycleLength int) string {
	return fmt.Sprintf(`
Make sure that the files you want to convert meet the following conditions:
* The file contains WAV or AIFF data and has a matching extension.
* The file is mono and is in 16 or 32 bit PCM format (not IEEE float format)
* If the number of samples is greater than %[1]d it must be a multiple of %[1]d
`, cycleLength)
}

// WriteReport prints every failed outcome in order followed by the format
// conditions. Nothing is written when all outcomes succeeded.
func WriteReport(w io.Writer, outcomes []Outcome, cycleLength int) error {
	failed := Failed(outcomes)
	if len(failed) == 0 {
		return nil
	}

	var b strings.Builder

	b.WriteString("Errors encountered for the following files:\n")

	for _, o := range failed {
		fmt.Fprintf(&b, "Errors occurred for %s\n", o.Record.Source)

		for _, msg := range o.Messages() {
			b.WriteString(msg)
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(FormatConditions(cycleLength))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
