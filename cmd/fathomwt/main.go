// SPDX-License-Identifier: EPL-2.0

// Command fathomwt converts mono PCM files into Fathom wave tables, or a
// wave table back into a WAV file with -w.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/fathomwt"
	"github.com/ik5/fathomwt/internal/config"
	"github.com/ik5/fathomwt/internal/logger"
	"github.com/rs/zerolog/log"
)

var (
	errNoInput      = errors.New("please specify an input file and / or an input directory")
	errFileAndDir   = errors.New("please specify a source directory or a file exclusively")
	errNoFile       = errors.New("please specify a filename with -f")
	errNotDirectory = errors.New("not a directory")
	errConversion   = errors.New("some files could not be converted")
)

const usageText = `Usage: fathomwt [options]

Use the following basic parameters:
  -f, -file: Convert the single file "filename".
  -d, -dir: Recursively convert all files in the given directory.
  -g, -targetdir: Put all converted files into the given target directory. If
                  this parameter is not given, all files will be put next to
                  the original files.
  -l, -length: The number of samples that's assumed for wave table files.
  -w: Mode that converts Fathom XML to wav files. Provide the file to convert
      using the -f option. The resulting file will have the same name as the
      input file with ".wav" appended.
  -s: Write a single waveform (the first cycle) instead of a wave table.
  -j: Number of files converted at the same time.

Parameters for meta data:
  -c, -category: Use the given category for all converted files
  -a, -author: Use the given author for all converted files
  -m, -comment: Use the given comment for all converted files
  -r, -rating: Use the given rating (in [0, 10]) for all converted files
  -t, -type: Use the given type for all converted files
`

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)

	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errConversion):
		os.Exit(1)
	default:
		log.Error().Err(err).Msg("fathomwt failed")
		os.Exit(1)
	}
}

// textFlag stores a metadata value with underscores turned into spaces.
type textFlag struct {
	dst *string
}

func (f textFlag) String() string {
	if f.dst == nil {
		return ""
	}

	return *f.dst
}

func (f textFlag) Set(s string) error {
	*f.dst = fathomwt.ReplaceUnderscore(s)
	return nil
}

type options struct {
	file     string
	dir      string
	waveDump bool
}

func parseFlags(args []string, cfg *fathomwt.Config, stderr io.Writer) (options, error) {
	var opts options

	flagSet := flag.NewFlagSet("fathomwt", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fmt.Fprint(stderr, fathomwt.FormatConditions(cfg.CycleLength))
	}

	for _, name := range []string{"f", "file"} {
		flagSet.StringVar(&opts.file, name, "", "file to convert")
	}

	for _, name := range []string{"d", "dir"} {
		flagSet.StringVar(&opts.dir, name, "", "directory to convert recursively")
	}

	for _, name := range []string{"g", "targetdir"} {
		flagSet.StringVar(&cfg.TargetDir, name, cfg.TargetDir, "target directory")
	}

	for _, name := range []string{"l", "length"} {
		flagSet.IntVar(&cfg.CycleLength, name, cfg.CycleLength, "samples per cycle")
	}

	text := []struct {
		short, long string
		dst         *string
	}{
		{"c", "category", &cfg.Category},
		{"a", "author", &cfg.Author},
		{"m", "comment", &cfg.Comment},
		{"r", "rating", &cfg.Rating},
		{"t", "type", &cfg.Type},
	}

	for _, tf := range text {
		flagSet.Var(textFlag{tf.dst}, tf.short, tf.long)
		flagSet.Var(textFlag{tf.dst}, tf.long, tf.long)
	}

	flagSet.BoolVar(&opts.waveDump, "w", false, "convert a wave table to wav")
	flagSet.BoolVar(&cfg.Single, "s", cfg.Single, "write a single waveform")
	flagSet.IntVar(&cfg.Workers, "j", cfg.Workers, "parallel conversions")

	if err := flagSet.Parse(args); err != nil {
		return opts, err
	}

	if flagSet.NArg() > 0 {
		flagSet.Usage()
		return opts, fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}

	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := config.Load(fathomwt.DefaultConfig())
	cfg.Logger = logger.Init(stderr)

	opts, err := parseFlags(args, &cfg, stderr)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.waveDump {
		return dumpWave(opts.file, cfg, stdout)
	}

	if opts.file != "" && opts.dir != "" {
		return errFileAndDir
	}

	var records []fathomwt.Record

	if opts.dir != "" {
		info, err := os.Stat(opts.dir)
		if err != nil {
			return fmt.Errorf("directory %s: %w", opts.dir, err)
		}

		if !info.IsDir() {
			return fmt.Errorf("%s: %w", opts.dir, errNotDirectory)
		}

		records, err = fathomwt.Collect(opts.dir, cfg.TargetDir, cfg)
		if err != nil {
			return err
		}
	}

	if opts.file != "" {
		records = append(records, fathomwt.NewRecord(opts.file, cfg.TargetDir, cfg))
	}

	if len(records) == 0 {
		fmt.Fprint(stderr, usageText)
		return errNoInput
	}

	outcomes := fathomwt.RunBatch(records, cfg)

	if err := fathomwt.WriteReport(stderr, outcomes, cfg.CycleLength); err != nil {
		return err
	}

	failed := len(fathomwt.Failed(outcomes))
	fmt.Fprintf(stdout, "Converted %d of %d files\n", len(outcomes)-failed, len(outcomes))

	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(outcomes), errConversion)
	}

	return nil
}

// dumpWave converts the wave table at file into a WAV file, next to it or
// inside cfg.TargetDir.
func dumpWave(file string, cfg fathomwt.Config, stdout io.Writer) error {
	if file == "" {
		return errNoFile
	}

	target := file + fathomwt.WAVSuffix
	if cfg.TargetDir != "" {
		target = filepath.Join(cfg.TargetDir, filepath.Base(target))
	}

	if err := fathomwt.DecodeFileTo(file, target, cfg); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s\n", target)

	return nil
}
