// SPDX-License-Identifier: EPL-2.0

package fathomwt

import (
	"fmt"
	"io/fs"
	"path/filepath"
)

// Collect walks startDir in lexical order and returns a Record for every
// file whose extension has a registered decoder. With a targetDir the
// sub-directory layout below startDir is mirrored under it; otherwise each
// target lands next to its source.
func Collect(startDir, targetDir string, cfg Config) ([]Record, error) {
	reg := cfg.registry()

	cfg.Logger.Debug().
		Str("dir", startDir).
		Strs("formats", reg.Formats()).
		Msg("collecting sources")

	var records []Record

	err := filepath.WalkDir(startDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if _, ok := reg.Get(extension(path)); !ok {
			cfg.Logger.Debug().Str("path", path).Msg("skipping file without decoder")
			return nil
		}

		outDir := ""
		if targetDir != "" {
			rel, err := filepath.Rel(startDir, filepath.Dir(path))
			if err != nil {
				return err
			}

			outDir = filepath.Join(targetDir, rel)
		}

		records = append(records, NewRecord(path, outDir, cfg))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("collecting sources in %s: %w", startDir, err)
	}

	return records, nil
}
