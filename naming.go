// SPDX-License-Identifier: EPL-2.0

package fathomwt

import (
	"path/filepath"
	"strings"
)

const targetExt = ".xml"

// ReplaceUnderscore turns every underscore of s into a space.
func ReplaceUnderscore(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// PatchName derives the wave table name from a source path: the base name
// without extension, underscores turned into spaces.
func PatchName(path string) string {
	base := filepath.Base(path)
	return ReplaceUnderscore(strings.TrimSuffix(base, filepath.Ext(base)))
}

// TargetName composes the file name the synthesizer browses presets by:
//
//	Name.Category.Author.Comment.Rating.Type.xml
func TargetName(patchName string, cfg Config) string {
	return strings.Join([]string{
		patchName,
		cfg.Category,
		cfg.Author,
		cfg.Comment,
		cfg.Rating,
		cfg.Type,
	}, ".") + targetExt
}

// NewRecord builds the conversion of source into targetDir. An empty
// targetDir places the target next to the source.
func NewRecord(source, targetDir string, cfg Config) Record {
	if targetDir == "" {
		targetDir = filepath.Dir(source)
	}

	patch := PatchName(source)

	return Record{
		Source:    source,
		Target:    filepath.Join(targetDir, TargetName(patch, cfg)),
		PatchName: patch,
	}
}
