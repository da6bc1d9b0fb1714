// SPDX-License-Identifier: EPL-2.0

// Package config overlays environment variables on a fathomwt.Config.
package config

import (
	"os"
	"strconv"

	"github.com/ik5/fathomwt"
)

// Environment variables read by Load.
const (
	EnvCycleLength = "FATHOMWT_CYCLE_LENGTH"
	EnvCategory    = "FATHOMWT_CATEGORY"
	EnvAuthor      = "FATHOMWT_AUTHOR"
	EnvComment     = "FATHOMWT_COMMENT"
	EnvRating      = "FATHOMWT_RATING"
	EnvType        = "FATHOMWT_TYPE"
	EnvTargetDir   = "FATHOMWT_TARGET_DIR"
	EnvWorkers     = "FATHOMWT_WORKERS"
)

// Load returns cfg with every set environment variable applied. Textual
// metadata gets its underscores turned into spaces, as on the command line.
// Unparsable numbers keep the value of cfg.
func Load(cfg fathomwt.Config) fathomwt.Config {
	cfg.CycleLength = envInt(EnvCycleLength, cfg.CycleLength)
	cfg.Category = envText(EnvCategory, cfg.Category)
	cfg.Author = envText(EnvAuthor, cfg.Author)
	cfg.Comment = envText(EnvComment, cfg.Comment)
	cfg.Rating = envText(EnvRating, cfg.Rating)
	cfg.Type = envText(EnvType, cfg.Type)
	cfg.TargetDir = envStr(EnvTargetDir, cfg.TargetDir)
	cfg.Workers = envInt(EnvWorkers, cfg.Workers)

	return cfg
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envText(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return fathomwt.ReplaceUnderscore(v)
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
