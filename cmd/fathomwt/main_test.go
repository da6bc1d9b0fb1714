package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/fathomwt"
	"github.com/ik5/fathomwt/internal/audiotest"
)

func writeWAV(t *testing.T, path string, channels, frames int) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if err := audiotest.WriteWAV(path, 44100, 16, channels, audiotest.Ramp(frames*channels, 128)); err != nil {
		t.Fatalf("WriteWAV() error = %v", err)
	}
}

func TestRunSingleFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Perfect_Saw.wav")
	writeWAV(t, src, 1, 4096)

	var stdout, stderr bytes.Buffer

	err := run([]string{"-f", src, "-c", "Lead", "-a", "Joe_Doe", "-r", "10"}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run() error = %v, stderr %s", err, stderr.String())
	}

	target := filepath.Join(dir, "Perfect Saw.Lead.Joe Doe._.10.Wave Table.xml")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("target missing: %v", err)
	}

	if !strings.Contains(stdout.String(), "Converted 1 of 1 files") {
		t.Errorf("stdout = %q, want the summary", stdout.String())
	}
}

func TestRunLongFlags(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "pad.wav")
	out := filepath.Join(dir, "out")
	writeWAV(t, src, 1, 1024)

	var stdout, stderr bytes.Buffer

	args := []string{
		"-file", src,
		"-targetdir", out,
		"-length", "512",
		"-category", "Pad",
		"-comment", "Soft_pad",
		"-type", "Single_Cycle",
	}

	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v, stderr %s", err, stderr.String())
	}

	target := filepath.Join(out, "pad.Pad._.Soft pad.0.Single Cycle.xml")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("target missing: %v", err)
	}
}

func TestRunDirectory(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src")
	out := filepath.Join(root, "out")

	writeWAV(t, filepath.Join(src, "a.wav"), 1, 2048)
	writeWAV(t, filepath.Join(src, "sub", "b.wav"), 1, 1000)
	writeWAV(t, filepath.Join(src, "sub", "c_stereo.wav"), 2, 2048)

	var stdout, stderr bytes.Buffer

	err := run([]string{"-d", src, "-g", out, "-j", "2"}, &stdout, &stderr)
	if !errors.Is(err, errConversion) {
		t.Fatalf("run() error = %v, want %v", err, errConversion)
	}

	for _, p := range []string{
		filepath.Join(out, "a._._._.0.Wave Table.xml"),
		filepath.Join(out, "sub", "b._._._.0.Wave Table.xml"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("target %s missing: %v", p, err)
		}
	}

	if _, err := os.Stat(filepath.Join(out, "sub", "c stereo._._._.0.Wave Table.xml")); err == nil {
		t.Error("stereo source was converted")
	}

	report := stderr.String()
	for _, want := range []string{
		"Errors encountered for the following files:",
		"Errors occurred for " + filepath.Join(src, "sub", "c_stereo.wav"),
		fathomwt.MsgNotMono,
		"Make sure that the files you want to convert meet the following conditions:",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("stderr is missing %q:\n%s", want, report)
		}
	}

	if !strings.Contains(stdout.String(), "Converted 2 of 3 files") {
		t.Errorf("stdout = %q, want the summary", stdout.String())
	}
}

func TestRunSingleWaveform(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "sine.wav")
	writeWAV(t, src, 1, 4096)

	var stdout, stderr bytes.Buffer

	if err := run([]string{"-f", src, "-s"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "sine._._._.0.Wave Table.xml"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if !strings.Contains(string(data), "<SynthWaveform") {
		t.Errorf("document does not hold a SynthWaveform: %.80s", data)
	}
}

func TestRunWaveDump(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "saw.wav")
	writeWAV(t, src, 1, 2048)

	var stdout, stderr bytes.Buffer

	if err := run([]string{"-f", src}, &stdout, &stderr); err != nil {
		t.Fatalf("encode run() error = %v", err)
	}

	table := filepath.Join(dir, "saw._._._.0.Wave Table.xml")

	stdout.Reset()

	if err := run([]string{"-w", "-f", table}, &stdout, &stderr); err != nil {
		t.Fatalf("decode run() error = %v", err)
	}

	if _, err := os.Stat(table + ".wav"); err != nil {
		t.Errorf("decoded wav missing: %v", err)
	}

	if !strings.Contains(stdout.String(), table+".wav") {
		t.Errorf("stdout = %q, want the written file", stdout.String())
	}
}

func TestRunWaveDumpTargetDir(t *testing.T) {
	dir := t.TempDir()
	table := filepath.Join(dir, "t.xml")
	doc := `<SynthWaveTable Name="t"><WaveTable><wave><Buffer><Samples>0.0,0.5</Samples></Buffer></wave></WaveTable></SynthWaveTable>`

	if err := os.WriteFile(table, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-w", "-f", table, "-g", out}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "t.xml.wav")); err != nil {
		t.Errorf("decoded wav missing: %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.wav")
	writeWAV(t, src, 1, 64)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{name: "no input", args: nil, want: errNoInput},
		{name: "file and dir", args: []string{"-f", src, "-d", dir}, want: errFileAndDir},
		{name: "wave dump without file", args: []string{"-w"}, want: errNoFile},
		{name: "dir is a file", args: []string{"-d", src}, want: errNotDirectory},
		{name: "missing dir", args: []string{"-d", filepath.Join(dir, "nope")}, want: os.ErrNotExist},
		{name: "zero length", args: []string{"-f", src, "-l", "0"}, want: fathomwt.ErrInvalidConfig},
		{name: "rating out of range", args: []string{"-f", src, "-r", "11"}, want: fathomwt.ErrInvalidConfig},
		{name: "help", args: []string{"-h"}, want: flag.ErrHelp},
		{name: "missing file", args: []string{"-f", filepath.Join(dir, "missing.wav")}, want: errConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			err := run(tt.args, &stdout, &stderr)
			if !errors.Is(err, tt.want) {
				t.Errorf("run(%q) error = %v, want %v", tt.args, err, tt.want)
			}
		})
	}
}

func TestRunFlagParseError(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if err := run([]string{"-l", "many"}, &stdout, &stderr); err == nil {
		t.Fatal("run() error = nil, want a flag parse error")
	}

	if !strings.Contains(stderr.String(), "Use the following basic parameters") {
		t.Errorf("stderr = %q, want the usage text", stderr.String())
	}
}

func TestRunEnvironment(t *testing.T) {
	t.Setenv("FATHOMWT_CATEGORY", "Bass")
	t.Setenv("FATHOMWT_CYCLE_LENGTH", "1024")

	dir := t.TempDir()
	src := filepath.Join(dir, "sub.wav")
	writeWAV(t, src, 1, 2048)

	var stdout, stderr bytes.Buffer

	// flags win over the environment
	if err := run([]string{"-f", src, "-a", "Me"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	target := filepath.Join(dir, "sub.Bass.Me._.0.Wave Table.xml")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if got := strings.Count(string(data), "<wave>"); got != 2 {
		t.Errorf("waves = %d, want 2 cycles of 1024", got)
	}
}

func TestTextFlag(t *testing.T) {
	var s string

	f := textFlag{&s}
	if err := f.Set("A_nice_lead"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if s != "A nice lead" || f.String() != "A nice lead" {
		t.Errorf("value = %q, want %q", s, "A nice lead")
	}

	if (textFlag{}).String() != "" {
		t.Error("zero textFlag String() is not empty")
	}
}
