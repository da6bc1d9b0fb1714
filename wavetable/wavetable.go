// SPDX-License-Identifier: EPL-2.0

package wavetable

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	rootTable    = "SynthWaveTable"
	rootWaveform = "SynthWaveform"

	drawMode         = "DRAW"
	tableObjectID    = 3
	waveformObjectID = 1
	sampleSeparator  = ","
)

// Cycle is one single-cycle waveform, values nominally in [-1, 1].
type Cycle []float64

// WaveTable is a named, ordered list of cycles.
type WaveTable struct {
	Name   string
	Cycles []Cycle
}

// NumSamples returns the number of samples over all cycles.
func (t *WaveTable) NumSamples() int {
	n := 0
	for _, c := range t.Cycles {
		n += len(c)
	}

	return n
}

type tableDocument struct {
	XMLName xml.Name  `xml:"SynthWaveTable"`
	Name    string    `xml:"Name,attr"`
	Table   tableBody `xml:"WaveTable"`
}

type tableBody struct {
	Waves []tableWave `xml:"wave"`
}

type tableWave struct {
	Members tableMembers `xml:"Members"`
	Buffer  buffer       `xml:"Buffer"`
}

type tableMembers struct {
	WaveMode       string `xml:"WaveMode,attr"`
	ObjectIDNumber int    `xml:"ObjectIdNumber,attr"`
	ModulatorID    int    `xml:"ModulatorId,attr"`
	TableX         int    `xml:"TableX,attr"`
	TableY         int    `xml:"TableY,attr"`
}

type waveformDocument struct {
	XMLName xml.Name     `xml:"SynthWaveform"`
	Name    string       `xml:"Name,attr"`
	Wave    waveformWave `xml:"wave"`
}

type waveformWave struct {
	Members waveformMembers `xml:"Members"`
	Buffer  buffer          `xml:"Buffer"`
}

type waveformMembers struct {
	ObjectIDNumber int `xml:"ObjectIdNumber,attr"`
}

type buffer struct {
	Members bufferMembers `xml:"Members"`
	Samples string        `xml:"Samples"`
}

type bufferMembers struct {
	NumSamples    int `xml:"NumSamples,attr"`
	Size          int `xml:"Size,attr"`
	SizeAllocated int `xml:"SizeAllocated,attr"`
	Index         int `xml:"Index,attr"`
	IsDoubleSize  int `xml:"IsDoubleSize,attr"`
}

func newBuffer(c Cycle) (buffer, error) {
	text, err := FormatSamples(c)
	if err != nil {
		return buffer{}, err
	}

	n := len(c)

	return buffer{
		Members: bufferMembers{
			NumSamples:    n,
			Size:          n,
			SizeAllocated: n,
		},
		Samples: text,
	}, nil
}

// WriteTable serializes t as a SynthWaveTable document, one wave per cycle
// with TableY set to the cycle index.
func WriteTable(w io.Writer, t *WaveTable) error {
	if t == nil || len(t.Cycles) == 0 {
		return ErrNoCycles
	}

	doc := tableDocument{
		Name: t.Name,
		Table: tableBody{
			Waves: make([]tableWave, 0, len(t.Cycles)),
		},
	}

	for i, c := range t.Cycles {
		buf, err := newBuffer(c)
		if err != nil {
			return fmt.Errorf("cycle %d: %w", i, err)
		}

		doc.Table.Waves = append(doc.Table.Waves, tableWave{
			Members: tableMembers{
				WaveMode:       drawMode,
				ObjectIDNumber: tableObjectID,
				TableY:         i,
			},
			Buffer: buf,
		})
	}

	return encode(w, doc)
}

// WriteWaveform serializes a single cycle as a SynthWaveform document.
func WriteWaveform(w io.Writer, name string, c Cycle) error {
	buf, err := newBuffer(c)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing xml header: %w", err)
	}

	return encode(w, waveformDocument{
		Name: name,
		Wave: waveformWave{
			Members: waveformMembers{ObjectIDNumber: waveformObjectID},
			Buffer:  buf,
		},
	})
}

func encode(w io.Writer, doc any) error {
	enc := xml.NewEncoder(w)

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding wave table: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding wave table: %w", err)
	}

	return nil
}

// readDocument accepts both roots. Which fields are filled depends on the root.
type readDocument struct {
	XMLName xml.Name
	Tables  []readTable `xml:"WaveTable"`
	Waves   []readWave  `xml:"wave"`
}

type readTable struct {
	Waves []readWave `xml:"wave"`
}

type readWave struct {
	Buffer *readBuffer `xml:"Buffer"`
}

type readBuffer struct {
	Samples *string `xml:"Samples"`
}

// Read parses a SynthWaveTable or SynthWaveform document and returns the
// samples of every wave in document order.
func Read(r io.Reader) ([]float64, error) {
	var doc readDocument

	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing wave table: %w", err)
	}

	if err := expectEnd(dec); err != nil {
		return nil, err
	}

	var waves []readWave

	switch doc.XMLName.Local {
	case rootTable:
		if len(doc.Tables) == 0 {
			return nil, fmt.Errorf("%w: WaveTable", ErrMissingElement)
		}

		for _, t := range doc.Tables {
			waves = append(waves, t.Waves...)
		}
	case rootWaveform:
		if len(doc.Waves) == 0 {
			return nil, fmt.Errorf("%w: wave", ErrMissingElement)
		}

		waves = doc.Waves
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoot, doc.XMLName.Local)
	}

	var samples []float64

	for i, w := range waves {
		if w.Buffer == nil {
			return nil, fmt.Errorf("wave %d: %w: Buffer", i, ErrMissingElement)
		}

		if w.Buffer.Samples == nil {
			return nil, fmt.Errorf("wave %d: %w: Samples", i, ErrMissingElement)
		}

		parsed, err := ParseSamples(*w.Buffer.Samples)
		if err != nil {
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}

		samples = append(samples, parsed...)
	}

	if len(samples) == 0 {
		return nil, ErrNoCycles
	}

	return samples, nil
}

// expectEnd reads the rest of the input, which may only hold whitespace,
// comments and processing instructions.
func expectEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("parsing wave table: %w", err)
		}

		switch tok := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(tok)) > 0 {
				return fmt.Errorf("%w: text %q", ErrTrailingData, bytes.TrimSpace(tok))
			}
		case xml.StartElement:
			return fmt.Errorf("%w: element %q", ErrTrailingData, tok.Name.Local)
		default:
			return fmt.Errorf("%w: %T", ErrTrailingData, tok)
		}
	}
}

// AppendSample appends the text form of v to dst.
func AppendSample(dst []byte, v float64) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, v, 'g', -1, 64)

	// integral values keep a trailing ".0"
	if !bytes.ContainsAny(dst[start:], ".eIN") {
		dst = append(dst, ".0"...)
	}

	return dst
}

// FormatSample returns the text form of v.
func FormatSample(v float64) string {
	return string(AppendSample(nil, v))
}

// FormatSamples joins the text form of every sample of c with commas.
func FormatSamples(c Cycle) (string, error) {
	if len(c) == 0 {
		return "", ErrEmptySamples
	}

	// "-0.0012345678901234567," is the common worst case
	out := make([]byte, 0, len(c)*24)

	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "", fmt.Errorf("%w: sample %d is %v", ErrInvalidSample, i, v)
		}

		if i > 0 {
			out = append(out, sampleSeparator...)
		}

		out = AppendSample(out, v)
	}

	return string(out), nil
}

// ParseSamples splits a Samples text on commas and parses every value.
// Surrounding whitespace is ignored; NaN and infinities are rejected.
func ParseSamples(text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptySamples
	}

	fields := strings.Split(text, sampleSeparator)
	samples := make([]float64, 0, len(fields))

	for i, field := range fields {
		field = strings.TrimSpace(field)

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: sample %d: %w", ErrInvalidSample, i, err)
		}

		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: sample %d is %q", ErrInvalidSample, i, field)
		}

		samples = append(samples, v)
	}

	return samples, nil
}
