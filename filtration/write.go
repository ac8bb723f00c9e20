// SPDX-License-Identifier: MIT
// Package: lvhom/filtration
//
// write.go - barcode and filtration writers.

package filtration

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvhom/barcode"
	"github.com/katalvlaran/lvhom/core"
)

// Format selects the barcode output encoding.
type Format int

const (
	// FormatText writes "dim start end" lines.
	FormatText Format = iota

	// FormatYAML writes a YAML sequence of intervals.
	FormatYAML
)

// String returns "text" or "yaml".
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	default:
		return "format(" + strconv.Itoa(int(f)) + ")"
	}
}

// ParseFormat maps "text"/"txt"/"yaml"/"yml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return FormatText, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// value marshals a filtration value as a YAML float at single precision.
type value float64

// MarshalYAML emits a plain scalar that resolves to a number; ±Inf become
// ".inf" and "-.inf". The tag is left implicit so integral values print as
// "1", not "!!float 1".
func (v value) MarshalYAML() (interface{}, error) {
	var s string
	switch f := float64(v); {
	case math.IsInf(f, 1):
		s = ".inf"
	case math.IsInf(f, -1):
		s = "-.inf"
	default:
		s = barcode.FormatValue(f)
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}, nil
}

// yamlInterval is the YAML shape of one interval.
type yamlInterval struct {
	Dim   int   `yaml:"dim"`
	Start value `yaml:"start"`
	End   value `yaml:"end"`
}

// Write encodes b to w in format f, in the barcode's current order.
func Write(w io.Writer, b barcode.Barcode, f Format) error {
	switch f {
	case FormatText:
		bw := bufio.NewWriter(w)
		for _, iv := range b {
			if _, err := bw.WriteString(iv.String() + "\n"); err != nil {
				return fmt.Errorf("filtration: write: %w", err)
			}
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("filtration: write: %w", err)
		}
		return nil

	case FormatYAML:
		out := make([]yamlInterval, len(b))
		for i, iv := range b {
			out[i] = yamlInterval{Dim: iv.Dim, Start: value(iv.Start), End: value(iv.End)}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("filtration: yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("filtration: yaml: %w", err)
		}
		return nil
	}

	return fmt.Errorf("Write: %v: %w", f, ErrUnknownFormat)
}

// WriteFile writes b to path, creating parent directories as needed.
func WriteFile(path string, b barcode.Barcode, f Format) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("filtration: %w", err)
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("filtration: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("filtration: %w", cerr)
		}
	}()

	return Write(fh, b, f)
}

// WriteSimplices writes fs in the filtration input format, one record per
// line, in the given order.
func WriteSimplices(w io.Writer, fs []core.Simplex) error {
	bw := bufio.NewWriter(w)
	for _, s := range fs {
		var sb strings.Builder
		sb.WriteString(barcode.FormatValue(s.Value))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(s.Dim))
		for _, v := range s.Vertices {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return fmt.Errorf("filtration: write: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("filtration: write: %w", err)
	}

	return nil
}
