// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package content loads portfolio content from YAML. Without an explicit
// file the embedded default portfolio is used.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/oelhwry/folio/core/model"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Parse decodes and validates a portfolio document. Unknown keys are
// rejected so typos surface early.
func Parse(data []byte) (model.Portfolio, error) {
	var p model.Portfolio
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, model.ErrNoPages
		}
		return p, fmt.Errorf("could not parse content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid content: %w", err)
	}
	return p, nil
}

// Default returns the embedded portfolio.
func Default() (model.Portfolio, error) {
	return Parse(defaultYAML)
}

// DefaultYAML returns the embedded document, for example to seed a new
// content file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultYAML...)
}

// Source names where content comes from. An empty Path selects the
// embedded default.
type Source struct {
	Path string
}

// Load reads and validates the portfolio.
func (s Source) Load() (model.Portfolio, error) {
	if s.Path == "" {
		return Default()
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("could not read content file: %w", err)
	}
	return Parse(data)
}

// AssetDir is the directory image references are resolved against. It is
// empty for the embedded default.
func (s Source) AssetDir() string {
	if s.Path == "" {
		return ""
	}
	return filepath.Dir(s.Path)
}

// ResolveImage returns the local path of an image reference, or "" when the
// source has no asset directory or the reference is a URL.
func (s Source) ResolveImage(ref string) string {
	dir := s.AssetDir()
	if dir == "" || ref == "" || isURL(ref) {
		return ""
	}
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(dir, filepath.FromSlash(ref))
}

func isURL(ref string) bool {
	for _, prefix := range []string{"http://", "https://", "//", "data:"} {
		if len(ref) >= len(prefix) && ref[:len(prefix)] == prefix {
			return true
		}
	}
	return false
}

// Summary counts pages, sections and images for reporting.
type Summary struct {
	Pages    int
	Sections int
	Images   int
}

// Summarize counts the content of p.
func Summarize(p model.Portfolio) Summary {
	var s Summary
	s.Pages = len(p.Pages)
	for _, page := range p.Pages {
		s.Sections += len(page.Sections)
		for _, sec := range page.Sections {
			s.Images += len(sec.Gallery) + 2*len(sec.Comparisons)
		}
	}
	return s
}

// Marshal encodes p as a content document that Parse accepts.
func Marshal(p model.Portfolio) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
