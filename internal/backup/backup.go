// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package backup writes and reads zstd-compressed JSON portfolio snapshots.
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/oelhwry/folio/core/model"
)

// Suffix is appended to backup file names that lack it.
const Suffix = ".zst"

// ErrNewerSchema is returned for snapshots written by a newer release.
var ErrNewerSchema = errors.New("backup was written by a newer version")

// DefaultName returns the file name used when none is given.
func DefaultName(now time.Time) string {
	return fmt.Sprintf("folio-backup-%s.json%s", now.Format("2006-01-02"), Suffix)
}

// WithSuffix appends Suffix unless name already ends with it.
func WithSuffix(name string) string {
	if strings.HasSuffix(name, Suffix) {
		return name
	}
	return name + Suffix
}

// Write streams snap as indented JSON through a zstd encoder into filename.
func Write(filename string, snap model.Snapshot) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}

	zw, err := zstd.NewWriter(file)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("could not create zstd writer: %w", err)
	}

	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		_ = zw.Close()
		_ = file.Close()
		return fmt.Errorf("could not encode json to zstd writer: %w", err)
	}
	if err := zw.Close(); err != nil {
		_ = file.Close()
		return fmt.Errorf("could not flush zstd writer: %w", err)
	}
	return file.Close()
}

// Read decodes a snapshot written by Write and validates its portfolio.
func Read(filename string) (model.Snapshot, error) {
	var snap model.Snapshot
	file, err := os.Open(filename)
	if err != nil {
		return snap, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zr, err := zstd.NewReader(file)
	if err != nil {
		return snap, fmt.Errorf("could not create zstd reader: %w", err)
	}
	defer zr.Close()

	if err := json.NewDecoder(zr).Decode(&snap); err != nil {
		return snap, fmt.Errorf("could not decode json from zstd reader: %w", err)
	}
	if snap.SchemaVersion > model.SnapshotSchemaVersion {
		return snap, fmt.Errorf("%w: schema %d", ErrNewerSchema, snap.SchemaVersion)
	}
	if err := snap.Portfolio.Validate(); err != nil {
		return snap, fmt.Errorf("backup holds invalid content: %w", err)
	}
	return snap, nil
}
