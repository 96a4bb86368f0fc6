// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

var (
	// ErrDuplicate is returned when a unique constraint rejects a row.
	ErrDuplicate = errors.New("duplicate record")
	// ErrNoPortfolio is returned when the catalog has never been imported.
	ErrNoPortfolio = errors.New("no portfolio stored")
	// ErrUnsupported is returned for an unknown database type.
	ErrUnsupported = errors.New("unsupported database type")
)

// MapDBError maps driver specific constraint violations to ErrDuplicate.
// The match is string based so this file needs no driver imports.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}
