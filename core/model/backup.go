// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotSchemaVersion is written into every snapshot. Readers reject
// snapshots with a newer version.
const SnapshotSchemaVersion = 1

// Snapshot is the container written by backups and read by restores.
type Snapshot struct {
	// SchemaVersion helps in handling format changes during restore.
	SchemaVersion int       `json:"schema_version"`
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Portfolio     Portfolio `json:"portfolio"`
}

// NewSnapshot wraps p with the current schema version and a fresh id.
func NewSnapshot(p Portfolio, now time.Time) Snapshot {
	return Snapshot{
		SchemaVersion: SnapshotSchemaVersion,
		ID:            uuid.NewString(),
		CreatedAt:     now.UTC(),
		Portfolio:     p,
	}
}
