// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"testing"
)

func TestMapDBError_DuplicateStrings(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"mysql duplicate entry", errors.New("Error 1062: Duplicate entry 'home' for key 'pages.slug'")},
		{"postgres unique violation", errors.New("ERROR: duplicate key value violates unique constraint \"pages_slug_key\" (SQLSTATE 23505)")},
		{"sqlite unique constraint", errors.New("UNIQUE constraint failed: pages.slug")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if mapped := MapDBError(c.err); !errors.Is(mapped, ErrDuplicate) {
				t.Fatalf("expected ErrDuplicate, got: %v", mapped)
			}
		})
	}
}

func TestMapDBError_NonDuplicatePassthrough(t *testing.T) {
	e := errors.New("some network error")
	mapped := MapDBError(e)
	if errors.Is(mapped, ErrDuplicate) {
		t.Fatalf("did not expect ErrDuplicate for non-duplicate error")
	}
	if mapped != e {
		t.Fatalf("expected original error to be returned unchanged, got: %v", mapped)
	}
	if MapDBError(nil) != nil {
		t.Fatalf("nil must stay nil")
	}
}
