// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
package slicest

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if diff := cmp.Diff([]string{"1", "2", "3"}, got); diff != "" {
		t.Fatalf("Map (-want +got):\n%s", diff)
	}
	if got := Map([]int(nil), strconv.Itoa); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestMapI(t *testing.T) {
	got := MapI([]string{"a", "b"}, func(i int, s string) string { return s + strconv.Itoa(i) })
	if diff := cmp.Diff([]string{"a0", "b1"}, got); diff != "" {
		t.Fatalf("MapI (-want +got):\n%s", diff)
	}
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3, 4}, func(v, acc int) int { return acc + v })
	if sum != 10 {
		t.Fatalf("expected 10, got %d", sum)
	}
	joined := ReduceD([]string{"b", "c"}, "a", func(v, acc string) string { return acc + v })
	if joined != "abc" {
		t.Fatalf("expected abc, got %q", joined)
	}
}
