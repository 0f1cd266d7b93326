// linearize_test.go: Testing parents-first ordering and cycle detection
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hestia

import (
	"strings"
	"testing"
)

func TestSortWithParentsFirst(t *testing.T) {
	t.Run("parent_precedes_child", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("child", map[string]string{"source_profile": "base"})
		sections.Set("base", map[string]string{"region": "us-east-1"})

		sorted, err := sortWithParentsFirst(sections)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		names := sorted.Names()
		if len(names) != 2 {
			t.Fatalf("expected 2 sections, got %d", len(names))
		}
		if indexOf(names, "base") > indexOf(names, "child") {
			t.Errorf("parent should precede child, got order %v", names)
		}
	})

	t.Run("every_input_appears_exactly_once", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("a", map[string]string{"source_profile": "c"})
		sections.Set("b", map[string]string{})
		sections.Set("c", map[string]string{"source_profile": "d"})
		sections.Set("d", map[string]string{})
		sections.Set("e", map[string]string{"source_profile": "b"})

		sorted, err := sortWithParentsFirst(sections)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sorted.Len() != 5 {
			t.Fatalf("expected 5 sections, got %d", sorted.Len())
		}

		names := sorted.Names()
		seen := make(map[string]int)
		for _, n := range names {
			seen[n]++
		}
		for _, n := range []string{"a", "b", "c", "d", "e"} {
			if seen[n] != 1 {
				t.Errorf("section %q appears %d times", n, seen[n])
			}
		}
		if indexOf(names, "d") > indexOf(names, "c") || indexOf(names, "c") > indexOf(names, "a") {
			t.Errorf("ancestor chain out of order: %v", names)
		}
		if indexOf(names, "b") > indexOf(names, "e") {
			t.Errorf("parent b should precede child e: %v", names)
		}
	})

	t.Run("deterministic_per_input", func(t *testing.T) {
		build := func() []string {
			sections := NewSectionSet()
			sections.Set("gamma", map[string]string{})
			sections.Set("alpha", map[string]string{})
			sections.Set("beta", map[string]string{})
			sorted, err := sortWithParentsFirst(sections)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			return sorted.Names()
		}

		first := build()
		for i := 0; i < 10; i++ {
			next := build()
			for j := range first {
				if first[j] != next[j] {
					t.Fatalf("ordering not deterministic: %v vs %v", first, next)
				}
			}
		}
	})

	t.Run("input_not_mutated", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("child", map[string]string{"source_profile": "base"})
		sections.Set("base", map[string]string{})

		if _, err := sortWithParentsFirst(sections); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sections.Len() != 2 {
			t.Errorf("input section set was mutated, %d sections remain", sections.Len())
		}
	})

	t.Run("no_parent_resolves_immediately", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("solo", map[string]string{"region": "eu-west-1"})

		sorted, err := sortWithParentsFirst(sections)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		props, ok := sorted.Get("solo")
		if !ok || props["region"] != "eu-west-1" {
			t.Errorf("properties not preserved: %v", props)
		}
	})
}

func TestSortCycleDetection(t *testing.T) {
	t.Run("self_parent_fails", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("narcissus", map[string]string{"source_profile": "narcissus"})

		_, err := sortWithParentsFirst(sections)
		if err == nil {
			t.Fatal("expected circular reference error")
		}
		if !strings.Contains(err.Error(), ErrCodeCircularReference) {
			t.Errorf("expected %s, got: %v", ErrCodeCircularReference, err)
		}
		if !strings.Contains(err.Error(), "narcissus") {
			t.Errorf("error should name the profile: %v", err)
		}
	})

	t.Run("mutual_parents_fail", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("a", map[string]string{"source_profile": "b"})
		sections.Set("b", map[string]string{"source_profile": "a"})

		_, err := sortWithParentsFirst(sections)
		if err == nil {
			t.Fatal("expected circular reference error")
		}
		if !strings.Contains(err.Error(), ErrCodeCircularReference) {
			t.Errorf("expected %s, got: %v", ErrCodeCircularReference, err)
		}
	})

	t.Run("mutual_parents_fail_from_either_side", func(t *testing.T) {
		// Insertion order decides which profile is resolved first; the
		// cycle must be caught either way.
		sections := NewSectionSet()
		sections.Set("b", map[string]string{"source_profile": "a"})
		sections.Set("a", map[string]string{"source_profile": "b"})

		_, err := sortWithParentsFirst(sections)
		if err == nil || !strings.Contains(err.Error(), ErrCodeCircularReference) {
			t.Errorf("expected %s, got: %v", ErrCodeCircularReference, err)
		}
	})

	t.Run("long_cycle_names_full_chain", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("a", map[string]string{"source_profile": "b"})
		sections.Set("b", map[string]string{"source_profile": "c"})
		sections.Set("c", map[string]string{"source_profile": "a"})

		_, err := sortWithParentsFirst(sections)
		if err == nil {
			t.Fatal("expected circular reference error")
		}
		for _, name := range []string{"a", "b", "c"} {
			if !strings.Contains(err.Error(), name) {
				t.Errorf("error should name %q in the chain: %v", name, err)
			}
		}
	})
}

func TestSortMissingParent(t *testing.T) {
	t.Run("missing_parent_fails_with_name", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("orphan", map[string]string{"source_profile": "ghost"})

		_, err := sortWithParentsFirst(sections)
		if err == nil {
			t.Fatal("expected missing parent error")
		}
		if !strings.Contains(err.Error(), ErrCodeMissingParent) {
			t.Errorf("expected %s, got: %v", ErrCodeMissingParent, err)
		}
		if !strings.Contains(err.Error(), "ghost") {
			t.Errorf("error should name the missing parent: %v", err)
		}
	})

	t.Run("grandparent_missing_fails", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("child", map[string]string{"source_profile": "parent"})
		sections.Set("parent", map[string]string{"source_profile": "ghost"})

		_, err := sortWithParentsFirst(sections)
		if err == nil || !strings.Contains(err.Error(), ErrCodeMissingParent) {
			t.Errorf("expected %s, got: %v", ErrCodeMissingParent, err)
		}
	})
}

func indexOf(names []string, target string) int {
	for i, n := range names {
		if n == target {
			return i
		}
	}
	return -1
}
