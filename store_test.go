// store_test.go: Testing profile store construction and queries
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hestia

import (
	"strings"
	"sync"
	"testing"
)

func TestNewStore(t *testing.T) {
	t.Run("nil_sections_rejected", func(t *testing.T) {
		_, err := NewStore(nil)
		if err == nil || !strings.Contains(err.Error(), ErrCodeInvalidInput) {
			t.Errorf("expected %s, got: %v", ErrCodeInvalidInput, err)
		}
	})

	t.Run("empty_sections_build_empty_store", func(t *testing.T) {
		store, err := NewStore(NewSectionSet())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Len() != 0 {
			t.Errorf("expected empty store, got %d profiles", store.Len())
		}
	})

	t.Run("round_trip_without_parents", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("default", map[string]string{"region": "us-east-1", "output": "json"})
		sections.Set("dev", map[string]string{"region": "eu-central-1"})

		store, err := NewStore(sections)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if store.Len() != 2 {
			t.Fatalf("expected 2 profiles, got %d", store.Len())
		}

		for _, name := range sections.Names() {
			profile, ok := store.Profile(name)
			if !ok {
				t.Fatalf("profile %q missing from store", name)
			}
			want, _ := sections.Get(name)
			got := profile.Properties()
			if len(got) != len(want) {
				t.Errorf("profile %q: expected %d properties, got %d", name, len(want), len(got))
			}
			for k, v := range want {
				if got[k] != v {
					t.Errorf("profile %q property %q: expected %q, got %q", name, k, v, got[k])
				}
			}
			if _, hasParent := profile.Parent(); hasParent {
				t.Errorf("profile %q should have no parent", name)
			}
		}
	})

	t.Run("parent_reference_is_wired", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("ci", map[string]string{"source_profile": "default", "role": "deploy"})
		sections.Set("default", map[string]string{"region": "us-east-1"})

		store, err := NewStore(sections)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		ci, ok := store.Profile("ci")
		if !ok {
			t.Fatal("profile ci missing")
		}
		parent, ok := ci.Parent()
		if !ok || parent.Name() != "default" {
			t.Fatalf("expected parent default, got %v", parent)
		}

		// Properties are snapshots, never merged with the parent's.
		if _, ok := ci.Property("region"); ok {
			t.Error("parent properties must not be inlined into the child")
		}
		if region, ok := ci.Lookup("region"); !ok || region != "us-east-1" {
			t.Errorf("Lookup should consult the parent chain, got %q", region)
		}
	})

	t.Run("resolution_order_parents_first", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("grandchild", map[string]string{"source_profile": "child"})
		sections.Set("child", map[string]string{"source_profile": "root"})
		sections.Set("root", map[string]string{})

		store, err := NewStore(sections)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		names := store.Names()
		if indexOf(names, "root") > indexOf(names, "child") ||
			indexOf(names, "child") > indexOf(names, "grandchild") {
			t.Errorf("resolution order wrong: %v", names)
		}
	})

	t.Run("construction_is_all_or_nothing", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("ok", map[string]string{})
		sections.Set("bad", map[string]string{"source_profile": "bad"})

		store, err := NewStore(sections)
		if err == nil {
			t.Fatal("expected error")
		}
		if store != nil {
			t.Error("no partial store may be produced on failure")
		}
	})
}

func TestProfileEntity(t *testing.T) {
	t.Run("properties_returns_a_copy", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("default", map[string]string{"region": "us-east-1"})
		store, err := NewStore(sections)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profile, _ := store.Profile("default")
		props := profile.Properties()
		props["region"] = "tampered"

		if value, _ := profile.Property("region"); value != "us-east-1" {
			t.Errorf("profile mutated through Properties copy: %q", value)
		}
	})

	t.Run("string_rendering_is_stable", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("ci", map[string]string{"b": "2", "a": "1", "source_profile": "default"})
		sections.Set("default", map[string]string{})
		store, err := NewStore(sections)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		profile, _ := store.Profile("ci")
		rendered := profile.String()
		if !strings.Contains(rendered, "ci") || !strings.Contains(rendered, "<- default") {
			t.Errorf("rendering should name profile and parent: %s", rendered)
		}
		if strings.Index(rendered, "a=1") > strings.Index(rendered, "b=2") {
			t.Errorf("properties should render sorted by key: %s", rendered)
		}
	})
}

func TestStoreEquality(t *testing.T) {
	build := func(region string) *Store {
		sections := NewSectionSet()
		sections.Set("default", map[string]string{"region": region})
		sections.Set("ci", map[string]string{"source_profile": "default"})
		store, err := NewStore(sections)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return store
	}

	t.Run("structurally_equal_stores", func(t *testing.T) {
		if !build("us-east-1").Equal(build("us-east-1")) {
			t.Error("identical stores should be equal")
		}
	})

	t.Run("different_property_values", func(t *testing.T) {
		if build("us-east-1").Equal(build("us-west-2")) {
			t.Error("stores with different property values should differ")
		}
	})

	t.Run("different_profile_sets", func(t *testing.T) {
		sections := NewSectionSet()
		sections.Set("default", map[string]string{"region": "us-east-1"})
		other, err := NewStore(sections)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if build("us-east-1").Equal(other) {
			t.Error("stores with different profile sets should differ")
		}
	})

	t.Run("nil_handling", func(t *testing.T) {
		var nilStore *Store
		if nilStore.Equal(build("us-east-1")) {
			t.Error("nil store equals nothing but nil")
		}
		if !nilStore.Equal(nil) {
			t.Error("nil store equals nil")
		}
	})
}

func TestStoreConcurrentReads(t *testing.T) {
	sections := NewSectionSet()
	sections.Set("default", map[string]string{"region": "us-east-1"})
	sections.Set("ci", map[string]string{"source_profile": "default"})
	store, err := NewStore(sections)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := store.Profile("ci"); !ok {
					t.Error("profile ci missing during concurrent read")
					return
				}
				profile, _ := store.Profile("ci")
				if _, ok := profile.Lookup("region"); !ok {
					t.Error("inherited lookup failed during concurrent read")
					return
				}
				_ = store.Names()
			}
		}()
	}
	wg.Wait()
}
