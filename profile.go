// profile.go: Immutable profile and store entities
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hestia

import (
	"fmt"
	"sort"
	"strings"
)

// Profile is a named, flat bundle of key-value settings, optionally
// inheriting from a parent profile in the same Store. Profiles are
// created once during Store construction and never mutated, so they are
// safe to share across goroutines without synchronization.
//
// The parent is a reference into the same Store, never a copy: a
// profile's properties are an exact snapshot of its raw section, with no
// parent properties inlined. Consumers that want inherited lookup walk
// the parent chain themselves (see Lookup).
type Profile struct {
	name       string
	properties map[string]string
	parent     *Profile
}

// Name returns the profile name, unique within its Store.
func (p *Profile) Name() string {
	return p.name
}

// Property returns the value stored under key in this profile only,
// without consulting the parent chain.
func (p *Profile) Property(key string) (string, bool) {
	value, ok := p.properties[key]
	return value, ok
}

// Lookup returns the value stored under key in this profile or the
// nearest ancestor that defines it. The parent graph is acyclic by
// construction, so the walk always terminates.
func (p *Profile) Lookup(key string) (string, bool) {
	for current := p; current != nil; current = current.parent {
		if value, ok := current.properties[key]; ok {
			return value, true
		}
	}
	return "", false
}

// Properties returns a copy of the profile's property map.
func (p *Profile) Properties() map[string]string {
	out := make(map[string]string, len(p.properties))
	for k, v := range p.properties {
		out[k] = v
	}
	return out
}

// Parent returns the resolved parent profile, if any.
func (p *Profile) Parent() (*Profile, bool) {
	return p.parent, p.parent != nil
}

// Equal reports whether two profiles have the same name, the same
// properties, and parents with the same name. Parent comparison stops at
// the name: deep chains are compared profile by profile through the
// owning stores.
func (p *Profile) Equal(other *Profile) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.name != other.name {
		return false
	}
	if len(p.properties) != len(other.properties) {
		return false
	}
	for k, v := range p.properties {
		if ov, ok := other.properties[k]; !ok || ov != v {
			return false
		}
	}
	pParent, pOk := p.Parent()
	oParent, oOk := other.Parent()
	if pOk != oOk {
		return false
	}
	if pOk && pParent.name != oParent.name {
		return false
	}
	return true
}

// String renders the profile for diagnostics. Properties are sorted by
// key so the rendering is stable.
func (p *Profile) String() string {
	keys := make([]string, 0, len(p.properties))
	for k := range p.properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "Profile(%s", p.name)
	if p.parent != nil {
		fmt.Fprintf(&b, " <- %s", p.parent.name)
	}
	b.WriteString("){")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%s", k, p.properties[k])
	}
	b.WriteString("}")
	return b.String()
}

// Store is the finished, read-only collection of resolved profiles,
// keyed by name and enumerable in resolution order (every parent before
// its children). A Store is built once and immutable thereafter, so
// concurrent reads need no locking.
type Store struct {
	names    []string
	profiles map[string]*Profile
}

// buildStore materializes profiles from an already-linearized section
// set. Iteration order guarantees every parent is built before any of
// its children, so the parent lookup below always hits for sections the
// linearizer validated. A declared parent missing from the built set is
// a silent miss: the profile simply has no parent reference.
func buildStore(sorted *SectionSet) *Store {
	store := &Store{
		names:    make([]string, 0, sorted.Len()),
		profiles: make(map[string]*Profile, sorted.Len()),
	}

	for _, name := range sorted.Names() {
		properties, _ := sorted.Get(name)
		parent := store.profiles[properties[SourceProfileKey]]

		snapshot := make(map[string]string, len(properties))
		for k, v := range properties {
			snapshot[k] = v
		}

		profile := &Profile{
			name:       name,
			properties: snapshot,
			parent:     parent,
		}
		store.names = append(store.names, name)
		store.profiles[name] = profile
	}

	return store
}

// Profile retrieves the profile with the given name, if present.
func (s *Store) Profile(name string) (*Profile, bool) {
	profile, ok := s.profiles[name]
	return profile, ok
}

// Names returns all profile names in resolution order: parents always
// precede their children.
func (s *Store) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of profiles in the store.
func (s *Store) Len() int {
	return len(s.names)
}

// Equal reports structural equality: the same profile names mapping to
// equal profiles. Resolution order is not part of equality, matching the
// map-based semantics of the underlying model.
func (s *Store) Equal(other *Store) bool {
	if s == nil || other == nil {
		return s == other
	}
	if len(s.profiles) != len(other.profiles) {
		return false
	}
	for name, profile := range s.profiles {
		otherProfile, ok := other.profiles[name]
		if !ok || !profile.Equal(otherProfile) {
			return false
		}
	}
	return true
}

// String renders the store's profiles in resolution order.
func (s *Store) String() string {
	var b strings.Builder
	b.WriteString("Store[")
	for i, name := range s.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.profiles[name].String())
	}
	b.WriteString("]")
	return b.String()
}

// sections re-exports the store's profiles as a raw section set, in
// resolution order. The aggregator feeds these back through the pipeline
// so parent references are re-resolved against the merged result.
func (s *Store) sections() *SectionSet {
	out := NewSectionSet()
	for _, name := range s.names {
		out.Set(name, s.profiles[name].properties)
	}
	return out
}
