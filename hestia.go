// hestia: Layered profile store with parents-first resolution
//
// Philosophy:
// - Lean core: the construction pipeline itself depends only on go-errors
// - Pure in-memory construction: no I/O inside the core pipeline
// - Immutable stores, safe for unsynchronized concurrent reads
// - Deterministic iteration order, independent of Go map randomization
//
// Example Usage:
//
//	sections := hestia.NewSectionSet()
//	sections.Set("default", map[string]string{"region": "us-east-1"})
//	sections.Set("ci", map[string]string{"source_profile": "default"})
//
//	store, err := hestia.NewStore(sections)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	profile, _ := store.Profile("ci")
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hestia

import (
	"github.com/agilira/go-errors"
)

// Error codes for Hestia operations
const (
	ErrCodeCircularReference  = "HESTIA_CIRCULAR_REFERENCE"
	ErrCodeMissingParent      = "HESTIA_MISSING_PARENT"
	ErrCodeInvalidInput       = "HESTIA_INVALID_INPUT"
	ErrCodeInvalidSource      = "HESTIA_INVALID_SOURCE"
	ErrCodeInvalidAuditConfig = "HESTIA_INVALID_AUDIT_CONFIG"
	ErrCodeIOError            = "HESTIA_IO_ERROR"
)

// SourceProfileKey is the reserved property that names a profile's parent.
// A profile whose properties contain this key inherits from the profile it
// names; absence means the profile has no parent.
const SourceProfileKey = "source_profile"

// SectionSet is an insertion-ordered collection of raw profile sections:
// profile name mapped to a flat property map. It is the input currency of
// the whole pipeline. Go maps iterate in randomized order, so the set
// carries its own name order to keep resolution deterministic per input.
//
// A SectionSet is not safe for concurrent mutation; it is produced once by
// a Source, consumed once by the linearizer, then discarded.
type SectionSet struct {
	names    []string
	sections map[string]map[string]string
}

// NewSectionSet creates an empty section set.
func NewSectionSet() *SectionSet {
	return &SectionSet{
		sections: make(map[string]map[string]string),
	}
}

// Set stores a copy of properties under name. Setting an existing name
// replaces its properties but keeps its original position.
func (s *SectionSet) Set(name string, properties map[string]string) {
	if _, exists := s.sections[name]; !exists {
		s.names = append(s.names, name)
	}
	copied := make(map[string]string, len(properties))
	for k, v := range properties {
		copied[k] = v
	}
	s.sections[name] = copied
}

// Get returns the properties stored under name. The returned map is the
// internal one; callers inside the package must not mutate it unless they
// own the set.
func (s *SectionSet) Get(name string) (map[string]string, bool) {
	props, ok := s.sections[name]
	return props, ok
}

// Names returns the section names in insertion order.
func (s *SectionSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of sections in the set.
func (s *SectionSet) Len() int {
	return len(s.names)
}

// merge overlays the properties of other on top of this set, profile by
// profile. Properties of other win on conflicts; profiles only in other
// are appended. Used by the aggregator, which controls processing order.
func (s *SectionSet) merge(other *SectionSet) {
	for _, name := range other.names {
		incoming := other.sections[name]
		current, exists := s.sections[name]
		if !exists {
			s.Set(name, incoming)
			continue
		}
		for k, v := range incoming {
			current[k] = v
		}
	}
}

// remove deletes a section from the set, preserving the order of the rest.
func (s *SectionSet) remove(name string) {
	if _, exists := s.sections[name]; !exists {
		return
	}
	delete(s.sections, name)
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			break
		}
	}
}

// clone returns an independent deep copy of the set.
func (s *SectionSet) clone() *SectionSet {
	out := NewSectionSet()
	for _, name := range s.names {
		out.Set(name, s.sections[name])
	}
	return out
}

// NewStore resolves a raw section set into an immutable Store: sections
// are linearized parents-first, then materialized into Profile entities
// wired to their resolved parents.
//
// Construction is all-or-nothing: a circular parent chain or a reference
// to a section that does not exist aborts the build with a coded error
// and no partial Store is produced.
func NewStore(sections *SectionSet) (*Store, error) {
	return NewStoreWithAudit(sections, nil)
}

// NewStoreWithAudit is NewStore with an optional audit trail. A nil
// logger disables auditing. Failed builds are audited before the error
// is returned.
func NewStoreWithAudit(sections *SectionSet, auditLogger *AuditLogger) (*Store, error) {
	if sections == nil {
		return nil, errors.New(ErrCodeInvalidInput, "section set cannot be nil")
	}

	sorted, err := sortWithParentsFirst(sections)
	if err != nil {
		auditLogger.LogBuildFailure("store_build_failed", err)
		return nil, err
	}

	store := buildStore(sorted)
	auditLogger.LogStoreBuild("store_build", store.Len())
	return store, nil
}

// NewStoreFromSource reads one Source and resolves its sections into a
// Store. The source performs whatever I/O it needs before the data enters
// the pure construction pipeline.
func NewStoreFromSource(source Source) (*Store, error) {
	if source == nil {
		return nil, errors.New(ErrCodeInvalidInput, "source cannot be nil")
	}
	sections, err := source.Sections()
	if err != nil {
		return nil, err
	}
	return NewStore(sections)
}
