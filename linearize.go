// linearize.go: Parents-first ordering of raw profile sections
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hestia

import (
	"fmt"
	"strings"

	"github.com/agilira/go-errors"
)

// sortWithParentsFirst returns a section set ordered so that every
// profile appears after its parent. A child profile needs its parent
// materialized before itself during store construction, so the builder
// consumes this order directly.
//
// The input is not mutated; sorting works on a private copy. Processing
// order among independent roots follows the input's insertion order, so
// the result is deterministic per input.
func sortWithParentsFirst(unsorted *SectionSet) (*SectionSet, error) {
	remaining := unsorted.clone()
	sorted := NewSectionSet()

	for remaining.Len() > 0 {
		next := remaining.Names()[0]
		if err := sortSectionAndParents(remaining, sorted, next, nil); err != nil {
			return nil, err
		}
	}

	return sorted, nil
}

// sortSectionAndParents moves the named section and its ancestor chain
// from remaining to sorted, parents first.
//
// chain holds the names currently being resolved, in resolution order.
// It serves two purposes: membership is the cycle check, and the slice
// itself names the full cycle in the error. Chain length is bounded by
// the profile count, so the recursion depth is too.
func sortSectionAndParents(remaining, sorted *SectionSet, name string, chain []string) error {
	for _, ancestor := range chain {
		if ancestor == name {
			return errors.New(ErrCodeCircularReference,
				fmt.Sprintf("circular profile relationship detected: %s",
					strings.Join(append(chain, name), " -> ")))
		}
	}

	properties, ok := remaining.Get(name)
	if !ok {
		return errors.New(ErrCodeMissingParent,
			fmt.Sprintf("parent profile %q does not exist", name))
	}

	parent := properties[SourceProfileKey]
	if parent != "" {
		if _, alreadySorted := sorted.Get(parent); !alreadySorted {
			// Parent not materialized yet; resolve it before this one.
			if err := sortSectionAndParents(remaining, sorted, parent, append(chain, name)); err != nil {
				return err
			}
		}
	}

	sorted.Set(name, properties)
	remaining.remove(name)
	return nil
}
