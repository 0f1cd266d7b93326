// Package hestia resolves layered, named-section configuration into an
// immutable store of profiles: named bundles of key-value settings that
// may inherit from a parent profile and may be assembled from several
// independently loaded sources with defined precedence.
//
// # Philosophy: Pure Construction, Immutable Results
//
// Hestia keeps all I/O at the boundary. Sources read documents and
// normalize dialect-specific section names; the core pipeline is a pure
// computation over already-materialized maps. Once built, a Store never
// changes, so it can be shared across goroutines without locks.
//
// # Architecture Overview
//
// Hestia consists of five integrated subsystems:
//  1. **Sources**: boundary adapters producing ordered raw sections (YAML documents, in-memory sets)
//  2. **Cycle-Safe Linearizer**: parents-first ordering with full-chain cycle reporting
//  3. **Profile Builder**: immutable Profile entities wired to resolved parents
//  4. **Aggregator**: per-property merge of multiple stores, earliest added wins
//  5. **Audit Trail**: buffered build/merge logging with SQLite or JSONL backends
//
// # Resolving a Single Source
//
//	store, err := hestia.NewStoreFromSource(&hestia.YAMLSource{
//	    Data: document,
//	    Kind: hestia.SourceKindConfiguration,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ci, ok := store.Profile("ci"); ok {
//	    region, _ := ci.Lookup("region") // consults the parent chain
//	}
//
// # Layering Multiple Sources
//
// Stores merge per property: when two sources define the same profile,
// each overlapping key keeps the value from the earliest-added store,
// while keys unique to later stores still contribute.
//
//	merged, err := hestia.NewAggregator().
//	    Add(credentialsStore). // highest priority
//	    Add(configStore).
//	    Build()
//
// The merged section set is re-linearized and rebuilt, so parent
// references always point into the merged result.
//
// # Failure Model
//
// Construction is all-or-nothing. A circular parent chain, a reference
// to a missing parent, or invalid inputs abort the build with a coded
// error (HESTIA_CIRCULAR_REFERENCE, HESTIA_MISSING_PARENT,
// HESTIA_INVALID_INPUT); no partial store is ever produced.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package hestia
