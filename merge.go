// merge.go: Aggregation of profile stores with per-property precedence
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hestia

// Aggregator merges multiple resolved stores into a single one. Stores
// added earliest take precedence: when two stores define the same
// profile, conflicting properties keep the value from the earliest-added
// store, while properties unique to a later store still contribute.
// Precedence is per property, not per profile.
//
//	merged, err := hestia.NewAggregator().
//	    Add(credentialsStore).
//	    Add(configStore).
//	    Build()
type Aggregator struct {
	stores      []*Store
	auditLogger *AuditLogger
	deferredErr error
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add appends a store to the aggregation. Earlier additions win on
// property conflicts.
func (a *Aggregator) Add(store *Store) *Aggregator {
	if store != nil {
		a.stores = append(a.stores, store)
	}
	return a
}

// AddSource resolves a source into a store and adds it. Resolution
// errors surface at Build.
func (a *Aggregator) AddSource(source Source) *Aggregator {
	store, err := NewStoreFromSource(source)
	if err != nil {
		if a.deferredErr == nil {
			a.deferredErr = err
		}
		return a
	}
	return a.Add(store)
}

// WithAudit enables audit logging for the aggregation.
func (a *Aggregator) WithAudit(auditLogger *AuditLogger) *Aggregator {
	a.auditLogger = auditLogger
	return a
}

// Build merges the added stores and re-resolves the result through the
// full pipeline, so parent references are rebuilt against the merged
// profile set. Zero added stores yield an empty Store.
//
// The merge walks the store list in reverse addition order, overlaying
// each store's sections onto the aggregate. Later-processed sections win
// at the property level, so the earliest-added stores, processed last,
// end up with precedence.
func (a *Aggregator) Build() (*Store, error) {
	if a.deferredErr != nil {
		a.auditLogger.LogBuildFailure("store_aggregate_failed", a.deferredErr)
		return nil, a.deferredErr
	}

	aggregate := NewSectionSet()
	for i := len(a.stores) - 1; i >= 0; i-- {
		aggregate.merge(a.stores[i].sections())
	}

	sorted, err := sortWithParentsFirst(aggregate)
	if err != nil {
		a.auditLogger.LogBuildFailure("store_aggregate_failed", err)
		return nil, err
	}

	store := buildStore(sorted)
	a.auditLogger.LogAggregate("store_aggregate", len(a.stores), store.Len())
	return store, nil
}
