// Utility functions for the Hestia CLI
//
// This file provides helper functions for source-kind detection, store
// loading, and store rendering.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agilira/go-errors"
	"github.com/agilira/hestia"
	"github.com/agilira/orpheus/pkg/orpheus"
	"go.yaml.in/yaml/v3"
)

// collectArgs gathers all positional arguments from the context.
func collectArgs(ctx *orpheus.Context) []string {
	var args []string
	for i := 0; ; i++ {
		arg := ctx.GetArg(i)
		if arg == "" {
			break
		}
		args = append(args, arg)
	}
	return args
}

// detectKind determines the source kind for a document: an explicit
// --kind flag wins, otherwise the filename decides. Files named like a
// credentials file use the credentials dialect, everything else the
// configuration dialect.
func detectKind(path, explicitKind string) (hestia.SourceKind, error) {
	if explicitKind != "" && explicitKind != "auto" {
		return hestia.ParseSourceKind(explicitKind)
	}

	base := strings.ToLower(filepath.Base(path))
	if strings.Contains(base, "credential") {
		return hestia.SourceKindCredentials, nil
	}
	return hestia.SourceKindConfiguration, nil
}

// loadStores resolves each document into a store and aggregates them in
// argument order, so the first file passed has the highest precedence.
func (m *Manager) loadStores(paths []string, explicitKind string) (*hestia.Store, error) {
	aggregator := hestia.NewAggregator().WithAudit(m.auditLogger)

	for _, path := range paths {
		kind, err := detectKind(path, explicitKind)
		if err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path) // #nosec G304 -- path comes from the command line
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.New(hestia.ErrCodeIOError,
					fmt.Sprintf("profile document does not exist: %s", path))
			}
			return nil, errors.Wrap(err, hestia.ErrCodeIOError,
				fmt.Sprintf("failed to read %s", path))
		}

		store, err := hestia.NewStoreFromSource(&hestia.YAMLSource{Data: data, Kind: kind})
		if err != nil {
			return nil, errors.Wrap(err, hestia.ErrCodeInvalidSource,
				fmt.Sprintf("failed to resolve %s", path))
		}
		aggregator.Add(store)
	}

	return aggregator.Build()
}

// printStoreText renders the store one profile per line, in resolution
// order, with properties sorted by key.
func printStoreText(store *hestia.Store) {
	for _, name := range store.Names() {
		profile, _ := store.Profile(name)
		fmt.Println(profile.String())
	}
}

// printStoreYAML renders the store as a YAML profile document in
// resolution order, suitable for feeding back into resolve.
func printStoreYAML(store *hestia.Store) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range store.Names() {
		profile, _ := store.Profile(name)
		properties := profile.Properties()

		keys := make([]string, 0, len(properties))
		for k := range properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		body := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range keys {
			body.Content = append(body.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: k},
				&yaml.Node{Kind: yaml.ScalarNode, Value: properties[k]})
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			body)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render store: %v\n", err)
		return
	}
	fmt.Print(string(out))
}
