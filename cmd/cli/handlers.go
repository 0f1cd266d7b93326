// Command handlers for the Hestia CLI
//
// This file contains all command handler implementations for the
// Orpheus-powered CLI.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package cli

import (
	"fmt"

	"github.com/agilira/go-errors"
	"github.com/agilira/hestia"
	"github.com/agilira/orpheus/pkg/orpheus"
)

// handleResolve merges the given profile documents into one store and
// prints it. Files added earliest take precedence on property conflicts.
func (m *Manager) handleResolve(ctx *orpheus.Context) error {
	paths := collectArgs(ctx)
	if len(paths) == 0 {
		return errors.New(hestia.ErrCodeInvalidInput, "resolve requires at least one profile document")
	}

	if m.auditLogger != nil {
		m.auditLogger.Log(hestia.AuditInfo, "cli_resolve", map[string]interface{}{
			"files": len(paths),
		})
	}

	store, err := m.loadStores(paths, ctx.GetFlagString("kind"))
	if err != nil {
		return err
	}

	switch ctx.GetFlagString("output") {
	case "yaml":
		printStoreYAML(store)
	default:
		printStoreText(store)
	}
	return nil
}

// handleLint resolves the given documents purely for validation and
// reports the first construction failure, if any.
func (m *Manager) handleLint(ctx *orpheus.Context) error {
	paths := collectArgs(ctx)
	if len(paths) == 0 {
		return errors.New(hestia.ErrCodeInvalidInput, "lint requires at least one profile document")
	}

	if m.auditLogger != nil {
		m.auditLogger.Log(hestia.AuditInfo, "cli_lint", map[string]interface{}{
			"files": len(paths),
		})
	}

	store, err := m.loadStores(paths, ctx.GetFlagString("kind"))
	if err != nil {
		return err
	}

	fmt.Printf("OK: %d profiles, no cycles, no missing parents\n", store.Len())
	return nil
}

// handleList prints profile names in resolution order, parents first.
func (m *Manager) handleList(ctx *orpheus.Context) error {
	paths := collectArgs(ctx)
	if len(paths) == 0 {
		return errors.New(hestia.ErrCodeInvalidInput, "list requires at least one profile document")
	}

	store, err := m.loadStores(paths, ctx.GetFlagString("kind"))
	if err != nil {
		return err
	}

	for _, name := range store.Names() {
		profile, _ := store.Profile(name)
		if parent, ok := profile.Parent(); ok {
			fmt.Printf("%s (inherits %s)\n", name, parent.Name())
		} else {
			fmt.Println(name)
		}
	}
	return nil
}

// handleGet prints one profile, or one property of it when a key
// argument is given. With --inherit the lookup walks the parent chain.
func (m *Manager) handleGet(ctx *orpheus.Context) error {
	path := ctx.GetArg(0)
	profileName := ctx.GetArg(1)
	key := ctx.GetArg(2)
	if path == "" || profileName == "" {
		return errors.New(hestia.ErrCodeInvalidInput, "get requires a document path and a profile name")
	}

	store, err := m.loadStores([]string{path}, ctx.GetFlagString("kind"))
	if err != nil {
		return err
	}

	profile, ok := store.Profile(profileName)
	if !ok {
		return errors.New(hestia.ErrCodeInvalidInput,
			fmt.Sprintf("profile %q not found", profileName))
	}

	if key == "" {
		fmt.Println(profile.String())
		return nil
	}

	var value string
	if ctx.GetFlagBool("inherit") {
		value, ok = profile.Lookup(key)
	} else {
		value, ok = profile.Property(key)
	}
	if !ok {
		return errors.New(hestia.ErrCodeInvalidInput,
			fmt.Sprintf("property %q not set on profile %q", key, profileName))
	}

	fmt.Println(value)
	return nil
}

// handleInfo displays system information and library diagnostics.
func (m *Manager) handleInfo(ctx *orpheus.Context) error {
	fmt.Println("Hestia Profile Store")
	fmt.Println("Version: 1.0.0")
	fmt.Printf("Reserved parent key: %s\n", hestia.SourceProfileKey)

	if ctx.GetFlagBool("verbose") {
		fmt.Println("Dialects: configuration (\"profile \" prefix), credentials (plain names)")
		fmt.Println("Merge precedence: earliest-added source wins per property")
		fmt.Printf("Audit logging: %v\n", m.auditLogger != nil)
	}
	return nil
}
