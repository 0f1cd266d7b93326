// Package cli provides the command-line interface for Hestia profile
// store management.
//
// This package implements the CLI using the Orpheus framework, providing
// git-style subcommands over profile documents: resolving layered
// sources into a store, linting profile graphs for cycles and dangling
// parents, and inspecting individual profiles.
//
// Architecture:
// - Manager: Core CLI orchestration and command routing
// - Handlers: Individual command implementations
// - Utils: Shared utilities for source loading and store rendering
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0
package cli

import (
	"github.com/agilira/hestia"
	"github.com/agilira/orpheus/pkg/orpheus"
)

// Manager provides CLI operations for Hestia profile store management.
// Built on top of the Orpheus framework.
type Manager struct {
	app         *orpheus.App
	auditLogger *hestia.AuditLogger // Optional audit integration
}

// NewManager creates a new CLI manager powered by Orpheus, with
// git-style subcommands for profile store operations.
func NewManager() *Manager {
	app := orpheus.New("hestia").
		SetDescription("Layered profile store resolution and inspection").
		SetVersion("1.0.0")

	manager := &Manager{
		app: app,
	}

	manager.setupStoreCommands()
	manager.setupProfileCommands()
	manager.setupUtilityCommands()

	return manager
}

// WithAudit enables audit logging for all CLI operations.
func (m *Manager) WithAudit(auditLogger *hestia.AuditLogger) *Manager {
	m.auditLogger = auditLogger
	return m
}

// Run executes the CLI application with the provided arguments.
func (m *Manager) Run(args []string) error {
	return m.app.Run(args)
}

// Command Setup Methods

// setupStoreCommands configures commands operating on whole stores.
func (m *Manager) setupStoreCommands() {
	// resolve <file...> [--kind=auto] [--output=text]
	resolveCmd := orpheus.NewCommand("resolve", "Resolve profile documents into a merged store")
	resolveCmd.SetHandler(m.handleResolve)
	resolveCmd.AddFlag("kind", "k", "auto", "Source kind (auto|configuration|credentials)")
	resolveCmd.AddFlag("output", "o", "text", "Output format (text|yaml)")
	m.app.AddCommand(resolveCmd)

	// lint <file...> [--kind=auto]
	lintCmd := orpheus.NewCommand("lint", "Check profile documents for cycles and missing parents")
	lintCmd.SetHandler(m.handleLint)
	lintCmd.AddFlag("kind", "k", "auto", "Source kind (auto|configuration|credentials)")
	m.app.AddCommand(lintCmd)

	// list <file...> [--kind=auto]
	listCmd := orpheus.NewCommand("list", "List profiles in resolution order")
	listCmd.SetHandler(m.handleList)
	listCmd.AddFlag("kind", "k", "auto", "Source kind (auto|configuration|credentials)")
	m.app.AddCommand(listCmd)
}

// setupProfileCommands configures commands operating on one profile.
func (m *Manager) setupProfileCommands() {
	// get <file> <profile> [key] [--kind=auto] [--inherit]
	getCmd := orpheus.NewCommand("get", "Show a profile or one of its properties")
	getCmd.SetHandler(m.handleGet)
	getCmd.AddFlag("kind", "k", "auto", "Source kind (auto|configuration|credentials)")
	getCmd.AddBoolFlag("inherit", "i", false, "Resolve the property through the parent chain")
	m.app.AddCommand(getCmd)
}

// setupUtilityCommands configures diagnostic commands.
func (m *Manager) setupUtilityCommands() {
	infoCmd := orpheus.NewCommand("info", "System information and diagnostics")
	infoCmd.SetHandler(m.handleInfo)
	infoCmd.AddBoolFlag("verbose", "v", false, "Verbose system information")
	m.app.AddCommand(infoCmd)
}
