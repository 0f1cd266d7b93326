// Hestia CLI entry point
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/agilira/hestia"
	"github.com/agilira/hestia/cmd/cli"
)

func main() {
	manager := cli.NewManager()

	// Audit configuration comes from HESTIA_* environment variables;
	// a broken audit setup disables auditing rather than the CLI.
	if auditConfig, err := hestia.LoadAuditConfigFromEnv(); err == nil && auditConfig.Enabled {
		if auditLogger, err := hestia.NewAuditLogger(auditConfig); err == nil {
			manager.WithAudit(auditLogger)
			defer func() { _ = auditLogger.Close() }()
		}
	}

	if err := manager.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
