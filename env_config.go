// env_config.go: Environment variable support for Hestia audit options
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// This file loads the library's own runtime knobs (audit behavior) from
// HESTIA_* environment variables, for container deployments where
// passing an AuditConfig programmatically is inconvenient. Profile data
// itself never comes from the environment.

package hestia

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agilira/go-errors"
)

// LoadAuditConfigFromEnv builds an AuditConfig from HESTIA_* environment
// variables, starting from DefaultAuditConfig. Recognized variables:
//
//	HESTIA_AUDIT_ENABLED        bool (true/1/yes/on)
//	HESTIA_AUDIT_OUTPUT_FILE    path (.jsonl or .db select the backend)
//	HESTIA_AUDIT_MIN_LEVEL      info|warn|critical|security
//	HESTIA_AUDIT_BUFFER_SIZE    positive integer
//	HESTIA_AUDIT_FLUSH_INTERVAL Go duration (e.g. 5s)
func LoadAuditConfigFromEnv() (AuditConfig, error) {
	config := DefaultAuditConfig()

	if enabledStr := os.Getenv("HESTIA_AUDIT_ENABLED"); enabledStr != "" {
		config.Enabled = parseBool(enabledStr)
	}

	if outputFile := os.Getenv("HESTIA_AUDIT_OUTPUT_FILE"); outputFile != "" {
		config.OutputFile = outputFile
	}

	if levelStr := os.Getenv("HESTIA_AUDIT_MIN_LEVEL"); levelStr != "" {
		level, err := parseAuditLevel(levelStr)
		if err != nil {
			return config, err
		}
		config.MinLevel = level
	}

	if bufferStr := os.Getenv("HESTIA_AUDIT_BUFFER_SIZE"); bufferStr != "" {
		buffer, err := strconv.Atoi(bufferStr)
		if err != nil || buffer <= 0 {
			return config, errors.New(ErrCodeInvalidAuditConfig,
				"invalid HESTIA_AUDIT_BUFFER_SIZE value")
		}
		config.BufferSize = buffer
	}

	if flushStr := os.Getenv("HESTIA_AUDIT_FLUSH_INTERVAL"); flushStr != "" {
		duration, err := time.ParseDuration(flushStr)
		if err != nil || duration <= 0 {
			return config, errors.New(ErrCodeInvalidAuditConfig,
				"invalid HESTIA_AUDIT_FLUSH_INTERVAL format")
		}
		config.FlushInterval = duration
	}

	return config, nil
}

// parseAuditLevel parses an audit level name from the environment.
func parseAuditLevel(levelStr string) (AuditLevel, error) {
	switch strings.ToLower(levelStr) {
	case "info":
		return AuditInfo, nil
	case "warn", "warning":
		return AuditWarn, nil
	case "critical":
		return AuditCritical, nil
	case "security":
		return AuditSecurity, nil
	default:
		return AuditInfo, errors.New(ErrCodeInvalidAuditConfig,
			"invalid HESTIA_AUDIT_MIN_LEVEL value")
	}
}

// parseBool parses common boolean representations from the environment.
func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on", "enabled":
		return true
	default:
		return false
	}
}

// GetEnvWithDefault returns the environment value for key, or the
// default when unset.
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
