// integration.go: FlashFlags integration for profile-backed flags
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// This file bridges resolved profiles and FlashFlags command-line
// parsing: properties of a profile (including inherited ones, walking
// the parent chain) become flag defaults, and flags passed on the
// command line override them. Precedence: flags > profile > fallback.

package hestia

import (
	"fmt"
	"strconv"
	"time"

	flashflags "github.com/agilira/flash-flags"
)

// FlagBinder registers flags whose defaults come from a resolved
// profile. Property lookup uses Profile.Lookup, so values inherited from
// a parent profile apply when the profile itself does not define the
// key.
//
//	binder := hestia.NewFlagBinder("mytool", profile).
//	    StringFlag("region", "us-east-1", "Deployment region").
//	    IntFlag("retries", 3, "Request retry count")
//	if err := binder.Parse(os.Args[1:]); err != nil {
//	    log.Fatal(err)
//	}
//	region := binder.GetString("region")
type FlagBinder struct {
	flags   *flashflags.FlagSet
	profile *Profile
}

// NewFlagBinder creates a binder for the given application name. A nil
// profile is allowed; every flag then keeps its fallback default.
func NewFlagBinder(appName string, profile *Profile) *FlagBinder {
	return &FlagBinder{
		flags:   flashflags.New(appName),
		profile: profile,
	}
}

// SetDescription sets the application description for help text.
func (b *FlagBinder) SetDescription(description string) *FlagBinder {
	b.flags.SetDescription(description)
	return b
}

// SetVersion sets the application version for help text.
func (b *FlagBinder) SetVersion(version string) *FlagBinder {
	b.flags.SetVersion(version)
	return b
}

// property resolves a key through the bound profile's parent chain.
func (b *FlagBinder) property(key string) (string, bool) {
	if b.profile == nil {
		return "", false
	}
	return b.profile.Lookup(key)
}

// StringFlag adds a string flag whose default is the profile property
// named name, falling back to fallback when the profile does not define
// it.
func (b *FlagBinder) StringFlag(name, fallback, usage string) *FlagBinder {
	def := fallback
	if value, ok := b.property(name); ok {
		def = value
	}
	b.flags.String(name, def, usage)
	return b
}

// IntFlag adds an integer flag backed by the profile property named
// name. A property that does not parse as an integer is ignored in favor
// of the fallback.
func (b *FlagBinder) IntFlag(name string, fallback int, usage string) *FlagBinder {
	def := fallback
	if value, ok := b.property(name); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			def = parsed
		}
	}
	b.flags.Int(name, def, usage)
	return b
}

// BoolFlag adds a boolean flag backed by the profile property named name.
func (b *FlagBinder) BoolFlag(name string, fallback bool, usage string) *FlagBinder {
	def := fallback
	if value, ok := b.property(name); ok {
		def = parseBool(value)
	}
	b.flags.Bool(name, def, usage)
	return b
}

// DurationFlag adds a duration flag backed by the profile property named
// name.
func (b *FlagBinder) DurationFlag(name string, fallback time.Duration, usage string) *FlagBinder {
	def := fallback
	if value, ok := b.property(name); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			def = parsed
		}
	}
	b.flags.Duration(name, def, usage)
	return b
}

// Parse parses command-line arguments on top of the profile-derived
// defaults.
func (b *FlagBinder) Parse(args []string) error {
	if err := b.flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse command-line flags: %w", err)
	}
	return nil
}

// GetString retrieves a string flag value.
func (b *FlagBinder) GetString(name string) string {
	return b.flags.GetString(name)
}

// GetInt retrieves an integer flag value.
func (b *FlagBinder) GetInt(name string) int {
	return b.flags.GetInt(name)
}

// GetBool retrieves a boolean flag value.
func (b *FlagBinder) GetBool(name string) bool {
	return b.flags.GetBool(name)
}

// GetDuration retrieves a duration flag value.
func (b *FlagBinder) GetDuration(name string) time.Duration {
	return b.flags.GetDuration(name)
}

// PrintUsage prints help information for all flags.
func (b *FlagBinder) PrintUsage() {
	b.flags.PrintHelp()
}
