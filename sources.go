// sources.go: Raw section sources feeding the profile store pipeline
//
// A Source turns one origin of profile data (a document, a stream, an
// in-memory fixture) into an ordered section set. All I/O and dialect
// normalization happens here, before the data enters the pure
// construction pipeline.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package hestia

import (
	"fmt"
	"strings"

	"github.com/agilira/go-errors"
	"go.yaml.in/yaml/v3"
)

// SourceKind distinguishes the two section-naming dialects.
type SourceKind int

const (
	// SourceKindUnspecified is the zero value; sources must be tagged
	// with a concrete kind before use.
	SourceKindUnspecified SourceKind = iota

	// SourceKindConfiguration expects every non-default section name to
	// carry a "profile " prefix, which is stripped during normalization.
	// Non-default sections without the prefix are skipped.
	SourceKindConfiguration

	// SourceKindCredentials expects plain section names. Sections with a
	// "profile " prefix are skipped.
	SourceKindCredentials
)

// String returns the kind name for diagnostics and CLI flags.
func (k SourceKind) String() string {
	switch k {
	case SourceKindConfiguration:
		return "configuration"
	case SourceKindCredentials:
		return "credentials"
	default:
		return "unspecified"
	}
}

// ParseSourceKind parses a kind name as accepted by the CLI.
func ParseSourceKind(s string) (SourceKind, error) {
	switch strings.ToLower(s) {
	case "configuration", "config":
		return SourceKindConfiguration, nil
	case "credentials", "creds":
		return SourceKindCredentials, nil
	default:
		return SourceKindUnspecified, errors.New(ErrCodeInvalidInput,
			fmt.Sprintf("unknown source kind %q (want configuration or credentials)", s))
	}
}

// profilePrefix is the section-name prefix of the configuration dialect.
const profilePrefix = "profile "

// defaultProfileName is exempt from the configuration dialect's prefix
// requirement in both dialects.
const defaultProfileName = "default"

// normalizeSectionName applies the dialect rules of kind to a raw
// section name. It returns the normalized name and whether the section
// should be kept at all; sections violating the dialect are skipped, not
// failed, matching shared-profile conventions.
func normalizeSectionName(kind SourceKind, name string) (string, bool) {
	hasPrefix := strings.HasPrefix(name, profilePrefix)
	switch kind {
	case SourceKindConfiguration:
		if name == defaultProfileName {
			return name, true
		}
		if !hasPrefix {
			return "", false
		}
		return strings.TrimSpace(name[len(profilePrefix):]), true
	case SourceKindCredentials:
		if hasPrefix {
			return "", false
		}
		return name, true
	default:
		return "", false
	}
}

// Source produces the raw sections of one input. Implementations own
// whatever resources they read from and must release them on every exit
// path, including parse failures.
type Source interface {
	Sections() (*SectionSet, error)
}

// StaticSource is a Source over an in-memory section set. Useful for
// tests and for callers that assemble sections programmatically.
type StaticSource struct {
	Set *SectionSet
}

// Sections returns a copy of the wrapped set, so later mutation of the
// original cannot leak into a running pipeline.
func (s *StaticSource) Sections() (*SectionSet, error) {
	if s.Set == nil {
		return nil, errors.New(ErrCodeInvalidInput, "static source has no content")
	}
	return s.Set.clone(), nil
}

// YAMLSource reads a YAML profile document: a top-level mapping from
// section name to a flat mapping of property name to value. Document
// order is preserved, so resolution stays deterministic per input.
//
//	default:
//	  region: us-east-1
//	profile ci:
//	  source_profile: default
type YAMLSource struct {
	Data []byte
	Kind SourceKind
}

// Sections decodes the document and applies the dialect rules of the
// source's kind to every section name.
func (y *YAMLSource) Sections() (*SectionSet, error) {
	if y.Kind == SourceKindUnspecified {
		return nil, errors.New(ErrCodeInvalidInput, "source kind must be specified")
	}
	if len(y.Data) == 0 {
		return nil, errors.New(ErrCodeInvalidInput, "source has no content")
	}

	var root yaml.Node
	if err := yaml.Unmarshal(y.Data, &root); err != nil {
		return nil, errors.Wrap(err, ErrCodeInvalidSource, "invalid profile document")
	}

	sections := NewSectionSet()
	if len(root.Content) == 0 {
		// Empty document: no sections.
		return sections, nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, errors.New(ErrCodeInvalidSource,
			"profile document must be a mapping of section name to properties")
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		nameNode := doc.Content[i]
		bodyNode := doc.Content[i+1]

		name, keep := normalizeSectionName(y.Kind, nameNode.Value)
		if !keep {
			continue
		}

		if bodyNode.Kind != yaml.MappingNode {
			return nil, errors.New(ErrCodeInvalidSource,
				fmt.Sprintf("section %q must be a mapping of property name to value (line %d)",
					nameNode.Value, bodyNode.Line))
		}

		properties := make(map[string]string, len(bodyNode.Content)/2)
		for j := 0; j+1 < len(bodyNode.Content); j += 2 {
			properties[bodyNode.Content[j].Value] = bodyNode.Content[j+1].Value
		}
		sections.Set(name, properties)
	}

	return sections, nil
}
