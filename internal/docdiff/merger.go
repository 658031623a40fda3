// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package docdiff

import (
	"github.com/routedoc/routedoc/pkg/types"
)

// MergeStrategy defines how endpoints missing from a fresh scan are handled.
type MergeStrategy string

const (
	// MergeStrategyOverwrite drops endpoints that are no longer generated.
	MergeStrategyOverwrite MergeStrategy = "overwrite"

	// MergeStrategyAppend keeps existing endpoints that are no longer generated.
	MergeStrategyAppend MergeStrategy = "append"
)

// MergeOptions configures the merge behavior.
type MergeOptions struct {
	// Strategy defines the handling of stale endpoints.
	Strategy MergeStrategy

	// PreserveInfo keeps the existing document's info block.
	PreserveInfo bool

	// PreserveText keeps hand-edited endpoint titles and descriptions.
	PreserveText bool

	// PreserveTags keeps hand-edited endpoint tags.
	PreserveTags bool
}

// DefaultMergeOptions returns the default merge options.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{
		Strategy:     MergeStrategyOverwrite,
		PreserveInfo: true,
		PreserveText: true,
		PreserveTags: true,
	}
}

// Merger handles merging an existing Documentation into a generated one.
type Merger struct {
	options MergeOptions
}

// NewMerger creates a new Merger with the given options.
func NewMerger(options MergeOptions) *Merger {
	return &Merger{
		options: options,
	}
}

// Merge returns generated with hand edits carried over from existing.
// Neither input is modified.
func (m *Merger) Merge(existing, generated *types.Documentation) *types.Documentation {
	if generated == nil {
		return nil
	}

	result := *generated
	result.Endpoints = make([]types.Endpoint, 0, len(generated.Endpoints))

	if existing == nil {
		result.Endpoints = append(result.Endpoints, generated.Endpoints...)
		result.TotalEndpoints = len(result.Endpoints)
		return &result
	}

	if m.options.PreserveInfo && existing.Info.Title != "" {
		result.Info = existing.Info
	}

	old := index(existing)
	for _, ep := range generated.Endpoints {
		if prev, ok := old[ep.Key()]; ok {
			ep = m.carry(prev, ep)
		}
		result.Endpoints = append(result.Endpoints, ep)
	}

	if m.options.Strategy == MergeStrategyAppend {
		fresh := index(generated)
		for _, ep := range existing.Endpoints {
			if _, ok := fresh[ep.Key()]; !ok {
				result.Endpoints = append(result.Endpoints, ep)
			}
		}
	}

	result.TotalEndpoints = len(result.Endpoints)
	return &result
}

func (m *Merger) carry(prev, ep types.Endpoint) types.Endpoint {
	if m.options.PreserveText {
		if prev.Title != "" {
			ep.Title = prev.Title
		}
		if prev.Description != "" {
			ep.Description = prev.Description
		}
	}
	if m.options.PreserveTags && len(prev.Tags) > 0 {
		ep.Tags = append([]string(nil), prev.Tags...)
	}
	return ep
}

// MergeDefault merges two documents using default options.
func MergeDefault(existing, generated *types.Documentation) *types.Documentation {
	return NewMerger(DefaultMergeOptions()).Merge(existing, generated)
}
