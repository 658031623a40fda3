// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package docdiff compares and merges Documentation values at endpoint level.
package docdiff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/routedoc/routedoc/pkg/types"
)

// DiffType represents the type of change detected.
type DiffType string

const (
	// DiffTypeAdded indicates a new endpoint was added.
	DiffTypeAdded DiffType = "added"

	// DiffTypeRemoved indicates an endpoint was removed.
	DiffTypeRemoved DiffType = "removed"

	// DiffTypeModified indicates an endpoint was modified.
	DiffTypeModified DiffType = "modified"
)

// EndpointChange represents a change to a single endpoint.
type EndpointChange struct {
	Type   DiffType
	Method string
	Path   string

	// Fields lists what changed for a modified endpoint
	Fields []string

	Description string
}

// DiffResult contains the differences between two Documentation values.
type DiffResult struct {
	// Changes is sorted by path, then method.
	Changes []EndpointChange

	// HasBreakingChanges is set when an endpoint was removed.
	HasBreakingChanges bool

	// Summary provides a human-readable summary of changes.
	Summary string
}

// IsEmpty returns true if there are no differences.
func (d *DiffResult) IsEmpty() bool {
	return len(d.Changes) == 0
}

// Count returns the number of changes of type t.
func (d *DiffResult) Count(t DiffType) int {
	n := 0
	for _, c := range d.Changes {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Differ compares two Documentation values.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff compares a (before) with b (after). Either side may be nil.
func (d *Differ) Diff(a, b *types.Documentation) *DiffResult {
	result := &DiffResult{Changes: []EndpointChange{}}

	aIndex := index(a)
	bIndex := index(b)

	for key, aEp := range aIndex {
		bEp, exists := bIndex[key]
		if !exists {
			result.Changes = append(result.Changes, change(DiffTypeRemoved, aEp, nil))
			continue
		}
		if fields := modifiedFields(aEp, bEp); len(fields) > 0 {
			result.Changes = append(result.Changes, change(DiffTypeModified, bEp, fields))
		}
	}

	for key, bEp := range bIndex {
		if _, exists := aIndex[key]; !exists {
			result.Changes = append(result.Changes, change(DiffTypeAdded, bEp, nil))
		}
	}

	sort.Slice(result.Changes, func(i, j int) bool {
		ci, cj := result.Changes[i], result.Changes[j]
		if ci.Path != cj.Path {
			return ci.Path < cj.Path
		}
		return methodRank(ci.Method) < methodRank(cj.Method)
	})

	result.HasBreakingChanges = result.Count(DiffTypeRemoved) > 0
	result.Summary = summarize(result)
	return result
}

// index maps endpoint keys to endpoints; the first occurrence wins.
func index(doc *types.Documentation) map[string]types.Endpoint {
	out := make(map[string]types.Endpoint)
	if doc == nil {
		return out
	}
	for _, ep := range doc.Endpoints {
		if _, seen := out[ep.Key()]; !seen {
			out[ep.Key()] = ep
		}
	}
	return out
}

func change(t DiffType, ep types.Endpoint, fields []string) EndpointChange {
	verb := map[DiffType]string{
		DiffTypeAdded:    "Added",
		DiffTypeRemoved:  "Removed",
		DiffTypeModified: "Modified",
	}[t]
	desc := fmt.Sprintf("%s %s %s", verb, ep.Method, ep.Path)
	if len(fields) > 0 {
		desc += " (" + strings.Join(fields, ", ") + ")"
	}
	return EndpointChange{
		Type:        t,
		Method:      ep.Method,
		Path:        ep.Path,
		Fields:      fields,
		Description: desc,
	}
}

// modifiedFields lists the endpoint fields that differ between a and b.
func modifiedFields(a, b types.Endpoint) []string {
	var fields []string
	if a.Title != b.Title {
		fields = append(fields, "title")
	}
	if a.Description != b.Description {
		fields = append(fields, "description")
	}
	if !sameParameters(a.Parameters, b.Parameters) {
		fields = append(fields, "parameters")
	}
	if (a.RequestBody == nil) != (b.RequestBody == nil) ||
		(a.RequestBody != nil && a.RequestBody.ContentType != b.RequestBody.ContentType) {
		fields = append(fields, "requestBody")
	}
	if !sameResponseCodes(a.Responses, b.Responses) {
		fields = append(fields, "responses")
	}
	if a.Authentication.Type != b.Authentication.Type ||
		a.Authentication.Required != b.Authentication.Required {
		fields = append(fields, "authentication")
	}
	return fields
}

func sameParameters(a, b []types.Parameter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name ||
			a[i].In != b[i].In ||
			a[i].Type != b[i].Type ||
			a[i].Required != b[i].Required {
			return false
		}
	}
	return true
}

func sameResponseCodes(a, b map[string]types.ResponseSpec) bool {
	if len(a) != len(b) {
		return false
	}
	for code := range a {
		if _, ok := b[code]; !ok {
			return false
		}
	}
	return true
}

func methodRank(m string) int {
	for i, method := range types.HTTPMethods {
		if method == m {
			return i
		}
	}
	return len(types.HTTPMethods)
}

// summarize creates a human-readable summary of changes.
func summarize(result *DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected"
	}

	var parts []string
	for _, t := range []DiffType{DiffTypeAdded, DiffTypeRemoved, DiffTypeModified} {
		if n := result.Count(t); n > 0 {
			parts = append(parts, fmt.Sprintf("%d endpoint(s) %s", n, t))
		}
	}

	summary := strings.Join(parts, ", ")
	if result.HasBreakingChanges {
		summary += " [BREAKING CHANGES DETECTED]"
	}
	return summary
}

// FormatDiff returns a formatted string representation of the diff.
func FormatDiff(result *DiffResult) string {
	if result.IsEmpty() {
		return "No differences found."
	}

	var sb strings.Builder

	sb.WriteString("=== Endpoint Diff ===\n\n")
	sb.WriteString(result.Summary)
	sb.WriteString("\n\n")

	for _, c := range result.Changes {
		symbol := "  "
		switch c.Type {
		case DiffTypeAdded:
			symbol = "+ "
		case DiffTypeRemoved:
			symbol = "- "
		case DiffTypeModified:
			symbol = "~ "
		}
		fmt.Fprintf(&sb, "%s%s %s", symbol, c.Method, c.Path)
		if len(c.Fields) > 0 {
			fmt.Fprintf(&sb, " [%s]", strings.Join(c.Fields, ", "))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
