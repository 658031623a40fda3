// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/routedoc/routedoc/pkg/types"
)

// untaggedSection holds endpoints that carry no tag.
const untaggedSection = "General"

var anchorStripRegex = regexp.MustCompile(`[^a-z0-9\- ]`)

// MarkdownRenderer writes a human-readable reference document.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

func (r *MarkdownRenderer) Name() string      { return "markdown" }
func (r *MarkdownRenderer) Extension() string { return ".md" }
func (r *MarkdownRenderer) Aliases() []string { return []string{"md"} }

// Render implements Renderer.
func (r *MarkdownRenderer) Render(doc *types.Documentation, w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", doc.Info.Title)
	if doc.Info.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", doc.Info.Description)
	}
	fmt.Fprintf(&sb, "**Version:** %s  \n", doc.Info.Version)
	if !doc.GeneratedAt.IsZero() {
		fmt.Fprintf(&sb, "**Generated:** %s  \n", doc.GeneratedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(&sb, "**Endpoints:** %d\n\n", doc.TotalEndpoints)

	writeMethodSummary(&sb, doc.Endpoints)

	sections := groupByTag(doc.Endpoints)

	sb.WriteString("## Table of Contents\n\n")
	for _, s := range sections {
		fmt.Fprintf(&sb, "- **%s**\n", s.tag)
		for _, ep := range s.endpoints {
			fmt.Fprintf(&sb, "  - [%s %s](#%s)\n", ep.Method, ep.Path, anchor(ep))
		}
	}
	sb.WriteString("\n")

	for _, s := range sections {
		fmt.Fprintf(&sb, "## %s\n\n", s.tag)
		for _, ep := range s.endpoints {
			writeEndpoint(&sb, ep)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

type tagSection struct {
	tag       string
	endpoints []types.Endpoint
}

// groupByTag buckets endpoints by first tag, keeping first-appearance order.
func groupByTag(endpoints []types.Endpoint) []tagSection {
	var sections []tagSection
	pos := make(map[string]int)
	for _, ep := range endpoints {
		tag := untaggedSection
		if len(ep.Tags) > 0 && ep.Tags[0] != "" {
			tag = ep.Tags[0]
		}
		i, ok := pos[tag]
		if !ok {
			i = len(sections)
			pos[tag] = i
			sections = append(sections, tagSection{tag: tag})
		}
		sections[i].endpoints = append(sections[i].endpoints, ep)
	}
	return sections
}

func writeMethodSummary(sb *strings.Builder, endpoints []types.Endpoint) {
	if len(endpoints) == 0 {
		sb.WriteString("_No endpoints found._\n\n")
		return
	}

	counts := make(map[string]int)
	for _, ep := range endpoints {
		counts[ep.Method]++
	}

	sb.WriteString("## Summary\n\n| Method | Count |\n|---|---|\n")
	for _, m := range types.HTTPMethods {
		if n := counts[m]; n > 0 {
			fmt.Fprintf(sb, "| %s | %d |\n", m, n)
		}
	}
	sb.WriteString("\n")
}

func writeEndpoint(sb *strings.Builder, ep types.Endpoint) {
	fmt.Fprintf(sb, "### %s %s\n\n", ep.Method, ep.Path)
	if ep.Title != "" {
		fmt.Fprintf(sb, "**%s**\n\n", ep.Title)
	}
	if ep.Description != "" && ep.Description != ep.Title {
		fmt.Fprintf(sb, "%s\n\n", ep.Description)
	}
	fmt.Fprintf(sb, "Source: `%s`\n\n", ep.File)

	if len(ep.Parameters) > 0 {
		sb.WriteString("#### Parameters\n\n| Name | In | Type | Required | Description |\n|---|---|---|---|---|\n")
		for _, p := range ep.Parameters {
			fmt.Fprintf(sb, "| `%s` | %s | %s | %s | %s |\n",
				p.Name, p.In, p.Type, yesNo(p.Required), cell(p.Description))
		}
		sb.WriteString("\n")
	}

	if len(ep.Headers) > 0 {
		sb.WriteString("#### Headers\n\n| Name | Required | Description |\n|---|---|---|\n")
		for _, h := range ep.Headers {
			fmt.Fprintf(sb, "| `%s` | %s | %s |\n", h.Name, yesNo(h.Required), cell(h.Description))
		}
		sb.WriteString("\n")
	}

	if ep.RequestBody != nil {
		fmt.Fprintf(sb, "#### Request Body\n\nContent-Type: `%s`\n\n", ep.RequestBody.ContentType)
		if ep.RequestBody.Example != nil {
			writeJSONBlock(sb, ep.RequestBody.Example)
		}
	}

	if len(ep.Responses) > 0 {
		sb.WriteString("#### Responses\n\n")
		for _, code := range sortedCodes(ep.Responses) {
			resp := ep.Responses[code]
			fmt.Fprintf(sb, "**%s** %s\n\n", code, resp.Description)
			if resp.Example != nil {
				writeJSONBlock(sb, resp.Example)
			}
		}
	}

	auth := ep.Authentication
	sb.WriteString("#### Authentication\n\n")
	if !auth.Required {
		sb.WriteString("None\n\n")
	} else {
		fmt.Fprintf(sb, "Type: `%s`", auth.Type)
		if auth.HeaderName != "" {
			fmt.Fprintf(sb, ", header `%s: %s`", auth.HeaderName, auth.HeaderExample)
		}
		sb.WriteString("\n\n")
		for i, step := range auth.Steps {
			fmt.Fprintf(sb, "%d. %s\n", i+1, step)
		}
		if len(auth.Steps) > 0 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString("---\n\n")
}

func writeJSONBlock(sb *strings.Builder, v *types.Value) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return
	}
	sb.WriteString("```json\n")
	sb.Write(data)
	sb.WriteString("\n```\n\n")
}

func sortedCodes(responses map[string]types.ResponseSpec) []string {
	codes := make([]string, 0, len(responses))
	for code := range responses {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// anchor mirrors the heading slug GitHub generates for "### METHOD path".
func anchor(ep types.Endpoint) string {
	s := strings.ToLower(ep.Method + " " + ep.Path)
	s = anchorStripRegex.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, " ", "-")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// cell escapes a value for use inside a table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
