// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"fmt"
	"strings"

	"github.com/routedoc/routedoc/internal/scanner"
	"github.com/routedoc/routedoc/internal/util"
	"github.com/routedoc/routedoc/pkg/types"
)

// DocBlock is a /** ... */ comment attached to a handler.
type DocBlock struct {
	// Raw is the comment text between the delimiters
	Raw string

	// Lines are the comment lines with leading '*' and whitespace removed
	Lines []string
}

// FindDocBlock returns the doc comment that ends immediately before offset,
// with only whitespace in between. It returns nil when offset is negative or
// no such comment exists.
func FindDocBlock(src string, offset int) *DocBlock {
	if offset < 0 || offset > len(src) {
		return nil
	}
	before := strings.TrimRight(src[:offset], " \t\r\n")
	if !strings.HasSuffix(before, "*/") {
		return nil
	}
	body := before[:len(before)-2]
	start := strings.LastIndex(body, "/**")
	// The block must close at the end of before, not earlier.
	if start < 0 || strings.Contains(body[start+3:], "*/") {
		return nil
	}

	raw := before[start+3 : len(before)-2]
	block := &DocBlock{Raw: raw}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "*")
		block.Lines = append(block.Lines, strings.TrimSpace(line))
	}
	return block
}

// Tag returns the text following the first "@name" line, if any.
func (d *DocBlock) Tag(names ...string) (string, bool) {
	for _, line := range d.Lines {
		if !strings.HasPrefix(line, "@") {
			continue
		}
		tag, rest, _ := strings.Cut(line[1:], " ")
		for _, name := range names {
			if tag == name {
				return strings.TrimSpace(rest), true
			}
		}
	}
	return "", false
}

// Prose returns the non-empty lines before the first annotation.
func (d *DocBlock) Prose() []string {
	var prose []string
	for _, line := range d.Lines {
		if strings.HasPrefix(line, "@") {
			break
		}
		if line != "" {
			prose = append(prose, line)
		}
	}
	return prose
}

// extractSummary sets the title and description, preferring the attached doc
// comment and falling back to a synthesized pair.
func extractSummary(ctx *Context) {
	ep := ctx.Endpoint
	ep.Title = SynthesizeTitle(ctx.Route.Method, ctx.Route.URL)
	ep.Description = SynthesizeDescription(ctx.Route.Method, ctx.Route.URL)

	doc := ctx.Doc
	if doc == nil {
		return
	}

	prose := doc.Prose()
	if title, ok := doc.Tag("api-title", "summary"); ok && title != "" {
		ep.Title = title
	} else if len(prose) > 0 {
		ep.Title = prose[0]
		prose = prose[1:]
	}

	if desc, ok := doc.Tag("api-description", "description"); ok && desc != "" {
		ep.Description = desc
	} else if len(prose) > 0 {
		ep.Description = strings.Join(prose, " ")
	} else if ep.Title != "" {
		ep.Description = ep.Title
	}
}

// actionWords maps a verb to the leading word of a synthesized title.
var actionWords = map[string]string{
	types.MethodPost:    "Create",
	types.MethodPut:     "Update",
	types.MethodPatch:   "Update",
	types.MethodDelete:  "Delete",
	types.MethodHead:    "Check",
	types.MethodOptions: "Options",
}

// SynthesizeTitle derives a title from the verb and route template.
//
// The first segment below the root names the resource and the first static
// segment after it names the sub-action. A dynamic segment after the resource
// appends "by ID":
//
//	GET /api/users         -> List Users
//	GET /api/users/{id}    -> Get Users by ID
//	POST /api/users/invite -> Create Users Invite
func SynthesizeTitle(method, url string) string {
	segs := routeSegments(url)

	resource := "API"
	if len(segs) > 0 && !isDynamic(segs[0]) {
		resource = util.TitleWords(segs[0])
	}

	var subAction string
	var dynamic bool
	for i, seg := range segs {
		switch {
		case isDynamic(seg):
			dynamic = true
		case i > 0 && subAction == "":
			subAction = util.TitleWords(seg)
		}
	}

	action, ok := actionWords[method]
	if !ok {
		action = "List"
		if len(segs) > 1 {
			action = "Get"
		}
	}

	title := action + " " + resource
	if subAction != "" {
		title += " " + subAction
	}
	if dynamic {
		title += " by ID"
	}
	return title
}

// SynthesizeDescription derives a one-line description from the verb and
// route template.
func SynthesizeDescription(method, url string) string {
	return fmt.Sprintf("Handles %s requests to %s", method, url)
}

func routeSegments(url string) []string {
	var segs []string
	for _, seg := range strings.Split(strings.TrimPrefix(url, scanner.APIRoot), "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs
}

func isDynamic(seg string) bool {
	return strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}
