// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package methods detects which HTTP verbs a route handler file exports.
package methods

import (
	"regexp"
	"strings"

	"github.com/routedoc/routedoc/pkg/types"
)

var (
	// export async function GET(...)
	functionExport = compilePerVerb(`(?i:export)\s+(?:async\s+)?function\s*\*?\s*%s\s*[(<]`)

	// export const GET = ...
	constExport = compilePerVerb(`(?i:export)\s+(?:const|let|var)\s+%s\s*(?::[^=]+)?=`)

	// export { handler as GET, POST }
	namedExportRegex = regexp.MustCompile(`(?i:export)\s*\{([^}]*)\}`)
)

// signatures are the per-verb export forms matched directly.
var signatures = []func(verb string) *regexp.Regexp{
	functionExport,
	constExport,
}

// compilePerVerb precompiles one pattern per verb so matching never shares
// state between verbs.
func compilePerVerb(format string) func(string) *regexp.Regexp {
	compiled := make(map[string]*regexp.Regexp, len(types.HTTPMethods))
	for _, verb := range types.HTTPMethods {
		compiled[verb] = regexp.MustCompile(strings.Replace(format, "%s", verb+`\b`, 1))
	}
	return func(verb string) *regexp.Regexp {
		return compiled[verb]
	}
}

// Extract returns the HTTP verbs exported by src, each at most once and in
// canonical order. A file without handler exports yields an empty slice.
func Extract(src string) []string {
	found := make([]string, 0, len(types.HTTPMethods))
	for _, verb := range types.HTTPMethods {
		if Locate(src, verb) >= 0 {
			found = append(found, verb)
		}
	}
	return found
}

// Locate returns the byte offset of the first export signature for verb in
// src, or -1 if the verb is not exported.
func Locate(src, verb string) int {
	best := -1
	for _, sig := range signatures {
		re := sig(verb)
		if re == nil {
			return -1
		}
		if loc := re.FindStringIndex(src); loc != nil && (best < 0 || loc[0] < best) {
			best = loc[0]
		}
	}
	if loc := namedExportIndex(src, verb); loc >= 0 && (best < 0 || loc < best) {
		best = loc
	}
	return best
}

// namedExportIndex finds verb among the exported names of an export list.
// "handler as GET" exports GET; "GET as handler" does not.
func namedExportIndex(src, verb string) int {
	for _, loc := range namedExportRegex.FindAllStringSubmatchIndex(src, -1) {
		list := src[loc[2]:loc[3]]
		for _, item := range strings.Split(list, ",") {
			fields := strings.Fields(item)
			if len(fields) == 0 {
				continue
			}
			exported := fields[len(fields)-1]
			if len(fields) == 3 && fields[1] != "as" {
				continue
			}
			if exported == verb {
				return loc[0]
			}
		}
	}
	return -1
}
