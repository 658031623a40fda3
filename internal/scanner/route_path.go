// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package scanner

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	optionalCatchAllRegex = regexp.MustCompile(`\[\[\.\.\.([^\]]+)\]\]`)
	catchAllRegex         = regexp.MustCompile(`\[\.\.\.([^\]]+)\]`)
	dynamicSegmentRegex   = regexp.MustCompile(`\[([^\]]+)\]`)
	braceParamRegex       = regexp.MustCompile(`\{([^}]+)\}`)
)

// PathToURL converts a handler file path into a route template.
//
// Everything up to and including the api anchor is dropped, as is the handler
// file name and a trailing index segment. Route groups such as "(admin)" do
// not appear in URLs. Dynamic segments "[id]", "[...slug]" and "[[...slug]]"
// become "{id}" and "{slug}". The result always starts with APIRoot.
func PathToURL(filePath string) string {
	segs := strings.Split(normalize(filePath), "/")
	if anchor := anchorIndex(segs); anchor >= 0 {
		segs = segs[anchor+1:]
	}

	if n := len(segs); n > 0 {
		last := segs[n-1]
		if isHandlerFileName(last) {
			base := strings.TrimSuffix(last, path.Ext(last))
			if base == handlerBase {
				segs = segs[:n-1]
			} else {
				segs[n-1] = base
			}
		}
	}
	if n := len(segs); n > 0 && segs[n-1] == "index" {
		segs = segs[:n-1]
	}

	var sb strings.Builder
	sb.WriteString(APIRoot)
	for _, seg := range segs {
		if seg == "" || seg == "." || isRouteGroup(seg) {
			continue
		}
		seg = optionalCatchAllRegex.ReplaceAllString(seg, "{$1}")
		seg = catchAllRegex.ReplaceAllString(seg, "{$1}")
		seg = dynamicSegmentRegex.ReplaceAllString(seg, "{$1}")
		sb.WriteByte('/')
		sb.WriteString(seg)
	}
	return sb.String()
}

// PathParams returns the names of every {name} token in a route template, in
// order of appearance.
func PathParams(url string) []string {
	matches := braceParamRegex.FindAllStringSubmatch(url, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// TagFromPath returns the first directory after the api anchor, skipping
// route groups, unless only the handler file itself follows the anchor.
func TagFromPath(filePath string) string {
	segs := strings.Split(normalize(filePath), "/")
	anchor := anchorIndex(segs)
	if anchor < 0 {
		return ""
	}
	for i := anchor + 1; i < len(segs); i++ {
		seg := segs[i]
		if seg == "" || isRouteGroup(seg) {
			continue
		}
		if i == len(segs)-1 && isHandlerFileName(seg) {
			return ""
		}
		return seg
	}
	return ""
}

// RoutePath returns the root-relative path rel in a form that carries the api
// anchor and the router directory above it. When root lies at or below an
// app/api or pages/api directory, the root's segments from that router
// directory down are prepended, so "users/route.ts" under root "src/app/api"
// becomes "app/api/users/route.ts". When root is the router directory itself,
// its name is prepended, so "api/legacy.ts" under "src/pages" becomes
// "pages/api/legacy.ts".
func RoutePath(root, rel string) string {
	return joinAnchored(anchorPrefix(root), rel)
}

// anchorPrefix returns the trailing segments of root starting at its
// innermost app/api or pages/api pair, the root's own name when it is an app
// or pages directory, or "".
func anchorPrefix(root string) string {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	segs := strings.Split(normalize(filepath.ToSlash(abs)), "/")
	for i := len(segs) - 1; i > 0; i-- {
		if segs[i] == apiAnchor && isRouterDir(segs[i-1]) {
			return strings.Join(segs[i-1:], "/")
		}
	}
	if last := segs[len(segs)-1]; isRouterDir(last) {
		return last
	}
	return ""
}

func joinAnchored(prefix, rel string) string {
	rel = normalize(rel)
	if prefix == "" {
		return rel
	}
	prefixAnchored := anchorIndex(strings.Split(prefix, "/")) >= 0
	switch anchorIndex(strings.Split(rel, "/")) {
	case -1:
		if prefixAnchored {
			return path.Join(prefix, rel)
		}
	case 0:
		if !prefixAnchored {
			return path.Join(prefix, rel)
		}
	}
	return rel
}

func isRouterDir(seg string) bool {
	return seg == "app" || seg == "pages"
}

func isRouteGroup(seg string) bool {
	return strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")")
}
