// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package scanner discovers route handler files and maps their paths to URL
// templates.
package scanner

import (
	"path"
	"strings"
)

// APIRoot is the canonical prefix of every route template.
const APIRoot = "/api"

// apiAnchor is the directory segment under which routes live.
const apiAnchor = "api"

// handlerBase is the App Router handler file name without extension.
const handlerBase = "route"

// handlerExtensions maps handler file extensions to language identifiers.
var handlerExtensions = map[string]string{
	".ts":  "typescript",
	".tsx": "typescript",
	".mts": "typescript",
	".js":  "javascript",
	".jsx": "javascript",
	".mjs": "javascript",
}

// HandlerPattern selects candidate source files; IsHandlerFile then decides
// on the anchored path, since the anchor may sit above the scan root.
const HandlerPattern = "**/*.{ts,tsx,mts,js,jsx,mjs}"

// DetectLanguage returns "typescript" or "javascript" for handler files and ""
// otherwise.
func DetectLanguage(p string) string {
	return handlerExtensions[strings.ToLower(path.Ext(p))]
}

// IsHandlerFile reports whether a slash-separated path follows the handler
// filename convention: route.<ext> below an api directory, or any source file
// below pages/api.
func IsHandlerFile(p string) bool {
	p = normalize(p)
	if DetectLanguage(p) == "" {
		return false
	}
	segs := strings.Split(p, "/")
	anchor := anchorIndex(segs)
	if anchor < 0 || anchor == len(segs)-1 {
		return false
	}
	base := segs[len(segs)-1]
	if strings.TrimSuffix(base, path.Ext(base)) == handlerBase {
		return true
	}
	return anchor > 0 && segs[anchor-1] == "pages"
}

// isHandlerFileName reports whether a segment is a handler file name.
func isHandlerFileName(seg string) bool {
	ext := path.Ext(seg)
	return handlerExtensions[strings.ToLower(ext)] != ""
}

// normalize converts separators to '/' so downstream matching never sees
// platform separators.
func normalize(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// anchorIndex returns the index of the first api segment, or -1.
func anchorIndex(segs []string) int {
	for i, s := range segs {
		if s == apiAnchor {
			return i
		}
	}
	return -1
}
