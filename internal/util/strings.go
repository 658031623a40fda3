// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package util provides shared string helpers.
package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleWords splits s on '-', '_' and spaces and title-cases each word.
// For example: "user-profiles" returns "User Profiles".
func TitleWords(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	titleCaser := cases.Title(language.English, cases.NoLower)
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}

// ExtractInnerType extracts the inner type from a generic or array type.
// For example: "Array<User>" returns "User", "User[]" returns "User".
func ExtractInnerType(t string) string {
	if strings.HasSuffix(t, "[]") {
		return strings.TrimSuffix(t, "[]")
	}

	start := strings.Index(t, "<")
	end := strings.LastIndex(t, ">")
	if start != -1 && end != -1 && end > start {
		return strings.TrimSpace(t[start+1 : end])
	}

	return t
}

// OperationID builds a camelCase identifier from an HTTP method and a route
// template, e.g. ("GET", "/users/{id}") returns "getUsersById".
func OperationID(method, path string) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(method))

	titleCaser := cases.Title(language.English)
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			sb.WriteString("By")
			seg = strings.Trim(seg, "{}")
		}
		for _, w := range strings.FieldsFunc(seg, func(r rune) bool {
			return r == '-' || r == '_' || r == '.'
		}) {
			sb.WriteString(titleCaser.String(strings.ToLower(w)))
		}
	}
	return sb.String()
}
