// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"regexp"
	"strings"

	"github.com/routedoc/routedoc/internal/util"
	"github.com/routedoc/routedoc/pkg/types"
)

var (
	// interfaceDeclRegex matches "interface Name {" and "type Name = {".
	interfaceDeclRegex = regexp.MustCompile(`(?:interface\s+(\w+)(?:\s+extends\s+[\w<>, .]+)?|type\s+(\w+)(?:<[^>]*>)?\s*=)\s*\{`)

	// fieldRegex matches one "name?: Type" member line.
	fieldRegex = regexp.MustCompile(`^(?:readonly\s+)?['"]?([A-Za-z_$][\w$]*)['"]?(\?)?\s*:\s*(.+)$`)

	stringLiteralRegex = regexp.MustCompile(`^['"\x60]([^'"\x60]*)['"\x60]$`)
)

// tsInterface is an interface or object type alias declared in a handler.
type tsInterface struct {
	Name   string
	Fields []tsField
}

// tsField is one member of a tsInterface.
type tsField struct {
	Name     string
	Type     string
	Optional bool
}

// parseInterfaces returns the interface and object type declarations in src,
// in source order. Nested object members are not descended into.
func parseInterfaces(src string) []tsInterface {
	var out []tsInterface
	for _, loc := range interfaceDeclRegex.FindAllStringSubmatchIndex(src, -1) {
		name := submatch(src, loc, 1)
		if name == "" {
			name = submatch(src, loc, 2)
		}
		body, ok := balancedBlock(src, loc[1]-1)
		if !ok {
			continue
		}
		out = append(out, tsInterface{Name: name, Fields: parseFields(body)})
	}
	return out
}

func parseFields(body string) []tsField {
	var fields []tsField
	for _, member := range splitMembers(body) {
		if m := fieldRegex.FindStringSubmatch(member); m != nil {
			fields = append(fields, tsField{
				Name:     m[1],
				Optional: m[2] == "?",
				Type:     strings.TrimSpace(m[3]),
			})
		}
	}
	return fields
}

// splitMembers splits an object type body on newlines, ';' and ',' that are
// not nested inside braces, brackets, parentheses or generics. Line comments
// are dropped.
func splitMembers(body string) []string {
	var members []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		if m := strings.TrimSpace(cur.String()); m != "" {
			members = append(members, m)
		}
		cur.Reset()
	}
	for _, line := range strings.Split(body, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		for _, r := range line {
			switch r {
			case '{', '[', '(', '<':
				depth++
			case '}', ']', ')', '>':
				if depth > 0 {
					depth--
				}
			case ';', ',':
				if depth == 0 {
					flush()
					continue
				}
			}
			cur.WriteRune(r)
		}
		if depth == 0 {
			flush()
		} else {
			cur.WriteByte(' ')
		}
	}
	flush()
	return members
}

// fieldType finds name in the declared interfaces and returns its type.
func fieldType(ifaces []tsInterface, name string) (string, bool) {
	for _, iface := range ifaces {
		for _, f := range iface.Fields {
			if f.Name == name {
				return f.Type, true
			}
		}
	}
	return "", false
}

// typeToSchema converts a TypeScript type annotation to a schema. A union of
// string literals becomes an enum; unknown references become plain objects.
func typeToSchema(tsType string) *types.Schema {
	tsType = strings.TrimSpace(tsType)

	if strings.HasPrefix(tsType, "Array<") && strings.HasSuffix(tsType, ">") {
		return &types.Schema{
			Type:  "array",
			Items: typeToSchema(util.ExtractInnerType(tsType)),
		}
	}

	if strings.Contains(tsType, "|") {
		return unionToSchema(tsType)
	}

	if strings.HasSuffix(tsType, "[]") {
		return &types.Schema{
			Type:  "array",
			Items: typeToSchema(strings.TrimSuffix(tsType, "[]")),
		}
	}

	switch tsType {
	case "string":
		return &types.Schema{Type: "string"}
	case "number", "bigint":
		return &types.Schema{Type: "number"}
	case "boolean":
		return &types.Schema{Type: "boolean"}
	case "Date":
		return &types.Schema{Type: "string", Format: "date-time"}
	case "any", "unknown", "":
		return &types.Schema{Type: "string"}
	}

	if m := stringLiteralRegex.FindStringSubmatch(tsType); m != nil {
		return &types.Schema{Type: "string", Enum: []string{m[1]}}
	}
	return &types.Schema{Type: "object"}
}

func unionToSchema(tsType string) *types.Schema {
	var members []string
	for _, part := range strings.Split(tsType, "|") {
		if part = strings.TrimSpace(part); part != "" {
			members = append(members, part)
		}
	}

	var enum []string
	var nullable bool
	var others []string
	for _, part := range members {
		switch {
		case part == "null" || part == "undefined":
			nullable = true
		case stringLiteralRegex.MatchString(part):
			enum = append(enum, stringLiteralRegex.FindStringSubmatch(part)[1])
		default:
			others = append(others, part)
		}
	}

	var schema *types.Schema
	switch {
	case len(enum) > 0 && len(others) == 0:
		schema = &types.Schema{Type: "string", Enum: enum}
	case len(others) == 1 && len(enum) == 0:
		schema = typeToSchema(others[0])
	default:
		schema = &types.Schema{Type: "string"}
	}
	schema.Nullable = nullable
	return schema
}

// balancedBlock returns the text between the brace at open and its match.
func balancedBlock(src string, open int) (string, bool) {
	if open < 0 || open >= len(src) || src[open] != '{' {
		return "", false
	}
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return src[open+1 : i], true
			}
		}
	}
	return "", false
}

func submatch(src string, loc []int, group int) string {
	if 2*group+1 >= len(loc) || loc[2*group] < 0 {
		return ""
	}
	return src[loc[2*group]:loc[2*group+1]]
}
