// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package infer

import (
	"strings"

	"github.com/routedoc/routedoc/pkg/types"
)

const sampleTimestamp = "2024-01-15T10:30:00Z"

// exampleForName returns an illustrative value for a field, keyed by
// recognised substrings of its name.
func exampleForName(name string) types.Value {
	lower := strings.ToLower(name)
	switch {
	case isBooleanName(name):
		return types.Bool(true)
	case strings.Contains(lower, "email"):
		return types.String("user@example.com")
	case strings.Contains(lower, "password"):
		return types.String("securePassword123")
	case strings.Contains(lower, "title"):
		return types.String("Sample Title")
	case strings.Contains(lower, "description"):
		return types.String("A detailed description")
	case strings.Contains(lower, "name"):
		return types.String("John Doe")
	case lower == "id" || strings.HasSuffix(name, "Id") || strings.HasSuffix(lower, "_id"):
		return types.String("123")
	case strings.HasSuffix(name, "At") || strings.Contains(lower, "date"):
		return types.String(sampleTimestamp)
	}
	return types.String("example " + name)
}

func isBooleanName(name string) bool {
	for _, prefix := range []string{"is", "has", "can", "should"} {
		if strings.HasPrefix(name, prefix) && len(name) > len(prefix) {
			next := name[len(prefix)]
			if next >= 'A' && next <= 'Z' || next == '_' {
				return true
			}
		}
	}
	lower := strings.ToLower(name)
	for _, flag := range []string{"enabled", "active", "completed", "published", "archived", "verified"} {
		if strings.Contains(lower, flag) {
			return true
		}
	}
	return false
}

func exampleForQuery(name string) types.Value {
	switch name {
	case "page":
		return types.Number(1)
	case "limit", "size", "pageSize", "per_page", "count":
		return types.Number(10)
	case "offset":
		return types.Number(0)
	}
	return exampleForName(name)
}

// exampleForSchema returns an example matching a property schema.
func exampleForSchema(name string, s *types.Schema) types.Value {
	if s == nil {
		return exampleForName(name)
	}
	if len(s.Enum) > 0 {
		return types.String(s.Enum[0])
	}
	switch s.Type {
	case "number", "integer":
		return types.Number(1)
	case "boolean":
		return types.Bool(true)
	case "array":
		return types.List(exampleForSchema(singular(name), s.Items))
	case "object":
		return types.Object()
	}
	if s.Format == "date-time" {
		return types.String(sampleTimestamp)
	}
	return exampleForName(name)
}

// Resource shapes recognised in response payloads.
var resourceExamples = map[string]types.Value{
	"workspace": types.Object(
		types.M("id", types.String("ws_123")),
		types.M("name", types.String("My Workspace")),
		types.M("slug", types.String("my-workspace")),
		types.M("createdAt", types.String(sampleTimestamp)),
	),
	"task": types.Object(
		types.M("id", types.String("task_123")),
		types.M("title", types.String("Complete documentation")),
		types.M("status", types.String("in_progress")),
		types.M("priority", types.String("high")),
		types.M("createdAt", types.String(sampleTimestamp)),
	),
	"issue": types.Object(
		types.M("id", types.String("issue_123")),
		types.M("title", types.String("Login button not responding")),
		types.M("status", types.String("open")),
		types.M("severity", types.String("medium")),
		types.M("createdAt", types.String(sampleTimestamp)),
	),
	"project": types.Object(
		types.M("id", types.String("proj_123")),
		types.M("name", types.String("Website Redesign")),
		types.M("status", types.String("active")),
		types.M("createdAt", types.String(sampleTimestamp)),
	),
	"user": types.Object(
		types.M("id", types.String("user_123")),
		types.M("name", types.String("John Doe")),
		types.M("email", types.String("user@example.com")),
		types.M("createdAt", types.String(sampleTimestamp)),
	),
	"comment": types.Object(
		types.M("id", types.String("comment_123")),
		types.M("content", types.String("Looks good to me")),
		types.M("authorId", types.String("user_123")),
		types.M("createdAt", types.String(sampleTimestamp)),
	),
}

// responseTemplate turns a recognised payload name into an example body.
type responseTemplate struct {
	Kind    string
	Match   func(name string) bool
	Example func(name string) types.Value
}

// ResponseCatalog is the ordered table of payload shapes. Names are matched
// literally; anything else gets a generic object built from its keys.
var ResponseCatalog = []responseTemplate{
	{
		Kind: "collection",
		Match: func(name string) bool {
			_, ok := resourceExamples[singular(name)]
			return ok && name != singular(name)
		},
		Example: func(name string) types.Value {
			return types.Object(types.M(name, types.List(resourceExamples[singular(name)])))
		},
	},
	{
		Kind: "single",
		Match: func(name string) bool {
			_, ok := resourceExamples[name]
			return ok
		},
		Example: func(name string) types.Value {
			return types.Object(types.M(name, resourceExamples[name]))
		},
	},
	{
		Kind:  "list-with-items",
		Match: func(name string) bool { return name == "items" || name == "results" },
		Example: func(name string) types.Value {
			return types.Object(
				types.M(name, types.List(
					types.Object(types.M("id", types.String("1")), types.M("name", types.String("Item 1"))),
					types.Object(types.M("id", types.String("2")), types.M("name", types.String("Item 2"))),
				)),
				types.M("total", types.Number(2)),
			)
		},
	},
	{
		Kind:  "success",
		Match: func(name string) bool { return name == "success" || name == "message" },
		Example: func(string) types.Value {
			return types.Object(
				types.M("success", types.Bool(true)),
				types.M("message", types.String("Operation completed successfully")),
			)
		},
	},
	{
		Kind:  "paginated",
		Match: func(name string) bool { return name == "data" || name == "pagination" },
		Example: func(string) types.Value {
			return types.Object(
				types.M("data", types.List(types.Object(
					types.M("id", types.String("1")),
					types.M("name", types.String("Example")),
				))),
				types.M("pagination", types.Object(
					types.M("page", types.Number(1)),
					types.M("limit", types.Number(10)),
					types.M("total", types.Number(100)),
					types.M("totalPages", types.Number(10)),
				)),
			)
		},
	},
}

// catalogExample returns the example for the first payload name a template
// recognises.
func catalogExample(names []string) (types.Value, bool) {
	for _, tmpl := range ResponseCatalog {
		for _, name := range names {
			if tmpl.Match(name) {
				return tmpl.Example(name), true
			}
		}
	}
	return types.Value{}, false
}

// genericListExample is the default 200 body for GET handlers.
func genericListExample() types.Value {
	return types.Object(
		types.M("data", types.List(types.Object(
			types.M("id", types.String("1")),
			types.M("createdAt", types.String(sampleTimestamp)),
		))),
		types.M("total", types.Number(1)),
	)
}

func errorExample(message string) types.Value {
	return types.Object(types.M("error", types.String(message)))
}

func singular(name string) string {
	switch {
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss"):
		return name[:len(name)-1]
	}
	return name
}
