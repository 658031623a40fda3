// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"text/template"

	"github.com/routedoc/routedoc/pkg/types"
)

// DefaultComponentName is the exported component of the generated file.
const DefaultComponentName = "ApiDocumentation"

var componentNameRegex = regexp.MustCompile(`^[A-Z][A-Za-z0-9_]*$`)

// The template uses [[ ]] delimiters so JSX object literals pass through.
var reactTemplate = template.Must(template.New("react").Delims("[[", "]]").Parse(reactSource))

const reactSource = `// Generated by routedoc. Do not edit by hand.
import React, { useMemo, useState } from "react";

type Endpoint = {
  method: string;
  path: string;
  file: string;
  title: string;
  description?: string;
  parameters: { name: string; type: string; required: boolean; in: string; description?: string }[];
  headers?: { name: string; required: boolean; description?: string }[];
  requestBody?: { contentType: string; example?: unknown };
  responses: Record<string, { description: string; example?: unknown }>;
  tags?: string[];
  authentication: { required: boolean; type: string; headerName?: string; headerExample?: string };
};

type Documentation = {
  info: { title: string; version: string; description?: string };
  endpoints: Endpoint[];
  totalEndpoints: number;
  generatedAt: string;
};

export const documentation: Documentation = [[.JSON]];

const methodColors: Record<string, string> = {
  GET: "#2f855a",
  POST: "#2b6cb0",
  PUT: "#b7791f",
  PATCH: "#6b46c1",
  DELETE: "#c53030",
  HEAD: "#4a5568",
  OPTIONS: "#4a5568",
};

function EndpointCard({ endpoint }: { endpoint: Endpoint }) {
  const [open, setOpen] = useState(false);
  return (
    <section style={{ border: "1px solid #e2e8f0", borderRadius: 6, marginBottom: 12 }}>
      <button
        onClick={() => setOpen(!open)}
        style={{ display: "flex", gap: 12, width: "100%", padding: 12, background: "none", border: "none", cursor: "pointer" }}
      >
        <strong style={{ color: methodColors[endpoint.method] ?? "#000" }}>{endpoint.method}</strong>
        <code>{endpoint.path}</code>
        <span>{endpoint.title}</span>
        {endpoint.authentication.required && <em>({endpoint.authentication.type})</em>}
      </button>
      {open && (
        <div style={{ padding: "0 12px 12px" }}>
          {endpoint.description && <p>{endpoint.description}</p>}
          <p>
            Source: <code>{endpoint.file}</code>
          </p>
          {endpoint.parameters.length > 0 && (
            <table>
              <thead>
                <tr>
                  <th>Name</th>
                  <th>In</th>
                  <th>Type</th>
                  <th>Required</th>
                </tr>
              </thead>
              <tbody>
                {endpoint.parameters.map((p) => (
                  <tr key={p.in + ":" + p.name}>
                    <td>{p.name}</td>
                    <td>{p.in}</td>
                    <td>{p.type}</td>
                    <td>{p.required ? "yes" : "no"}</td>
                  </tr>
                ))}
              </tbody>
            </table>
          )}
          {endpoint.requestBody?.example !== undefined && (
            <pre>{JSON.stringify(endpoint.requestBody.example, null, 2)}</pre>
          )}
          {Object.entries(endpoint.responses).map(([code, response]) => (
            <div key={code}>
              <strong>{code}</strong> {response.description}
              {response.example !== undefined && <pre>{JSON.stringify(response.example, null, 2)}</pre>}
            </div>
          ))}
        </div>
      )}
    </section>
  );
}

export default function [[.Component]]() {
  const [filter, setFilter] = useState("");
  const endpoints = useMemo(() => {
    const q = filter.toLowerCase();
    return documentation.endpoints.filter(
      (e) => e.path.toLowerCase().includes(q) || e.title.toLowerCase().includes(q)
    );
  }, [filter]);

  return (
    <main style={{ fontFamily: "system-ui, sans-serif", maxWidth: 960, margin: "0 auto" }}>
      <h1>{documentation.info.title}</h1>
      {documentation.info.description && <p>{documentation.info.description}</p>}
      <p>
        Version {documentation.info.version} | {documentation.totalEndpoints} endpoints
      </p>
      <input
        placeholder="Filter endpoints"
        value={filter}
        onChange={(e) => setFilter(e.target.value)}
        style={{ width: "100%", padding: 8, marginBottom: 16 }}
      />
      {endpoints.map((e) => (
        <EndpointCard key={e.method + " " + e.path} endpoint={e} />
      ))}
    </main>
  );
}
`

// ReactRenderer writes a TSX viewer component with the documentation embedded.
type ReactRenderer struct {
	// Component is the name of the default export
	Component string
}

// NewReactRenderer creates a ReactRenderer with DefaultComponentName.
func NewReactRenderer() *ReactRenderer {
	return &ReactRenderer{Component: DefaultComponentName}
}

func (r *ReactRenderer) Name() string      { return "react" }
func (r *ReactRenderer) Extension() string { return ".tsx" }
func (r *ReactRenderer) Aliases() []string { return []string{"tsx"} }

// Render implements Renderer.
func (r *ReactRenderer) Render(doc *types.Documentation, w io.Writer) error {
	component := r.Component
	if component == "" {
		component = DefaultComponentName
	}
	if !componentNameRegex.MatchString(component) {
		return fmt.Errorf("invalid component name %q", component)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode documentation: %w", err)
	}

	return reactTemplate.Execute(w, struct {
		JSON      string
		Component string
	}{
		JSON:      string(data),
		Component: component,
	})
}
