package columns

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/itchyny/gojq"
)

// All is the column wildcard selecting every metadata field.
const All = "*"

// Resolver extracts display fields from asset metadata.
// Column names may use dot notation ("metadata.status") to reach nested values.
type Resolver struct {
	all     bool
	columns []string
	queries map[string]*gojq.Code
}

// NewResolver compiles the configured columns.
// An empty list or a list containing "*" selects every metadata field.
func NewResolver(columns []string) (*Resolver, error) {
	r := &Resolver{queries: make(map[string]*gojq.Code)}
	for _, col := range columns {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		if col == All {
			r.all = true
			continue
		}
		if _, seen := r.queries[col]; seen {
			continue
		}
		code, err := compilePath(col)
		if err != nil {
			return nil, fmt.Errorf("invalid column %q: %w", col, err)
		}
		r.columns = append(r.columns, col)
		r.queries[col] = code
	}
	if len(r.columns) == 0 {
		r.all = true
	}
	return r, nil
}

// Columns returns the explicit columns in configured order.
// It is empty when every field is selected.
func (r *Resolver) Columns() []string {
	if r.all {
		return nil
	}
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

// Resolve returns the display fields for an asset.
// Missing paths are left out of the result.
func (r *Resolver) Resolve(id string, metadata map[string]any) map[string]any {
	if r.all {
		out := make(map[string]any, len(metadata))
		for k, v := range metadata {
			out[k] = v
		}
		return out
	}

	// Top-level metadata fields are addressable directly and under "metadata".
	input := make(map[string]any, len(metadata)+2)
	for k, v := range metadata {
		input[k] = v
	}
	input["id"] = id
	input["metadata"] = metadata

	out := make(map[string]any, len(r.columns))
	for _, col := range r.columns {
		iter := r.queries[col].Run(input)
		v, ok := iter.Next()
		if !ok || v == nil {
			continue
		}
		if _, isErr := v.(error); isErr {
			continue
		}
		out[col] = v
	}
	return out
}

// compilePath turns "a.b.c" into the jq path `."a"."b"."c"`.
func compilePath(path string) (*gojq.Code, error) {
	var sb strings.Builder
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return nil, fmt.Errorf("empty path segment")
		}
		sb.WriteString(".")
		sb.WriteString(strconv.Quote(seg))
	}
	q, err := gojq.Parse(sb.String())
	if err != nil {
		return nil, err
	}
	return gojq.Compile(q)
}
