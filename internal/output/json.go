// internal/output/json.go
package output

import "encoding/json"

// JSONFormatter outputs a Result as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format marshals the Result as indented JSON.
func (f *JSONFormatter) Format(result *Result) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
