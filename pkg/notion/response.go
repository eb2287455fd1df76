package notion

import (
	"encoding/json"
	"fmt"
)

// Response is the raw outcome of a request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int

	// Body is the decoded JSON object, or nil if the body was empty.
	Body map[string]interface{}

	// Raw is the undecoded body.
	Raw []byte
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Err returns nil for 2xx responses and an *APIError otherwise.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	apiErr := &APIError{Status: r.StatusCode}
	if len(r.Raw) > 0 {
		if err := json.Unmarshal(r.Raw, apiErr); err != nil {
			apiErr.Message = string(r.Raw)
		}
	}
	apiErr.Status = r.StatusCode
	return apiErr
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v interface{}) error {
	if len(r.Raw) == 0 {
		return fmt.Errorf("response has no body")
	}
	if err := json.Unmarshal(r.Raw, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ID returns the "id" field of the body, if any.
func (r *Response) ID() string {
	id, _ := r.Body["id"].(string)
	return id
}

// NextCursor returns the cursor for the next page of a list response, or ""
// when there are no more results.
func (r *Response) NextCursor() string {
	if more, _ := r.Body["has_more"].(bool); !more {
		return ""
	}
	cursor, _ := r.Body["next_cursor"].(string)
	return cursor
}

// Results returns the "results" array of a list response.
func (r *Response) Results() []map[string]interface{} {
	items, _ := r.Body["results"].([]interface{})
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
