package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotObject is returned when the request body is valid JSON but not an object.
var ErrNotObject = errors.New("request body is not a JSON object")

// Generator produces the raw puzzle JSON for a system instruction and user message.
type Generator interface {
	GenerateContent(ctx context.Context, apiKey, systemInstruction, userMessage string) (string, error)
}

// RequestPayload represents the expected JSON structure in the request body.
// Date may hold any JSON value; it is never validated.
type RequestPayload struct {
	Date json.RawMessage `json:"date"`
}

// decodePayload reads the whole body as a single JSON object. Trailing data,
// a top-level null and any non-object value are rejected.
func decodePayload(body io.Reader) (RequestPayload, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return RequestPayload{}, fmt.Errorf("reading request body: %w", err)
	}
	var payload *RequestPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return RequestPayload{}, fmt.Errorf("decoding request body: %w", err)
	}
	if payload == nil {
		return RequestPayload{}, ErrNotObject
	}
	return *payload, nil
}

// DateText returns the date as it is interpolated into the prompt, following
// JavaScript template-string conversion: strings unquoted, a missing field as
// "undefined", objects as "[object Object]" and arrays joined with commas.
func (p RequestPayload) DateText() string {
	if len(p.Date) == 0 {
		return "undefined"
	}
	dec := json.NewDecoder(bytes.NewReader(p.Date))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return string(p.Date)
	}
	return jsString(v)
}

func jsString(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	case []any:
		elems := make([]string, len(t))
		for i, e := range t {
			// Array.prototype.join renders null elements as empty strings.
			if e != nil {
				elems[i] = jsString(e)
			}
		}
		return strings.Join(elems, ",")
	default:
		return "[object Object]"
	}
}
