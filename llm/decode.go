package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// Object is a decoded JSON object read leniently: a field
// that is missing or has the wrong type yields the zero value.
type Object map[string]any

// ParseObject decodes a model reply into an Object. Markdown code fences and
// prose around the outermost braces are tolerated.
func ParseObject(text string) (Object, error) {
	text = strings.TrimSpace(text)
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = m[1]
	}
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start >= 0 && end > start {
		text = text[start : end+1]
	} else {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	var obj Object
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}
	return obj, nil
}

// String returns the trimmed string at key, or "".
func (o Object) String(key string) string {
	s, _ := o[key].(string)
	return strings.TrimSpace(s)
}

// StringOr returns String(key), or def when it is empty.
func (o Object) StringOr(key, def string) string {
	if s := o.String(key); s != "" {
		return s
	}
	return def
}

// Strings returns the non-empty strings of the array at key.
func (o Object) Strings(key string) []string {
	items, _ := o[key].([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Objects returns the elements of the array at key that are objects.
func (o Object) Objects(key string) []Object {
	items, _ := o[key].([]any)
	out := make([]Object, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, Object(m))
		}
	}
	return out
}

// Has reports whether key is present with a non-null value.
func (o Object) Has(key string) bool {
	v, ok := o[key]
	return ok && v != nil
}
