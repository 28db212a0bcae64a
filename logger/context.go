package logger

import (
	"context"
	"net/url"
	"strings"

	"deep-summarizer/trace"
)

// redactedParams are query parameters never written to the log. The daily
// briefing takes the cron secret in the query string.
var redactedParams = map[string]bool{
	"secret":  true,
	"key":     true,
	"api_key": true,
	"token":   true,
}

const redacted = "***"

// RedactQuery copies the non-empty query parameters, masking shared secrets
// and API keys.
func RedactQuery(q url.Values) map[string][]string {
	out := make(map[string][]string, len(q))
	for key, values := range q {
		if len(values) == 0 {
			continue
		}
		if redactedParams[strings.ToLower(key)] {
			values = []string{redacted}
		}
		out[key] = values
	}
	return out
}

// WithTrace adds the request id, span id and job name carried by ctx to
// fields. Keys already present are kept.
func WithTrace(ctx context.Context, fields Fields) Fields {
	if fields == nil {
		fields = Fields{}
	}
	set := func(k, v string) {
		if _, ok := fields[k]; !ok && v != "" {
			fields[k] = v
		}
	}
	set("request_id", trace.RequestIDFromContext(ctx))
	if fields["request_id"] != nil {
		set("span_id", trace.CurrentSpanID(ctx))
	}
	set("job", trace.JobFromContext(ctx))
	return fields
}
