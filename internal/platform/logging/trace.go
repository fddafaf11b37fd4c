package logging

import (
	"regexp"

	"go.uber.org/zap"
)

const traceparentHeader = "traceparent"

// W3C Trace Context: {version}-{trace-id}-{parent-id}-{trace-flags}
var traceparentRe = regexp.MustCompile(`^([0-9a-fA-F]{2})-([0-9a-fA-F]{32})-([0-9a-fA-F]{16})-([0-9a-fA-F]{2})$`)

// traceFields extracts trace correlation fields from a traceparent header.
// Malformed or absent headers yield no fields.
func traceFields(header string) []zap.Field {
	m := traceparentRe.FindStringSubmatch(header)
	if len(m) != 5 {
		return nil
	}
	return []zap.Field{
		zap.String("traceId", m[2]),
		zap.String("spanId", m[3]),
		zap.Bool("traceSampled", m[4] == "01"),
	}
}
