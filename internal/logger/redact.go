package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Redaction is the replacement string substituted for the value of every
// masked field.
const Redaction = "***"

// DefaultSensitiveFields lists the field names whose values must never
// appear in log output. Covers the plaintext credential, its stored hash,
// and both opaque tokens, since a leaked token is as good as a leaked
// password.
var DefaultSensitiveFields = []string{
	"password",
	"new_password",
	"hashed_password",
	"session_id",
	"reset_token",
}

// FilterDatum obfuscates the values of the named fields in a key=value log
// message. Each occurrence of `field=value` (the value running up to the
// next separator) is replaced with `field=<redaction>`.
//
// Field names are matched literally; the separator is a single character
// terminating each pair.
func FilterDatum(fields []string, redaction, message, separator string) string {
	if len(fields) == 0 {
		return message
	}

	quoted := make([]string, 0, len(fields))
	for _, f := range fields {
		quoted = append(quoted, regexp.QuoteMeta(f))
	}

	pattern := regexp.MustCompile(
		fmt.Sprintf("(%s)=[^%s]*", strings.Join(quoted, "|"), regexp.QuoteMeta(separator)),
	)

	return pattern.ReplaceAllString(message, "${1}="+redaction)
}

// RedactingWriter is an io.Writer decorator that masks the values of
// configured sensitive fields before the log line reaches the underlying
// writer.
//
// zerolog emits one complete JSON event per Write call, so the writer
// parses each event, replaces the values of top-level sensitive keys with
// Redaction, and re-serializes. Lines that are not valid JSON are treated
// as plain key=value messages and filtered with FilterDatum instead, so no
// line ever bypasses masking entirely.
type RedactingWriter struct {
	out    io.Writer
	fields []string
}

// NewRedactingWriter wraps out with masking of the given field names.
// If no fields are given, DefaultSensitiveFields is used.
func NewRedactingWriter(out io.Writer, fields ...string) *RedactingWriter {
	if len(fields) == 0 {
		fields = DefaultSensitiveFields
	}

	return &RedactingWriter{out: out, fields: fields}
}

// Write masks sensitive fields in p and forwards the result to the
// underlying writer. The returned byte count refers to p, as required by
// the io.Writer contract, regardless of how many bytes the masked form
// occupies.
func (w *RedactingWriter) Write(p []byte) (int, error) {
	masked, err := w.mask(p)
	if err != nil {
		// not a JSON event: fall back to key=value filtering
		line := FilterDatum(w.fields, Redaction, string(p), " ")
		if _, err = w.out.Write([]byte(line)); err != nil {
			return 0, err
		}
		return len(p), nil
	}

	if _, err = w.out.Write(masked); err != nil {
		return 0, err
	}

	return len(p), nil
}

// mask parses a single JSON log event and replaces the values of all
// configured top-level fields. The trailing newline, if present, is
// preserved.
func (w *RedactingWriter) mask(p []byte) ([]byte, error) {
	trimmed := bytes.TrimRight(p, "\n")

	var event map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &event); err != nil {
		return nil, err
	}

	replaced := false
	for _, field := range w.fields {
		if _, ok := event[field]; ok {
			event[field] = json.RawMessage(`"` + Redaction + `"`)
			replaced = true
		}
	}

	if !replaced {
		return p, nil
	}

	masked, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	if bytes.HasSuffix(p, []byte("\n")) {
		masked = append(masked, '\n')
	}

	return masked, nil
}
