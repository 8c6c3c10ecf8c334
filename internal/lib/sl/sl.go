// Package sl provides small helpers for structured slog attributes.
package sl

import "log/slog"

// Err returns a slog attribute for an error value.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Module returns a slog attribute naming the component a logger belongs to.
func Module(name string) slog.Attr {
	return slog.String("module", name)
}

// Secret returns a slog attribute with the value masked down to its first
// characters, so tokens and keys never end up in logs verbatim.
func Secret(key, value string) slog.Attr {
	return slog.String(key, mask(value))
}

func mask(value string) string {
	if len(value) <= 8 {
		return "***"
	}
	return value[:4] + "..." + value[len(value)-2:]
}
