package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the dotted Go path of a struct field under the key "field".
func Field(path string) slog.Attr {
	return slog.String("field", path)
}

// Key records an environment key under the key "key".
func Key(key string) slog.Attr {
	return slog.String("key", key)
}

// Prefix records the active key prefix under the key "prefix".
// If prefix is empty, it returns an empty Attr.
func Prefix(prefix string) slog.Attr {
	if prefix == "" {
		return slog.Attr{}
	}
	return slog.String("prefix", prefix)
}

// Shape records a field's decoded shape under the key "shape".
func Shape(s string) slog.Attr {
	return slog.String("shape", s)
}

// Files records the env files read under the key "files".
// If no files are given, it returns an empty Attr.
func Files(paths ...string) slog.Attr {
	if len(paths) == 0 {
		return slog.Attr{}
	}
	return slog.Any("files", paths)
}
