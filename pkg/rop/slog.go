package rop

import (
	"errors"
	"log/slog"
	"slices"
)

// LogValue implements slog.LogValuer, so an Error can be logged directly as a
// structured group. Extension keys are emitted in sorted order.
func (e Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs,
		slog.String("code", e.Code()),
		slog.String("message", e.Message()),
		slog.Int("status", e.Status()),
		slog.String("category", e.Category().String()),
	)
	if len(e.extensions) > 0 {
		keys := make([]string, 0, len(e.extensions))
		for k := range e.extensions {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		ext := make([]any, 0, len(keys))
		for _, k := range keys {
			ext = append(ext, slog.Any(k, e.extensions[k]))
		}
		attrs = append(attrs, slog.Group("extensions", ext...))
	}
	if e.inner != nil {
		attrs = append(attrs, slog.Any("inner", *e.inner))
	}
	return slog.GroupValue(attrs...)
}

// SlogAttr builds an "error" attribute for any error. A rop.Error anywhere in
// the chain is logged structurally; other errors are logged as their message.
func SlogAttr(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	var e Error
	if errors.As(err, &e) {
		return slog.Any("error", e)
	}
	return slog.String("error", err.Error())
}

var _ slog.LogValuer = Error{}
