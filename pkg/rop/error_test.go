package rop_test

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/rop"
)

func TestCategoryDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      rop.Error
		category rop.Category
		status   int
		title    string
		code     string
	}{
		{"validation", rop.Validation("bad"), rop.CategoryValidation, 422, "Unprocessable Entity", "VALIDATION_ERROR"},
		{"not found", rop.NotFound("missing"), rop.CategoryNotFound, 404, "Not Found", "NOT_FOUND"},
		{"unauthorized", rop.Unauthorized("who"), rop.CategoryUnauthorized, 401, "Unauthorized", "UNAUTHORIZED"},
		{"forbidden", rop.Forbidden("no"), rop.CategoryForbidden, 403, "Forbidden", "FORBIDDEN"},
		{"conflict", rop.Conflict("dup"), rop.CategoryConflict, 409, "Conflict", "CONFLICT"},
		{"too many requests", rop.TooManyRequests("slow down"), rop.CategoryTooManyRequests, 429, "Too Many Requests", "TOO_MANY_REQUESTS"},
		{"unexpected", rop.Unexpected("boom"), rop.CategoryUnexpected, 500, "Internal Server Error", "UNEXPECTED_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.category, tt.err.Category())
			assert.Equal(t, tt.status, tt.err.Status())
			assert.Equal(t, tt.status, tt.category.DefaultStatus())
			assert.Equal(t, tt.title, tt.category.Title())
			assert.Equal(t, tt.title, rop.TitleFor(tt.status))
			assert.Equal(t, tt.code, tt.err.Code())
		})
	}
}

func TestCustom(t *testing.T) {
	t.Parallel()

	e := rop.Custom(418, "teapot", "I'm a teapot")
	assert.Equal(t, rop.CategoryCustom, e.Category())
	assert.Equal(t, 418, e.Status())
	assert.Equal(t, "TEAPOT", e.Code())
	assert.Equal(t, "I'm a teapot", rop.TitleFor(418))
	assert.Equal(t, "Error", rop.TitleFor(599))
}

func TestCodeOverrideAndDefaults(t *testing.T) {
	t.Parallel()

	e := rop.NotFound("User 7 not found", "USER_NOT_FOUND")
	assert.Equal(t, "USER_NOT_FOUND", e.Code())
	assert.Equal(t, "User 7 not found", e.Message())

	empty := rop.Conflict("")
	assert.NotEmpty(t, empty.Message())
	assert.Equal(t, "CONFLICT", empty.Code())
}

func TestNormalizeCode(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"USER_NOT_FOUND":  "USER_NOT_FOUND",
		"user.not-found":  "USER_NOT_FOUND",
		"userNotFound":    "USER_NOT_FOUND",
		"HTTPError":       "HTTP_ERROR",
		"  order  42 ":    "ORDER_42",
		"already__exists": "ALREADY_EXISTS",
	}
	for in, want := range tests {
		assert.Equal(t, want, rop.NormalizeCode(in), in)
	}
}

func TestWithIsPure(t *testing.T) {
	t.Parallel()

	e := rop.Validation("original", "FIELD_INVALID").With("field", "email")

	changed := e.WithMessage("x")
	assert.Equal(t, e.Code(), changed.Code())
	assert.Equal(t, "x", changed.Message())
	assert.Equal(t, "original", e.Message())

	recoded := e.WithCode("other")
	assert.Equal(t, "OTHER", recoded.Code())
	assert.Equal(t, "FIELD_INVALID", e.Code())

	restatus := e.WithStatus(400)
	assert.Equal(t, 400, restatus.Status())
	assert.Equal(t, 422, e.Status())

	extended := e.WithExtensions(rop.Ext("field", "name", "hint", "too short"))
	assert.Equal(t, rop.Extensions{"field": "name", "hint": "too short"}, extended.Extensions())
	assert.Equal(t, rop.Extensions{"field": "email"}, e.Extensions())

	inner := rop.NotFound("row missing")
	chained := e.WithInner(inner)
	_, ok := e.Inner()
	assert.False(t, ok)
	got, ok := chained.Inner()
	require.True(t, ok)
	assert.True(t, got.Equal(inner))
}

func TestExtensionsAreCopied(t *testing.T) {
	t.Parallel()

	e := rop.Validation("bad").With("field", "email")
	ext := e.Extensions()
	ext["field"] = "mutated"
	ext["extra"] = 1

	v, ok := e.Extension("field")
	require.True(t, ok)
	assert.Equal(t, "email", v)
	_, ok = e.Extension("extra")
	assert.False(t, ok)

	assert.NotNil(t, rop.NotFound("x").Extensions())
}

func TestExt(t *testing.T) {
	t.Parallel()

	ext := rop.Ext("a", 1, slog.String("b", "two"), 3, "lonely")
	assert.Equal(t, 1, ext["a"])
	assert.Equal(t, "two", ext["b"])
	assert.Equal(t, "lonely", ext["!BADKEY"])
}

func TestEqual(t *testing.T) {
	t.Parallel()

	build := func() rop.Error {
		return rop.Conflict("dup", "EMAIL_TAKEN").
			With("email", "a@b.c").
			WithInner(rop.Unexpected("constraint users_email_key"))
	}

	assert.True(t, build().Equal(build()))
	assert.False(t, build().Equal(build().WithMessage("other")))
	assert.False(t, build().Equal(build().With("email", "x@y.z")))
	assert.False(t, build().Equal(build().WithInner(rop.Unexpected("other"))))
	assert.False(t, build().Equal(rop.Conflict("dup", "EMAIL_TAKEN")))
}

func TestInnerChain(t *testing.T) {
	t.Parallel()

	root := rop.Unexpected("disk full", "IO_ERROR")
	mid := rop.Conflict("write failed", "WRITE_FAILED").WithInner(root)
	top := rop.Validation("cannot save", "SAVE_FAILED").WithInner(mid)

	chain := top.InnerChain()
	require.Len(t, chain, 2)
	assert.Equal(t, "WRITE_FAILED", chain[0].Code())
	assert.Equal(t, "IO_ERROR", chain[1].Code())
	assert.Equal(t, "SAVE_FAILED: cannot save: WRITE_FAILED: write failed: IO_ERROR: disk full", top.Error())

	assert.True(t, errors.Is(top, rop.Unexpected("anything", "IO_ERROR")))
	assert.False(t, errors.Is(top, rop.NotFound("anything", "IO_ERROR")))

	var target rop.Error
	wrapped := fmt.Errorf("handler: %w", top)
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "SAVE_FAILED", target.Code())
}

func TestFromNative(t *testing.T) {
	t.Parallel()

	native := &fs.PathError{Op: "open", Path: "/etc/app.yaml", Err: fs.ErrNotExist}
	e := rop.FromNative(native)

	assert.Equal(t, rop.CategoryUnexpected, e.Category())
	assert.Equal(t, 500, e.Status())
	assert.Equal(t, native.Error(), e.Message())
	typ, _ := e.Extension("exceptionType")
	assert.Equal(t, "*fs.PathError", typ)
	msg, _ := e.Extension("exceptionMessage")
	assert.Equal(t, native.Error(), msg)

	joined := rop.FromNative(errors.Join(errors.New("a"), errors.New("b")))
	msgs, ok := joined.Extension("exceptionMessages")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, msgs)

	assert.Equal(t, "UNEXPECTED_ERROR", rop.FromNative(nil).Code())
}

func TestCancelled(t *testing.T) {
	t.Parallel()

	e := rop.Cancelled(context.Canceled)
	assert.Equal(t, "OPERATION_CANCELLED", e.Code())
	assert.Equal(t, rop.CategoryUnexpected, e.Category())
}

func TestValidationFailures(t *testing.T) {
	t.Parallel()

	fields := map[string][]string{
		"email": {"is required"},
		"age":   {"must be positive", "must be a number"},
	}
	e := rop.ValidationFailures(fields)
	fields["email"][0] = "mutated"

	assert.Equal(t, rop.CategoryValidation, e.Category())
	assert.Equal(t, 422, e.Status())
	got, ok := e.Extension("errors")
	require.True(t, ok)
	assert.Equal(t, []string{"is required"}, got.(map[string][]string)["email"])
	count, _ := e.Extension("count")
	assert.Equal(t, 3, count)
}

func TestLogValue(t *testing.T) {
	t.Parallel()

	e := rop.NotFound("User 7 not found", "USER_NOT_FOUND").
		With("userId", 7).
		WithInner(rop.Unexpected("no rows"))

	v := e.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	got := map[string]slog.Value{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value
	}
	assert.Equal(t, "USER_NOT_FOUND", got["code"].String())
	assert.Equal(t, int64(404), got["status"].Int64())
	assert.Equal(t, "NotFound", got["category"].String())
	assert.Contains(t, got, "extensions")
	assert.Contains(t, got, "inner")

	attr := rop.SlogAttr(fmt.Errorf("wrapped: %w", e))
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, "USER_NOT_FOUND", attr.Value.Resolve().Group()[0].Value.String())

	plain := rop.SlogAttr(errors.New("plain"))
	assert.Equal(t, "plain", plain.Value.String())
	assert.True(t, rop.SlogAttr(nil).Equal(slog.Attr{}))
}

func TestWithOnZeroError(t *testing.T) {
	t.Parallel()

	var zero rop.Error

	msg := zero.WithMessage("boot failed")
	assert.Equal(t, "boot failed", msg.Message())
	assert.Equal(t, "UNINITIALIZED_RESULT", msg.Code())

	assert.Equal(t, 400, zero.WithStatus(400).Status())
	assert.Equal(t, "BOOT_FAILED", zero.WithCode("boot.failed").Code())

	tagged := zero.With("stage", "init")
	v, ok := tagged.Extension("stage")
	require.True(t, ok)
	assert.Equal(t, "init", v)
	assert.Equal(t, "UNINITIALIZED_RESULT", tagged.Code())

	chained := zero.WithInner(rop.NotFound("x"))
	_, ok = chained.Inner()
	assert.True(t, ok)
}

func TestCategoryOutOfRange(t *testing.T) {
	t.Parallel()

	c := rop.Category(42)
	assert.Equal(t, "Category(42)", c.String())
	assert.Equal(t, 500, c.DefaultStatus())
	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Category(42)", string(text))

	assert.Equal(t, "Custom", rop.CategoryCustom.String())
}

func TestFromNativeKeepsCause(t *testing.T) {
	t.Parallel()

	assert.True(t, errors.Is(rop.Cancelled(context.Canceled), context.Canceled))
	assert.True(t, errors.Is(rop.Cancelled(context.DeadlineExceeded), context.DeadlineExceeded))

	native := &fs.PathError{Op: "open", Path: "/etc/app.yaml", Err: fs.ErrNotExist}
	e := rop.FromNative(fmt.Errorf("load config: %w", native))
	assert.True(t, errors.Is(e, fs.ErrNotExist))

	var pathErr *fs.PathError
	require.True(t, errors.As(e, &pathErr))
	assert.Equal(t, "/etc/app.yaml", pathErr.Path)

	wrapped := rop.Unexpected("startup failed", "STARTUP_FAILED").WithInner(e)
	assert.True(t, errors.Is(wrapped, fs.ErrNotExist))

	// same structure, different native values
	assert.True(t, rop.FromNative(errors.New("boom")).Equal(rop.FromNative(errors.New("boom"))))
	assert.False(t, errors.Is(rop.NotFound("x"), context.Canceled))
}
