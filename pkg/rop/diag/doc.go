// Package diag maps a rop.Error to the canonical diagnostic record that
// transport adapters render (an RFC 9457 style problem document).
//
//	cfg := diag.NewConfig(diag.WithTypeBaseURI("https://errors.example.com/"))
//	rec := diag.ToDiagnostic(rop.NotFound("User 7 not found", "USER_NOT_FOUND"), cfg)
//	// rec.Type == "https://errors.example.com/USER_NOT_FOUND", rec.Title == "Not Found"
//
// ToDiagnostic is pure: the same error and config always give the same record.
package diag
