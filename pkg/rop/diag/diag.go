package diag

import (
	"encoding/json"

	"github.com/ib-77/outcome/pkg/rop"
)

// Record is the diagnostic rendering of an error.
type Record struct {
	Type        string
	Title       string
	Status      int
	Detail      string
	ErrorCode   string
	Category    string
	Extensions  map[string]any
	InnerErrors []InnerError
}

// InnerError is one entry of Record.InnerErrors.
type InnerError struct {
	Code       string         `json:"code"`
	Message    string         `json:"message"`
	Status     int            `json:"status"`
	Category   string         `json:"category,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// ToDiagnostic maps e to its record according to cfg.
func ToDiagnostic(e rop.Error, cfg Config) Record {
	status := e.Status()
	if cfg.StatusOverride != nil {
		status = cfg.StatusOverride(e)
	}

	rec := Record{
		Type:   cfg.TypeBaseURI + e.Code(),
		Title:  rop.TitleFor(status),
		Status: status,
		Detail: e.Message(),
	}
	if cfg.IncludeCode {
		rec.ErrorCode = e.Code()
	}
	if cfg.IncludeCategory {
		rec.Category = e.Category().String()
	}
	if cfg.IncludeExtensions {
		if ext := e.Extensions(); len(ext) > 0 {
			rec.Extensions = map[string]any(ext)
		}
	}
	if cfg.IncludeInnerChain {
		for _, in := range e.InnerChain() {
			entry := InnerError{
				Code:    in.Code(),
				Message: in.Message(),
				Status:  in.Status(),
			}
			if cfg.IncludeCategory {
				entry.Category = in.Category().String()
			}
			if cfg.IncludeExtensions {
				if ext := in.Extensions(); len(ext) > 0 {
					entry.Extensions = map[string]any(ext)
				}
			}
			rec.InnerErrors = append(rec.InnerErrors, entry)
		}
	}
	return rec
}

// Of renders the failure of an outcome. It reports false for a success.
func Of[T any](r rop.WithError[T], cfg Config) (Record, bool) {
	if !r.IsFailure() {
		return Record{}, false
	}
	_, err := r.Get()
	return ToDiagnostic(rop.ErrorOf(err), cfg), true
}

var reserved = map[string]struct{}{
	"type": {}, "title": {}, "status": {}, "detail": {},
	"errorCode": {}, "category": {}, "innerErrors": {},
}

// MarshalJSON writes the record with its extensions flattened next to the
// standard members. An extension never overrides a standard member.
func (r Record) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 7+len(r.Extensions))
	for k, v := range r.Extensions {
		if _, ok := reserved[k]; !ok {
			m[k] = v
		}
	}
	m["type"] = r.Type
	m["title"] = r.Title
	m["status"] = r.Status
	m["detail"] = r.Detail
	if r.ErrorCode != "" {
		m["errorCode"] = r.ErrorCode
	}
	if r.Category != "" {
		m["category"] = r.Category
	}
	if len(r.InnerErrors) > 0 {
		m["innerErrors"] = r.InnerErrors
	}
	return json.Marshal(m)
}
