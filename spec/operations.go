package spec

import (
	"strings"

	"github.com/erraggy/oasmodels/internal/httputil"
)

// Operations extracts a map of all operations defined on a PathItem, keyed by
// lowercase HTTP method name. Methods without an operation are omitted.
func (pi *PathItem) Operations() map[string]*Operation {
	ops := map[string]*Operation{
		httputil.MethodGet:     pi.Get,
		httputil.MethodPut:     pi.Put,
		httputil.MethodPost:    pi.Post,
		httputil.MethodDelete:  pi.Delete,
		httputil.MethodOptions: pi.Options,
		httputil.MethodHead:    pi.Head,
		httputil.MethodPatch:   pi.Patch,
		httputil.MethodTrace:   pi.Trace,
	}
	for method, op := range ops {
		if op == nil {
			delete(ops, method)
		}
	}
	return ops
}

// SetOperation assigns op to the slot for the given HTTP method. Matching is
// case-insensitive; it reports whether the method named a valid OAS 3.0 path
// item method.
func (pi *PathItem) SetOperation(method string, op *Operation) bool {
	switch strings.ToLower(method) {
	case httputil.MethodGet:
		pi.Get = op
	case httputil.MethodPut:
		pi.Put = op
	case httputil.MethodPost:
		pi.Post = op
	case httputil.MethodDelete:
		pi.Delete = op
	case httputil.MethodOptions:
		pi.Options = op
	case httputil.MethodHead:
		pi.Head = op
	case httputil.MethodPatch:
		pi.Patch = op
	case httputil.MethodTrace:
		pi.Trace = op
	default:
		return false
	}
	return true
}
