package resource

import (
	"encoding/json"
	"net/url"
	"sort"
	"strings"

	"github.com/jsamuelsen11/contractor-portal/internal/domain"
)

// Payload is an opaque JSON document owned by the backend.
type Payload = json.RawMessage

// ValidateID checks that id is usable as a single backend path segment.
func ValidateID(id string) error {
	switch {
	case strings.TrimSpace(id) == "":
		return domain.NewValidationError("id", domain.MsgRequired)
	case len(id) > domain.MaxIDLength:
		return domain.NewValidationError("id", "is too long")
	case !domain.ValidID(id):
		return domain.NewValidationError("id", domain.MsgInvalid)
	default:
		return nil
	}
}

// ValidatePayload checks that p is a JSON object. A JSON null decodes without
// error into a nil map and is rejected like any other non-object.
func ValidatePayload(p Payload) error {
	if len(p) == 0 {
		return domain.NewValidationError("body", domain.MsgRequired)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(p, &obj); err != nil || obj == nil {
		return domain.NewValidationError("body", "must be a JSON object")
	}
	return nil
}

// Query holds list parameters forwarded verbatim to the backend
// (e.g., status=draft, page=2, search=smith).
type Query map[string]string

// NewQuery builds a Query from URL values, keeping the first value per key
// and dropping empty ones.
func NewQuery(values url.Values) Query {
	q := make(Query, len(values))
	for k, vs := range values {
		if k == "" || len(vs) == 0 || vs[0] == "" {
			continue
		}
		q[k] = vs[0]
	}
	return q
}

// Encode renders the query in key order without a leading "?". An empty
// query encodes to "".
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	keys := make([]string, 0, len(q))
	for k := range q {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if q[k] == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q[k]))
	}
	return b.String()
}
