// internal/app/system/validate/payload.go
package validate

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// RecordPayload is the loosely typed intake shape. Client form layers send
// ids and years inconsistently as strings or numbers, so the fields hold
// raw JSON and are coerced during normalization rather than trusted to
// decode into final types.
type RecordPayload struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	Year          json.RawMessage `json:"year"`
	DepartmentID  string          `json:"departmentId"`
	ResearcherIDs json.RawMessage `json:"researcherIds"`
	SdgIDs        json.RawMessage `json:"sdgIds"`
}

// coerceInt accepts a JSON number or a numeric string. The bool reports
// whether a usable integer was present.
func coerceInt(raw json.RawMessage) (int, bool) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return 0, false
	}
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// coerceIntSet decodes a JSON array of numbers or numeric strings into a
// sorted, deduplicated set. ok is false when the value is not an array or
// an element is not numeric.
func coerceIntSet(raw json.RawMessage) (out []int, ok bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		n, itemOK := coerceInt(item)
		if !itemOK {
			return nil, false
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)
	return out, true
}

// coerceStringSet decodes a JSON array of strings (or numbers, which are
// stringified) into a sorted, deduplicated set. ok is false when the value
// is not an array or an element trims to empty; dropping blank elements
// silently would accept a submission with fewer ids than the client sent.
func coerceStringSet(raw json.RawMessage) (out []string, ok bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, true
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err != nil {
			// Numeric id from a loosely typed client; keep its digits.
			s = strings.TrimSpace(string(item))
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, false
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out, true
}
