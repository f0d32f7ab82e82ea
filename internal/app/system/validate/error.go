// internal/app/system/validate/error.go
package validate

import "sort"

// Error carries every violation found in a submission, keyed by field, so
// the client can highlight each invalid input at once instead of fixing
// them one round trip at a time. It is always a client error, never a
// server fault.
type Error struct {
	Fields map[string][]string
}

func (e *Error) Error() string {
	return "validation failed"
}

func (e *Error) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *Error) empty() bool {
	return len(e.Fields) == 0
}

// FieldNames returns the violated field names in stable order, mostly for
// tests and logging.
func (e *Error) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
