// internal/domain/models/sdg.go
package models

// Sdg is one of the 17 UN Sustainable Development Goals used as the
// tagging taxonomy for records. The set is fixed and compiled in; it is
// never stored or mutated at runtime.
type Sdg struct {
	ID    int    `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}
