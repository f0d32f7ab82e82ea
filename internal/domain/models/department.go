// internal/domain/models/department.go
package models

// Department is a reference entity identifying the school or institute a
// record and its researchers belong to. The set is fixed for this service;
// admin tooling that extends it lives elsewhere.
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
