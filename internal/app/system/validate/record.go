// internal/app/system/validate/record.go

// Package validate is the gatekeeper for intake: it normalizes loosely
// typed submissions and enforces the structural and referential rules
// before anything reaches a store. Structural violations are collected —
// not short-circuited — so the response names every bad field; referential
// checks run only against structurally clean payloads and list each unknown
// id individually.
package validate

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	catalogstore "github.com/dalemusser/impacthub/internal/app/store/catalogs"
	"github.com/dalemusser/impacthub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/impacthub/internal/domain/models"
)

// Intake bounds for record submissions.
const (
	TitleMinLen       = 3
	TitleMaxLen       = 220
	DescriptionMinLen = 20
	DescriptionMaxLen = 4000
	YearMin           = 1970
)

// Record normalizes and validates a record submission. On success it
// returns a typed record ready for store insertion (id and timestamp are
// assigned by the store); on failure it returns a *Error with a message
// list per violated field.
func Record(ctx context.Context, catalogs catalogstore.Store, payload RecordPayload) (models.Record, error) {
	verr := &Error{}
	now := time.Now().UTC()

	title := strings.TrimSpace(payload.Title)
	description := htmlsanitize.Sanitize(strings.TrimSpace(payload.Description))
	recType := strings.TrimSpace(payload.Type)
	departmentID := strings.TrimSpace(payload.DepartmentID)

	switch n := utf8.RuneCountInString(title); {
	case n < TitleMinLen:
		verr.add("title", fmt.Sprintf("Title must be at least %d characters long.", TitleMinLen))
	case n > TitleMaxLen:
		verr.add("title", fmt.Sprintf("Title cannot exceed %d characters.", TitleMaxLen))
	}

	switch n := utf8.RuneCountInString(description); {
	case n < DescriptionMinLen:
		verr.add("description", fmt.Sprintf("Description should be %d characters or longer to provide context.", DescriptionMinLen))
	case n > DescriptionMaxLen:
		verr.add("description", fmt.Sprintf("Description cannot exceed %d characters.", DescriptionMaxLen))
	}

	if recType != models.TypeProject && recType != models.TypePublication {
		verr.add("type", "Type must be either project or publication.")
	}

	year, yearOK := coerceInt(payload.Year)
	maxYear := now.Year() + 1
	switch {
	case !yearOK:
		verr.add("year", fmt.Sprintf("Year must be a whole number between %d and %d.", YearMin, maxYear))
	case year < YearMin:
		verr.add("year", fmt.Sprintf("Year cannot be earlier than %d.", YearMin))
	case year > maxYear:
		verr.add("year", "Year cannot be far in the future.")
	}

	sdgIDs, sdgOK := coerceIntSet(payload.SdgIDs)
	if !sdgOK {
		verr.add("sdgIds", "SDG ids must be a list of numbers.")
	} else if len(sdgIDs) == 0 {
		verr.add("sdgIds", "Select at least one SDG goal.")
	}

	researcherIDs, resOK := coerceStringSet(payload.ResearcherIDs)
	if !resOK {
		verr.add("researcherIds", "Researcher ids must be a list.")
	} else if len(researcherIDs) == 0 {
		verr.add("researcherIds", "Select one or more researchers.")
	}

	if departmentID == "" {
		verr.add("departmentId", "Department is required.")
	}

	if !verr.empty() {
		return models.Record{}, verr
	}

	// Referential checks, against a structurally clean payload only.
	unknownSdgs, err := unknownSdgIDs(ctx, catalogs, sdgIDs)
	if err != nil {
		return models.Record{}, err
	}
	if len(unknownSdgs) > 0 {
		verr.add("sdgIds", "Unknown SDG ids: "+joinInts(unknownSdgs))
	}
	if dep, err := catalogs.DepartmentByID(ctx, departmentID); err != nil {
		return models.Record{}, err
	} else if dep == nil {
		verr.add("departmentId", "Department does not exist.")
	}
	unknownRes, err := unknownResearcherIDs(ctx, catalogs, researcherIDs)
	if err != nil {
		return models.Record{}, err
	}
	if len(unknownRes) > 0 {
		verr.add("researcherIds", "Unknown researcher ids: "+strings.Join(unknownRes, ", "))
	}

	if !verr.empty() {
		return models.Record{}, verr
	}

	return models.Record{
		Type:          recType,
		Title:         title,
		Description:   description,
		Year:          year,
		DepartmentID:  departmentID,
		ResearcherIDs: researcherIDs,
		SdgIDs:        sdgIDs,
	}, nil
}

func unknownSdgIDs(ctx context.Context, catalogs catalogstore.Store, ids []int) ([]int, error) {
	var unknown []int
	for _, id := range ids {
		sdg, err := catalogs.SdgByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if sdg == nil {
			unknown = append(unknown, id)
		}
	}
	return unknown, nil
}

func unknownResearcherIDs(ctx context.Context, catalogs catalogstore.Store, ids []string) ([]string, error) {
	researchers, err := catalogs.Researchers(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]struct{}, len(researchers))
	for _, r := range researchers {
		known[r.ID] = struct{}{}
	}
	var unknown []string
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	return unknown, nil
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
