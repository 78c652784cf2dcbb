package seeding

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/studyport/coursematcher/core"
)

// rawCourse mirrors one course object in the catalog source file.
// Some exports carry the year as "level"; both spellings are accepted.
type rawCourse struct {
	Title             string   `json:"course_title"`
	Code              string   `json:"sms_code"`
	Year              int      `json:"year"`
	Level             int      `json:"level"`
	Credits           int      `json:"credits"`
	Prerequisites     []string `json:"prerequisites"`
	DirectedHours     int      `json:"directed_learning_hours"`
	WorkplaceHours    int      `json:"workplace_learning_hours"`
	SelfDirectedHours int      `json:"self_directed_learning_hours"`
	TotalHours        int      `json:"total_learning_hours"`
	Program           string   `json:"program"`
	Description       string   `json:"description"`
}

// catalogEnvelope is the top-level shape of a catalog source file.
type catalogEnvelope struct {
	Courses []rawCourse `json:"courses"`
}

// ParseCatalog decodes a catalog source document of the form
// {"courses": [...]} into course records. Hour totals are normalized (a
// missing or zero total becomes the sum of the components) and every record
// is validated; a single invalid course fails the whole parse, naming the
// course.
func ParseCatalog(data []byte) ([]*core.CourseRecord, error) {
	var envelope catalogEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding catalog source: %w", err)
	}
	if len(envelope.Courses) == 0 {
		return nil, ErrNoCourses
	}

	records := make([]*core.CourseRecord, 0, len(envelope.Courses))
	for i, raw := range envelope.Courses {
		year := raw.Year
		if year == 0 {
			year = raw.Level
		}

		record := &core.CourseRecord{
			Title:             raw.Title,
			Code:              raw.Code,
			Year:              year,
			Credits:           raw.Credits,
			Prerequisites:     raw.Prerequisites,
			DirectedHours:     raw.DirectedHours,
			WorkplaceHours:    raw.WorkplaceHours,
			SelfDirectedHours: raw.SelfDirectedHours,
			TotalHours:        raw.TotalHours,
			Program:           raw.Program,
			Description:       raw.Description,
		}
		core.NormalizeTotalHours(record)

		if err := core.ValidateCourseRecord(record); err != nil {
			return nil, fmt.Errorf("course %d (%q): %w", i, raw.Title, err)
		}
		records = append(records, record)
	}

	return records, nil
}

// LoadCatalogFile reads and parses a catalog source file.
func LoadCatalogFile(path string) ([]*core.CourseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog source %s: %w", path, err)
	}
	return ParseCatalog(data)
}
