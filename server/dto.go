package server

import (
	"github.com/studyport/coursematcher/core"
)

// courseDTO is the wire form of a catalog course. Field names follow the
// source data export so existing clients keep working.
type courseDTO struct {
	Title             string   `json:"course_title"`
	Code              string   `json:"sms_code"`
	Year              int      `json:"year"`
	Credits           int      `json:"credits"`
	Prerequisites     []string `json:"prerequisites"`
	DirectedHours     int      `json:"directed_learning_hours"`
	WorkplaceHours    int      `json:"workplace_learning_hours"`
	SelfDirectedHours int      `json:"self_directed_learning_hours"`
	TotalHours        int      `json:"total_learning_hours"`
	Program           string   `json:"program"`
	Description       string   `json:"description"`
}

// matchDTO is a catalog course together with its similarity to a query.
type matchDTO struct {
	courseDTO
	Similarity float32 `json:"similarity"`
}

// parsedEntryDTO is one course-like unit extracted from the query text.
type parsedEntryDTO struct {
	Title       string `json:"course_title"`
	Description string `json:"description"`
}

// entryResultDTO carries the ranked matches for one parsed entry. Results are
// an ordered list, parallel to parsed_courses, so entries that share a title
// keep separate match lists.
type entryResultDTO struct {
	Entry   parsedEntryDTO `json:"entry"`
	Matches []matchDTO     `json:"matches"`
	Error   string         `json:"error,omitempty"`
}

// coursesResponse wraps the catalog listing.
type coursesResponse struct {
	Courses []courseDTO `json:"courses"`
}

// searchResponse is the wire form of a search outcome.
type searchResponse struct {
	Query         string           `json:"query"`
	GeneralTitle  string           `json:"general_title"`
	MatchesFor    string           `json:"matches_for"`
	TopMatches    string           `json:"top_matches"`
	ParsedCourses []parsedEntryDTO `json:"parsed_courses"`
	Results       []entryResultDTO `json:"results"`
	Note          string           `json:"note,omitempty"`
}

// errorResponse is the wire form of a request failure.
type errorResponse struct {
	Error string `json:"error"`
}

func toCourseDTO(record *core.CourseRecord) courseDTO {
	prerequisites := record.Prerequisites
	if prerequisites == nil {
		prerequisites = []string{}
	}
	return courseDTO{
		Title:             record.Title,
		Code:              record.Code,
		Year:              record.Year,
		Credits:           record.Credits,
		Prerequisites:     prerequisites,
		DirectedHours:     record.DirectedHours,
		WorkplaceHours:    record.WorkplaceHours,
		SelfDirectedHours: record.SelfDirectedHours,
		TotalHours:        record.TotalHours,
		Program:           record.Program,
		Description:       record.Description,
	}
}

func toSearchResponse(result *core.SearchResult) searchResponse {
	response := searchResponse{
		Query:         result.Query,
		GeneralTitle:  result.GeneralTitle,
		MatchesFor:    result.MatchesFor,
		TopMatches:    result.TopMatches,
		ParsedCourses: make([]parsedEntryDTO, 0, len(result.Entries)),
		Results:       make([]entryResultDTO, 0, len(result.Entries)),
		Note:          result.Note,
	}

	for _, entry := range result.Entries {
		parsed := parsedEntryDTO{
			Title:       entry.Entry.Title,
			Description: entry.Entry.Description,
		}
		response.ParsedCourses = append(response.ParsedCourses, parsed)

		matches := make([]matchDTO, 0, len(entry.Matches))
		for _, match := range entry.Matches {
			matches = append(matches, matchDTO{
				courseDTO:  toCourseDTO(match.Record),
				Similarity: match.Score,
			})
		}

		entryResult := entryResultDTO{Entry: parsed, Matches: matches}
		if entry.Err != nil {
			entryResult.Error = entry.Err.Error()
		}
		response.Results = append(response.Results, entryResult)
	}

	return response
}
