// Package server exposes the course matcher over HTTP.
//
// Endpoints:
//
//	GET /healthz          service and catalog status
//	GET /courses          full catalog, ordered by year then title
//	GET /search?q=&k=     match free text against the catalog
//
// Responses keep the field names of the source data export
// (course_title, sms_code, total_learning_hours and so on).
package server
