package seeding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyport/coursematcher/core"
)

const sampleCatalog = `{
  "courses": [
    {
      "course_title": "Introduction to Robotics",
      "sms_code": "RB101",
      "year": 1,
      "credits": 15,
      "prerequisites": [],
      "directed_learning_hours": 60,
      "workplace_learning_hours": 0,
      "self_directed_learning_hours": 90,
      "total_learning_hours": 150,
      "program": "Robotics",
      "description": "Fundamentals of robot kinematics and control."
    },
    {
      "course_title": "Advanced Robotics",
      "sms_code": "RB301",
      "year": 3,
      "credits": 15,
      "prerequisites": ["RB101"],
      "directed_learning_hours": 40,
      "workplace_learning_hours": 20,
      "self_directed_learning_hours": 90,
      "total_learning_hours": 0,
      "program": "Robotics",
      "description": "Autonomous navigation and manipulation."
    }
  ]
}`

func TestParseCatalog(t *testing.T) {
	records, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "Introduction to Robotics", first.Title)
	assert.Equal(t, "RB101", first.Code)
	assert.Equal(t, 1, first.Year)
	assert.Equal(t, 15, first.Credits)
	assert.Empty(t, first.Prerequisites)
	assert.Equal(t, "Robotics", first.Program)

	// A stated total is authoritative even when it matches the sum
	assert.Equal(t, 150, first.TotalHours)

	// A zero total is replaced with the component sum
	assert.Equal(t, 150, records[1].TotalHours)
	assert.Equal(t, []string{"RB101"}, records[1].Prerequisites)
}

func TestParseCatalog_TotalHoursAuthoritative(t *testing.T) {
	// A nonzero total that disagrees with the sum is kept as-is
	records, err := ParseCatalog([]byte(`{"courses": [{
		"course_title": "Weld Basics",
		"sms_code": "W1",
		"year": 1,
		"credits": 10,
		"prerequisites": [],
		"directed_learning_hours": 30,
		"workplace_learning_hours": 0,
		"self_directed_learning_hours": 30,
		"total_learning_hours": 100,
		"program": "Welding",
		"description": "Arc welding."
	}]}`))
	require.NoError(t, err)
	assert.Equal(t, 100, records[0].TotalHours)
}

func TestParseCatalog_LevelAlias(t *testing.T) {
	records, err := ParseCatalog([]byte(`{"courses": [{
		"course_title": "Weld Basics",
		"sms_code": "W1",
		"level": 2,
		"credits": 10,
		"prerequisites": [],
		"directed_learning_hours": 30,
		"workplace_learning_hours": 0,
		"self_directed_learning_hours": 30,
		"total_learning_hours": 60,
		"program": "Welding",
		"description": "Arc welding."
	}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, records[0].Year)
}

func TestParseCatalog_InvalidCourse(t *testing.T) {
	_, err := ParseCatalog([]byte(`{"courses": [{
		"course_title": "",
		"sms_code": "X1",
		"year": 1,
		"credits": 10,
		"prerequisites": [],
		"directed_learning_hours": 10,
		"workplace_learning_hours": 0,
		"self_directed_learning_hours": 10,
		"total_learning_hours": 20,
		"program": "X",
		"description": "Something."
	}]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidCourse)
}

func TestParseCatalog_EmptySource(t *testing.T) {
	_, err := ParseCatalog([]byte(`{"courses": []}`))
	assert.ErrorIs(t, err, ErrNoCourses)

	_, err = ParseCatalog([]byte(`{}`))
	assert.ErrorIs(t, err, ErrNoCourses)
}

func TestParseCatalog_MalformedJSON(t *testing.T) {
	_, err := ParseCatalog([]byte(`{"courses": [`))
	assert.Error(t, err)
}
