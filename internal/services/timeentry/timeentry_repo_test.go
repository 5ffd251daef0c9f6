package timeentry

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBuildListQueryNoFilter(t *testing.T) {
	query, args := buildListQuery(nil)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY date DESC, start_time DESC")
	assert.Empty(t, args)

	query, args = buildListQuery(&ListTimeEntriesFilter{})
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildListQuerySingleFilter(t *testing.T) {
	entryType := TypePomodoro
	query, args := buildListQuery(&ListTimeEntriesFilter{Type: &entryType})

	assert.Contains(t, query, "WHERE type = $1")
	assert.Equal(t, []interface{}{TypePomodoro}, args)
}

func TestBuildListQueryAllFilters(t *testing.T) {
	entryType := TypeRegular
	projectID := uuid.New()
	date := "2025-06-02"

	query, args := buildListQuery(&ListTimeEntriesFilter{
		Type:      &entryType,
		ProjectID: &projectID,
		Date:      &date,
	})

	assert.Contains(t, query, "type = $1")
	assert.Contains(t, query, "project_id = $2")
	assert.Contains(t, query, "date = $3")
	assert.Contains(t, query, " AND ")
	assert.Equal(t, []interface{}{TypeRegular, projectID, date}, args)
}

func TestValidType(t *testing.T) {
	assert.True(t, ValidType(TypeRegular))
	assert.True(t, ValidType(TypePomodoro))
	assert.False(t, ValidType(""))
	assert.False(t, ValidType("sprint"))
}
