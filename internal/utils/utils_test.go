package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/project-board/internal/constants"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return c
}

func TestQueryID(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		wantID uint64
		wantOK bool
	}{
		{"present", "post_id=5", 5, true},
		{"missing", "project_id=2", 0, false},
		{"empty", "post_id=", 0, false},
		{"zero", "post_id=0", 0, false},
		{"not a number", "post_id=abc", 0, false},
		{"negative", "post_id=-3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := QueryID(contextWithQuery(tt.query), "post_id")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestOptionalQueryID(t *testing.T) {
	assert.Nil(t, OptionalQueryID(contextWithQuery(""), "parent_post_id"))

	id := OptionalQueryID(contextWithQuery("parent_post_id=9"), "parent_post_id")
	if assert.NotNil(t, id) {
		assert.Equal(t, uint64(9), *id)
	}
}

func TestGetPaginationParams(t *testing.T) {
	params := GetPaginationParams(contextWithQuery("page=3&limit=10"))
	assert.Equal(t, PaginationParams{Page: 3, Limit: 10, Offset: 20}, params)

	params = GetPaginationParams(contextWithQuery("page=-1&limit=1000"))
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, constants.DefaultPageSize, params.Limit)
	assert.Equal(t, 0, params.Offset)
}

func TestNewPageInfo(t *testing.T) {
	info := NewPageInfo(PaginationParams{Page: 2, Limit: 10, Offset: 10}, 25)
	assert.Equal(t, 3, info.TotalPages)
	assert.True(t, info.HasPrev())
	assert.True(t, info.HasNext())

	info = NewPageInfo(PaginationParams{Page: 1, Limit: 10}, 0)
	assert.Equal(t, 0, info.TotalPages)
	assert.False(t, info.HasPrev())
	assert.False(t, info.HasNext())
}
