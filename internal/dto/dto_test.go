package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/services"
)

func ptr[T any](v T) *T {
	return &v
}

func TestDecorateTitle(t *testing.T) {
	parents := map[uint64]string{1: "Question"}

	tests := []struct {
		name string
		post models.Post
		want string
	}{
		{"plain", models.Post{Title: "Hello"}, "Hello"},
		{"notice", models.Post{Title: "Hello", IsNoticed: true}, "[Notice] Hello"},
		{"reply", models.Post{Title: "Answer", ParentPostID: ptr[uint64](1)}, "[Re: Question] Answer"},
		{"notice reply", models.Post{Title: "Answer", IsNoticed: true, ParentPostID: ptr[uint64](1)}, "[Re: Question] [Notice] Answer"},
		{"reply to deleted parent", models.Post{Title: "Answer", ParentPostID: ptr[uint64](9)}, "Answer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecorateTitle(tt.post, parents))
		})
	}
}

func TestToFeedItems(t *testing.T) {
	created := time.Date(2024, time.November, 1, 9, 30, 0, 0, time.UTC)
	updated := created.Add(26 * time.Hour)

	feed := &services.Feed{
		Posts: []models.Post{
			{ID: 5, ProjectID: 2, Title: "Plan", CreatedDate: created, UpdatedDate: &updated, Project: models.Project{Name: "Alpha"}},
			{ID: 6, ProjectID: 3, Title: "Answer", CreatedDate: created, ParentPostID: ptr[uint64](5), Project: models.Project{Name: "Beta"}},
		},
		ParentTitles: map[uint64]string{5: "Plan"},
		Managed:      map[uint64]bool{2: true},
	}

	items := ToFeedItems(feed)
	require.Len(t, items, 2)

	assert.Equal(t, FeedItemDTO{
		Title:       "Plan",
		ProjectName: "Alpha",
		DisplayDate: "2024-11-02 11:30:00",
		Link:        "/admin/posts/view?post_id=5&project_id=2",
	}, items[0])
	assert.Equal(t, FeedItemDTO{
		Title:       "[Re: Plan] Answer",
		ProjectName: "Beta",
		DisplayDate: "2024-11-01 09:30:00",
		Link:        "/posts/view?post_id=6&project_id=3",
	}, items[1])
}

func TestToPostDTO(t *testing.T) {
	post := models.Post{
		ID:          5,
		ProjectID:   2,
		Title:       "Plan",
		CreatedDate: time.Date(2024, time.November, 1, 9, 30, 0, 0, time.UTC),
		Author:      models.User{UserName: "Alice"},
	}

	dto := ToPostDTO(post)
	assert.Equal(t, "Alice", dto.AuthorName)
	assert.Equal(t, "2024-11-01 09:30:00", dto.CreatedDate)
	assert.Equal(t, NotEdited, dto.UpdatedDate)

	confirm := ToDeleteConfirmDTO(post)
	assert.Equal(t, "/posts/delete?post_id=5&project_id=2", confirm.Action)
	assert.Equal(t, "/posts/view?post_id=5&project_id=2", confirm.CancelLink)
}

func TestToTaskDetailDTO(t *testing.T) {
	a := models.SubTask{ID: 1, Name: "Design", Start: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC)}
	b := models.SubTask{ID: 2, Name: "Build", PreSubTaskID: ptr[uint64](1), PreTaskName: ptr("Design")}
	detail := &services.TaskDetail{
		Task:     &models.Task{ID: 7, Name: "Release"},
		SubTasks: []models.SubTask{a, b},
		Chains:   []services.Chain{{a, b}},
	}

	dto := ToTaskDetailDTO(detail)
	assert.Equal(t, "Release", dto.Task.Name)
	assert.Equal(t, "", dto.Task.Start)
	require.Len(t, dto.Chains, 1)
	require.Len(t, dto.Chains[0], 2)
	assert.Equal(t, "2024-11-01", dto.Chains[0][0].Start)
	assert.Equal(t, "Design", dto.Chains[0][1].PreTaskName)
}
