package dto

import (
	"fmt"

	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/paths"
	"github.com/yukikurage/project-board/internal/services"
)

const (
	NoticePrefix = "[Notice] "
	NotEdited    = "Not edited"
)

// PostDTO represents a post on rendered pages
type PostDTO struct {
	ID          uint64 `json:"id"`
	ProjectID   uint64 `json:"project_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	AuthorName  string `json:"author_name"`
	CreatedDate string `json:"created_date"`
	UpdatedDate string `json:"updated_date"`
	IsNoticed   bool   `json:"is_noticed"`
}

// FeedItemDTO is one line of the home page board
type FeedItemDTO struct {
	Title       string `json:"title"`
	ProjectName string `json:"project_name"`
	DisplayDate string `json:"display_date"`
	Link        string `json:"link"`
}

// DeleteConfirmDTO is the deletion confirmation page
type DeleteConfirmDTO struct {
	Post       PostDTO `json:"post"`
	Action     string  `json:"action"`
	CancelLink string  `json:"cancel_link"`
}

// DecorateTitle prefixes notices with "[Notice] " and replies with
// "[Re: <parent title>] ". The reply prefix wraps the notice prefix. A reply
// whose parent title is unknown gets no reply prefix.
func DecorateTitle(post models.Post, parentTitles map[uint64]string) string {
	title := post.Title
	if post.IsNoticed {
		title = NoticePrefix + title
	}
	if post.ParentPostID != nil {
		if parent, ok := parentTitles[*post.ParentPostID]; ok {
			title = fmt.Sprintf("[Re: %s] %s", parent, title)
		}
	}
	return title
}

// ToPostDTO converts a Post model to PostDTO
func ToPostDTO(post models.Post) PostDTO {
	dto := PostDTO{
		ID:          post.ID,
		ProjectID:   post.ProjectID,
		Title:       post.Title,
		Content:     post.Content,
		AuthorName:  post.Author.UserName,
		CreatedDate: post.CreatedDate.Format(DateTimeLayout),
		UpdatedDate: NotEdited,
		IsNoticed:   post.IsNoticed,
	}
	if post.UpdatedDate != nil {
		dto.UpdatedDate = post.UpdatedDate.Format(DateTimeLayout)
	}
	return dto
}

// ToPostDTOs converts a slice of posts
func ToPostDTOs(posts []models.Post) []PostDTO {
	dtos := make([]PostDTO, len(posts))
	for i, p := range posts {
		dtos[i] = ToPostDTO(p)
	}
	return dtos
}

// ToFeedItems converts the home feed. Posts of projects the user manages
// link to the admin post view.
func ToFeedItems(feed *services.Feed) []FeedItemDTO {
	items := make([]FeedItemDTO, len(feed.Posts))
	for i, post := range feed.Posts {
		link := paths.Post(post.ID, post.ProjectID)
		if feed.Managed[post.ProjectID] {
			link = paths.AdminPost(post.ID, post.ProjectID)
		}

		items[i] = FeedItemDTO{
			Title:       DecorateTitle(post, feed.ParentTitles),
			ProjectName: post.Project.Name,
			DisplayDate: post.LastActivity().Format(DateTimeLayout),
			Link:        link,
		}
	}
	return items
}

// ToDeleteConfirmDTO converts the post shown on the confirmation page
func ToDeleteConfirmDTO(post models.Post) DeleteConfirmDTO {
	return DeleteConfirmDTO{
		Post:       ToPostDTO(post),
		Action:     paths.DeletePost(post.ID, post.ProjectID),
		CancelLink: paths.Post(post.ID, post.ProjectID),
	}
}
