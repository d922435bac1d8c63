// Package paths builds the URLs of every page so handlers, services and
// templates agree on them.
package paths

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	Home   = "/"
	Login  = "/login"
	Logout = "/logout"

	ProjectView = "/projects/view"
	TaskView    = "/tasks/view"
	PostList    = "/posts"
	PostView    = "/posts/view"
	PostNew     = "/posts/new"
	PostDelete  = "/posts/delete"

	AdminProjectView = "/admin/projects/view"
	AdminTaskView    = "/admin/tasks/view"
	AdminSubTaskNew  = "/admin/subtasks/new"
	AdminPostList    = "/admin/posts"
	AdminPostView    = "/admin/posts/view"
)

func with(path string, params ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(params); i += 2 {
		q.Set(params[i], params[i+1])
	}
	return fmt.Sprintf("%s?%s", path, q.Encode())
}

func id(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func Project(projectID uint64) string {
	return with(ProjectView, "project_id", id(projectID))
}

func AdminProject(projectID uint64) string {
	return with(AdminProjectView, "project_id", id(projectID))
}

func Task(taskID uint64) string {
	return with(TaskView, "task_id", id(taskID))
}

func AdminTask(taskID uint64) string {
	return with(AdminTaskView, "task_id", id(taskID))
}

func NewSubTask(taskID uint64) string {
	return with(AdminSubTaskNew, "task_id", id(taskID))
}

func Posts(projectID uint64) string {
	return with(PostList, "project_id", id(projectID))
}

func PostsPage(projectID uint64, page int) string {
	return with(PostList, "project_id", id(projectID), "page", strconv.Itoa(page))
}

func AdminPosts(projectID uint64) string {
	return with(AdminPostList, "project_id", id(projectID))
}

func Post(postID, projectID uint64) string {
	return with(PostView, "post_id", id(postID), "project_id", id(projectID))
}

func AdminPost(postID, projectID uint64) string {
	return with(AdminPostView, "post_id", id(postID), "project_id", id(projectID))
}

func NewPost(projectID uint64) string {
	return with(PostNew, "project_id", id(projectID))
}

func Reply(projectID, parentPostID uint64) string {
	return with(PostNew, "project_id", id(projectID), "parent_post_id", id(parentPostID))
}

func DeletePost(postID, projectID uint64) string {
	return with(PostDelete, "post_id", id(postID), "project_id", id(projectID))
}
