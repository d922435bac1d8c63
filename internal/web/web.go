// Package web holds the page templates rendered through gin's HTML renderer.
package web

import (
	"embed"
	"html/template"
	"strings"

	"github.com/yukikurage/project-board/internal/paths"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Page template names
const (
	PageLogin      = "login.tmpl"
	PageHome       = "home.tmpl"
	PageProject    = "project.tmpl"
	PageTask       = "task.tmpl"
	PagePosts      = "posts.tmpl"
	PagePost       = "post.tmpl"
	PagePostNew    = "post_new.tmpl"
	PagePostDelete = "post_delete.tmpl"
	PageSubTaskNew = "subtask_new.tmpl"
)

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"projectURL":      paths.Project,
		"adminProjectURL": paths.AdminProject,
		"taskURL":         paths.Task,
		"adminTaskURL":    paths.AdminTask,
		"newSubTaskURL":   paths.NewSubTask,
		"postsURL":        paths.Posts,
		"postsPageURL":    paths.PostsPage,
		"adminPostsURL":   paths.AdminPosts,
		"postURL":         paths.Post,
		"adminPostURL":    paths.AdminPost,
		"newPostURL":      paths.NewPost,
		"replyURL":        paths.Reply,
		"deletePostURL":   paths.DeletePost,
		"lines":           func(s string) []string { return strings.Split(s, "\n") },
		"add":             func(a, b int) int { return a + b },
	}
}

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.tmpl")
}
