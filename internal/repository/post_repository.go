package repository

import (
	"github.com/yukikurage/project-board/internal/database"
	"github.com/yukikurage/project-board/internal/models"
	"github.com/yukikurage/project-board/internal/utils"
	"gorm.io/gorm"
)

// GormPostRepository is a GORM implementation of PostRepository
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &GormPostRepository{db: db}
}

// Create creates a new post
func (r *GormPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

// FindByID finds a post by ID alone, with its author
func (r *GormPostRepository) FindByID(id uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindInProject finds a post by the (id, projectID) pair, with its author
func (r *GormPostRepository) FindInProject(id, projectID uint64) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").
		Where("id = ? AND project_id = ?", id, projectID).
		First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// FindAuthorLoginID returns the stored author id of a post
func (r *GormPostRepository) FindAuthorLoginID(id, projectID uint64) (string, error) {
	var post models.Post
	if err := r.db.Select("login_id").
		Where("id = ? AND project_id = ?", id, projectID).
		First(&post).Error; err != nil {
		return "", err
	}
	return post.LoginID, nil
}

// ListByProject lists a project's posts newest activity first
func (r *GormPostRepository) ListByProject(projectID uint64, params utils.PaginationParams) ([]models.Post, int64, error) {
	query := r.db.Model(&models.Post{}).
		Where("project_id = ?", projectID).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	if err := query.
		Scopes(database.ByActivity, database.Paginate(params)).
		Preload("Author").
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// ListForMember lists posts of every project the user belongs to
func (r *GormPostRepository) ListForMember(loginID string) ([]models.Post, error) {
	memberOf := r.db.Model(&models.ProjectMember{}).
		Select("project_id").
		Where("login_id = ?", loginID)

	var posts []models.Post
	if err := r.db.Where("project_id IN (?)", memberOf).
		Scopes(database.ByActivity).
		Preload("Project").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindTitles returns the titles of the given posts keyed by ID
func (r *GormPostRepository) FindTitles(ids []uint64) (map[uint64]string, error) {
	titles := make(map[uint64]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	var posts []models.Post
	if err := r.db.Select("id", "title").Where("id IN ?", ids).Find(&posts).Error; err != nil {
		return nil, err
	}
	for _, p := range posts {
		titles[p.ID] = p.Title
	}
	return titles, nil
}

// Delete hard deletes the post matching (id, projectID)
func (r *GormPostRepository) Delete(id, projectID uint64) (int64, error) {
	result := r.db.Where("id = ? AND project_id = ?", id, projectID).Delete(&models.Post{})
	return result.RowsAffected, result.Error
}
