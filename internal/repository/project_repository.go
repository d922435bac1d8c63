package repository

import (
	"github.com/yukikurage/project-board/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByMember lists the projects a user belongs to
func (r *GormProjectRepository) ListByMember(loginID string) ([]models.Project, error) {
	var projects []models.Project
	memberOf := r.db.Model(&models.ProjectMember{}).
		Select("project_id").
		Where("login_id = ?", loginID)

	if err := r.db.Where("id IN (?)", memberOf).
		Order("id ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// AddMember adds a member, updating the role when the membership exists
func (r *GormProjectRepository) AddMember(member *models.ProjectMember) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}, {Name: "login_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"project_role"}),
		}).
		Create(member).Error
}

// FindMember finds a specific project member
func (r *GormProjectRepository) FindMember(projectID uint64, loginID string) (*models.ProjectMember, error) {
	var member models.ProjectMember
	if err := r.db.Where("project_id = ? AND login_id = ?", projectID, loginID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// CountManagerRows counts manager memberships for (projectID, loginID)
func (r *GormProjectRepository) CountManagerRows(projectID uint64, loginID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectMember{}).
		Where("project_id = ? AND login_id = ? AND project_role = ?", projectID, loginID, models.ProjectRoleManager).
		Count(&count).Error
	return count, err
}

// ListManagedProjectIDs lists the projects the user manages
func (r *GormProjectRepository) ListManagedProjectIDs(loginID string) ([]uint64, error) {
	var ids []uint64
	if err := r.db.Model(&models.ProjectMember{}).
		Where("login_id = ? AND project_role = ?", loginID, models.ProjectRoleManager).
		Pluck("project_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
