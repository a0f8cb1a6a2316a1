package repositories

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kosht/internal/models/db_models"
	"kosht/pkg/utils"
)

type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *db_models.Project) error
	Update(ctx context.Context, project *db_models.Project) error
	GetByID(ctx context.Context, id string) (*db_models.Project, error)
	GetBySlug(ctx context.Context, slug string) (*db_models.Project, error)
	List(ctx context.Context) ([]db_models.Project, error)
}

func NewProjectRepository(db *gorm.DB) ProjectRepositoryInterface {
	return &ProjectRepository{db: db}
}

type ProjectRepository struct {
	db *gorm.DB
}

func (p *ProjectRepository) Create(ctx context.Context, project *db_models.Project) error {
	if err := p.db.WithContext(ctx).Create(project).Error; err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *ProjectRepository) Update(ctx context.Context, project *db_models.Project) error {
	result := p.db.WithContext(ctx).
		Model(&db_models.Project{}).
		Where("id = ?", project.ID).
		Updates(project)
	if result.Error != nil {
		return utils.ErrDatabaseError
	}
	if result.RowsAffected == 0 {
		return utils.ErrProjectNotFound
	}
	return nil
}

// GetByID returns ErrProjectNotFound for unknown and malformed ids alike;
// callers pass ids straight from query strings and callback order refs.
func (p *ProjectRepository) GetByID(ctx context.Context, id string) (*db_models.Project, error) {
	projectID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrProjectNotFound
	}

	var project db_models.Project
	err = p.db.WithContext(ctx).Where("id = ?", projectID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrProjectNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &project, nil
}

func (p *ProjectRepository) GetBySlug(ctx context.Context, slug string) (*db_models.Project, error) {
	var project db_models.Project
	err := p.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrProjectNotFound
		}
		return nil, utils.ErrDatabaseError
	}
	return &project, nil
}

func (p *ProjectRepository) List(ctx context.Context) ([]db_models.Project, error) {
	var projects []db_models.Project
	if err := p.db.WithContext(ctx).Order("created_at").Find(&projects).Error; err != nil {
		return nil, utils.ErrDatabaseError
	}
	return projects, nil
}
