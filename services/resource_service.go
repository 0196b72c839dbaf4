package services

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"warehouse-app/idgen"
	"warehouse-app/models"
	"warehouse-app/repositories"
	"warehouse-app/types"
)

// ResourceService manages the resource catalogue. Resources referenced by
// documents or balances cannot be deleted, only archived.
type ResourceService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewResourceService(db *gorm.DB, log *zap.Logger) *ResourceService {
	return &ResourceService{db: db, log: log}
}

func (s *ResourceService) GetByID(id types.SnowflakeID) (*models.Resource, error) {
	resource, err := repositories.NewResourceRepository(s.db).Get(id)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, fmt.Errorf("resource '%d': %w", id, ErrNotFound)
	}
	return resource, nil
}

func (s *ResourceService) GetFiltered(filter models.EntityFilter) ([]models.Resource, error) {
	return repositories.NewResourceRepository(s.db).GetAllFiltered(filter)
}

func (s *ResourceService) Create(resource *models.Resource) error {
	resource.ID = idgen.GenerateID()
	if err := repositories.NewResourceRepository(s.db).Add(resource); err != nil {
		return translateDuplicate(err, ErrDuplicateName)
	}

	s.log.Info("created resource",
		zap.Int64("id", int64(resource.ID)), zap.String("name", resource.Name))
	return nil
}

func (s *ResourceService) Update(id types.SnowflakeID, input *models.Resource) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewResourceRepository(tx)

		resource, err := repo.Get(id)
		if err != nil {
			return err
		}
		if resource == nil {
			return fmt.Errorf("resource '%d': %w", id, ErrNotFound)
		}

		resource.Name = input.Name
		if err := repo.Update(resource); err != nil {
			return translateDuplicate(err, ErrDuplicateName)
		}

		s.log.Info("updated resource", zap.Int64("id", int64(id)))
		return nil
	})
}

// Delete soft-deletes a resource that nothing references.
func (s *ResourceService) Delete(id types.SnowflakeID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewResourceRepository(tx)

		resource, err := repo.Get(id)
		if err != nil {
			return err
		}
		if resource == nil {
			return fmt.Errorf("resource '%d': %w", id, ErrNotFound)
		}

		inUse, err := repo.IsInUse(id)
		if err != nil {
			return err
		}
		if inUse {
			return fmt.Errorf("resource '%d': %w", id, ErrInUse)
		}

		if err := repo.SoftDelete(id); err != nil {
			return err
		}

		s.log.Info("deleted resource", zap.Int64("id", int64(id)))
		return nil
	})
}

// SetArchived flips the archive flag. Repeating the current state is a no-op.
func (s *ResourceService) SetArchived(id types.SnowflakeID, archived bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewResourceRepository(tx)

		resource, err := repo.Get(id)
		if err != nil {
			return err
		}
		if resource == nil {
			return fmt.Errorf("resource '%d': %w", id, ErrNotFound)
		}
		if resource.IsArchived == archived {
			return nil
		}

		resource.IsArchived = archived
		if err := repo.Update(resource); err != nil {
			return err
		}

		s.log.Info("changed resource archive state",
			zap.Int64("id", int64(id)), zap.Bool("archived", archived))
		return nil
	})
}
