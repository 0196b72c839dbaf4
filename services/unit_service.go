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

// UnitService manages units of measure.
type UnitService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUnitService(db *gorm.DB, log *zap.Logger) *UnitService {
	return &UnitService{db: db, log: log}
}

func (s *UnitService) GetByID(id types.SnowflakeID) (*models.UnitOfMeasure, error) {
	unit, err := repositories.NewUomRepository(s.db).Get(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, fmt.Errorf("unit '%d': %w", id, ErrNotFound)
	}
	return unit, nil
}

func (s *UnitService) GetFiltered(filter models.EntityFilter) ([]models.UnitOfMeasure, error) {
	return repositories.NewUomRepository(s.db).GetAllFiltered(filter)
}

func (s *UnitService) Create(unit *models.UnitOfMeasure) error {
	unit.ID = idgen.GenerateID()
	if err := repositories.NewUomRepository(s.db).Add(unit); err != nil {
		return translateDuplicate(err, ErrDuplicateName)
	}

	s.log.Info("created unit",
		zap.Int64("id", int64(unit.ID)), zap.String("name", unit.Name))
	return nil
}

func (s *UnitService) Update(id types.SnowflakeID, input *models.UnitOfMeasure) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewUomRepository(tx)

		unit, err := repo.Get(id)
		if err != nil {
			return err
		}
		if unit == nil {
			return fmt.Errorf("unit '%d': %w", id, ErrNotFound)
		}

		unit.Name = input.Name
		if err := repo.Update(unit); err != nil {
			return translateDuplicate(err, ErrDuplicateName)
		}

		s.log.Info("updated unit", zap.Int64("id", int64(id)))
		return nil
	})
}

func (s *UnitService) Delete(id types.SnowflakeID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewUomRepository(tx)

		unit, err := repo.Get(id)
		if err != nil {
			return err
		}
		if unit == nil {
			return fmt.Errorf("unit '%d': %w", id, ErrNotFound)
		}

		inUse, err := repo.IsInUse(id)
		if err != nil {
			return err
		}
		if inUse {
			return fmt.Errorf("unit '%d': %w", id, ErrInUse)
		}

		if err := repo.SoftDelete(id); err != nil {
			return err
		}

		s.log.Info("deleted unit", zap.Int64("id", int64(id)))
		return nil
	})
}

func (s *UnitService) SetArchived(id types.SnowflakeID, archived bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewUomRepository(tx)

		unit, err := repo.Get(id)
		if err != nil {
			return err
		}
		if unit == nil {
			return fmt.Errorf("unit '%d': %w", id, ErrNotFound)
		}
		if unit.IsArchived == archived {
			return nil
		}

		unit.IsArchived = archived
		if err := repo.Update(unit); err != nil {
			return err
		}

		s.log.Info("changed unit archive state",
			zap.Int64("id", int64(id)), zap.Bool("archived", archived))
		return nil
	})
}
