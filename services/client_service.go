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

// ClientService manages shipment recipients.
type ClientService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewClientService(db *gorm.DB, log *zap.Logger) *ClientService {
	return &ClientService{db: db, log: log}
}

func (s *ClientService) GetByID(id types.SnowflakeID) (*models.Client, error) {
	client, err := repositories.NewClientRepository(s.db).Get(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("client '%d': %w", id, ErrNotFound)
	}
	return client, nil
}

func (s *ClientService) GetFiltered(filter models.EntityFilter) ([]models.Client, error) {
	return repositories.NewClientRepository(s.db).GetAllFiltered(filter)
}

func (s *ClientService) Create(client *models.Client) error {
	client.ID = idgen.GenerateID()
	if err := repositories.NewClientRepository(s.db).Add(client); err != nil {
		return translateDuplicate(err, ErrDuplicateName)
	}

	s.log.Info("created client",
		zap.Int64("id", int64(client.ID)), zap.String("name", client.Name))
	return nil
}

func (s *ClientService) Update(id types.SnowflakeID, input *models.Client) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewClientRepository(tx)

		client, err := repo.Get(id)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("client '%d': %w", id, ErrNotFound)
		}

		client.Name = input.Name
		client.Address = input.Address
		if err := repo.Update(client); err != nil {
			return translateDuplicate(err, ErrDuplicateName)
		}

		s.log.Info("updated client", zap.Int64("id", int64(id)))
		return nil
	})
}

func (s *ClientService) Delete(id types.SnowflakeID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewClientRepository(tx)

		client, err := repo.Get(id)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("client '%d': %w", id, ErrNotFound)
		}

		inUse, err := repo.IsInUse(id)
		if err != nil {
			return err
		}
		if inUse {
			return fmt.Errorf("client '%d': %w", id, ErrInUse)
		}

		if err := repo.SoftDelete(id); err != nil {
			return err
		}

		s.log.Info("deleted client", zap.Int64("id", int64(id)))
		return nil
	})
}

func (s *ClientService) SetArchived(id types.SnowflakeID, archived bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewClientRepository(tx)

		client, err := repo.Get(id)
		if err != nil {
			return err
		}
		if client == nil {
			return fmt.Errorf("client '%d': %w", id, ErrNotFound)
		}
		if client.IsArchived == archived {
			return nil
		}

		client.IsArchived = archived
		if err := repo.Update(client); err != nil {
			return err
		}

		s.log.Info("changed client archive state",
			zap.Int64("id", int64(id)), zap.Bool("archived", archived))
		return nil
	})
}
