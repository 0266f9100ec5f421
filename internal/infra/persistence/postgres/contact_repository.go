// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create persists a submitted contact request.
func (repo *contactRepository) Create(ctx context.Context, contact *entity.ContactRequest) error {
	contactM := fromContactDomain(contact)

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required contact information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create contact request")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt

	return nil
}

// FindAll retrieves all contact requests, newest first. Admin listing.
func (repo *contactRepository) FindAll(ctx context.Context) ([]*entity.ContactRequest, error) {
	var contactModels []*model.ContactRequestModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contact requests")
	}

	contacts := make([]*entity.ContactRequest, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

// --- Mapper Functions ---

// toContactDomain converts a GORM ContactRequestModel to a domain ContactRequest entity.
func toContactDomain(data *model.ContactRequestModel) *entity.ContactRequest {
	if data == nil {
		return nil
	}

	return &entity.ContactRequest{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}

// fromContactDomain converts a domain ContactRequest entity to a GORM ContactRequestModel.
func fromContactDomain(data *entity.ContactRequest) *model.ContactRequestModel {
	if data == nil {
		return nil
	}

	return &model.ContactRequestModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}
