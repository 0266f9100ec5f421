// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// Create persists a new booking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM := fromBookingDomain(booking)

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required booking information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// FindByID retrieves a booking by its unique ID.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by ID")
	}

	return toBookingDomain(&bookingM), nil
}

// FindByUser retrieves all bookings made by a user, soonest slot first.
func (repo *bookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("slot_at ASC").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookings by user")
	}

	return toBookingDomainSlice(bookingModels), nil
}

// FindAll retrieves all bookings, soonest slot first. Admin listing.
func (repo *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	if err := repo.db.WithContext(ctx).
		Order("slot_at ASC").
		Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find bookings")
	}

	return toBookingDomainSlice(bookingModels), nil
}

// UpdateStatus changes the lifecycle state of a booking.
func (repo *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update booking status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBookingDomain converts a GORM BookingModel to a domain Booking entity.
func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	return &entity.Booking{
		ID:          data.ID,
		UserID:      data.UserID,
		ServiceName: data.ServiceName,
		SlotAt:      data.SlotAt,
		Notes:       data.Notes,
		Status:      entity.BookingStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toBookingDomainSlice(data []*model.BookingModel) []*entity.Booking {
	bookings := make([]*entity.Booking, 0, len(data))
	for _, bookingM := range data {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings
}

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel.
func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	return &model.BookingModel{
		ID:          data.ID,
		UserID:      data.UserID,
		ServiceName: data.ServiceName,
		SlotAt:      data.SlotAt,
		Notes:       data.Notes,
		Status:      string(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
