package impl

import (
	"context"
	"log/slog"

	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/errors"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo    repository.BookingRepository
	membershipRepo repository.MembershipRepository
	logger         *slog.Logger
}

// NewBookingService creates a new service booking instance.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	membershipRepo repository.MembershipRepository,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo:    bookingRepo,
		membershipRepo: membershipRepo,
		logger:         logger,
	}
}

// CreateBooking reserves a slot for the calling member. Booking requires an
// active membership; beneficiaries book through their own record.
func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, input usecase.BookingInput) (*entity.Booking, error) {
	if _, err := s.membershipRepo.FindActiveByUser(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, domainerrors.ErrNoActiveMembership
		}

		return nil, errors.Wrap(err, "failed to find active membership")
	}

	booking := &entity.Booking{
		ID:          uuid.New(),
		UserID:      userID,
		ServiceName: input.ServiceName,
		SlotAt:      input.SlotAt,
		Notes:       input.Notes,
		Status:      entity.BookingConfirmed,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	s.logger.Info("booking created",
		slog.String("booking_id", booking.ID.String()),
		slog.String("service", booking.ServiceName),
	)

	return booking, nil
}

// MyBookings lists the calling member's bookings.
func (s *bookingService) MyBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// ListAllBookings lists every booking. Admin only.
func (s *bookingService) ListAllBookings(ctx context.Context) ([]*entity.Booking, error) {
	bookings, err := s.bookingRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// CancelBooking cancels one of the calling member's bookings. Cancelling an
// already-cancelled booking succeeds with no change.
func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return domainerrors.ErrBookingNotFound
		}

		return errors.Wrap(err, "failed to find booking")
	}

	if booking.UserID != userID {
		return domainerrors.ErrForbidden.WithDetails("booking belongs to a different user")
	}

	if booking.Status == entity.BookingCancelled {
		return nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, entity.BookingCancelled); err != nil {
		return errors.Wrap(err, "failed to cancel booking")
	}

	s.logger.Info("booking cancelled", slog.String("booking_id", bookingID.String()))

	return nil
}
