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

// paymentRepository implements the repository.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// Create persists a new payment record.
func (repo *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required payment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

// FindByGatewayOrderID retrieves the payment tied to a gateway order.
func (repo *paymentRepository) FindByGatewayOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).
		Where("gateway_order_id = ?", orderID).
		First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by gateway order ID")
	}

	return toPaymentDomain(&paymentM), nil
}

// Update modifies an existing payment record.
func (repo *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	result := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("id = ?", payment.ID).
		Updates(paymentM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPaymentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:               data.ID,
		UserID:           data.UserID,
		PlanID:           data.PlanID,
		MembershipID:     data.MembershipID,
		Amount:           data.Amount,
		Currency:         data.Currency,
		Status:           entity.PaymentStatus(data.Status),
		GatewayOrderID:   data.GatewayOrderID,
		GatewayPaymentID: data.GatewayPaymentID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromPaymentDomain converts a domain Payment entity to a GORM PaymentModel.
func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:               data.ID,
		UserID:           data.UserID,
		PlanID:           data.PlanID,
		MembershipID:     data.MembershipID,
		Amount:           data.Amount,
		Currency:         data.Currency,
		Status:           string(data.Status),
		GatewayOrderID:   data.GatewayOrderID,
		GatewayPaymentID: data.GatewayPaymentID,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
