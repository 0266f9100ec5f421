// Package errors defines the application error taxonomy: typed business
// errors that carry an HTTP status, a stable error code and a user-facing
// message. Infrastructure failures are wrapped separately and always map
// to a generic 500.
package errors

import (
	"net/http"

	"wellclub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	// Membership-related errors
	ErrMembershipNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBERSHIP_NOT_FOUND",
		"Membership not found",
		"",
	)

	ErrNoActiveMembership = NewBaseError(
		http.StatusNotFound,
		"NO_ACTIVE_MEMBERSHIP",
		"User does not have an active membership",
		"",
	)

	ErrMembershipInactive = NewBaseError(
		http.StatusBadRequest,
		"MEMBERSHIP_INACTIVE",
		"Membership is not active",
		"",
	)

	ErrMembershipExpired = NewBaseError(
		http.StatusBadRequest,
		"MEMBERSHIP_EXPIRED",
		"Membership has expired",
		"",
	)

	ErrGroupFull = NewBaseError(
		http.StatusConflict,
		"GROUP_FULL",
		"Membership group has reached the plan's member limit",
		"",
	)

	ErrBeneficiaryOfBeneficiary = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PARENT_MEMBERSHIP",
		"Beneficiaries can only be attached to a primary membership",
		"",
	)

	// RFID-related errors
	ErrCardNotFound = NewBaseError(
		http.StatusNotFound,
		"RFID_CARD_NOT_FOUND",
		"RFID card not found in system",
		"",
	)

	ErrCardIDRequired = NewBaseError(
		http.StatusBadRequest,
		"RFID_CARD_ID_REQUIRED",
		"RFID card id must not be empty",
		"",
	)

	ErrScanAccessDenied = NewBaseError(
		http.StatusForbidden,
		"SCAN_ACCESS_DENIED",
		"User is not authorized to use this RFID card",
		"",
	)

	// OTP-related errors
	ErrOTPInvalid = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID",
		"Invalid or expired verification code",
		"",
	)

	// Plan-related errors
	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"Membership plan not found",
		"",
	)

	// Payment-related errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Payment not found",
		"",
	)

	ErrPaymentSignatureInvalid = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_SIGNATURE_INVALID",
		"Payment signature verification failed",
		"",
	)

	// Booking-related errors
	ErrBookingNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOKING_NOT_FOUND",
		"Booking not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
