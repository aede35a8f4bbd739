package apperrors

import (
	"net/http"
)

// Factories and predefined values for the marketplace domain.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409 AppError.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// --- Applications ---

// ErrApplicationAlreadyExists is the externally observed duplicate-application
// error. The message is a client-facing contract and must not change.
var ErrApplicationAlreadyExists = New(
	CodeAlreadyExists,
	"application",
	"既にこの案件に応募済みです",
	http.StatusBadRequest,
)

var ErrCampaignNotActive = New(
	CodeInvalidStatus,
	"application",
	"この案件は現在応募を受け付けていません",
	http.StatusBadRequest,
)

var ErrIllegalStatusTransition = New(
	CodeInvalidStatus,
	"application",
	"この操作は現在のステータスでは実行できません",
	http.StatusBadRequest,
)

// --- Messaging ---

// ErrThreadClosed rejects writes to a completed application's thread.
var ErrThreadClosed = New(
	CodeInvalidOperation,
	"message",
	"この案件は完了済みのため、メッセージを送信できません",
	http.StatusBadRequest,
)

var ErrEmptyMessage = New(
	CodeValidationFailed,
	"message",
	"メッセージ本文または画像を指定してください",
	http.StatusBadRequest,
)

// --- Campaigns ---

var ErrInvalidCampaignStatus = New(
	CodeInvalidStatus,
	"campaign",
	"Campaign is not in a state that allows this operation",
	http.StatusBadRequest,
)
