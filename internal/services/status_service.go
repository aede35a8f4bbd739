package services

import (
	"fmt"
	"time"

	"prizm_backend/internal/logger"
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"
)

// StatusService applies validated status changes to an application and runs
// the side effects tied to each transition. Only the status write itself is
// a hard failure; every subsequent step is best-effort and reported in the
// SideEffects result instead of aborting the call.
type StatusService struct {
	applicationRepo repositories.ApplicationRepository
	messageRepo     repositories.MessageRepository
	paymentRepo     repositories.PaymentRepository
	bankAccountRepo repositories.BankAccountRepository
	notificationSvc *NotificationService
}

func NewStatusService(
	applicationRepo repositories.ApplicationRepository,
	messageRepo repositories.MessageRepository,
	paymentRepo repositories.PaymentRepository,
	bankAccountRepo repositories.BankAccountRepository,
	notificationSvc *NotificationService,
) *StatusService {
	return &StatusService{
		applicationRepo: applicationRepo,
		messageRepo:     messageRepo,
		paymentRepo:     paymentRepo,
		bankAccountRepo: bankAccountRepo,
		notificationSvc: notificationSvc,
	}
}

// AdvanceStatus moves an application to newStatus.
//
// Transition legality is enforced against the canonical chain; admins may
// set Override to write any valid status (manual correction path). The
// returned SideEffects lists which of the secondary steps ran — a caller
// seeing PaymentCreated=false after a payment_pending transition knows the
// payment record was lost, not deferred.
func (s *StatusService) AdvanceStatus(principal Principal, applicationID string, req *dto.AdvanceStatusRequest) (*dto.AdvanceStatusResponse, error) {
	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if err := s.authorize(principal, app); err != nil {
		return nil, err
	}

	if !req.NewStatus.Valid() {
		return nil, apperrors.ErrInvalidStatus("application", "unknown application status: "+string(req.NewStatus))
	}

	if !app.Status.CanTransitionTo(req.NewStatus) {
		if !(principal.IsAdmin() && req.Override) {
			return nil, apperrors.ErrIllegalStatusTransition
		}
	}

	// Step 1: the primary write. This is the only step whose failure
	// aborts the operation.
	if err := s.applicationRepo.UpdateStatus(app.ID, req.NewStatus); err != nil {
		return nil, err
	}
	app.Status = req.NewStatus

	effects := dto.SideEffects{}
	softFail := func(step string, err error) {
		logger.Warn("status transition side effect failed",
			"application_id", app.ID,
			"new_status", string(req.NewStatus),
			"step", step,
			"error", err,
		)
		effects.Errors = append(effects.Errors, fmt.Sprintf("%s: %v", step, err))
	}

	// Step 2: chat message accompanying the transition.
	if req.Message != "" && app.Influencer != nil {
		if err := s.sendTransitionMessage(app, req.Message); err != nil {
			softFail("message", err)
		} else {
			effects.MessageSent = true
		}
	}

	// Step 3: notification to the influencer.
	if req.NotificationTitle != "" && app.Influencer != nil {
		err := s.notificationSvc.Notify(
			app.Influencer.RecipientID(),
			req.NotificationTitle,
			req.NotificationMessage,
			req.NotificationType,
			req.NotificationLink,
			map[string]interface{}{"application_id": app.ID},
		)
		if err != nil {
			softFail("notification", err)
		} else {
			effects.NotificationSent = true
		}
	}

	// Step 4: forward payout details once the post is confirmed.
	if req.NewStatus == models.ApplicationStatusPostConfirmed {
		forwarded, err := s.forwardBankInfo(app)
		if err != nil {
			softFail("bank_info", err)
		} else {
			effects.BankInfoForwarded = forwarded
		}
	}

	// Step 5: record the reward when payment becomes due.
	if req.NewStatus == models.ApplicationStatusPaymentPending {
		if err := s.createPayment(app); err != nil {
			softFail("payment", err)
		} else {
			effects.PaymentCreated = true
		}
	}

	// Step 6: settle all payments on completion.
	if req.NewStatus == models.ApplicationStatusCompleted {
		if err := s.paymentRepo.MarkPaidByApplication(app.ID, time.Now()); err != nil {
			softFail("payment_paid", err)
		} else {
			effects.PaymentsMarkedPaid = true
		}
	}

	return &dto.AdvanceStatusResponse{
		Application: buildApplicationResponse(app),
		SideEffects: effects,
	}, nil
}

func (s *StatusService) authorize(principal Principal, app *models.Application) error {
	if principal.IsAdmin() {
		return nil
	}
	if principal.IsCompany() && app.Company != nil && app.Company.UserID == principal.UserID {
		return nil
	}
	// Influencers advance their own applications (post submission).
	if principal.IsInfluencer() && app.Influencer != nil &&
		app.Influencer.UserID != nil && *app.Influencer.UserID == principal.UserID {
		return nil
	}
	return apperrors.ErrInsufficientPermissions
}

// sendTransitionMessage posts the company's message into the thread,
// visible to both parties.
func (s *StatusService) sendTransitionMessage(app *models.Application, content string) error {
	if app.Company == nil {
		return fmt.Errorf("company %s not resolvable", app.CompanyID)
	}

	message := &models.Message{
		ApplicationID: app.ID,
		SenderID:      app.Company.UserID,
		ReceiverID:    app.Influencer.RecipientID(),
		Content:       content,
		MessageType:   models.MessageTypeText,
		Visibility:    models.VisibilityAll,
	}
	return s.messageRepo.Create(message)
}

// forwardBankInfo sends the influencer's payout details to the company as a
// bank_info message. A missing bank account is an expected state, not an
// error: (false, nil) means skipped.
func (s *StatusService) forwardBankInfo(app *models.Application) (bool, error) {
	if app.Influencer == nil || app.Influencer.UserID == nil {
		logger.Info("no linked account, skipping bank info forwarding", "application_id", app.ID)
		return false, nil
	}

	account, err := s.bankAccountRepo.FindByUserID(*app.Influencer.UserID)
	if err != nil {
		if err == repositories.ErrBankAccountNotFound {
			logger.Info("no bank account on file, skipping bank info forwarding", "application_id", app.ID)
			return false, nil
		}
		return false, err
	}

	// A partially failed company lookup must not block the forward; fall
	// back to the raw company ID as the receiving identity.
	receiverID := app.CompanyID
	if app.Company != nil {
		receiverID = app.Company.UserID
	}

	message := &models.Message{
		ApplicationID: app.ID,
		SenderID:      app.Influencer.RecipientID(),
		ReceiverID:    receiverID,
		Content:       formatBankInfo(account),
		MessageType:   models.MessageTypeBankInfo,
		Visibility:    models.VisibilityAll,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return false, err
	}
	return true, nil
}

func (s *StatusService) createPayment(app *models.Application) error {
	amount := 0.0
	if app.Campaign != nil {
		amount = app.Campaign.RewardAmount()
	}

	influencerUserID := app.InfluencerID
	if app.Influencer != nil {
		influencerUserID = app.Influencer.RecipientID()
	}

	payment := &models.Payment{
		ApplicationID:    app.ID,
		CampaignID:       app.CampaignID,
		CompanyID:        app.CompanyID,
		InfluencerUserID: influencerUserID,
		Amount:           amount,
		Status:           models.PaymentStatusPending,
	}
	return s.paymentRepo.Create(payment)
}

func formatBankInfo(account *models.BankAccount) string {
	return fmt.Sprintf(
		"【振込先情報】\n銀行名: %s\n支店名: %s\n口座種別: %s\n口座番号: %s\n口座名義: %s",
		account.BankName,
		account.BranchName,
		account.AccountType.Label(),
		account.AccountNumber,
		account.HolderName,
	)
}

func buildApplicationResponse(app *models.Application) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:           app.ID,
		CampaignID:   app.CampaignID,
		CompanyID:    app.CompanyID,
		InfluencerID: app.InfluencerID,
		Status:       app.Status,
		StatusLabel:  app.Status.Label(),
		Motivation:   app.Motivation,
		AppliedAt:    app.AppliedAt,
		UpdatedAt:    app.UpdatedAt,
		Campaign:     app.Campaign,
		Company:      app.Company,
		Influencer:   app.Influencer,
	}
}
