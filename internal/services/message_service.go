package services

import (
	"prizm_backend/internal/logger"
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"
	"prizm_backend/internal/services/dto"
	"prizm_backend/pkg/apperrors"
)

// MessageService appends to and reads application chat threads. Threads are
// append-only logs ordered by creation time; the only hard business rule is
// that a completed application takes no further messages.
type MessageService struct {
	messageRepo     repositories.MessageRepository
	applicationRepo repositories.ApplicationRepository
	influencerRepo  repositories.InfluencerRepository
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	applicationRepo repositories.ApplicationRepository,
	influencerRepo repositories.InfluencerRepository,
) *MessageService {
	return &MessageService{
		messageRepo:     messageRepo,
		applicationRepo: applicationRepo,
		influencerRepo:  influencerRepo,
	}
}

// SendMessage writes one send into the thread. A send carrying N images
// produces N rows: the first row holds the text content and the first image,
// each further image gets its own row with empty content and identical
// routing. Returns the rows written.
func (s *MessageService) SendMessage(actor Principal, applicationID string, req *dto.SendMessageRequest) ([]models.Message, error) {
	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if app.Status == models.ApplicationStatusCompleted {
		return nil, apperrors.ErrThreadClosed
	}

	images := collectImages(req)
	if req.Content == "" && len(images) == 0 {
		return nil, apperrors.ErrEmptyMessage
	}

	senderID, receiverID, visibility, err := s.resolveRouting(actor, app, req)
	if err != nil {
		return nil, err
	}

	messageType := req.MessageType
	if messageType == "" {
		messageType = models.MessageTypeText
	}

	var written []models.Message
	appendRow := func(content string, imageURL *string) error {
		row := models.Message{
			ApplicationID: app.ID,
			SenderID:      senderID,
			ReceiverID:    receiverID,
			Content:       content,
			ImageURL:      imageURL,
			MessageType:   messageType,
			Visibility:    visibility,
		}
		if err := s.messageRepo.Create(&row); err != nil {
			return err
		}
		written = append(written, row)
		return nil
	}

	var firstImage *string
	if len(images) > 0 {
		firstImage = &images[0]
	}
	if err := appendRow(req.Content, firstImage); err != nil {
		return nil, err
	}
	for i := 1; i < len(images); i++ {
		if err := appendRow("", &images[i]); err != nil {
			return nil, err
		}
	}

	return written, nil
}

// resolveRouting determines sender, receiver and visibility for a send.
//
// The explicit profile-id path serves influencers authenticated outside the
// main account system and always writes a fully public message. Everyone
// else is routed by the role on their token; non-admin callers asking for a
// restricted visibility are coerced onto their own admin channel, so a
// company can never inject into the admin-influencer channel or vice versa.
func (s *MessageService) resolveRouting(actor Principal, app *models.Application, req *dto.SendMessageRequest) (senderID, receiverID string, visibility models.MessageVisibility, err error) {
	companyUserID := app.CompanyID
	if app.Company != nil {
		companyUserID = app.Company.UserID
	}
	influencerID := app.InfluencerID
	if app.Influencer != nil {
		influencerID = app.Influencer.RecipientID()
	}

	if req.SenderProfileID != "" {
		profile, err := s.influencerRepo.FindByID(req.SenderProfileID)
		if err != nil {
			if err == repositories.ErrInfluencerNotFound {
				return "", "", "", apperrors.ErrNotFound(err)
			}
			return "", "", "", err
		}
		if profile.ID != app.InfluencerID {
			return "", "", "", apperrors.ErrInsufficientPermissions
		}
		return profile.ID, companyUserID, models.VisibilityAll, nil
	}

	switch {
	case actor.IsAdmin():
		switch req.TargetType {
		case "company":
			return actor.UserID, companyUserID, models.VisibilityAdminCompany, nil
		case "influencer":
			return actor.UserID, influencerID, models.VisibilityAdminInfluencer, nil
		default:
			return actor.UserID, companyUserID, models.VisibilityAll, nil
		}

	case actor.IsCompany():
		if app.Company == nil || app.Company.UserID != actor.UserID {
			return "", "", "", apperrors.ErrInsufficientPermissions
		}
		visibility = models.VisibilityAll
		if req.Visibility != "" && req.Visibility != models.VisibilityAll {
			visibility = models.VisibilityAdminCompany
		}
		return actor.UserID, influencerID, visibility, nil

	default:
		if app.Influencer == nil ||
			(app.Influencer.UserID != nil && *app.Influencer.UserID != actor.UserID) {
			return "", "", "", apperrors.ErrInsufficientPermissions
		}
		visibility = models.VisibilityAll
		if req.Visibility != "" && req.Visibility != models.VisibilityAll {
			visibility = models.VisibilityAdminInfluencer
		}
		return actor.UserID, companyUserID, visibility, nil
	}
}

// GetThread returns the messages the reader is allowed to see, oldest first,
// and marks the reader's incoming messages as read.
func (s *MessageService) GetThread(reader Principal, applicationID string) (*dto.ThreadResponse, error) {
	app, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	visibilities, err := s.readerScopes(reader, app)
	if err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindByApplication(app.ID, visibilities)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.MarkRead(app.ID, reader.UserID); err != nil {
		// Read receipts are cosmetic; losing one never breaks a fetch.
		logger.Warn("failed to mark thread read", "application_id", app.ID, "reader_id", reader.UserID, "error", err)
	}

	return &dto.ThreadResponse{
		ApplicationID: app.ID,
		Messages:      messages,
		Total:         len(messages),
	}, nil
}

// readerScopes maps the reader's role to the visibility scopes they may see.
// Admins get the unrestricted thread.
func (s *MessageService) readerScopes(reader Principal, app *models.Application) ([]models.MessageVisibility, error) {
	switch {
	case reader.IsAdmin():
		return nil, nil
	case reader.IsCompany():
		if app.Company == nil || app.Company.UserID != reader.UserID {
			return nil, apperrors.ErrInsufficientPermissions
		}
		return []models.MessageVisibility{models.VisibilityAll, models.VisibilityAdminCompany}, nil
	default:
		if app.Influencer == nil ||
			(app.Influencer.UserID != nil && *app.Influencer.UserID != reader.UserID) {
			return nil, apperrors.ErrInsufficientPermissions
		}
		return []models.MessageVisibility{models.VisibilityAll, models.VisibilityAdminInfluencer}, nil
	}
}

func (s *MessageService) UnreadCount(userID string) (int64, error) {
	return s.messageRepo.CountUnread(userID)
}

func collectImages(req *dto.SendMessageRequest) []string {
	if len(req.ImageURLs) > 0 {
		return req.ImageURLs
	}
	if req.ImageURL != "" {
		return []string{req.ImageURL}
	}
	return nil
}
