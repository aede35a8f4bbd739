package services

import (
	"encoding/json"
	"fmt"

	"prizm_backend/internal/logger"
	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"

	"gorm.io/datatypes"
)

// InfluencerApplicationListPath is the default link attached to
// status-change notifications.
const InfluencerApplicationListPath = "/influencer/applications"

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
	emailSender      EmailSender
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
	emailSender EmailSender,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		emailSender:      emailSender,
	}
}

// Notify creates a notification for a user. Type defaults to "info" and
// link to the influencer application list. When the target resolves to a
// registered account, the notification is mirrored to email best-effort.
func (s *NotificationService) Notify(userID, title, message, notificationType, link string, data map[string]interface{}) error {
	if notificationType == "" {
		notificationType = repositories.NotificationTypeInfo
	}
	if link == "" {
		link = InfluencerApplicationListPath
	}

	notification := &models.Notification{
		UserID:  userID,
		Type:    notificationType,
		Title:   title,
		Message: message,
		Link:    link,
	}

	if len(data) > 0 {
		if payload, err := json.Marshal(data); err == nil {
			notification.Data = datatypes.JSON(payload)
		}
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return err
	}

	s.mirrorToEmail(userID, title, message)

	return nil
}

// NotifyNewApplication alerts a company that an influencer applied.
func (s *NotificationService) NotifyNewApplication(companyUserID, campaignTitle, applicationID string) error {
	return s.Notify(
		companyUserID,
		"新しい応募があります",
		fmt.Sprintf("「%s」に新しい応募が届きました。", campaignTitle),
		repositories.NotificationTypeInfo,
		"/company/applications",
		map[string]interface{}{"application_id": applicationID},
	)
}

func (s *NotificationService) GetUserNotifications(userID string, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error) {
	return s.notificationRepo.FindByUser(userID, criteria)
}

func (s *NotificationService) MarkAsRead(userID, notificationID string) error {
	return s.notificationRepo.MarkAsRead(userID, notificationID)
}

func (s *NotificationService) MarkAllAsRead(userID string) error {
	return s.notificationRepo.MarkAllAsRead(userID)
}

func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	return s.notificationRepo.UnreadCount(userID)
}

// mirrorToEmail sends the notification body to the user's email address.
// Targets without a registered account (profile-only influencers) have no
// address and are skipped.
func (s *NotificationService) mirrorToEmail(userID, subject, body string) {
	if s.emailSender == nil {
		return
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return
	}

	if err := s.emailSender.Send(user.Email, subject, body); err != nil {
		logger.Warn("failed to mirror notification to email", "user_id", userID, "error", err)
	}
}
