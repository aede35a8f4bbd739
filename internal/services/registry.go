package services

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService        *AuthService
	ProfileService     *ProfileService
	CampaignService    *CampaignService
	ApplicationService *ApplicationService
	StatusService      *StatusService
	MessageService     *MessageService
	FavoriteService    *FavoriteService
	NotificationSvc    *NotificationService
	BankAccountService *BankAccountService
	PaymentService     *PaymentService
	DebugReportService *DebugReportService
	EmailSender        EmailSender
}
