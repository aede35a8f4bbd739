package handlers

// AppHandlers holds every HTTP handler group.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	CampaignHandler     *CampaignHandler
	ApplicationHandler  *ApplicationHandler
	MessageHandler      *MessageHandler
	NotificationHandler *NotificationHandler
	BankAccountHandler  *BankAccountHandler
	PaymentHandler      *PaymentHandler
	DebugReportHandler  *DebugReportHandler
	UploadHandler       *UploadHandler
}
