package services

import (
	"errors"
	"time"

	"prizm_backend/internal/models"
	"prizm_backend/internal/repositories"

	"github.com/google/uuid"
)

// In-memory repository fakes. They honor the same error contracts as the
// GORM implementations (including the duplicate-application unique index)
// and expose fail switches for exercising soft-failure paths.

var errFakeStore = errors.New("store unavailable")

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// --- applications ---

type fakeApplicationRepo struct {
	apps             map[string]*models.Application
	failUpdateStatus bool

	// Optional preload sources, mirroring the relation preloads of the
	// GORM implementation's FindByID.
	campaigns   *fakeCampaignRepo
	companies   *fakeCompanyRepo
	influencers *fakeInfluencerRepo
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: make(map[string]*models.Application)}
}

func (r *fakeApplicationRepo) Create(app *models.Application) error {
	for _, existing := range r.apps {
		if existing.CampaignID == app.CampaignID && existing.InfluencerID == app.InfluencerID {
			return repositories.ErrApplicationExists
		}
	}
	ensureID(&app.ID)
	stored := *app
	r.apps[app.ID] = &stored
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *app
	if copied.Campaign == nil && r.campaigns != nil {
		if campaign, err := r.campaigns.FindByID(copied.CampaignID); err == nil {
			copied.Campaign = campaign
		}
	}
	if copied.Company == nil && r.companies != nil {
		if company, err := r.companies.FindByID(copied.CompanyID); err == nil {
			copied.Company = company
		}
	}
	if copied.Influencer == nil && r.influencers != nil {
		if profile, err := r.influencers.FindByID(copied.InfluencerID); err == nil {
			copied.Influencer = profile
		}
	}
	return &copied, nil
}

func (r *fakeApplicationRepo) UpdateStatus(id string, status models.ApplicationStatus) error {
	if r.failUpdateStatus {
		return errFakeStore
	}
	app, ok := r.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	app.Status = status
	app.UpdatedAt = time.Now()
	return nil
}

func (r *fakeApplicationRepo) FindByInfluencer(influencerID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		if app.InfluencerID == influencerID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByCampaign(campaignID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		if app.CampaignID == campaignID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindByCompany(companyID string) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.apps {
		if app.CompanyID == companyID {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindAll(criteria repositories.AdminApplicationCriteria) ([]models.Application, int64, error) {
	var out []models.Application
	for _, app := range r.apps {
		if criteria.Status != "" && app.Status != criteria.Status {
			continue
		}
		if criteria.CampaignID != "" && app.CampaignID != criteria.CampaignID {
			continue
		}
		if criteria.CompanyID != "" && app.CompanyID != criteria.CompanyID {
			continue
		}
		out = append(out, *app)
	}
	return out, int64(len(out)), nil
}

// --- messages ---

type fakeMessageRepo struct {
	messages   []models.Message
	failCreate bool
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{}
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	if r.failCreate {
		return errFakeStore
	}
	ensureID(&message.ID)
	message.CreatedAt = time.Now()
	r.messages = append(r.messages, *message)
	return nil
}

func (r *fakeMessageRepo) FindByApplication(applicationID string, visibilities []models.MessageVisibility) ([]models.Message, error) {
	allowed := make(map[models.MessageVisibility]bool)
	for _, v := range visibilities {
		allowed[v] = true
	}

	var out []models.Message
	for _, m := range r.messages {
		if m.ApplicationID != applicationID {
			continue
		}
		if len(visibilities) > 0 && !allowed[m.Visibility] {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(applicationID, readerID string) error {
	for i := range r.messages {
		if r.messages[i].ApplicationID == applicationID && r.messages[i].ReceiverID == readerID {
			r.messages[i].Read = true
		}
	}
	return nil
}

func (r *fakeMessageRepo) CountUnread(receiverID string) (int64, error) {
	var count int64
	for _, m := range r.messages {
		if m.ReceiverID == receiverID && !m.Read {
			count++
		}
	}
	return count, nil
}

// --- payments ---

type fakePaymentRepo struct {
	payments   []models.Payment
	failCreate bool
	failPaid   bool
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (r *fakePaymentRepo) Create(payment *models.Payment) error {
	if r.failCreate {
		return errFakeStore
	}
	ensureID(&payment.ID)
	r.payments = append(r.payments, *payment)
	return nil
}

func (r *fakePaymentRepo) FindByApplication(applicationID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.ApplicationID == applicationID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) MarkPaidByApplication(applicationID string, paidAt time.Time) error {
	if r.failPaid {
		return errFakeStore
	}
	for i := range r.payments {
		if r.payments[i].ApplicationID == applicationID {
			r.payments[i].Status = models.PaymentStatusPaid
			at := paidAt
			r.payments[i].PaidAt = &at
		}
	}
	return nil
}

func (r *fakePaymentRepo) FindByInfluencerUser(userID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.InfluencerUserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) FindByCompany(companyID string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) FindAll(page, pageSize int) ([]models.Payment, int64, error) {
	out := append([]models.Payment(nil), r.payments...)
	return out, int64(len(out)), nil
}

// --- bank accounts ---

type fakeBankAccountRepo struct {
	accounts map[string]*models.BankAccount
}

func newFakeBankAccountRepo() *fakeBankAccountRepo {
	return &fakeBankAccountRepo{accounts: make(map[string]*models.BankAccount)}
}

func (r *fakeBankAccountRepo) Upsert(account *models.BankAccount) error {
	ensureID(&account.ID)
	stored := *account
	r.accounts[account.UserID] = &stored
	return nil
}

func (r *fakeBankAccountRepo) FindByUserID(userID string) (*models.BankAccount, error) {
	account, ok := r.accounts[userID]
	if !ok {
		return nil, repositories.ErrBankAccountNotFound
	}
	copied := *account
	return &copied, nil
}

// --- notifications ---

type fakeNotificationRepo struct {
	notifications []models.Notification
	failCreate    bool
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(notification *models.Notification) error {
	if r.failCreate {
		return errFakeStore
	}
	ensureID(&notification.ID)
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) FindByUser(userID string, criteria repositories.NotificationCriteria) ([]models.Notification, int64, error) {
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if criteria.UnreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkAsRead(userID, notificationID string) error {
	for i := range r.notifications {
		if r.notifications[i].ID == notificationID && r.notifications[i].UserID == userID {
			r.notifications[i].IsRead = true
			return nil
		}
	}
	return repositories.ErrNotificationNotFound
}

func (r *fakeNotificationRepo) MarkAllAsRead(userID string) error {
	for i := range r.notifications {
		if r.notifications[i].UserID == userID {
			r.notifications[i].IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) UnreadCount(userID string) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

// --- users ---

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	ensureID(&user.ID)
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

// --- campaigns ---

type fakeCampaignRepo struct {
	campaigns map[string]*models.Campaign
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{campaigns: make(map[string]*models.Campaign)}
}

func (r *fakeCampaignRepo) Create(campaign *models.Campaign) error {
	ensureID(&campaign.ID)
	stored := *campaign
	r.campaigns[campaign.ID] = &stored
	return nil
}

func (r *fakeCampaignRepo) FindByID(id string) (*models.Campaign, error) {
	campaign, ok := r.campaigns[id]
	if !ok {
		return nil, repositories.ErrCampaignNotFound
	}
	copied := *campaign
	return &copied, nil
}

func (r *fakeCampaignRepo) Update(campaign *models.Campaign) error {
	stored := *campaign
	r.campaigns[campaign.ID] = &stored
	return nil
}

func (r *fakeCampaignRepo) Delete(id string) error {
	delete(r.campaigns, id)
	return nil
}

func (r *fakeCampaignRepo) Search(criteria repositories.CampaignSearchCriteria) ([]models.Campaign, int64, error) {
	var out []models.Campaign
	for _, campaign := range r.campaigns {
		if criteria.Status != "" && campaign.Status != criteria.Status {
			continue
		}
		if criteria.CompanyID != "" && campaign.CompanyID != criteria.CompanyID {
			continue
		}
		out = append(out, *campaign)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCampaignRepo) FindByCompany(companyID string) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, campaign := range r.campaigns {
		if campaign.CompanyID == companyID {
			out = append(out, *campaign)
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) FindActive(limit int) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, campaign := range r.campaigns {
		if campaign.Status == models.CampaignStatusActive {
			out = append(out, *campaign)
		}
	}
	return out, nil
}

func (r *fakeCampaignRepo) IncrementViews(id string) error {
	if campaign, ok := r.campaigns[id]; ok {
		campaign.Views++
	}
	return nil
}

// --- influencer profiles ---

type fakeInfluencerRepo struct {
	profiles map[string]*models.InfluencerProfile
}

func newFakeInfluencerRepo() *fakeInfluencerRepo {
	return &fakeInfluencerRepo{profiles: make(map[string]*models.InfluencerProfile)}
}

func (r *fakeInfluencerRepo) Create(profile *models.InfluencerProfile) error {
	ensureID(&profile.ID)
	stored := *profile
	r.profiles[profile.ID] = &stored
	return nil
}

func (r *fakeInfluencerRepo) FindByID(id string) (*models.InfluencerProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, repositories.ErrInfluencerNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeInfluencerRepo) FindByUserID(userID string) (*models.InfluencerProfile, error) {
	for _, profile := range r.profiles {
		if profile.UserID != nil && *profile.UserID == userID {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, repositories.ErrInfluencerNotFound
}

func (r *fakeInfluencerRepo) Update(profile *models.InfluencerProfile) error {
	stored := *profile
	r.profiles[profile.ID] = &stored
	return nil
}

func (r *fakeInfluencerRepo) FindAll(page, pageSize int) ([]models.InfluencerProfile, int64, error) {
	var out []models.InfluencerProfile
	for _, profile := range r.profiles {
		out = append(out, *profile)
	}
	return out, int64(len(out)), nil
}

// --- companies ---

type fakeCompanyRepo struct {
	companies map[string]*models.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*models.Company)}
}

func (r *fakeCompanyRepo) Create(company *models.Company) error {
	ensureID(&company.ID)
	stored := *company
	r.companies[company.ID] = &stored
	return nil
}

func (r *fakeCompanyRepo) FindByID(id string) (*models.Company, error) {
	company, ok := r.companies[id]
	if !ok {
		return nil, repositories.ErrCompanyNotFound
	}
	copied := *company
	return &copied, nil
}

func (r *fakeCompanyRepo) FindByUserID(userID string) (*models.Company, error) {
	for _, company := range r.companies {
		if company.UserID == userID {
			copied := *company
			return &copied, nil
		}
	}
	return nil, repositories.ErrCompanyNotFound
}

func (r *fakeCompanyRepo) Update(company *models.Company) error {
	stored := *company
	r.companies[company.ID] = &stored
	return nil
}

func (r *fakeCompanyRepo) FindAll(page, pageSize int) ([]models.Company, int64, error) {
	var out []models.Company
	for _, company := range r.companies {
		out = append(out, *company)
	}
	return out, int64(len(out)), nil
}

// --- favorites ---

type fakeFavoriteRepo struct {
	favorites []models.Favorite

	// Optional preload source for FindByInfluencer's Campaign relation.
	campaigns *fakeCampaignRepo
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{}
}

func (r *fakeFavoriteRepo) Create(favorite *models.Favorite) error {
	ensureID(&favorite.ID)
	r.favorites = append(r.favorites, *favorite)
	return nil
}

func (r *fakeFavoriteRepo) Delete(influencerID, campaignID string) error {
	for i, f := range r.favorites {
		if f.InfluencerID == influencerID && f.CampaignID == campaignID {
			r.favorites = append(r.favorites[:i], r.favorites[i+1:]...)
			return nil
		}
	}
	return repositories.ErrFavoriteNotFound
}

func (r *fakeFavoriteRepo) FindByPair(influencerID, campaignID string) (*models.Favorite, error) {
	for _, f := range r.favorites {
		if f.InfluencerID == influencerID && f.CampaignID == campaignID {
			copied := f
			return &copied, nil
		}
	}
	return nil, repositories.ErrFavoriteNotFound
}

func (r *fakeFavoriteRepo) FindByInfluencer(influencerID string) ([]models.Favorite, error) {
	var out []models.Favorite
	for _, f := range r.favorites {
		if f.InfluencerID != influencerID {
			continue
		}
		if f.Campaign == nil && r.campaigns != nil {
			if campaign, err := r.campaigns.FindByID(f.CampaignID); err == nil {
				f.Campaign = campaign
			}
		}
		out = append(out, f)
	}
	return out, nil
}
