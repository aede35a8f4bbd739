package models

type UserStatus string
type UserRole string
type ApplicationStatus string
type CampaignStatus string
type PaymentStatus string
type MessageType string
type MessageVisibility string
type BankAccountType string
type DebugReportStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"

	UserRoleInfluencer UserRole = "influencer"
	UserRoleCompany    UserRole = "company"
	UserRoleAdmin      UserRole = "admin"

	ApplicationStatusApplied        ApplicationStatus = "applied"
	ApplicationStatusReviewing      ApplicationStatus = "reviewing"
	ApplicationStatusApproved       ApplicationStatus = "approved"
	ApplicationStatusRejected       ApplicationStatus = "rejected"
	ApplicationStatusInProgress     ApplicationStatus = "in_progress"
	ApplicationStatusPostSubmitted  ApplicationStatus = "post_submitted"
	ApplicationStatusPostConfirmed  ApplicationStatus = "post_confirmed"
	ApplicationStatusPaymentPending ApplicationStatus = "payment_pending"
	ApplicationStatusCompleted      ApplicationStatus = "completed"

	// Reserved: appears in filter lists only, no transition in or out.
	ApplicationStatusRevisionRequested ApplicationStatus = "revision_requested"

	CampaignStatusDraft  CampaignStatus = "draft"
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusClosed CampaignStatus = "closed"

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"

	MessageTypeText     MessageType = "text"
	MessageTypeBankInfo MessageType = "bank_info"

	VisibilityAll             MessageVisibility = "all"
	VisibilityAdminCompany    MessageVisibility = "admin_company"
	VisibilityAdminInfluencer MessageVisibility = "admin_influencer"

	BankAccountTypeOrdinary BankAccountType = "ordinary"
	BankAccountTypeChecking BankAccountType = "checking"

	DebugReportStatusOpen     DebugReportStatus = "open"
	DebugReportStatusResolved DebugReportStatus = "resolved"
)

// StatusInfo is the canonical display/transition metadata for one
// application status. Every screen binds to this single map; there are no
// per-screen label tables.
type StatusInfo struct {
	Label    string              `json:"label"`
	Severity string              `json:"severity"`
	Next     []ApplicationStatus `json:"next"`
}

var applicationStatusFlow = map[ApplicationStatus]StatusInfo{
	ApplicationStatusApplied: {
		Label:    "応募済み",
		Severity: "info",
		Next:     []ApplicationStatus{ApplicationStatusReviewing, ApplicationStatusApproved, ApplicationStatusRejected},
	},
	ApplicationStatusReviewing: {
		Label:    "審査中",
		Severity: "info",
		Next:     []ApplicationStatus{ApplicationStatusApproved, ApplicationStatusRejected},
	},
	ApplicationStatusApproved: {
		Label:    "承認済み",
		Severity: "success",
		Next:     []ApplicationStatus{ApplicationStatusInProgress},
	},
	ApplicationStatusRejected: {
		Label:    "不採用",
		Severity: "error",
		Next:     nil,
	},
	ApplicationStatusInProgress: {
		Label:    "進行中",
		Severity: "info",
		Next:     []ApplicationStatus{ApplicationStatusPostSubmitted},
	},
	ApplicationStatusPostSubmitted: {
		Label:    "投稿報告済み",
		Severity: "info",
		// post_submitted may fall back to in_progress when the company
		// requests changes to the submitted post.
		Next: []ApplicationStatus{ApplicationStatusPostConfirmed, ApplicationStatusInProgress},
	},
	ApplicationStatusPostConfirmed: {
		Label:    "投稿確認済み",
		Severity: "success",
		Next:     []ApplicationStatus{ApplicationStatusPaymentPending},
	},
	ApplicationStatusPaymentPending: {
		Label:    "支払い待ち",
		Severity: "warning",
		Next:     []ApplicationStatus{ApplicationStatusCompleted},
	},
	ApplicationStatusCompleted: {
		Label:    "完了",
		Severity: "success",
		Next:     nil,
	},
	ApplicationStatusRevisionRequested: {
		Label:    "修正依頼",
		Severity: "warning",
		Next:     nil,
	},
}

// Valid reports whether s is a member of the closed status enumeration.
// revision_requested is reserved and not a writable status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusReviewing,
		ApplicationStatusApproved, ApplicationStatusRejected,
		ApplicationStatusInProgress, ApplicationStatusPostSubmitted,
		ApplicationStatusPostConfirmed, ApplicationStatusPaymentPending,
		ApplicationStatusCompleted:
		return true
	}
	return false
}

// Label returns the display label, falling back to the raw value for
// unknown statuses.
func (s ApplicationStatus) Label() string {
	if info, ok := applicationStatusFlow[s]; ok {
		return info.Label
	}
	return string(s)
}

// Info returns the full display/transition metadata.
func (s ApplicationStatus) Info() (StatusInfo, bool) {
	info, ok := applicationStatusFlow[s]
	return info, ok
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	info, ok := applicationStatusFlow[s]
	if !ok {
		return false
	}
	for _, n := range info.Next {
		if n == next {
			return true
		}
	}
	return false
}

// Terminal reports whether s has no outgoing transitions.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusRejected || s == ApplicationStatusCompleted
}

// ApplicationStatusFlow returns the canonical status metadata map for
// UI binding. Callers must not mutate the returned map.
func ApplicationStatusFlow() map[ApplicationStatus]StatusInfo {
	return applicationStatusFlow
}

// Valid reports whether s is a known campaign status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusClosed:
		return true
	}
	return false
}

// Label returns the Japanese display label for a payout account type.
func (t BankAccountType) Label() string {
	switch t {
	case BankAccountTypeOrdinary:
		return "普通"
	case BankAccountTypeChecking:
		return "当座"
	}
	return string(t)
}
