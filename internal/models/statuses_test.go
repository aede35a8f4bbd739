package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusValid(t *testing.T) {
	valid := []ApplicationStatus{
		ApplicationStatusApplied,
		ApplicationStatusReviewing,
		ApplicationStatusApproved,
		ApplicationStatusRejected,
		ApplicationStatusInProgress,
		ApplicationStatusPostSubmitted,
		ApplicationStatusPostConfirmed,
		ApplicationStatusPaymentPending,
		ApplicationStatusCompleted,
	}
	for _, s := range valid {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, ApplicationStatusRevisionRequested.Valid(), "revision_requested is reserved, not writable")
	assert.False(t, ApplicationStatus("cancelled").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestApplicationStatusTransitions(t *testing.T) {
	cases := []struct {
		from    ApplicationStatus
		to      ApplicationStatus
		allowed bool
	}{
		{ApplicationStatusApplied, ApplicationStatusReviewing, true},
		{ApplicationStatusApplied, ApplicationStatusApproved, true},
		{ApplicationStatusApplied, ApplicationStatusRejected, true},
		{ApplicationStatusApplied, ApplicationStatusCompleted, false},
		{ApplicationStatusReviewing, ApplicationStatusApproved, true},
		{ApplicationStatusReviewing, ApplicationStatusRejected, true},
		{ApplicationStatusReviewing, ApplicationStatusApplied, false},
		{ApplicationStatusApproved, ApplicationStatusInProgress, true},
		{ApplicationStatusApproved, ApplicationStatusRejected, false},
		{ApplicationStatusInProgress, ApplicationStatusPostSubmitted, true},
		{ApplicationStatusPostSubmitted, ApplicationStatusPostConfirmed, true},
		// Submitted posts can be sent back for rework.
		{ApplicationStatusPostSubmitted, ApplicationStatusInProgress, true},
		{ApplicationStatusPostConfirmed, ApplicationStatusPaymentPending, true},
		{ApplicationStatusPaymentPending, ApplicationStatusCompleted, true},
		{ApplicationStatusCompleted, ApplicationStatusApplied, false},
		{ApplicationStatusRejected, ApplicationStatusReviewing, false},
		{ApplicationStatusRevisionRequested, ApplicationStatusInProgress, false},
		{ApplicationStatus("bogus"), ApplicationStatusApplied, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestApplicationStatusTerminal(t *testing.T) {
	assert.True(t, ApplicationStatusRejected.Terminal())
	assert.True(t, ApplicationStatusCompleted.Terminal())
	assert.False(t, ApplicationStatusApplied.Terminal())
	assert.False(t, ApplicationStatusPaymentPending.Terminal())
}

func TestApplicationStatusLabel(t *testing.T) {
	assert.Equal(t, "応募済み", ApplicationStatusApplied.Label())
	assert.Equal(t, "支払い待ち", ApplicationStatusPaymentPending.Label())
	assert.Equal(t, "完了", ApplicationStatusCompleted.Label())
	// Unknown values fall back to the raw string.
	assert.Equal(t, "mystery", ApplicationStatus("mystery").Label())
}

func TestApplicationStatusFlowCoversEveryStatus(t *testing.T) {
	flow := ApplicationStatusFlow()
	assert.Len(t, flow, 10)

	for status, info := range flow {
		assert.NotEmpty(t, info.Label, string(status))
		assert.NotEmpty(t, info.Severity, string(status))
		for _, next := range info.Next {
			_, ok := flow[next]
			assert.True(t, ok, "%s lists unknown successor %s", status, next)
		}
	}
}

func TestCampaignStatusValid(t *testing.T) {
	assert.True(t, CampaignStatusDraft.Valid())
	assert.True(t, CampaignStatusActive.Valid())
	assert.True(t, CampaignStatusClosed.Valid())
	assert.False(t, CampaignStatus("archived").Valid())
}

func TestBankAccountTypeLabel(t *testing.T) {
	assert.Equal(t, "普通", BankAccountTypeOrdinary.Label())
	assert.Equal(t, "当座", BankAccountTypeChecking.Label())
	assert.Equal(t, "other", BankAccountType("other").Label())
}
