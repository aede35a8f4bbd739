package validator

import (
	"log"

	"prizm_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules registers the domain validation tags on the given
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// The application must not start with a broken rule set.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-message-visibility", validateMessageVisibility)
	mustRegister("is-account-type", validateAccountType)
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	return models.ApplicationStatus(fl.Field().String()).Valid()
}

func validateMessageVisibility(fl validator.FieldLevel) bool {
	switch models.MessageVisibility(fl.Field().String()) {
	case models.VisibilityAll, models.VisibilityAdminCompany, models.VisibilityAdminInfluencer:
		return true
	}
	return false
}

func validateAccountType(fl validator.FieldLevel) bool {
	switch models.BankAccountType(fl.Field().String()) {
	case models.BankAccountTypeOrdinary, models.BankAccountTypeChecking:
		return true
	}
	return false
}
