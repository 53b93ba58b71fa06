package go_moip

import "github.com/stremovskyy/go-moip/payment"

func validateCommission(c *payment.Commission) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	fe, ok := firstFieldError(err)
	if !ok {
		return newValidationError(ErrInvalidCommission, "commission", err.Error())
	}
	if fe.Tag() == "required_without" {
		return newValidationError(ErrInvalidCommission, "commission."+fe.Field(), "percentageValue or fixedValue is required")
	}
	return newValidationError(ErrInvalidCommission, "commission."+fe.Field(), "is required")
}
