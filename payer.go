package go_moip

import "github.com/stremovskyy/go-moip/payment"

// Payer fields an instrument may require, by Go field name (validator StructPartial).
var (
	payerFullDetail = []string{"Name", "Email", "NationalID", "Street", "Number", "District", "City", "State", "Country", "PostalCode"}
	payerLoginOnly  = []string{"LoginAlias"}
)

// phoneField is a mobile number outside the payer, reported under its own field.
type phoneField struct {
	field string
	value string
}

// validatePayer checks phones first, landline before any mobile, then the required
// fields. mobiles are checked after the payer's own mobile.
func validatePayer(p *payment.Payer, required []string, mobiles ...phoneField) error {
	if !payment.ValidPhone(p.LandlinePhone) {
		return newValidationError(ErrInvalidPhone, "payer.landlinePhone", "must look like (61)3211-1221")
	}
	mobiles = append([]phoneField{{field: "payer.mobilePhone", value: p.MobilePhone}}, mobiles...)
	for _, m := range mobiles {
		if !payment.ValidPhone(m.value) {
			return newValidationError(ErrInvalidCellphone, m.field, "must look like (61)9999-9999")
		}
	}
	if len(required) == 0 {
		return nil
	}
	if err := validate.StructPartial(p, required...); err != nil {
		if fe, ok := firstFieldError(err); ok {
			return newValidationError(ErrMissingField, "payer."+fe.Field(), "is required")
		}
		return newValidationError(ErrMissingField, "payer", err.Error())
	}
	return nil
}
