package go_moip

import (
	"github.com/stremovskyy/go-moip/payment"
)

// Build validates params against the process-wide configuration and returns the
// normalized request. It fails with the first *ValidationError found, in this order:
// configuration, decoding, payment method, common fields, method-specific fields,
// payer, commission.
func Build(params Params) (*payment.Request, error) {
	return build(CurrentConfig(), params)
}

func build(cfg Config, params Params) (*payment.Request, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}

	in, err := decodeParams(params)
	if err != nil {
		return nil, err
	}

	inst, err := lookupInstrument(in.Method)
	if err != nil {
		return nil, err
	}

	req := &payment.Request{Method: payment.Method(in.Method)}
	if err := applyCommon(in, req); err != nil {
		return nil, err
	}
	if err := inst.apply(in, req); err != nil {
		return nil, err
	}
	if err := validatePayer(in.Payer, inst.payerFields(), inst.mobilePhones(in)...); err != nil {
		return nil, err
	}
	req.Payer = *in.Payer

	if in.Commission != nil {
		if err := validateCommission(in.Commission); err != nil {
			return nil, err
		}
		c := *in.Commission
		req.Commission = &c
	}

	return req, nil
}

func applyCommon(in *rawRequest, req *payment.Request) error {
	amount, err := payment.ParseAmount(in.Amount)
	if err != nil {
		return newValidationError(ErrInvalidValue, "amount", err.Error())
	}
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return newValidationError(ErrInvalidValue, "amount", "rounds to zero")
	}

	switch {
	case in.OwnID == "":
		return newValidationError(ErrMissingField, "ownId", "is required")
	case in.Reason == "":
		return newValidationError(ErrMissingField, "reason", "is required")
	case in.Payer == nil:
		return newValidationError(ErrMissingField, "payer", "is required")
	}

	req.Amount = amount
	req.OwnID = in.OwnID
	req.Reason = in.Reason
	return nil
}
