package go_moip

import (
	"fmt"

	"github.com/stremovskyy/go-moip/payment"
)

// instrument holds the checks specific to one payment method.
type instrument interface {
	// payerFields lists the payer fields the method requires.
	payerFields() []string
	// apply validates the method's own fields and copies them into req.
	apply(in *rawRequest, req *payment.Request) error
	// mobilePhones lists the method's mobile numbers, checked with the payer's.
	mobilePhones(in *rawRequest) []phoneField
}

var instruments = map[payment.Method]instrument{
	payment.MethodBankBillet: bankBillet{},
	payment.MethodBankDebit:  bankDebit{},
	payment.MethodCreditCard: creditCard{},
}

func lookupInstrument(method string) (instrument, error) {
	inst, ok := instruments[payment.Method(method)]
	if !ok {
		if method == "" {
			return nil, newValidationError(ErrUnsupportedInstrument, "paymentMethod", "is required")
		}
		return nil, newValidationError(ErrUnsupportedInstrument, "paymentMethod", fmt.Sprintf("%q is not supported", method))
	}
	return inst, nil
}

type bankBillet struct{}

func (bankBillet) payerFields() []string { return payerFullDetail }

func (bankBillet) apply(*rawRequest, *payment.Request) error { return nil }

func (bankBillet) mobilePhones(*rawRequest) []phoneField { return nil }

type bankDebit struct{}

func (bankDebit) payerFields() []string { return payerFullDetail }

func (bankDebit) mobilePhones(*rawRequest) []phoneField { return nil }

func (bankDebit) apply(in *rawRequest, req *payment.Request) error {
	inst := payment.Institution(in.Institution)
	if !payment.OneOf(inst, payment.DebitInstitutions...) {
		return newValidationError(ErrInvalidInstitution, "institution", fmt.Sprintf("%q is not a debit institution", in.Institution))
	}
	req.Institution = inst
	return nil
}

type creditCard struct{}

func (creditCard) payerFields() []string { return payerLoginOnly }

func (creditCard) mobilePhones(in *rawRequest) []phoneField {
	return []phoneField{{field: "cardholderPhone", value: in.HolderPhone}}
}

func (creditCard) apply(in *rawRequest, req *payment.Request) error {
	inst := payment.Institution(in.Institution)
	if !payment.OneOf(inst, payment.CreditInstitutions...) {
		return newValidationError(ErrInvalidInstitution, "institution", fmt.Sprintf("%q is not a card brand", in.Institution))
	}
	if !payment.ValidExpiry(in.Expiry) {
		return newValidationError(ErrInvalidExpiry, "expiry", "must be MM/YY")
	}
	if in.HolderBirthdate == "" {
		return newValidationError(ErrMissingBirthdate, "cardholderBirthdate", "is required")
	}
	receiving := payment.ReceivingMode(in.Receiving)
	if !payment.OneOf(receiving, payment.ReceivingModes...) {
		return newValidationError(ErrInvalidReceiving, "receivingMode", fmt.Sprintf("%q is not AVista or Parcelado", in.Receiving))
	}
	installments, err := payment.ParseInstallments(in.Installments)
	if err != nil {
		return newValidationError(ErrInvalidInstallments, "installments", err.Error())
	}

	switch {
	case in.CardNumber == "":
		return newValidationError(ErrMissingField, "cardNumber", "is required")
	case in.SecurityCode == "":
		return newValidationError(ErrMissingField, "securityCode", "is required")
	case in.HolderName == "":
		return newValidationError(ErrMissingField, "cardholderName", "is required")
	}

	req.Institution = inst
	req.CreditCard = &payment.CreditCard{
		Number:       in.CardNumber,
		Expiry:       in.Expiry,
		SecurityCode: in.SecurityCode,
		Holder: payment.CardHolder{
			Name:       in.HolderName,
			NationalID: in.HolderNationalID,
			Phone:      in.HolderPhone,
			Birthdate:  in.HolderBirthdate,
		},
		Installments: installments,
		Receiving:    receiving,
	}
	return nil
}
