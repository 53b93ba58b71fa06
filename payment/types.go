package payment

import "github.com/shopspring/decimal"

// Method is the payment instrument discriminator ("forma" in MoIP terms).
type Method string

const (
	MethodBankBillet Method = "BoletoBancario"
	MethodBankDebit  Method = "DebitoBancario"
	MethodCreditCard Method = "CartaoCredito"
)

// Institution is the issuing bank or card brand.
type Institution string

// Debit institutions.
const (
	InstitutionBancoDoBrasil Institution = "BancoDoBrasil"
	InstitutionBradesco      Institution = "Bradesco"
	InstitutionBanrisul      Institution = "Banrisul"
	InstitutionItau          Institution = "Itau"
)

// Credit card brands.
const (
	InstitutionAmericanExpress Institution = "AmericanExpress"
	InstitutionDiners          Institution = "Diners"
	InstitutionMastercard      Institution = "Mastercard"
	InstitutionHipercard       Institution = "Hipercard"
	InstitutionVisa            Institution = "Visa"
)

// ReceivingMode controls how the receiver gets installment payments.
type ReceivingMode string

const (
	ReceivingAVista    ReceivingMode = "AVista"
	ReceivingParcelado ReceivingMode = "Parcelado"
)

var (
	DebitInstitutions  = []Institution{InstitutionBancoDoBrasil, InstitutionBradesco, InstitutionBanrisul, InstitutionItau}
	CreditInstitutions = []Institution{InstitutionAmericanExpress, InstitutionDiners, InstitutionMastercard, InstitutionHipercard, InstitutionVisa}
	ReceivingModes     = []ReceivingMode{ReceivingAVista, ReceivingParcelado}
)

// Payer is the person being charged.
//
// The mapstructure tags are the parameter keys accepted by Build; validate tags mark the
// fields an instrument may require.
type Payer struct {
	Name          string `mapstructure:"name" validate:"required"`
	LoginAlias    string `mapstructure:"loginAlias" validate:"required"`
	Email         string `mapstructure:"email" validate:"required"`
	MobilePhone   string `mapstructure:"mobilePhone"`
	Nickname      string `mapstructure:"nickname"`
	NationalID    string `mapstructure:"nationalId" validate:"required"`
	Street        string `mapstructure:"street" validate:"required"`
	Number        string `mapstructure:"number" validate:"required"`
	Complement    string `mapstructure:"complement"`
	District      string `mapstructure:"district" validate:"required"`
	City          string `mapstructure:"city" validate:"required"`
	State         string `mapstructure:"state" validate:"required"`
	Country       string `mapstructure:"country" validate:"required"`
	PostalCode    string `mapstructure:"postalCode" validate:"required"`
	LandlinePhone string `mapstructure:"landlinePhone"`
}

// Commission allocates part of the payment to another MoIP account.
//
// PercentageValue and FixedValue are kept exactly as supplied; the gateway interprets them.
type Commission struct {
	Reason              string `mapstructure:"reason" validate:"required"`
	PercentageValue     string `mapstructure:"percentageValue" validate:"required_without=FixedValue"`
	FixedValue          string `mapstructure:"fixedValue" validate:"required_without=PercentageValue"`
	VisibleToPayer      bool   `mapstructure:"visibleToPayer"`
	RecipientLoginAlias string `mapstructure:"recipientLoginAlias" validate:"required"`
}

type CardHolder struct {
	Name       string
	NationalID string
	Phone      string
	Birthdate  string
}

type CreditCard struct {
	Number       string
	Expiry       string
	SecurityCode string
	Holder       CardHolder
	Installments int
	Receiving    ReceivingMode
}

// Request is a validated, normalized payment request ready for transport.
//
// Institution is set for bank debit and credit card; CreditCard only for credit card.
type Request struct {
	Method      Method
	Amount      decimal.Decimal
	OwnID       string
	Reason      string
	Payer       Payer
	Commission  *Commission
	Institution Institution
	CreditCard  *CreditCard
}

// AmountString renders the amount the way the gateway expects it ("8.90").
func (r *Request) AmountString() string {
	if r == nil {
		return ""
	}
	return r.Amount.StringFixed(2)
}
