package go_moip

import (
	"github.com/stremovskyy/go-moip/log"
	"github.com/stremovskyy/go-moip/payment"
)

// Moip is the main SDK interface.
type Moip interface {
	Build(params Params) (*payment.Request, error)
	DirectPayment() *DirectPaymentService
	PaymentPageURL(token string) (string, error)
	Config() Config

	SetLogLevel(level log.Level)
}

var _ Moip = (*Client)(nil)
