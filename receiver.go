package go_moip

// Receiver is the primary MoIP account credited with the payment.
//
// When unset the gateway credits the account that owns the token.
type Receiver struct {
	LoginAlias string
	Nickname   string
}

func NewReceiver(loginAlias string) Receiver {
	return Receiver{LoginAlias: loginAlias}
}
