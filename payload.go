package go_moip

import (
	"github.com/stremovskyy/go-moip/consts"
	"github.com/stremovskyy/go-moip/instruction"
	"github.com/stremovskyy/go-moip/payment"
)

// newInstruction maps a validated request onto the EnviarInstrucao body.
func newInstruction(req *payment.Request, receiver *Receiver) *instruction.Instruction {
	p := req.Payer
	single := instruction.Single{
		Reason: req.Reason,
		Values: []instruction.Value{{Currency: consts.CurrencyBRL, Amount: req.AmountString()}},
		OwnID:  req.OwnID,
		Payer: instruction.Payer{
			Name:        p.Name,
			LoginMoIP:   p.LoginAlias,
			Email:       p.Email,
			MobilePhone: p.MobilePhone,
			Nickname:    p.Nickname,
			Identity:    p.NationalID,
			Address: instruction.Address{
				Street:     p.Street,
				Number:     p.Number,
				Complement: p.Complement,
				District:   p.District,
				City:       p.City,
				State:      p.State,
				Country:    p.Country,
				PostalCode: p.PostalCode,
				Phone:      p.LandlinePhone,
			},
		},
		DirectPayment: newDirectPayment(req),
	}

	if c := req.Commission; c != nil {
		single.Commissions = &instruction.Commissions{Items: []instruction.Commission{{
			Reason:          c.Reason,
			Recipient:       c.RecipientLoginAlias,
			PercentageValue: c.PercentageValue,
			FixedValue:      c.FixedValue,
			VisibleToPayer:  c.VisibleToPayer,
		}}}
	}
	if receiver != nil && receiver.LoginAlias != "" {
		single.Receiver = &instruction.Receiver{LoginMoIP: receiver.LoginAlias, Nickname: receiver.Nickname}
	}

	return &instruction.Instruction{Single: single}
}

func newDirectPayment(req *payment.Request) *instruction.DirectPayment {
	dp := &instruction.DirectPayment{
		Method:      string(req.Method),
		Institution: string(req.Institution),
	}
	cc := req.CreditCard
	if cc == nil {
		return dp
	}

	identity := instruction.Identity{Value: cc.Holder.NationalID}
	if identity.Value != "" {
		identity.Type = consts.IdentityTypeCPF
	}
	dp.CreditCard = &instruction.CreditCard{
		Number:       cc.Number,
		Expiry:       cc.Expiry,
		SecurityCode: cc.SecurityCode,
		Holder: instruction.Holder{
			Name:      cc.Holder.Name,
			Identity:  identity,
			Phone:     cc.Holder.Phone,
			Birthdate: cc.Holder.Birthdate,
		},
	}
	dp.Installments = &instruction.Installments{
		Count:     cc.Installments,
		Receiving: string(cc.Receiving),
	}
	return dp
}
