package go_moip

import (
	"github.com/mitchellh/mapstructure"
	"github.com/stremovskyy/go-moip/payment"
)

// Params is the loosely typed input of Build. Keys are listed in rawRequest,
// payment.Payer and payment.Commission; the original MoIP (Portuguese) keys are accepted too.
type Params = map[string]any

// rawRequest is Params decoded but not yet validated.
type rawRequest struct {
	Method           string              `mapstructure:"paymentMethod"`
	Amount           any                 `mapstructure:"amount"`
	OwnID            string              `mapstructure:"ownId"`
	Reason           string              `mapstructure:"reason"`
	Institution      string              `mapstructure:"institution"`
	CardNumber       string              `mapstructure:"cardNumber"`
	Expiry           string              `mapstructure:"expiry"`
	SecurityCode     string              `mapstructure:"securityCode"`
	HolderName       string              `mapstructure:"cardholderName"`
	HolderNationalID string              `mapstructure:"cardholderNationalId"`
	HolderPhone      string              `mapstructure:"cardholderPhone"`
	HolderBirthdate  string              `mapstructure:"cardholderBirthdate"`
	Installments     any                 `mapstructure:"installments"`
	Receiving        string              `mapstructure:"receivingMode"`
	Payer            *payment.Payer      `mapstructure:"payer"`
	Commission       *payment.Commission `mapstructure:"commission"`
}

var requestAliases = map[string]string{
	"forma":            "paymentMethod",
	"valor":            "amount",
	"id_proprio":       "ownId",
	"razao":            "reason",
	"instituicao":      "institution",
	"numero":           "cardNumber",
	"expiracao":        "expiry",
	"codigo_seguranca": "securityCode",
	"nome":             "cardholderName",
	"identidade":       "cardholderNationalId",
	"telefone":         "cardholderPhone",
	"data_nascimento":  "cardholderBirthdate",
	"parcelas":         "installments",
	"recebimento":      "receivingMode",
	"pagador":          "payer",
	"comissoes":        "commission",
}

var payerAliases = map[string]string{
	"nome":        "name",
	"login_moip":  "loginAlias",
	"tel_cel":     "mobilePhone",
	"apelido":     "nickname",
	"identidade":  "nationalId",
	"logradouro":  "street",
	"numero":      "number",
	"complemento": "complement",
	"bairro":      "district",
	"cidade":      "city",
	"estado":      "state",
	"pais":        "country",
	"cep":         "postalCode",
	"tel_fixo":    "landlinePhone",
}

var commissionAliases = map[string]string{
	"razao":                "reason",
	"valor_percentual":     "percentageValue",
	"valor_fixo":           "fixedValue",
	"mostrar_para_pagador": "visibleToPayer",
	"login_moip":           "recipientLoginAlias",
}

// canonicalize renames alias keys. A canonical key present in the input wins over its alias.
func canonicalize(in map[string]any, aliases map[string]string) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if canon, ok := aliases[k]; ok {
			if _, taken := in[canon]; taken {
				continue
			}
			k = canon
		}
		out[k] = v
	}
	return out
}

func canonicalizeNested(v any, aliases map[string]string) any {
	switch m := v.(type) {
	case map[string]any:
		return canonicalize(m, aliases)
	case map[string]string:
		in := make(map[string]any, len(m))
		for k, s := range m {
			in[k] = s
		}
		return canonicalize(in, aliases)
	default:
		return v
	}
}

func decodeParams(params Params) (*rawRequest, error) {
	if params == nil {
		return nil, newValidationError(ErrMalformedParams, "", "params are nil")
	}
	in := canonicalize(params, requestAliases)
	if p, ok := in["payer"]; ok {
		in["payer"] = canonicalizeNested(p, payerAliases)
	}
	if c, ok := in["commission"]; ok {
		in["commission"] = canonicalizeNested(c, commissionAliases)
	}

	var out rawRequest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(in); err != nil {
		return nil, newValidationError(ErrMalformedParams, "", err.Error())
	}
	return &out, nil
}
