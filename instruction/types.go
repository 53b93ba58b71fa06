// Package instruction holds the XML wire types of the MoIP "Instrução Única" API.
package instruction

import "encoding/xml"

// Instruction is the body of POST /ws/alpha/EnviarInstrucao/Unica.
type Instruction struct {
	XMLName xml.Name `xml:"EnviarInstrucao"`
	Single  Single   `xml:"InstrucaoUnica"`
}

type Single struct {
	Reason        string         `xml:"Razao"`
	Values        []Value        `xml:"Valores>Valor"`
	OwnID         string         `xml:"IdProprio"`
	Commissions   *Commissions   `xml:"Comissoes,omitempty"`
	DirectPayment *DirectPayment `xml:"PagamentoDireto,omitempty"`
	Payer         Payer          `xml:"Pagador"`
	Receiver      *Receiver      `xml:"Recebedor,omitempty"`
}

type Value struct {
	Currency string `xml:"moeda,attr"`
	Amount   string `xml:",chardata"`
}

type Commissions struct {
	Items []Commission `xml:"Comissionamento"`
}

type Commission struct {
	Reason          string `xml:"Razao"`
	Recipient       string `xml:"Comissionado>LoginMoIP"`
	PercentageValue string `xml:"ValorPercentual,omitempty"`
	FixedValue      string `xml:"ValorFixo,omitempty"`
	VisibleToPayer  bool   `xml:"MostrarParaPagador"`
}

type DirectPayment struct {
	Method       string        `xml:"Forma"`
	Institution  string        `xml:"Instituicao,omitempty"`
	CreditCard   *CreditCard   `xml:"CartaoCredito,omitempty"`
	Installments *Installments `xml:"Parcelamento,omitempty"`
}

type CreditCard struct {
	Number       string `xml:"Numero"`
	Expiry       string `xml:"Expiracao"`
	SecurityCode string `xml:"CodigoSeguranca"`
	Holder       Holder `xml:"Portador"`
}

type Holder struct {
	Name      string   `xml:"Nome"`
	Identity  Identity `xml:"Identidade"`
	Phone     string   `xml:"TelefoneCelular,omitempty"`
	Birthdate string   `xml:"DataNascimento"`
}

type Identity struct {
	Type  string `xml:"Tipo,attr,omitempty"`
	Value string `xml:",chardata"`
}

type Installments struct {
	Count     int    `xml:"Parcelas"`
	Receiving string `xml:"Recebimento"`
}

type Payer struct {
	Name        string  `xml:"Nome,omitempty"`
	LoginMoIP   string  `xml:"LoginMoIP,omitempty"`
	Email       string  `xml:"Email,omitempty"`
	MobilePhone string  `xml:"TelefoneCelular,omitempty"`
	Nickname    string  `xml:"Apelido,omitempty"`
	Identity    string  `xml:"Identidade,omitempty"`
	Address     Address `xml:"EnderecoCobranca"`
}

type Address struct {
	Street     string `xml:"Logradouro,omitempty"`
	Number     string `xml:"Numero,omitempty"`
	Complement string `xml:"Complemento,omitempty"`
	District   string `xml:"Bairro,omitempty"`
	City       string `xml:"Cidade,omitempty"`
	State      string `xml:"Estado,omitempty"`
	Country    string `xml:"Pais,omitempty"`
	PostalCode string `xml:"CEP,omitempty"`
	Phone      string `xml:"TelefoneFixo,omitempty"`
}

type Receiver struct {
	LoginMoIP string `xml:"LoginMoIP"`
	Nickname  string `xml:"Apelido,omitempty"`
}

// Response is the answer to an instruction. The gateway wraps it in a namespaced
// element, so XMLName only matches the local name.
type Response struct {
	XMLName xml.Name `xml:"EnviarInstrucaoUnicaResponse"`
	Result  Result   `xml:"Resposta"`
}

type Result struct {
	ID     string  `xml:"ID"`
	Status string  `xml:"Status"`
	Token  string  `xml:"Token"`
	Errors []Error `xml:"Erro"`
}

type Error struct {
	Code    string `xml:"Codigo,attr"`
	Message string `xml:",chardata"`
}
