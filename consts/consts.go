package consts

const (
	HeaderAuthorization = "Authorization"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"

	ContentTypeXML = "application/xml"
)

// Base URLs.
const (
	SandboxURI    = "https://desenvolvedor.moip.com.br/sandbox" // test
	ProductionURI = "https://www.moip.com.br"                   // prod
)

// Endpoint paths, relative to the configured URI.
const (
	InstructionPath = "/ws/alpha/EnviarInstrucao/Unica"
	QueryPath       = "/ws/alpha/ConsultarInstrucao"
	PaymentPagePath = "/Instrucao.do"
)

// CurrencyBRL is the only currency the direct-payment API accepts.
const CurrencyBRL = "BRL"

// IdentityTypeCPF tags the cardholder national id in the XML payload.
const IdentityTypeCPF = "CPF"
