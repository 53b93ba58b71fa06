package go_moip

import (
	"strings"
	"testing"

	"github.com/stremovskyy/go-moip/internal/xmlutil"
)

func marshalInstruction(t *testing.T, params Params, receiver *Receiver) string {
	t.Helper()
	req, err := Build(params)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := xmlutil.Marshal(newInstruction(req, receiver))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func assertContains(t *testing.T, body string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(body, p) {
			t.Fatalf("expected %q in:\n%s", p, body)
		}
	}
}

func TestInstructionForBilletWithCommission(t *testing.T) {
	configureForTest(t)

	body := marshalInstruction(t, with(billetParams(), "commission", map[string]any{
		"reason": "Motivo", "fixedValue": "100", "recipientLoginAlias": "comissionado",
	}), nil)

	assertContains(t, body,
		`<EnviarInstrucao><InstrucaoUnica><Razao>Pagamento</Razao>`,
		`<Valores><Valor moeda="BRL">8.90</Valor></Valores>`,
		`<IdProprio>qualquer_um</IdProprio>`,
		`<Comissoes><Comissionamento><Razao>Motivo</Razao><Comissionado><LoginMoIP>comissionado</LoginMoIP></Comissionado><ValorFixo>100</ValorFixo><MostrarParaPagador>false</MostrarParaPagador></Comissionamento></Comissoes>`,
		`<PagamentoDireto><Forma>BoletoBancario</Forma></PagamentoDireto>`,
		`<EnderecoCobranca>`,
		`<CEP>70100-000</CEP>`,
		`<TelefoneFixo>(61)3211-1221</TelefoneFixo>`,
	)
	for _, absent := range []string{"<CartaoCredito>", "<Parcelamento>", "<Recebedor>", "<ValorPercentual>"} {
		if strings.Contains(body, absent) {
			t.Fatalf("unexpected %s in:\n%s", absent, body)
		}
	}
}

func TestInstructionForCreditCard(t *testing.T) {
	configureForTest(t)

	body := marshalInstruction(t, creditParams(), &Receiver{LoginAlias: "loja", Nickname: "Loja"})

	assertContains(t, body,
		`<Forma>CartaoCredito</Forma><Instituicao>AmericanExpress</Instituicao>`,
		`<Numero>345678901234564</Numero><Expiracao>08/11</Expiracao><CodigoSeguranca>1234</CodigoSeguranca>`,
		`<Identidade Tipo="CPF">111.111.111-11</Identidade>`,
		`<DataNascimento>30/12/1987</DataNascimento>`,
		`<Parcelamento><Parcelas>2</Parcelas><Recebimento>AVista</Recebimento></Parcelamento>`,
		`<Recebedor><LoginMoIP>loja</LoginMoIP><Apelido>Loja</Apelido></Recebedor>`,
	)
	if strings.Contains(body, "<Comissoes>") {
		t.Fatalf("unexpected commissions in:\n%s", body)
	}
}

func TestInstructionForBankDebit(t *testing.T) {
	configureForTest(t)

	body := marshalInstruction(t, with(debitParams(), "institution", "Itau"), &Receiver{})
	assertContains(t, body, `<PagamentoDireto><Forma>DebitoBancario</Forma><Instituicao>Itau</Instituicao></PagamentoDireto>`)
	if strings.Contains(body, "<Recebedor>") {
		t.Fatalf("empty receiver must be omitted:\n%s", body)
	}
}
