package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const individualReportJSON = `{
	"personData": {
		"name": "Maria Souza",
		"motherName": "Ana Souza",
		"personType": "F",
		"age": 34,
		"email": "maria@example.com",
		"phone": "11999990000",
		"gender": "FEMALE",
		"statusRegistration": "ACTIVE",
		"birthDate": "1991-04-12",
		"emailHistory": [
			{"email": "maria@old.com", "lastContact": "2019-10-01"}
		],
		"phoneHistory": [
			{"phone": "1133334444", "lastContact": "2018-02-20"}
		],
		"address": {
			"street": "Rua das Flores",
			"number": "120",
			"complement": "Ap 41",
			"neighborhood": "Centro",
			"city": "São Paulo",
			"state": "SP",
			"zipCode": "01001-000"
		},
		"addressHistory": [
			{"street": "Av Paulista", "number": "1000", "city": "São Paulo", "state": "SP"}
		]
	},
	"presumedData": {
		"income": 3500,
		"paymentProbability": "BETWEEN_20_AND_40_PERCENT",
		"estimatedExpense": "UP_TO_2000"
	},
	"scoreDetails": {
		"score": 720,
		"riskLevel": "HIGH",
		"creditRisk": {"description": "LOW", "ranking": 3},
		"punctuality": {
			"percentages": [98.2, 95.0],
			"classifications": ["LOW", "MEDIUM"]
		}
	},
	"creditLimit": {"range": "FROM_1000_TO_5000"},
	"fraudPrevention": {"alerts": ["02", "99"], "score": 310},
	"financialPendencies": {
		"count": 1,
		"totalValue": 1234.56,
		"pendencies": [
			{
				"availabilityDate": "2024-01-10",
				"occurrenceDate": "2023-12-02",
				"nature": "EMPRESTIMO",
				"creditorDocument": "11222333000181",
				"creditorName": "Banco Exemplo",
				"city": "São Paulo",
				"participantType": "PRINCIPAL",
				"value": 1234.56
			}
		]
	},
	"passageRecord": {
		"last12Months": 5,
		"grouped": [{"period": "2024-05", "quantity": 2}],
		"recent": [
			{"date": "2024-05-02", "quantity": 1, "segment": "VAREJO", "companyName": "Loja X", "companyDocument": "11222333000181"}
		]
	}
}`

func decodeReport(t *testing.T, raw string) map[string]any {
	t.Helper()
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestIndividualFullReport(t *testing.T) {
	r := Individual(decodeReport(t, individualReportJSON))

	assert.Equal(t, "Maria Souza", r.Nome)
	assert.Equal(t, "Ana Souza", r.NomeMae)
	assert.Equal(t, "F", r.TipoPessoa)
	assert.Equal(t, 34.0, r.Idade)
	assert.Equal(t, "Feminino", r.Sexo)
	assert.Equal(t, "Ativo", r.SituacaoReceita)
	assert.Equal(t, "1991-04-12", r.DataNascimento)

	assert.Equal(t, "Rua das Flores", r.Endereco.Logradouro)
	assert.Equal(t, "01001-000", r.Endereco.CEP)
	require.Len(t, r.HistoricoEnderecos, 1)
	assert.Equal(t, "Av Paulista", r.HistoricoEnderecos[0].Logradouro)
	assert.Nil(t, r.HistoricoEnderecos[0].CEP)

	require.Len(t, r.HistoricoEmails, 1)
	assert.Equal(t, "maria@old.com", r.HistoricoEmails[0].Email)
	require.Len(t, r.HistoricoTelefones, 1)
	assert.Equal(t, "1133334444", r.HistoricoTelefones[0].Telefone)

	assert.Equal(t, "R$ 3.500,00", r.RendaPresumida)
	assert.Equal(t, "Entre 20% e 40%", r.ProbabilidadePagamento)
	assert.Equal(t, "Até R$ 2.000", r.DespesaEstimada)

	assert.Equal(t, 720.0, r.Score)
	assert.Equal(t, "Alto", r.NivelRisco)
	assert.Equal(t, "R$ 1.000 até R$ 5.000", r.FaixaLimiteCredito)
	assert.Equal(t, "Baixo", r.DescricaoRiscoCredito)
	assert.Equal(t, 3.0, r.RankingRiscoCredito)

	assert.Equal(t, []string{"02: Documento roubado ou furtado", "99: Código desconhecido"}, r.AlertasFraude)
	assert.Equal(t, 310.0, r.ScoreFraude)

	assert.Equal(t, []any{98.2, 95.0}, r.PontualidadePagamento)
	assert.Equal(t, []any{"Baixo", "Médio"}, r.ClassificacaoPontualidade)

	assert.Equal(t, 1.0, r.TotalPendencias)
	assert.Equal(t, "R$ 1.234,56", r.ValorTotalPendencias)
	require.Len(t, r.Pendencias, 1)
	assert.Equal(t, "Banco Exemplo", r.Pendencias[0].NomeCredor)
	assert.Equal(t, 1234.56, r.Pendencias[0].Valor)

	assert.Equal(t, 5.0, r.Consultas12Meses)
	require.Len(t, r.ConsultasAgrupadas, 1)
	assert.Equal(t, "2024-05", r.ConsultasAgrupadas[0].Periodo)
	require.Len(t, r.ConsultasRecentes, 1)
	assert.Equal(t, "Loja X", r.ConsultasRecentes[0].NomeEmpresa)
}

func TestIndividualEmptyReport(t *testing.T) {
	r := Individual(map[string]any{})

	assert.Nil(t, r.Nome)
	assert.Nil(t, r.Score)
	assert.Nil(t, r.NivelRisco)
	assert.Nil(t, r.RendaPresumida)
	assert.Nil(t, r.Endereco.Logradouro)
	// Absent expense maps to "Não informado", unlike the other scalars.
	assert.Equal(t, "Não informado", r.DespesaEstimada)

	assert.Empty(t, r.HistoricoEmails)
	assert.Empty(t, r.Pendencias)
	assert.Empty(t, r.AlertasFraude)

	// Every key must be present in the serialized form, lists as [].
	out, err := json.Marshal(r)
	assert.NoError(t, err)
	var keys map[string]any
	assert.NoError(t, json.Unmarshal(out, &keys))
	for _, k := range []string{"nome", "nome_mae", "score", "nivel_risco", "endereco", "pendencias", "alertas_fraude", "consultas_12_meses"} {
		assert.Contains(t, keys, k)
	}
	assert.Equal(t, []any{}, keys["pendencias"])
}

func TestIndividualNilReport(t *testing.T) {
	assert.NotPanics(t, func() { Individual(nil) })
}

func TestIndividualErrorEnvelopeTreatedAsEmpty(t *testing.T) {
	// A failed vendor call flows in as a data-shaped envelope; the normalizer
	// must treat it as an empty report, not raise.
	envelope := map[string]any{
		"success": false,
		"error":   503.0,
		"message": "service unavailable",
	}
	r := Individual(envelope)
	assert.Nil(t, r.Nome)
	assert.Empty(t, r.Pendencias)
}
