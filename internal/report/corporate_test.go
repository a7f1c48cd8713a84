package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const corporateReportJSON = `{
	"personData": {
		"officialName": "Acme Comércio Ltda",
		"tradeName": "Acme",
		"personType": "J",
		"statusRegistration": "SUSPENDED",
		"legalNature": "206-2 Sociedade Empresária Limitada",
		"branchCount": 3,
		"foundationDate": "2005-08-01",
		"email": "contato@acme.com.br",
		"phone": "1130001000",
		"phoneHistory": [{"phone": "1130009999", "lastContact": "2016-01-15"}],
		"address": {"street": "Rua Industrial", "number": "500", "city": "Guarulhos", "state": "SP", "zipCode": "07000-000"},
		"addressHistory": []
	},
	"presumedData": {
		"income": 185000.5,
		"estimatedExpense": "UP_TO_2000",
		"annualRevenue": "FROM_1000000_TO_5000000",
		"companySize": "ME"
	},
	"scoreDetails": {
		"score": 540,
		"riskLevel": "MEDIUM",
		"reasonCodes": ["R01", "R17"],
		"punctuality": {"percentages": [88.0], "classifications": ["HIGH"]}
	},
	"activityIndicator": {"score": 62, "level": "ATIVA"},
	"shareholderBoard": {
		"summary": {"totalShareholders": 2, "totalShareCapital": 100000, "totalRepresentatives": 1},
		"administrators": [
			{
				"document": "52998224725",
				"name": "João Lima",
				"federalStatus": "REGULAR",
				"negativeRecord": false,
				"participationValue": 60000,
				"participationPercentage": 60,
				"role": "Sócio-Administrador",
				"signsForCompany": true,
				"lastUpdate": "2023-11-30"
			}
		]
	},
	"companyRelations": {
		"count": 1,
		"relations": [
			{"document": "11222333000181", "name": "Acme Logística Ltda", "status": "ATIVA", "participationPercentage": 100, "inclusionDate": "2010-03-03", "lastUpdate": "2024-01-02"}
		]
	},
	"businessProposal": {
		"recommendation": "APPROVE_WITH_GUARANTEE",
		"reasons": ["HIGH_DEBT_RATIO", "RECENT_PENDENCIES"]
	},
	"businessAnalytics": {
		"indicators": [
			{"indicator": "ENDIVIDAMENTO", "value": 0.42, "risk": "MEDIUM", "legend": "B", "concept": "Endividamento moderado"}
		]
	},
	"creditLimit": {
		"risky": {"min": 10000, "max": 50000},
		"moderate": {"min": 5000, "max": 25000},
		"conservative": {"min": 1000, "max": 10000}
	},
	"financialPendencies": {"count": 0, "totalValue": 0, "pendencies": []},
	"passageRecord": {"last12Months": 9, "grouped": [], "recent": []}
}`

func TestCorporateFullReport(t *testing.T) {
	r := Corporate(decodeReport(t, corporateReportJSON))

	assert.Equal(t, "Acme Comércio Ltda", r.RazaoSocial)
	assert.Equal(t, "Acme", r.NomeFantasia)
	assert.Equal(t, "J", r.TipoPessoa)
	assert.Equal(t, "Suspenso", r.SituacaoReceita)
	assert.Equal(t, 3.0, r.QuantidadeFiliais)
	assert.Equal(t, "2005-08-01", r.DataFundacao)

	assert.Equal(t, "Rua Industrial", r.Endereco.Logradouro)
	require.Len(t, r.HistoricoTelefones, 1)
	assert.Empty(t, r.HistoricoEnderecos)

	require.Len(t, r.EmpresasRelacionadas, 1)
	assert.Equal(t, "Acme Logística Ltda", r.EmpresasRelacionadas[0].Nome)
	assert.Equal(t, 1.0, r.TotalRelacionamentos)

	assert.Equal(t, 2.0, r.QuadroSocietario.TotalSocios)
	require.Len(t, r.SociosAdministradores, 1)
	assert.Equal(t, "João Lima", r.SociosAdministradores[0].Nome)
	assert.Equal(t, true, r.SociosAdministradores[0].AssinaPelaEmpresa)

	assert.Equal(t, 62.0, r.ScoreAtividade)
	assert.Equal(t, "ATIVA", r.NivelAtividade)

	assert.Equal(t, "R$ 185.000,50", r.RendaPresumida)
	// Intentional asymmetry with the individual path: the corporate expense
	// enumeration is NOT translated. Do not "fix" without product sign-off.
	assert.Equal(t, "UP_TO_2000", r.DespesaEstimada)
	assert.Equal(t, "FROM_1000000_TO_5000000", r.FaturamentoAnual)
	assert.Equal(t, "ME", r.PorteEmpresa)

	assert.Equal(t, 540.0, r.Score)
	assert.Equal(t, "Médio", r.NivelRisco)
	assert.Equal(t, []any{"R01", "R17"}, r.CodigosScore)

	assert.Equal(t, "APPROVE_WITH_GUARANTEE", r.RecomendacaoNegocio)
	assert.Equal(t, []any{"HIGH_DEBT_RATIO", "RECENT_PENDENCIES"}, r.MotivosRecomendacao)

	require.Len(t, r.AnaliseDebitos, 1)
	assert.Equal(t, "ENDIVIDAMENTO", r.AnaliseDebitos[0].Indicador)
	assert.Equal(t, "Endividamento moderado", r.AnaliseDebitos[0].Conceito)

	assert.Equal(t, 0.0, r.TotalPendencias)
	assert.Equal(t, "R$ 0,00", r.ValorTotalPendencias)
	assert.Empty(t, r.Pendencias)
	assert.Equal(t, 9.0, r.Consultas12Meses)

	// Credit-limit postures pass through unmodified.
	risky, ok := r.LimiteCreditoArrojado.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 50000.0, risky["max"])
	assert.NotNil(t, r.LimiteCreditoModerado)
	assert.NotNil(t, r.LimiteCreditoConservador)

	assert.Equal(t, []any{88.0}, r.PontualidadePagamento)
	assert.Equal(t, []any{"Alto"}, r.ClassificacaoPontualidade)
}

func TestCorporateEmptyReport(t *testing.T) {
	r := Corporate(map[string]any{})

	assert.Nil(t, r.RazaoSocial)
	assert.Nil(t, r.NivelRisco)
	// Raw passthrough on the corporate path: absence stays null instead of
	// becoming "Não informado" as on the individual path.
	assert.Nil(t, r.DespesaEstimada)

	assert.Empty(t, r.EmpresasRelacionadas)
	assert.Empty(t, r.SociosAdministradores)
	assert.Empty(t, r.AnaliseDebitos)

	out, err := json.Marshal(r)
	assert.NoError(t, err)
	var keys map[string]any
	assert.NoError(t, json.Unmarshal(out, &keys))
	for _, k := range []string{"razao_social", "quadro_societario", "codigos_score", "limite_credito_arrojado", "despesa_estimada"} {
		assert.Contains(t, keys, k)
	}
}
