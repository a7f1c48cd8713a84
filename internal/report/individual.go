package report

import (
	"fmt"

	"github.com/stretchr/objx"
)

// Individual flattens a full bureau report for a pessoa física subject.
// Every section of the vendor payload is optional; missing data surfaces as
// null scalars and empty lists, never as an error.
func Individual(data map[string]any) IndividualReport {
	m := objx.Map(data)
	if m == nil {
		m = objx.Map{}
	}

	r := IndividualReport{
		Nome:            value(m, "personData.name"),
		NomeMae:         value(m, "personData.motherName"),
		TipoPessoa:      value(m, "personData.personType"),
		Idade:           value(m, "personData.age"),
		Email:           value(m, "personData.email"),
		Telefone:        value(m, "personData.phone"),
		Sexo:            translated(m, "personData.gender", TranslateGender),
		SituacaoReceita: translated(m, "personData.statusRegistration", TranslateRegistrationStatus),
		DataNascimento:  value(m, "personData.birthDate"),
		Endereco:        endereco(section(m, "personData.address")),

		RendaPresumida:         FormatCurrency(value(m, "presumedData.income")),
		ProbabilidadePagamento: translated(m, "presumedData.paymentProbability", TranslatePaymentProbability),
		DespesaEstimada:        TranslateEstimatedExpense(value(m, "presumedData.estimatedExpense")),

		Score:                 value(m, "scoreDetails.score"),
		NivelRisco:            translated(m, "scoreDetails.riskLevel", TranslateRiskLevel),
		FaixaLimiteCredito:    translated(m, "creditLimit.range", TranslateCreditRange),
		DescricaoRiscoCredito: translated(m, "scoreDetails.creditRisk.description", TranslateRiskRating),
		RankingRiscoCredito:   value(m, "scoreDetails.creditRisk.ranking"),

		ScoreFraude: value(m, "fraudPrevention.score"),

		PontualidadePagamento:     values(m, "scoreDetails.punctuality.percentages"),
		ClassificacaoPontualidade: translatedValues(m, "scoreDetails.punctuality.classifications", TranslateRiskRating),

		TotalPendencias:      value(m, "financialPendencies.count"),
		ValorTotalPendencias: FormatCurrency(value(m, "financialPendencies.totalValue")),

		Consultas12Meses: value(m, "passageRecord.last12Months"),
	}

	r.HistoricoEmails = make([]ContatoEmail, 0)
	for _, item := range maps(m, "personData.emailHistory") {
		r.HistoricoEmails = append(r.HistoricoEmails, ContatoEmail{
			Email:         value(item, "email"),
			UltimoContato: value(item, "lastContact"),
		})
	}

	r.HistoricoTelefones = phoneHistory(m, "personData.phoneHistory")

	r.HistoricoEnderecos = make([]Endereco, 0)
	for _, item := range maps(m, "personData.addressHistory") {
		r.HistoricoEnderecos = append(r.HistoricoEnderecos, endereco(item))
	}

	r.AlertasFraude = make([]string, 0)
	for _, item := range values(m, "fraudPrevention.alerts") {
		if item == nil {
			continue
		}
		r.AlertasFraude = append(r.AlertasFraude, TranslateFraudAlert(fmt.Sprint(item)))
	}

	r.Pendencias = pendencias(m)
	r.ConsultasAgrupadas, r.ConsultasRecentes = consultas(m)

	return r
}

// phoneHistory, pendencias and consultas are shared with the corporate path,
// which flattens the same sub-sections.

func phoneHistory(m objx.Map, path string) []ContatoTelefone {
	out := make([]ContatoTelefone, 0)
	for _, item := range maps(m, path) {
		out = append(out, ContatoTelefone{
			Telefone:      value(item, "phone"),
			UltimoContato: value(item, "lastContact"),
		})
	}
	return out
}

func pendencias(m objx.Map) []Pendencia {
	out := make([]Pendencia, 0)
	for _, item := range maps(m, "financialPendencies.pendencies") {
		out = append(out, Pendencia{
			DataDisponibilizacao: value(item, "availabilityDate"),
			DataOcorrencia:       value(item, "occurrenceDate"),
			NaturezaOperacao:     value(item, "nature"),
			DocumentoCredor:      value(item, "creditorDocument"),
			NomeCredor:           value(item, "creditorName"),
			Cidade:               value(item, "city"),
			TipoParticipante:     value(item, "participantType"),
			Valor:                value(item, "value"),
		})
	}
	return out
}

func consultas(m objx.Map) ([]ConsultaAgrupada, []ConsultaRecente) {
	grouped := make([]ConsultaAgrupada, 0)
	for _, item := range maps(m, "passageRecord.grouped") {
		grouped = append(grouped, ConsultaAgrupada{
			Periodo:    value(item, "period"),
			Quantidade: value(item, "quantity"),
		})
	}
	recent := make([]ConsultaRecente, 0)
	for _, item := range maps(m, "passageRecord.recent") {
		recent = append(recent, ConsultaRecente{
			Data:             value(item, "date"),
			Quantidade:       value(item, "quantity"),
			Segmento:         value(item, "segment"),
			NomeEmpresa:      value(item, "companyName"),
			DocumentoEmpresa: value(item, "companyDocument"),
		})
	}
	return grouped, recent
}
