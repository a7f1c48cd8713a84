package report

import "github.com/stretchr/objx"

// Corporate flattens a full bureau report for a pessoa jurídica subject.
// The estimated-expense field is deliberately passed through untranslated,
// unlike the individual path; callers depend on the raw enumeration here.
func Corporate(data map[string]any) CorporateReport {
	m := objx.Map(data)
	if m == nil {
		m = objx.Map{}
	}

	r := CorporateReport{
		RazaoSocial:       value(m, "personData.officialName"),
		NomeFantasia:      value(m, "personData.tradeName"),
		TipoPessoa:        value(m, "personData.personType"),
		SituacaoReceita:   translated(m, "personData.statusRegistration", TranslateRegistrationStatus),
		NaturezaJuridica:  value(m, "personData.legalNature"),
		QuantidadeFiliais: value(m, "personData.branchCount"),
		DataFundacao:      value(m, "personData.foundationDate"),
		Email:             value(m, "personData.email"),
		Telefone:          value(m, "personData.phone"),
		Endereco:          endereco(section(m, "personData.address")),

		TotalRelacionamentos: value(m, "companyRelations.count"),

		QuadroSocietario: QuadroSocietario{
			TotalSocios:         value(m, "shareholderBoard.summary.totalShareholders"),
			CapitalSocialTotal:  value(m, "shareholderBoard.summary.totalShareCapital"),
			TotalRepresentantes: value(m, "shareholderBoard.summary.totalRepresentatives"),
		},

		ScoreAtividade: value(m, "activityIndicator.score"),
		NivelAtividade: value(m, "activityIndicator.level"),

		RendaPresumida:   FormatCurrency(value(m, "presumedData.income")),
		DespesaEstimada:  value(m, "presumedData.estimatedExpense"),
		FaturamentoAnual: value(m, "presumedData.annualRevenue"),
		PorteEmpresa:     value(m, "presumedData.companySize"),

		Score:      value(m, "scoreDetails.score"),
		NivelRisco: translated(m, "scoreDetails.riskLevel", TranslateRiskRating),

		RecomendacaoNegocio: value(m, "businessProposal.recommendation"),

		TotalPendencias:      value(m, "financialPendencies.count"),
		ValorTotalPendencias: FormatCurrency(value(m, "financialPendencies.totalValue")),

		Consultas12Meses: value(m, "passageRecord.last12Months"),

		LimiteCreditoArrojado:    value(m, "creditLimit.risky"),
		LimiteCreditoModerado:    value(m, "creditLimit.moderate"),
		LimiteCreditoConservador: value(m, "creditLimit.conservative"),

		PontualidadePagamento:     values(m, "scoreDetails.punctuality.percentages"),
		ClassificacaoPontualidade: translatedValues(m, "scoreDetails.punctuality.classifications", TranslateRiskRating),

		CodigosScore:        values(m, "scoreDetails.reasonCodes"),
		MotivosRecomendacao: values(m, "businessProposal.reasons"),
	}

	r.HistoricoTelefones = phoneHistory(m, "personData.phoneHistory")

	r.HistoricoEnderecos = make([]Endereco, 0)
	for _, item := range maps(m, "personData.addressHistory") {
		r.HistoricoEnderecos = append(r.HistoricoEnderecos, endereco(item))
	}

	r.EmpresasRelacionadas = make([]EmpresaRelacionada, 0)
	for _, item := range maps(m, "companyRelations.relations") {
		r.EmpresasRelacionadas = append(r.EmpresasRelacionadas, EmpresaRelacionada{
			Documento:              value(item, "document"),
			Nome:                   value(item, "name"),
			Situacao:               value(item, "status"),
			PercentualParticipacao: value(item, "participationPercentage"),
			DataInclusao:           value(item, "inclusionDate"),
			UltimaAtualizacao:      value(item, "lastUpdate"),
		})
	}

	r.SociosAdministradores = make([]SocioAdministrador, 0)
	for _, item := range maps(m, "shareholderBoard.administrators") {
		r.SociosAdministradores = append(r.SociosAdministradores, SocioAdministrador{
			Documento:              value(item, "document"),
			Nome:                   value(item, "name"),
			SituacaoReceita:        value(item, "federalStatus"),
			RegistroNegativo:       value(item, "negativeRecord"),
			ValorParticipacao:      value(item, "participationValue"),
			PercentualParticipacao: value(item, "participationPercentage"),
			Cargo:                  value(item, "role"),
			AssinaPelaEmpresa:      value(item, "signsForCompany"),
			UltimaAtualizacao:      value(item, "lastUpdate"),
		})
	}

	r.AnaliseDebitos = make([]AnaliseDebito, 0)
	for _, item := range maps(m, "businessAnalytics.indicators") {
		r.AnaliseDebitos = append(r.AnaliseDebitos, AnaliseDebito{
			Indicador: value(item, "indicator"),
			Valor:     value(item, "value"),
			Risco:     value(item, "risk"),
			Legenda:   value(item, "legend"),
			Conceito:  value(item, "concept"),
		})
	}

	r.Pendencias = pendencias(m)
	r.ConsultasAgrupadas, r.ConsultasRecentes = consultas(m)

	return r
}
