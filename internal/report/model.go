package report

// Flattened, localized result shapes returned to API callers. Scalar fields
// are `any` on purpose: a field missing from the bureau payload serializes as
// null, mirroring source-section presence instead of inventing zero values.
// List fields are always non-nil so absent vendor lists serialize as [].

// Endereco is the flattened current or historical address.
type Endereco struct {
	Logradouro  any `json:"logradouro"`
	Numero      any `json:"numero"`
	Complemento any `json:"complemento"`
	Bairro      any `json:"bairro"`
	Cidade      any `json:"cidade"`
	Estado      any `json:"estado"`
	CEP         any `json:"cep"`
}

// ContatoEmail pairs an e-mail with its last contact date.
type ContatoEmail struct {
	Email         any `json:"email"`
	UltimoContato any `json:"ultimo_contato"`
}

// ContatoTelefone pairs a phone number with its last contact date.
type ContatoTelefone struct {
	Telefone      any `json:"telefone"`
	UltimoContato any `json:"ultimo_contato"`
}

// Pendencia is one financial pendency record.
type Pendencia struct {
	DataDisponibilizacao any `json:"data_disponibilizacao"`
	DataOcorrencia       any `json:"data_ocorrencia"`
	NaturezaOperacao     any `json:"natureza_operacao"`
	DocumentoCredor      any `json:"documento_credor"`
	NomeCredor           any `json:"nome_credor"`
	Cidade               any `json:"cidade"`
	TipoParticipante     any `json:"tipo_participante"`
	Valor                any `json:"valor"`
}

// ConsultaAgrupada is a query-record bucket (period + quantity).
type ConsultaAgrupada struct {
	Periodo    any `json:"periodo"`
	Quantidade any `json:"quantidade"`
}

// ConsultaRecente details a recent credit query against the subject.
type ConsultaRecente struct {
	Data             any `json:"data"`
	Quantidade       any `json:"quantidade"`
	Segmento         any `json:"segmento"`
	NomeEmpresa      any `json:"nome_empresa"`
	DocumentoEmpresa any `json:"documento_empresa"`
}

// EmpresaRelacionada is a company related to the corporate subject.
type EmpresaRelacionada struct {
	Documento              any `json:"documento"`
	Nome                   any `json:"nome"`
	Situacao               any `json:"situacao"`
	PercentualParticipacao any `json:"percentual_participacao"`
	DataInclusao           any `json:"data_inclusao"`
	UltimaAtualizacao      any `json:"ultima_atualizacao"`
}

// QuadroSocietario summarizes the shareholder board.
type QuadroSocietario struct {
	TotalSocios         any `json:"total_socios"`
	CapitalSocialTotal  any `json:"capital_social_total"`
	TotalRepresentantes any `json:"total_representantes"`
}

// SocioAdministrador is one administrative shareholder.
type SocioAdministrador struct {
	Documento              any `json:"documento"`
	Nome                   any `json:"nome"`
	SituacaoReceita        any `json:"situacao_receita"`
	RegistroNegativo       any `json:"registro_negativo"`
	ValorParticipacao      any `json:"valor_participacao"`
	PercentualParticipacao any `json:"percentual_participacao"`
	Cargo                  any `json:"cargo"`
	AssinaPelaEmpresa      any `json:"assina_pela_empresa"`
	UltimaAtualizacao      any `json:"ultima_atualizacao"`
}

// AnaliseDebito is one debt-analytics indicator.
type AnaliseDebito struct {
	Indicador any `json:"indicador"`
	Valor     any `json:"valor"`
	Risco     any `json:"risco"`
	Legenda   any `json:"legenda"`
	Conceito  any `json:"conceito"`
}

// IndividualReport is the flattened full report for a pessoa física subject.
type IndividualReport struct {
	Nome                      any                `json:"nome"`
	NomeMae                   any                `json:"nome_mae"`
	TipoPessoa                any                `json:"tipo_pessoa"`
	Idade                     any                `json:"idade"`
	Email                     any                `json:"email"`
	Telefone                  any                `json:"telefone"`
	Sexo                      any                `json:"sexo"`
	SituacaoReceita           any                `json:"situacao_receita"`
	DataNascimento            any                `json:"data_nascimento"`
	HistoricoEmails           []ContatoEmail     `json:"historico_emails"`
	HistoricoTelefones        []ContatoTelefone  `json:"historico_telefones"`
	Endereco                  Endereco           `json:"endereco"`
	HistoricoEnderecos        []Endereco         `json:"historico_enderecos"`
	RendaPresumida            any                `json:"renda_presumida"`
	ProbabilidadePagamento    any                `json:"probabilidade_pagamento"`
	DespesaEstimada           any                `json:"despesa_estimada"`
	Score                     any                `json:"score"`
	NivelRisco                any                `json:"nivel_risco"`
	FaixaLimiteCredito        any                `json:"faixa_limite_credito"`
	DescricaoRiscoCredito     any                `json:"descricao_risco_credito"`
	RankingRiscoCredito       any                `json:"ranking_risco_credito"`
	AlertasFraude             []string           `json:"alertas_fraude"`
	ScoreFraude               any                `json:"score_fraude"`
	PontualidadePagamento     []any              `json:"pontualidade_pagamento"`
	ClassificacaoPontualidade []any              `json:"classificacao_pontualidade"`
	TotalPendencias           any                `json:"total_pendencias"`
	ValorTotalPendencias      any                `json:"valor_total_pendencias"`
	Pendencias                []Pendencia        `json:"pendencias"`
	Consultas12Meses          any                `json:"consultas_12_meses"`
	ConsultasAgrupadas        []ConsultaAgrupada `json:"consultas_agrupadas"`
	ConsultasRecentes         []ConsultaRecente  `json:"consultas_recentes"`
}

// CorporateReport is the flattened full report for a pessoa jurídica subject.
type CorporateReport struct {
	RazaoSocial               any                  `json:"razao_social"`
	NomeFantasia              any                  `json:"nome_fantasia"`
	TipoPessoa                any                  `json:"tipo_pessoa"`
	SituacaoReceita           any                  `json:"situacao_receita"`
	NaturezaJuridica          any                  `json:"natureza_juridica"`
	QuantidadeFiliais         any                  `json:"quantidade_filiais"`
	DataFundacao              any                  `json:"data_fundacao"`
	Email                     any                  `json:"email"`
	Telefone                  any                  `json:"telefone"`
	HistoricoTelefones        []ContatoTelefone    `json:"historico_telefones"`
	Endereco                  Endereco             `json:"endereco"`
	HistoricoEnderecos        []Endereco           `json:"historico_enderecos"`
	EmpresasRelacionadas      []EmpresaRelacionada `json:"empresas_relacionadas"`
	TotalRelacionamentos      any                  `json:"total_relacionamentos"`
	QuadroSocietario          QuadroSocietario     `json:"quadro_societario"`
	SociosAdministradores     []SocioAdministrador `json:"socios_administradores"`
	ScoreAtividade            any                  `json:"score_atividade"`
	NivelAtividade            any                  `json:"nivel_atividade"`
	RendaPresumida            any                  `json:"renda_presumida"`
	DespesaEstimada           any                  `json:"despesa_estimada"`
	FaturamentoAnual          any                  `json:"faturamento_anual"`
	PorteEmpresa              any                  `json:"porte_empresa"`
	Score                     any                  `json:"score"`
	NivelRisco                any                  `json:"nivel_risco"`
	CodigosScore              []any                `json:"codigos_score"`
	RecomendacaoNegocio       any                  `json:"recomendacao_negocio"`
	MotivosRecomendacao       []any                `json:"motivos_recomendacao"`
	AnaliseDebitos            []AnaliseDebito      `json:"analise_debitos"`
	TotalPendencias           any                  `json:"total_pendencias"`
	ValorTotalPendencias      any                  `json:"valor_total_pendencias"`
	Pendencias                []Pendencia          `json:"pendencias"`
	Consultas12Meses          any                  `json:"consultas_12_meses"`
	ConsultasAgrupadas        []ConsultaAgrupada   `json:"consultas_agrupadas"`
	ConsultasRecentes         []ConsultaRecente    `json:"consultas_recentes"`
	LimiteCreditoArrojado     any                  `json:"limite_credito_arrojado"`
	LimiteCreditoModerado     any                  `json:"limite_credito_moderado"`
	LimiteCreditoConservador  any                  `json:"limite_credito_conservador"`
	PontualidadePagamento     []any                `json:"pontualidade_pagamento"`
	ClassificacaoPontualidade []any                `json:"classificacao_pontualidade"`
}

// ScoreRecord is the lighter-weight shape returned by the score endpoint.
type ScoreRecord struct {
	Documento  any   `json:"documento"`
	Score      any   `json:"score"`
	NivelRisco any   `json:"nivel_risco"`
	Codigos    []any `json:"codigos"`
}
