package report

import "fmt"

// fraudAlertDescriptions maps the bureau's fraud-prevention alert codes to
// their pt-BR descriptions. The table mirrors the vendor's published code
// list; codes the bureau adds later fall back to "Código desconhecido" so a
// catalog update never breaks a response.
var fraudAlertDescriptions = map[string]string{
	"01": "Documento extraviado",
	"02": "Documento roubado ou furtado",
	"03": "Documento cancelado",
	"04": "Documento suspenso na Receita Federal",
	"05": "Titular falecido",
	"06": "Suspeita de uso indevido do documento",
	"07": "Alerta de identidade registrado pelo titular",
	"08": "Documento incluído em boletim de ocorrência",
	"09": "Endereço divergente do cadastro oficial",
	"10": "Telefone divergente do cadastro oficial",
	"11": "Data de nascimento divergente",
	"12": "Nome divergente do cadastro oficial",
	"13": "Nome da mãe divergente",
	"14": "Documento emitido recentemente",
	"15": "Segunda via de documento emitida recentemente",
	"16": "Múltiplas consultas em curto período",
	"17": "Consulta originada de região atípica",
	"18": "Tentativa de abertura de crédito recusada",
	"19": "Cadastro com indício de fraude confirmada",
	"20": "Cadastro em análise de fraude",
	"21": "Renda declarada incompatível",
	"22": "Ocupação declarada incompatível",
	"23": "Participação societária recente",
	"24": "Empresa constituída recentemente",
	"25": "Sócio com restrição cadastral",
	"26": "Quadro societário alterado recentemente",
	"27": "Endereço comercial compartilhado por múltiplas empresas",
	"28": "Atividade econômica divergente da declarada",
	"29": "Faturamento incompatível com o porte",
	"30": "Conta bancária com alerta de fraude",
	"31": "Cartão com alerta de fraude",
	"32": "Cheque devolvido por suspeita de fraude",
	"33": "Contestação de transação registrada",
	"34": "Dispositivo associado a fraude anterior",
	"35": "E-mail associado a fraude anterior",
	"36": "Telefone associado a fraude anterior",
	"37": "Endereço associado a fraude anterior",
	"38": "Biometria divergente",
	"39": "Assinatura divergente",
	"40": "Selfie divergente do documento",
	"41": "Documento com indício de adulteração",
	"42": "Foto do documento com indício de montagem",
	"43": "Dados vazados em incidente de segurança",
	"44": "Credenciais comprometidas",
	"45": "Vítima de roubo de identidade",
	"46": "Sequestro de linha telefônica (SIM swap)",
	"47": "Portabilidade de linha recente",
	"48": "Conta de e-mail criada recentemente",
	"49": "Perfil sem histórico de crédito",
	"50": "Primeiro acesso ao sistema financeiro",
	"51": "Restrição judicial sobre o documento",
	"52": "Documento bloqueado a pedido do titular",
}

// TranslateFraudAlert renders an alert code as "<code>: <description>".
func TranslateFraudAlert(code string) string {
	desc, ok := fraudAlertDescriptions[code]
	if !ok {
		desc = "Código desconhecido"
	}
	return fmt.Sprintf("%s: %s", code, desc)
}
