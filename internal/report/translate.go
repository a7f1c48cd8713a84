package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Field-level translators from bureau enumerations to pt-BR display strings.
// Every translator falls back to the original value when the input matches no
// known enumeration, so new vendor codes degrade to passthrough instead of
// failing.

// riskLevelNames backs the individual report's risk level. Its fallback
// enumeration entry is UNDETERMINED.
var riskLevelNames = map[string]string{
	"VERY_LOW":     "Muito Baixo",
	"LOW":          "Baixo",
	"MEDIUM":       "Médio",
	"HIGH":         "Alto",
	"VERY_HIGH":    "Muito Alto",
	"UNDETERMINED": "Indeterminado",
}

// riskRatingNames backs the corporate risk level, the credit-risk description
// and the score endpoint. Near-duplicate of riskLevelNames except its
// fallback entry is NOT_INFORMED. The two tables are intentionally separate:
// merging them would change what unmapped inputs translate to.
var riskRatingNames = map[string]string{
	"VERY_LOW":     "Muito Baixo",
	"LOW":          "Baixo",
	"MEDIUM":       "Médio",
	"HIGH":         "Alto",
	"VERY_HIGH":    "Muito Alto",
	"NOT_INFORMED": "Não informado",
}

// TranslateRiskLevel maps a risk enumeration using the UNDETERMINED table.
func TranslateRiskLevel(s string) string {
	if v, ok := riskLevelNames[s]; ok {
		return v
	}
	return s
}

// TranslateRiskRating maps a risk enumeration using the NOT_INFORMED table.
func TranslateRiskRating(s string) string {
	if v, ok := riskRatingNames[s]; ok {
		return v
	}
	return s
}

var genderNames = map[string]string{
	"MALE":         "Masculino",
	"FEMALE":       "Feminino",
	"NOT_INFORMED": "Não informado",
	"OTHER":        "Outro",
}

func TranslateGender(s string) string {
	if v, ok := genderNames[s]; ok {
		return v
	}
	return s
}

var registrationStatusNames = map[string]string{
	"ACTIVE":       "Ativo",
	"INACTIVE":     "Inativo",
	"SUSPENDED":    "Suspenso",
	"CANCELED":     "Cancelado",
	"NOT_INFORMED": "Não informado",
}

// TranslateRegistrationStatus maps the Receita Federal registration status.
func TranslateRegistrationStatus(s string) string {
	if v, ok := registrationStatusNames[s]; ok {
		return v
	}
	return s
}

var percentRangeRe = regexp.MustCompile(`^BETWEEN_(\d+)_AND_(\d+)_PERCENT$`)

// TranslatePaymentProbability turns "BETWEEN_20_AND_40_PERCENT" into
// "Entre 20% e 40%". Non-matching input passes through unchanged.
func TranslatePaymentProbability(s string) string {
	m := percentRangeRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	return fmt.Sprintf("Entre %s%% e %s%%", m[1], m[2])
}

var creditRangeRe = regexp.MustCompile(`^FROM_(\d+)_TO_(\d+)$`)

// TranslateCreditRange turns "FROM_1000_TO_5000" into
// "R$ 1.000 até R$ 5.000". Non-matching input passes through unchanged.
func TranslateCreditRange(s string) string {
	m := creditRangeRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	lo, err1 := strconv.ParseInt(m[1], 10, 64)
	hi, err2 := strconv.ParseInt(m[2], 10, 64)
	if err1 != nil || err2 != nil {
		return s
	}
	return fmt.Sprintf("R$ %s até R$ %s", formatAmount(lo), formatAmount(hi))
}

var (
	upToRe      = regexp.MustCompile(`^UP_TO_(\d+)$`)
	betweenRe   = regexp.MustCompile(`^BETWEEN_(\d+)_AND_(\d+)$`)
	aboveRe     = regexp.MustCompile(`^ABOVE_(\d+)$`)
	fromToRe    = regexp.MustCompile(`^FROM_(\d+)_TO_(\d+)$`)
	notInformed = "Não informado"
)

// TranslateEstimatedExpense maps the expense enumeration. Matching is
// case-insensitive and the patterns are tried in a fixed order (NOT_INFORMED,
// UP_TO, BETWEEN/AND, ABOVE, FROM/TO) that must not be reordered: the later
// patterns share substrings with the earlier ones in some vendor revisions.
// nil maps to "Não informado"; any unmatched value passes through unchanged.
func TranslateEstimatedExpense(v any) any {
	if v == nil {
		return notInformed
	}
	s, ok := v.(string)
	if !ok {
		return v
	}
	upper := strings.ToUpper(s)

	if upper == "NOT_INFORMED" {
		return notInformed
	}
	if m := upToRe.FindStringSubmatch(upper); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return fmt.Sprintf("Até R$ %s", formatAmount(n))
		}
	}
	if m := betweenRe.FindStringSubmatch(upper); m != nil {
		lo, err1 := strconv.ParseInt(m[1], 10, 64)
		hi, err2 := strconv.ParseInt(m[2], 10, 64)
		if err1 == nil && err2 == nil {
			return fmt.Sprintf("Entre R$ %s e R$ %s", formatAmount(lo), formatAmount(hi))
		}
	}
	if m := aboveRe.FindStringSubmatch(upper); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return fmt.Sprintf("Acima de R$ %s", formatAmount(n))
		}
	}
	if m := fromToRe.FindStringSubmatch(upper); m != nil {
		lo, err1 := strconv.ParseInt(m[1], 10, 64)
		hi, err2 := strconv.ParseInt(m[2], 10, 64)
		if err1 == nil && err2 == nil {
			return fmt.Sprintf("De R$ %s a R$ %s", formatAmount(lo), formatAmount(hi))
		}
	}
	return s
}
