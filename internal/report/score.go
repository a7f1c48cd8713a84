package report

import "github.com/stretchr/objx"

// ScoreRecords maps the lighter credit-scores payload for the score endpoint.
// Its translation logic is independent from the full-report paths: the risk
// level always goes through the NOT_INFORMED table regardless of subject kind
// and reason codes are passed through untranslated.
func ScoreRecords(payload map[string]any) []ScoreRecord {
	m := objx.Map(payload)
	if m == nil {
		m = objx.Map{}
	}

	out := make([]ScoreRecord, 0)
	for _, rec := range maps(m, "reports") {
		out = append(out, ScoreRecord{
			Documento:  value(rec, "subjectDocument"),
			Score:      value(rec, "score"),
			NivelRisco: translated(rec, "riskLevel", TranslateRiskRating),
			Codigos:    values(rec, "reasonCodes"),
		})
	}
	return out
}

// FirstReport returns the first entry of the payload's reports list, or an
// empty report when the list is absent or empty. Error envelopes from a
// failed vendor call have no reports key and therefore normalize to an empty
// report instead of failing.
func FirstReport(payload map[string]any) map[string]any {
	m := objx.Map(payload)
	if m == nil {
		return map[string]any{}
	}
	for _, item := range m.Get("reports").InterSlice() {
		if rep, ok := item.(map[string]any); ok {
			return rep
		}
	}
	return map[string]any{}
}
