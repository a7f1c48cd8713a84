// Package document classifies and validates Brazilian subject documents.
// A document is either a CPF (pessoa física, 11 digits) or a CNPJ (pessoa
// jurídica, 14 digits); everything else is invalid. Validity is decided at
// classification time so the rest of the system only ever sees normalized,
// checked digit strings.
package document

import "strings"

// Kind tags a classified document.
type Kind string

const (
	KindIndividual Kind = "PF"
	KindCorporate  Kind = "PJ"
	KindNone       Kind = ""
)

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Classify normalizes s to digits and decides its kind. Only the length
// selects which check-digit algorithm runs; unexpected lengths never reach a
// checksum.
func Classify(s string) (bool, string, Kind) {
	digits := Digits(s)
	switch len(digits) {
	case 11:
		if validCPF(digits) {
			return true, digits, KindIndividual
		}
	case 14:
		if validCNPJ(digits) {
			return true, digits, KindCorporate
		}
	}
	return false, digits, KindNone
}
