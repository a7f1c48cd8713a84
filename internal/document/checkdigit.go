package document

// Check-digit routines for CPF and CNPJ as published by the Receita Federal.
// Inputs are digit-only strings of the exact expected length; Classify
// guarantees that before calling in here.

// validCPF verifies the two CPF check digits. Strings with a single repeated
// digit (e.g. 111.111.111-11) satisfy the arithmetic but are rejected, as
// every official validator does.
func validCPF(digits string) bool {
	if allSame(digits) {
		return false
	}
	d := toInts(digits)
	if cpfDigit(d[:9], 10) != d[9] {
		return false
	}
	return cpfDigit(d[:10], 11) == d[10]
}

// cpfDigit computes one CPF verification digit over the given prefix, with
// weights descending from startWeight.
func cpfDigit(prefix []int, startWeight int) int {
	sum := 0
	for i, v := range prefix {
		sum += v * (startWeight - i)
	}
	rest := sum * 10 % 11
	if rest == 10 {
		return 0
	}
	return rest
}

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// validCNPJ verifies the two CNPJ check digits.
func validCNPJ(digits string) bool {
	if allSame(digits) {
		return false
	}
	d := toInts(digits)
	if cnpjDigit(d[:12], cnpjWeightsFirst) != d[12] {
		return false
	}
	return cnpjDigit(d[:13], cnpjWeightsSecond) == d[13]
}

func cnpjDigit(prefix []int, weights []int) int {
	sum := 0
	for i, v := range prefix {
		sum += v * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func toInts(digits string) []int {
	out := make([]int, len(digits))
	for i := 0; i < len(digits); i++ {
		out[i] = int(digits[i] - '0')
	}
	return out
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
