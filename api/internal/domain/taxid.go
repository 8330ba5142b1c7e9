package domain

import "fmt"

// ValidateTaxID checks a CPF (11 digits) or CNPJ (14 digits) verification
// checksum. Punctuation is ignored, the cleaned digit string is returned.
func ValidateTaxID(s string) (string, error) {
	digits := make([]int, 0, 14)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-' || r == '/' || r == ' ':
			// punctuation
		default:
			return "", fmt.Errorf("%w: unexpected character", ErrInvalidTaxID)
		}
	}

	switch len(digits) {
	case 11:
		if !validCpf(digits) {
			return "", fmt.Errorf("%w: bad cpf checksum", ErrInvalidTaxID)
		}
	case 14:
		if !validCnpj(digits) {
			return "", fmt.Errorf("%w: bad cnpj checksum", ErrInvalidTaxID)
		}
	default:
		return "", fmt.Errorf("%w: must have 11 or 14 digits", ErrInvalidTaxID)
	}

	cleaned := make([]byte, len(digits))
	for i, d := range digits {
		cleaned[i] = byte('0' + d)
	}
	return string(cleaned), nil
}

func validCpf(d []int) bool {
	if allSame(d) {
		return false
	}
	return cpfCheckDigit(d, 9) == d[9] && cpfCheckDigit(d, 10) == d[10]
}

// mod-11 over the first n digits, weights n+1 down to 2
func cpfCheckDigit(d []int, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += d[i] * (n + 1 - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

var cnpjWeightsFirst = [...]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
var cnpjWeightsSecond = [...]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

func validCnpj(d []int) bool {
	if allSame(d) {
		return false
	}
	return cnpjCheckDigit(d, cnpjWeightsFirst[:]) == d[12] &&
		cnpjCheckDigit(d, cnpjWeightsSecond[:]) == d[13]
}

func cnpjCheckDigit(d []int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func allSame(d []int) bool {
	for _, x := range d[1:] {
		if x != d[0] {
			return false
		}
	}
	return true
}
