package wizard

import "strings"

// FormatWhatsApp masks a Brazilian mobile number as "(NN) NNNNN-NNNN",
// building up the mask incrementally so partial input stays readable while
// typing. Non-digits in the input are discarded; anything past 11 digits
// is dropped.
func FormatWhatsApp(raw string) string {
	digits := onlyDigits(raw, 11)
	if digits == "" {
		return ""
	}

	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(digits[:min(2, len(digits))])
	if len(digits) > 2 {
		b.WriteString(") ")
		b.WriteString(digits[2:min(7, len(digits))])
	}
	if len(digits) > 7 {
		b.WriteByte('-')
		b.WriteString(digits[7:])
	}
	return b.String()
}

// FormatPostalCode masks a CEP as "NNNNN-NNN".
func FormatPostalCode(raw string) string {
	digits := onlyDigits(raw, 8)
	if len(digits) <= 5 {
		return digits
	}
	return digits[:5] + "-" + digits[5:]
}

func onlyDigits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() == max {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}
