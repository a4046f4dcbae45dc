package sanitizer

import "strings"

// NormalizeEmail trims the address and lowercases its domain. The local part
// is kept as typed. Input without exactly one @ is only trimmed.
func NormalizeEmail(email string) string {
	email = Trim(email)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}
	return local + "@" + ToLower(domain)
}

// MaskEmail keeps the first character of the local part and the full domain.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return email
	}

	runes := []rune(local)
	return string(runes[0]) + strings.Repeat("*", len(runes)-1) + "@" + domain
}

// NormalizePhone keeps digits and a leading plus sign.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := KeepDigits(phone)
	if strings.HasPrefix(phone, "+") && digits != "" {
		return "+" + digits
	}
	return digits
}

// MaskCreditCard shows only the last 4 digits. Non-digits are discarded.
func MaskCreditCard(cardNumber string) string {
	digits := KeepDigits(cardNumber)
	if len(digits) < 4 {
		return strings.Repeat("*", len(digits))
	}

	return strings.Repeat("*", len(digits)-4) + digits[len(digits)-4:]
}

// GroupDigits splits s into chunks of size runes joined by sep. The last chunk may be shorter.
func GroupDigits(s string, size int, sep string) string {
	if size <= 0 || s == "" {
		return s
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(s)/size*len(sep))
	for i, r := range runes {
		if i > 0 && i%size == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}
