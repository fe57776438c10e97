package formatter

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// FormatPhone formats a phone number to E164 format
func FormatPhone(phone, region string) (string, error) {
	region = strings.ToUpper(region)
	num, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// NormalizePhone returns the E164 form of phone, or phone unchanged if it does not parse.
// Empty input stays empty.
func NormalizePhone(phone, region string) string {
	if strings.TrimSpace(phone) == "" {
		return ""
	}
	formatted, err := FormatPhone(phone, region)
	if err != nil {
		return phone
	}
	return formatted
}
