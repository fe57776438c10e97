package persons

import "strings"

const defaultPhoneRegion = "US"

// Config tunes how person input is validated and normalized
type Config struct {
	// PhoneRegion is the ISO 3166 region assumed for numbers without a country code.
	PhoneRegion string `env:"PHONE_DEFAULT_REGION" env-default:"US"`
}

func (c Config) region() string {
	if c.PhoneRegion == "" {
		return defaultPhoneRegion
	}
	return strings.ToUpper(c.PhoneRegion)
}
