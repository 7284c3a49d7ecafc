package phone

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "US"

// Normalize converts a phone number to E.164 format. The region hint is
// used for numbers entered without a country prefix.
func Normalize(phone, region string) (string, error) {
	if phone == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}
	if region == "" {
		region = defaultRegion
	}

	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", fmt.Errorf("invalid phone number")
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// IsValid reports whether a phone number parses and validates for the
// given region.
func IsValid(phone, region string) bool {
	if phone == "" {
		return false
	}
	if region == "" {
		region = defaultRegion
	}

	parsed, err := phonenumbers.Parse(phone, region)
	if err != nil {
		return false
	}
	return phonenumbers.IsValidNumber(parsed)
}

// Region returns the ISO region code for a number in international format.
func Region(phone string) (string, error) {
	if phone == "" {
		return "", fmt.Errorf("phone number cannot be empty")
	}

	parsed, err := phonenumbers.Parse(phone, "ZZ")
	if err != nil {
		return "", fmt.Errorf("failed to parse phone number (must include country code): %w", err)
	}

	region := phonenumbers.GetRegionCodeForNumber(parsed)
	if region == "ZZ" || region == "" {
		return "", fmt.Errorf("unable to determine region")
	}
	return region, nil
}
