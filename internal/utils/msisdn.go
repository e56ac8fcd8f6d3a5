package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// PREFIXES defines the valid mobile network prefixes
var PREFIXES = struct {
	GHANA []int
}{
	GHANA: []int{20, 23, 24, 25, 26, 27, 28, 50, 53, 54, 55, 56, 57, 59},
}

// ValidateMSISDN validates a phone number format against the Ghana mobile
// numbering plan and returns the number normalized to 233XXXXXXXXX.
func ValidateMSISDN(msisdn string) (bool, string, error) {
	// Clean the input by removing separators and the plus sign
	stripped := strings.ReplaceAll(msisdn, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	stripped = strings.ReplaceAll(stripped, "+", "")

	// Remove country code or trunk zero if present
	if strings.HasPrefix(stripped, "233") {
		stripped = stripped[3:]
	} else if strings.HasPrefix(stripped, "0") {
		stripped = stripped[1:]
	}

	prefixesStr := make([]string, len(PREFIXES.GHANA))
	for i, prefix := range PREFIXES.GHANA {
		prefixesStr[i] = fmt.Sprintf("%d", prefix)
	}

	pattern := fmt.Sprintf("^(%s)\\d{7}$", strings.Join(prefixesStr, "|"))
	isValid := regexp.MustCompile(pattern).MatchString(stripped)

	if !isValid {
		return false, "", fmt.Errorf("invalid MSISDN format")
	}

	// Format with country code
	formatted := "233" + stripped

	return true, formatted, nil
}
