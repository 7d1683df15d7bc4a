package pr3import

import (
	"strconv"
	"strings"
	"time"
)

// cleanLegalID strips everything but digits from the given legal id.
func cleanLegalID(legalID string) string {
	var b strings.Builder
	for _, r := range legalID {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// addCenturyDigits naively prefixes century digits to a digits-only legal id
// that lacks them. Returns "" when the input is blank or contains anything
// but digits. The century is picked by comparing the id's two-digit year to
// the current two-digit year; centenarians are knowingly not handled.
func addCenturyDigits(legalID string, now time.Time) string {
	if legalID == "" || !digitsOnly(legalID) {
		return ""
	}
	// Do nothing if we already have a legal id with century digits
	if strings.HasPrefix(legalID, "19") || strings.HasPrefix(legalID, "20") {
		return legalID
	}
	if len(legalID) < 2 {
		return ""
	}

	thisYear := now.Year() % 2000
	legalIDYear, err := strconv.Atoi(legalID[:2])
	if err != nil {
		return ""
	}

	if legalIDYear <= thisYear {
		return "20" + legalID
	}
	return "19" + legalID
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
