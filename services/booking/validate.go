package booking

import (
	"regexp"
	"strings"
	"time"

	"petsitter/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsStepValid reports whether the draft satisfies the requirements of the
// given step. Steps outside 1..4 are never valid.
func IsStepValid(d *models.BookingDraft, step int) bool {
	switch step {
	case 1:
		return d.ServiceID != 0
	case 2:
		// Both dates must be present and parseable; the derived totals
		// depend on them.
		if _, err := time.Parse(dateLayout, strings.TrimSpace(d.StartDate)); err != nil {
			return false
		}
		_, err := time.Parse(dateLayout, strings.TrimSpace(d.EndDate))
		return err == nil
	case 3:
		// Pet ads describe the pet themselves, so the pet step is a
		// pass-through for them.
		if d.ServiceKind == models.KindPetAd {
			return true
		}
		return strings.TrimSpace(d.PetName) != "" && strings.TrimSpace(d.PetType) != ""
	case 4:
		return strings.TrimSpace(d.OwnerName) != "" &&
			emailPattern.MatchString(strings.TrimSpace(d.OwnerEmail)) &&
			len(strings.TrimSpace(d.OwnerPhone)) >= 10 &&
			strings.TrimSpace(d.OwnerAddress) != ""
	default:
		return false
	}
}

// draftComplete reports whether every step validates, the finalize gate.
func draftComplete(d *models.BookingDraft) bool {
	for step := 1; step <= 4; step++ {
		if !IsStepValid(d, step) {
			return false
		}
	}
	return true
}
