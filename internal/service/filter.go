package service

import "github.com/Fhadshnde/Matjer-Dashborad/internal/domain"

// FilterOffers maps (offers, tab) to the offers matching the tab. The result
// is a fresh slice in source order; the input is never modified.
func FilterOffers(offers []domain.Offer, tab domain.Tab) []domain.Offer {
	filtered := make([]domain.Offer, 0, len(offers))
	for _, offer := range offers {
		if tab.Matches(offer) {
			filtered = append(filtered, offer)
		}
	}
	return filtered
}
