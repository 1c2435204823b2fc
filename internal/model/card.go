package model

// Card is an immutable country card
type Card struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

// Product is one traded product a round is played against
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Hand is a player's remaining pool of country cards for a session.
// It only ever shrinks: a played card is removed permanently.
type Hand []Card

// Find returns the card for the given country, if still in hand
func (h Hand) Find(countryCode string) (Card, bool) {
	i := h.indexOf(countryCode)
	if i < 0 {
		return Card{}, false
	}
	return h[i], true
}

// Remove returns the hand without the given country's card.
// Removing a card not in hand is a no-op.
func (h Hand) Remove(countryCode string) Hand {
	i := h.indexOf(countryCode)
	if i < 0 {
		return h
	}
	out := make(Hand, 0, len(h)-1)
	out = append(out, h[:i]...)
	out = append(out, h[i+1:]...)
	return out
}

// Clone returns an independent copy of the hand
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

func (h Hand) indexOf(countryCode string) int {
	for i, c := range h {
		if c.CountryCode == countryCode {
			return i
		}
	}
	return -1
}
