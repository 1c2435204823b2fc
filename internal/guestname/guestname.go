// Package guestname generates trade-themed display names for guest players.
package guestname

import "github.com/export9/export9-server/internal/dependencies/random"

var adjectives = []string{
	"Swift", "Global", "Premium", "Elite", "Dynamic", "Strategic", "Maritime",
	"Continental", "Express", "Direct", "Prime", "Royal", "Imperial", "Summit",
	"Sterling", "Platinum", "Golden", "Diamond", "Supreme", "Ultra", "Mega",
	"Turbo", "Rapid", "Lightning", "Thunder", "Stellar", "Cosmic", "Quantum",
	"Advanced", "Superior", "Executive", "Professional", "Master", "Champion",
	"Legendary", "Epic", "Mighty", "Powerful", "Brilliant", "Genius", "Savvy",
	"Sharp", "Smart", "Clever", "Wise", "Bold", "Brave", "Fearless", "Daring",
	"Ambitious", "Relentless", "Unstoppable", "Invincible", "Victorious",
}

var tradeNouns = []string{
	"Trader", "Exporter", "Merchant", "Dealer", "Broker", "Agent", "Shipper",
	"Navigator", "Captain", "Admiral", "Commodore", "Baron", "Tycoon", "Mogul",
	"Magnate", "Executive", "Director", "Manager", "Strategist", "Analyst",
	"Specialist", "Expert", "Master", "Champion", "Ace", "Pro", "Guru",
	"Wizard", "Genius", "Maverick", "Pioneer", "Innovator", "Visionary",
	"Leader", "Chief", "Boss", "Commander", "General", "Marshal",
}

var geographyNouns = []string{
	"Explorer", "Voyager", "Nomad", "Wanderer", "Traveler", "Pioneer",
	"Ambassador", "Diplomat", "Envoy", "Emissary", "Representative",
	"Continental", "Islander", "Mountaineer", "Coastal", "Nordic",
	"Atlantic", "Pacific", "Arctic", "Tropic", "Equatorial",
}

var productNouns = []string{
	"Craftsman", "Artisan", "Manufacturer", "Producer", "Creator", "Maker",
	"Designer", "Builder", "Engineer", "Architect", "Inventor", "Developer",
	"Specialist", "Technician", "Operator", "Supervisor", "Controller",
}

var gamingNouns = []string{
	"Player", "Gamer", "Challenger", "Competitor", "Rival", "Contender",
	"Warrior", "Fighter", "Hunter", "Scout", "Ranger", "Guardian",
	"Knight", "Paladin", "Rogue", "Mage", "Sage", "Oracle",
	"Phoenix", "Dragon", "Tiger", "Eagle", "Falcon", "Hawk",
	"Lion", "Wolf", "Bear", "Shark", "Panther", "Viper",
}

var allNouns = concat(tradeNouns, geographyNouns, productNouns, gamingNouns)

func concat(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		out = append(out, list...)
	}
	return out
}

// Generator produces random guest display names
type Generator struct {
	random random.Random
}

// New creates a Generator using the given randomness source
func New(rnd random.Random) *Generator {
	return &Generator{random: rnd}
}

// Generate returns a name in the form "AdjectiveNoun", e.g. "SwiftTrader"
func (g *Generator) Generate() string {
	adjective := adjectives[g.random.Intn(len(adjectives))]
	noun := allNouns[g.random.Intn(len(allNouns))]
	return adjective + noun
}
