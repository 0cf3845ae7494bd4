package pet

import "github.com/tdnguyen27/StudyPet_Go/internal/domain"

// CombinedModifiers sums the level-scaled ledger-relevant modifiers across
// all equipped pets. Price and luck debuffs exist on pets but do not feed
// the ledger.
func CombinedModifiers(c *domain.PetCollection) domain.ModifierTotals {
	var totals domain.ModifierTotals
	for _, p := range c.EquippedPets() {
		totals.XPBoost += p.Buffs[domain.ModifierXPBoost]
		totals.CoinBoost += p.Buffs[domain.ModifierCoinBoost]
		totals.XPPenalty += p.Debuffs[domain.ModifierXPPenalty]
		totals.CoinPenalty += p.Debuffs[domain.ModifierCoinPenalty]
	}
	return totals
}
