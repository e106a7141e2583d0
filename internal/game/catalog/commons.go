package catalog

import "github.com/cursedclash/clash-server-go/internal/game/targeting"

func commonCards() []Card {
	return []Card{
		{
			ID:     CardStrike,
			Name:   "Strike",
			Kind:   KindAction,
			Rarity: RarityCommon,
			Cost:   0,
			Text:   "Deals 300 damage.",
			Target: targeting.SingleOpponent(),
		},
		{
			ID:     CardDefense,
			Name:   "Defense",
			Kind:   KindAction,
			Rarity: RarityCommon,
			Cost:   0,
			Text:   "Gain 300 block.",
			Target: targeting.NoTarget(),
		},
		{
			ID:     CardConcentration,
			Name:   "Concentration",
			Kind:   KindAction,
			Rarity: RarityCommon,
			Cost:   0,
			Text:   "Restore 5% to 15% of your maximum cursed energy.",
			Target: targeting.NoTarget(),
		},
		{
			ID:     CardChant,
			Name:   "Chant",
			Kind:   KindAction,
			Rarity: RarityEpic,
			Cost:   5000,
			Text:   "The next Technique you play deals 50% more damage.",
			Target: targeting.NoTarget(),
		},
		{
			ID:     CardSimpleDomain,
			Name:   "Simple Domain",
			Kind:   KindAntiDomainTechnique,
			Rarity: RarityUncommon,
			Cost:   4000,
			Text:   "Removes enemy domain effects from you and grants immunity to domain sure-hits for 2 rounds. Gain 200 block at the start of your turn.",
			Target: targeting.NoTarget(),
		},
		{
			ID:     CardFallingBlossomEmotion,
			Name:   "Falling Blossom Emotion",
			Kind:   KindAntiDomainTechnique,
			Rarity: RarityRare,
			Cost:   6000,
			Text:   "For 3 rounds, damage from Technique cards and domains against you is reduced by 33%.",
			Target: targeting.NoTarget(),
		},
		{
			ID:     CardReverseCursedTechnique,
			Name:   "Reverse Cursed Technique",
			Kind:   KindTechnique,
			Rarity: RarityEpic,
			Cost:   10000,
			Text:   "Restore 5% to 15% of your maximum HP.",
			Target: targeting.NoTarget(),
		},
		{
			ID:     CardBlackFlash,
			Name:   "Black Flash",
			Kind:   KindAction,
			Rarity: RarityEpic,
			Cost:   0,
			Text:   "1 in 6 chance to deal 2500 damage instead of 100. On success you enter the Zone for 3 rounds.",
			Target: targeting.SingleOpponent(),
		},
	}
}
