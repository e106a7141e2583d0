package catalog

import "github.com/cursedclash/clash-server-go/internal/game/targeting"

func characters() []Character {
	return []Character{
		{
			ID:          CharacterGojo,
			Name:        "Satoru Gojo",
			MaxHP:       5500,
			MaxEnergy:   75000,
			Passive:     PassiveSixEyesAndInfinity,
			PassiveName: "Six Eyes and Infinity",
			PassiveText: "Your hand holds 6 cards. You start Blindfolded; once the blindfold is removed, your card costs drop by 5% of base every round, up to 90%.",
			HandSize:    6,
			UniqueCards: []Card{
				{ID: CardRemoveBlindfold, Name: "Remove Blindfold", Kind: KindTechnique, Rarity: RarityLegendary, Cost: 0,
					Text: "Remove your Blindfold. Requires HP at or below 33% of maximum.", Target: targeting.NoTarget()},
				{ID: CardStrengthenedStrike, Name: "Strengthened Strike", Kind: KindAction, Rarity: RarityUncommon, Cost: 0,
					Text: "Deals 300 damage that ignores block.", Target: targeting.SingleOpponent()},
				{ID: CardInfinity, Name: "Infinity", Kind: KindTechnique, Rarity: RarityRare, Cost: 8000,
					Text: "For 1 round every single-target attack aimed at you is cancelled. Area attacks hit normally.", Target: targeting.NoTarget()},
				{ID: CardBlue, Name: "Cursed Technique Lapse: Blue", Kind: KindTechnique, Rarity: RarityRare, Cost: 10000,
					Text: "Deals 1000 damage to 2 random opponents. Fulfils a condition of Hollow Purple.", Target: targeting.NoTarget()},
				{ID: CardRed, Name: "Reversal: Red", Kind: KindTechnique, Rarity: RarityRare, Cost: 12000,
					Text: "Deals 1200 damage to the target and 600 to the player on its right. Fulfils a condition of Hollow Purple.", Target: targeting.SingleOpponent()},
				{ID: CardPurple, Name: "Hollow Purple", Kind: KindTechnique, Rarity: RarityEpic, Cost: 30000,
					Text: "Deals 4000 damage that ignores block. Requires Blue and Red to have been used this match.", Target: targeting.SingleOpponent()},
				{ID: CardUnlimitedVoid, Name: "Domain Expansion: Unlimited Void", Kind: KindDomainExpansion, Rarity: RarityLegendary, Cost: 50000,
					Text: "All opponents suffer Information Overload for 3 rounds: no Techniques, Epic or Legendary cards.", Target: targeting.NoTarget()},
			},
		},
		{
			ID:          CharacterSukuna,
			Name:        "Ryomen Sukuna",
			MaxHP:       7000,
			MaxEnergy:   100000,
			Passive:     PassiveThirstForEntertainment,
			PassiveName: "Thirst for Entertainment",
			PassiveText: "When an opponent with a higher HP percentage damages you, restore 5% of your maximum cursed energy. Your attacks on adjacent players deal 15% less damage.",
			UniqueCards: []Card{
				{ID: CardCleave, Name: "Cleave", Kind: KindTechnique, Rarity: RarityUncommon, Cost: 4000,
					Text: "Deals 600 damage to the target and 300 to the player on its left.", Target: targeting.SingleOpponent()},
				{ID: CardDismantle, Name: "Dismantle", Kind: KindTechnique, Rarity: RarityRare, Cost: 16000,
					Text: "Deals 1600 damage.", Target: targeting.SingleOpponent()},
				{ID: CardSpiderweb, Name: "Dismantle: Spiderweb", Kind: KindTechnique, Rarity: RarityRare, Cost: 18000,
					Text: "Deals 1000 damage to the target and 500 to the players on its left and right.", Target: targeting.SingleOpponent()},
				{ID: CardKamino, Name: "Kamino (Flame Arrow)", Kind: KindTechnique, Rarity: RarityEpic, Cost: 20000,
					Text: "Deals 1800 damage; restore 10000 cursed energy if it kills. With your Malevolent Shrine active, deals 1200 to every opponent instead.", Target: targeting.SingleOpponent()},
				{ID: CardMalevolentShrine, Name: "Domain Expansion: Malevolent Shrine", Kind: KindDomainExpansion, Rarity: RarityLegendary, Cost: 40000,
					Text: "For 3 rounds every opponent takes 1500 damage at the end of their turn. Simple Domain ignores it.", Target: targeting.NoTarget()},
			},
		},
		{
			ID:          CharacterMahito,
			Name:        "Mahito",
			MaxHP:       4000,
			MaxEnergy:   50000,
			Passive:     PassiveIdleTransfiguration,
			PassiveName: "Idle Transfiguration",
			PassiveText: "You start with 0 Distorted Souls. Every second turn of yours a Soul Touch is added to your hand.",
			UniqueCards: []Card{
				{ID: CardSoulTouch, Name: "Soul Touch", Kind: KindTechnique, Rarity: RarityUncommon, Cost: 3000,
					Text: "Deals 250 damage ignoring block to the players on your left and right. Gain 1 Distorted Soul per player hit.", Target: targeting.NoTarget()},
				{ID: CardSoulDistortion, Name: "Soul Distortion", Kind: KindTechnique, Rarity: RarityRare, Cost: 8000,
					Text: "The target discards 1 random card.", Target: targeting.SingleOpponent()},
				{ID: CardPolymorphicSoulIsomer, Name: "Polymorphic Soul Isomer", Kind: KindTechnique, Rarity: RarityRare, Cost: 0, SoulCost: 1,
					Text: "Costs 1 Distorted Soul. Gain 500 block. The player who breaks this block takes 500 damage.", Target: targeting.NoTarget()},
				{ID: CardBodyRepel, Name: "Body Repel", Kind: KindTechnique, Rarity: RarityEpic, Cost: 0, SoulCost: 3,
					Text: "Costs 3 Distorted Souls. Deals 1400 damage, 50% more if the target has block.", Target: targeting.SingleOpponent()},
				{ID: CardTrueForm, Name: "Instant Spirit Body of Distorted Killing", Kind: KindTechnique, Rarity: RarityLegendary, Cost: 30000,
					Text: "Permanently: enemy Strikes deal half damage to you, gain 500 block every round, your Strike deals triple damage. Requires a successful Black Flash.", Target: targeting.NoTarget()},
				{ID: CardSelfEmbodimentOfPerfection, Name: "Domain Expansion: Self-Embodiment of Perfection", Kind: KindDomainExpansion, Rarity: RarityLegendary, Cost: 35000,
					Text: "For 3 rounds opponents lose their block and discard 1 random card at the start of their turn. Gain 1 Distorted Soul per afflicted opponent at the start of your turn.", Target: targeting.NoTarget()},
			},
		},
		{
			ID:          CharacterItadori,
			Name:        "Yuji Itadori",
			MaxHP:       7500,
			MaxEnergy:   40000,
			Passive:     PassiveSuperhumanStrength,
			PassiveName: "Superhuman Strength",
			PassiveText: "Your Strikes deal +150 damage and restore 1000 cursed energy. Your Black Flash chance is 2 in 6, 3 in 6 while in the Zone.",
			UniqueCards: []Card{
				{ID: CardDivergentFist, Name: "Divergent Fist", Kind: KindTechnique, Rarity: RarityUncommon, Cost: 2000,
					Text: "Deals 400 damage, and 200 more at the start of the target's next turn.", Target: targeting.SingleOpponent()},
				{ID: CardManjiKick, Name: "Manji Kick", Kind: KindTechnique, Rarity: RarityRare, Cost: 6000,
					Text: "Deals 600 damage. The next attacking card the target plays against you is cancelled.", Target: targeting.SingleOpponent()},
				{ID: CardDeepConcentration, Name: "Deep Concentration", Kind: KindTechnique, Rarity: RarityEpic, Cost: 18000,
					Text: "For 2 rounds your next Black Flash is guaranteed to land.", Target: targeting.NoTarget()},
				{ID: CardUnwaveringWill, Name: "Unwavering Will", Kind: KindTechnique, Rarity: RarityLegendary, Cost: 25000,
					Text: "Last Stand for 5 rounds: your HP may drop to -3500. When it ends at 0 HP or less, you are defeated.", Target: targeting.NoTarget()},
				{ID: CardSpinAroundApproach, Name: "Spin-Around Approach", Kind: KindAction, Rarity: RarityUncommon, Cost: 1000,
					Text: "Take a Strike from your deck into your hand. Your next Strike this turn is free.", Target: targeting.NoTarget()},
			},
		},
		{
			ID:          CharacterJogo,
			Name:        "Jogo",
			MaxHP:       5000,
			MaxEnergy:   65000,
			Passive:     PassiveLavaTouch,
			PassiveName: "Lava Touch",
			PassiveText: "Whenever you deal damage with a Technique, the target burns for 2 rounds (100 damage at the start of its turn).",
			UniqueCards: []Card{
				{ID: CardEmberInsects, Name: "Ember Insects", Kind: KindTechnique, Rarity: RarityUncommon, Cost: 4000,
					Text: "Attacks up to 3 targets for 300 damage each.", Target: targeting.UpToOpponents(3)},
				{ID: CardVolcanoEruption, Name: "Volcano Eruption", Kind: KindTechnique, Rarity: RarityRare, Cost: 9000,
					Text: "Deals 600 damage to every opponent.", Target: targeting.NoTarget()},
				{ID: CardMaximumMeteor, Name: "Maximum: Meteor", Kind: KindTechnique, Rarity: RarityEpic, Cost: 20000,
					Text: "Deals 2000 damage to the target and 500 to the players on its left and right.", Target: targeting.SingleOpponent()},
				{ID: CardCoffinOfTheIronMountain, Name: "Domain Expansion: Coffin of the Iron Mountain", Kind: KindDomainExpansion, Rarity: RarityLegendary, Cost: 35000,
					Text: "For 3 rounds every opponent takes 800 heat damage at the start of their turn.", Target: targeting.NoTarget()},
			},
		},
		{
			ID:          CharacterYuta,
			Name:        "Yuta Okkotsu",
			MaxHP:       6000,
			MaxEnergy:   85000,
			Passive:     PassiveCopyAndRika,
			PassiveName: "Copy and Rika",
			PassiveText: "When an opponent damages you with a Technique, a copy of it (cost x1.25) goes to your discard pile. At the end of your turn Rika deals 250 damage to a random opponent.",
			UniqueCards: []Card{
				{ID: CardEnergyBlade, Name: "Energy-Infused Blade", Kind: KindTechnique, Rarity: RarityUncommon, Cost: 3000,
					Text: "Deals 500 damage.", Target: targeting.SingleOpponent()},
				{ID: CardRikaManifestation, Name: "Manifestation: Rika", Kind: KindTechnique, Rarity: RarityEpic, Cost: 25000,
					Text: "For 3 of your turns Rika deals 1000 damage to the players on your left and right.", Target: targeting.NoTarget()},
				{ID: CardPureLove, Name: "Pure Love", Kind: KindTechnique, Rarity: RarityLegendary, Cost: 22000,
					Text: "Deals 2500 damage. Afterwards Rika Cooldown for 2 rounds: your passive is disabled and Pure Love and Manifestation: Rika cannot be played.", Target: targeting.SingleOpponent()},
				{ID: CardTrueMutualLove, Name: "Domain Expansion: Authentic Mutual Love", Kind: KindDomainExpansion, Rarity: RarityLegendary, Cost: 45000,
					Text: "For 3 rounds copied Techniques cost a quarter (rounded up) and your hand holds 8 cards.", Target: targeting.NoTarget()},
			},
		},
	}
}

func trainingDummy(hp int) Character {
	return Character{
		ID:          CharacterTrainingDummy,
		Name:        "Training Dummy",
		MaxHP:       hp,
		MaxEnergy:   0,
		Passive:     PassiveNone,
		PassiveName: "",
		PassiveText: "Skips its turns.",
	}
}
