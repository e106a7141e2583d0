package catalog

import "fmt"

// Kind is the card class; several rules (chant, lockouts, copying) key off it.
type Kind int

const (
	KindAction Kind = iota
	KindTechnique
	KindDomainExpansion
	KindAntiDomainTechnique
)

var kindNames = map[Kind]string{
	KindAction:              "ACTION",
	KindTechnique:           "TECHNIQUE",
	KindDomainExpansion:     "DOMAIN_EXPANSION",
	KindAntiDomainTechnique: "ANTI_DOMAIN_TECHNIQUE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KIND_%d", int(k))
}

// Rarity of a card.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

var rarityNames = map[Rarity]string{
	RarityCommon:    "COMMON",
	RarityUncommon:  "UNCOMMON",
	RarityRare:      "RARE",
	RarityEpic:      "EPIC",
	RarityLegendary: "LEGENDARY",
}

func (r Rarity) String() string {
	if name, ok := rarityNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RARITY_%d", int(r))
}

// CardID identifies a card definition. The set is closed: every id has a
// definition in the catalog and a resolver in the game dispatcher.
type CardID string

const (
	// Common cards shared by every deck.
	CardStrike                 CardID = "common_strike"
	CardDefense                CardID = "common_defense"
	CardConcentration          CardID = "common_concentration"
	CardChant                  CardID = "common_chant"
	CardSimpleDomain           CardID = "common_simple_domain"
	CardFallingBlossomEmotion  CardID = "common_falling_blossom_emotion"
	CardReverseCursedTechnique CardID = "common_reverse_cursed_technique"
	CardBlackFlash             CardID = "common_black_flash"

	// Satoru Gojo
	CardRemoveBlindfold    CardID = "gojo_remove_blindfold"
	CardStrengthenedStrike CardID = "gojo_strengthened_strike"
	CardInfinity           CardID = "gojo_infinity"
	CardBlue               CardID = "gojo_blue"
	CardRed                CardID = "gojo_red"
	CardPurple             CardID = "gojo_purple"
	CardUnlimitedVoid      CardID = "gojo_unlimited_void"

	// Ryomen Sukuna
	CardCleave           CardID = "sukuna_cleave"
	CardDismantle        CardID = "sukuna_dismantle"
	CardSpiderweb        CardID = "sukuna_spiderweb"
	CardKamino           CardID = "sukuna_kamino"
	CardMalevolentShrine CardID = "sukuna_malevolent_shrine"

	// Mahito
	CardSoulTouch                  CardID = "mahito_soul_touch"
	CardSoulDistortion             CardID = "mahito_soul_distortion"
	CardPolymorphicSoulIsomer      CardID = "mahito_polymorphic_soul_isomer"
	CardBodyRepel                  CardID = "mahito_body_repel"
	CardTrueForm                   CardID = "mahito_true_form"
	CardSelfEmbodimentOfPerfection CardID = "mahito_self_embodiment_of_perfection"

	// Yuji Itadori
	CardDivergentFist      CardID = "itadori_divergent_fist"
	CardManjiKick          CardID = "itadori_manji_kick"
	CardDeepConcentration  CardID = "itadori_deep_concentration"
	CardUnwaveringWill     CardID = "itadori_unwavering_will"
	CardSpinAroundApproach CardID = "itadori_spin_around_approach"

	// Jogo
	CardEmberInsects            CardID = "jogo_ember_insects"
	CardVolcanoEruption         CardID = "jogo_volcano_eruption"
	CardMaximumMeteor           CardID = "jogo_maximum_meteor"
	CardCoffinOfTheIronMountain CardID = "jogo_coffin_of_the_iron_mountain"

	// Yuta Okkotsu
	CardEnergyBlade       CardID = "yuta_energy_blade"
	CardRikaManifestation CardID = "yuta_rika_manifestation"
	CardPureLove          CardID = "yuta_pure_love"
	CardTrueMutualLove    CardID = "yuta_true_mutual_love"
)

// CharacterID identifies a playable character.
type CharacterID string

const (
	CharacterGojo    CharacterID = "gojo_satoru"
	CharacterSukuna  CharacterID = "sukuna_ryomen"
	CharacterMahito  CharacterID = "mahito"
	CharacterItadori CharacterID = "itadori_yuji"
	CharacterJogo    CharacterID = "jogo"
	CharacterYuta    CharacterID = "yuta_okkotsu"

	// CharacterTrainingDummy is seated by training matches only and is not pickable.
	CharacterTrainingDummy CharacterID = "training_dummy"
)

// PassiveID names a character passive. Passive behavior lives in the game package.
type PassiveID string

const (
	PassiveNone                   PassiveID = ""
	PassiveSixEyesAndInfinity     PassiveID = "six_eyes_and_infinity"
	PassiveThirstForEntertainment PassiveID = "thirst_for_entertainment"
	PassiveIdleTransfiguration    PassiveID = "idle_transfiguration"
	PassiveSuperhumanStrength     PassiveID = "superhuman_strength"
	PassiveLavaTouch              PassiveID = "lava_touch"
	PassiveCopyAndRika            PassiveID = "copy_and_rika"
)
