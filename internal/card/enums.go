package card

import "strings"

// --- Rarity ---

type Rarity string

const (
	RarityCommon          Rarity = "Common"
	RarityRare            Rarity = "Rare"
	RarityEpic            Rarity = "Epic"
	RarityLegendary       Rarity = "Legendary"
	RarityUniqueLegendary Rarity = "Unique Legendary"
)

// ParseRarity maps a raw rarity. "Legendary" becomes UniqueLegendary when
// isUnique is set; every other value ignores the flag.
func ParseRarity(raw string, isUnique bool) (Rarity, error) {
	switch raw {
	case "Common":
		return RarityCommon, nil
	case "Rare":
		return RarityRare, nil
	case "Epic":
		return RarityEpic, nil
	case "Legendary":
		if isUnique {
			return RarityUniqueLegendary, nil
		}
		return RarityLegendary, nil
	default:
		return "", invalid("rarity", raw)
	}
}

func Rarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityUniqueLegendary}
}

// --- Set ---

type Set string

const (
	SetCore               Set = "Core"
	SetClockworkCity      Set = "Clockwork City"
	SetHousesOfMorrowind  Set = "Houses of Morrowind"
	SetDarkBrotherhood    Set = "Dark Brotherhood"
	SetHeroesOfSkyrim     Set = "Heroes of Skyrim"
	SetForgottenHero      Set = "Forgotten Hero"
	SetFrostfall          Set = "Frostfall"
	SetMadhouseCollection Set = "Madhouse Collection"
	SetIsleOfMadness      Set = "Isle of Madness"
	SetAllianceWar        Set = "Alliance War"
)

// ParseSet maps a raw set name. Unlike the other enums the match ignores
// case; the result always uses the canonical casing.
func ParseSet(raw string) (Set, error) {
	switch strings.ToLower(raw) {
	case "core":
		return SetCore, nil
	case "clockwork city":
		return SetClockworkCity, nil
	case "houses of morrowind":
		return SetHousesOfMorrowind, nil
	case "dark brotherhood":
		return SetDarkBrotherhood, nil
	case "heroes of skyrim":
		return SetHeroesOfSkyrim, nil
	case "forgotten hero":
		return SetForgottenHero, nil
	case "frostfall":
		return SetFrostfall, nil
	case "madhouse collection":
		return SetMadhouseCollection, nil
	case "isle of madness":
		return SetIsleOfMadness, nil
	case "alliance war":
		return SetAllianceWar, nil
	default:
		return "", invalid("set", raw)
	}
}

func Sets() []Set {
	return []Set{
		SetCore, SetClockworkCity, SetHousesOfMorrowind, SetDarkBrotherhood, SetHeroesOfSkyrim,
		SetForgottenHero, SetFrostfall, SetMadhouseCollection, SetIsleOfMadness, SetAllianceWar,
	}
}

// --- Attribute ---

type Attribute string

const (
	AttributeStrength     Attribute = "Strength"
	AttributeIntelligence Attribute = "Intelligence"
	AttributeEndurance    Attribute = "Endurance"
	AttributeAgility      Attribute = "Agility"
	AttributeWillpower    Attribute = "Willpower"
	AttributeNeutral      Attribute = "Neutral"
)

func ParseAttribute(raw string) (Attribute, error) {
	switch raw {
	case "Strength":
		return AttributeStrength, nil
	case "Intelligence":
		return AttributeIntelligence, nil
	case "Endurance":
		return AttributeEndurance, nil
	case "Agility":
		return AttributeAgility, nil
	case "Willpower":
		return AttributeWillpower, nil
	case "Neutral":
		return AttributeNeutral, nil
	default:
		return "", invalid("attribute", raw)
	}
}

// ParseAttributes maps each raw attribute in order and stops at the first bad one.
func ParseAttributes(raw []string) ([]Attribute, error) {
	out := make([]Attribute, 0, len(raw))
	for _, r := range raw {
		a, err := ParseAttribute(r)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func Attributes() []Attribute {
	return []Attribute{
		AttributeStrength, AttributeIntelligence, AttributeEndurance,
		AttributeAgility, AttributeWillpower, AttributeNeutral,
	}
}

// --- Race ---

type Race string

const (
	RaceArgonian    Race = "Argonian"
	RaceAshCreature Race = "Ash Creature"
	RaceBeast       Race = "Beast"
	RaceBreton      Race = "Breton"
	RaceDaedra      Race = "Daedra"
	RaceDarkElf     Race = "Dark Elf"
	RaceDefense     Race = "Defense"
	RaceDreugh      Race = "Dreugh"
	RaceDwemer      Race = "Dwemer"
	RaceFish        Race = "Fish"
	RaceGod         Race = "God"
	RaceHighElf     Race = "High Elf"
	RaceImperial    Race = "Imperial"
	RaceKhajiit     Race = "Khajiit"
	RaceKwama       Race = "Kwama"
	RaceMammoth     Race = "Mammoth"
	RaceMudcrab     Race = "Mudcrab"
	RaceMummy       Race = "Mummy"
	RaceNetch       Race = "Netch"
	RaceNord        Race = "Nord"
	RaceOrc         Race = "Orc"
	RaceRedguard    Race = "Redguard"
	RaceReptile     Race = "Reptile"
	RaceSkeever     Race = "Skeever"
	RaceSkeleton    Race = "Skeleton"
	RaceSpider      Race = "Spider"
	RaceSpirit      Race = "Spirit"
	RaceSpriggan    Race = "Spriggan"
	RaceVampire     Race = "Vampire"
	RaceWerewolf    Race = "Werewolf"
	RaceWolf        Race = "Wolf"
	RaceWoodElf     Race = "Wood Elf"
)

func ParseRace(raw string) (Race, error) {
	switch raw {
	case "Argonian":
		return RaceArgonian, nil
	case "Ash Creature":
		return RaceAshCreature, nil
	case "Beast":
		return RaceBeast, nil
	case "Breton":
		return RaceBreton, nil
	case "Daedra":
		return RaceDaedra, nil
	case "Dark Elf":
		return RaceDarkElf, nil
	case "Defense":
		return RaceDefense, nil
	case "Dreugh":
		return RaceDreugh, nil
	case "Dwemer":
		return RaceDwemer, nil
	case "Fish":
		return RaceFish, nil
	case "God":
		return RaceGod, nil
	case "High Elf":
		return RaceHighElf, nil
	case "Imperial":
		return RaceImperial, nil
	case "Khajiit":
		return RaceKhajiit, nil
	case "Kwama":
		return RaceKwama, nil
	case "Mammoth":
		return RaceMammoth, nil
	case "Mudcrab":
		return RaceMudcrab, nil
	case "Mummy":
		return RaceMummy, nil
	case "Netch":
		return RaceNetch, nil
	case "Nord":
		return RaceNord, nil
	case "Orc":
		return RaceOrc, nil
	case "Redguard":
		return RaceRedguard, nil
	case "Reptile":
		return RaceReptile, nil
	case "Skeever":
		return RaceSkeever, nil
	case "Skeleton":
		return RaceSkeleton, nil
	case "Spider":
		return RaceSpider, nil
	case "Spirit":
		return RaceSpirit, nil
	case "Spriggan":
		return RaceSpriggan, nil
	case "Vampire":
		return RaceVampire, nil
	case "Werewolf":
		return RaceWerewolf, nil
	case "Wolf":
		return RaceWolf, nil
	case "Wood Elf":
		return RaceWoodElf, nil
	default:
		return "", invalid("race", raw)
	}
}

func Races() []Race {
	return []Race{
		RaceArgonian, RaceAshCreature, RaceBeast, RaceBreton, RaceDaedra, RaceDarkElf,
		RaceDefense, RaceDreugh, RaceDwemer, RaceFish, RaceGod, RaceHighElf, RaceImperial,
		RaceKhajiit, RaceKwama, RaceMammoth, RaceMudcrab, RaceMummy, RaceNetch, RaceNord,
		RaceOrc, RaceRedguard, RaceReptile, RaceSkeever, RaceSkeleton, RaceSpider, RaceSpirit,
		RaceSpriggan, RaceVampire, RaceWerewolf, RaceWolf, RaceWoodElf,
	}
}

// --- Keyword ---

type Keyword string

const (
	KeywordProphecy     Keyword = "Prophecy"
	KeywordLethal       Keyword = "Lethal"
	KeywordGuard        Keyword = "Guard"
	KeywordRegenerate   Keyword = "Regenerate"
	KeywordDrain        Keyword = "Drain"
	KeywordBreakthrough Keyword = "Breakthrough"
	KeywordWard         Keyword = "Ward"
	KeywordCharge       Keyword = "Charge"
	KeywordRally        Keyword = "Rally"
	KeywordMobilize     Keyword = "Mobilize"
)

func ParseKeyword(raw string) (Keyword, error) {
	switch raw {
	case "Prophecy":
		return KeywordProphecy, nil
	case "Lethal":
		return KeywordLethal, nil
	case "Guard":
		return KeywordGuard, nil
	case "Regenerate":
		return KeywordRegenerate, nil
	case "Drain":
		return KeywordDrain, nil
	case "Breakthrough":
		return KeywordBreakthrough, nil
	case "Ward":
		return KeywordWard, nil
	case "Charge":
		return KeywordCharge, nil
	case "Rally":
		return KeywordRally, nil
	case "Mobilize":
		return KeywordMobilize, nil
	default:
		return "", invalid("keyword", raw)
	}
}

// ParseKeywords maps each raw keyword in order and stops at the first bad one.
func ParseKeywords(raw []string) ([]Keyword, error) {
	out := make([]Keyword, 0, len(raw))
	for _, r := range raw {
		k, err := ParseKeyword(r)
		if err != nil {
			return nil, err
		}
		out = append(out, k)
	}
	return out, nil
}

func Keywords() []Keyword {
	return []Keyword{
		KeywordProphecy, KeywordLethal, KeywordGuard, KeywordRegenerate, KeywordDrain,
		KeywordBreakthrough, KeywordWard, KeywordCharge, KeywordRally, KeywordMobilize,
	}
}

// --- Gender ---

type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonbinary Gender = "Nonbinary"
	GenderUnknown   Gender = "Unknown"
)

// ParseGender maps a gender string from the gender table.
func ParseGender(raw string) (Gender, error) {
	switch raw {
	case "Male":
		return GenderMale, nil
	case "Female":
		return GenderFemale, nil
	case "Nonbinary":
		return GenderNonbinary, nil
	case "Unknown":
		return GenderUnknown, nil
	default:
		return "", invalid("gender", raw)
	}
}

func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale, GenderNonbinary, GenderUnknown}
}

// --- CardType ---

type CardType string

const (
	CardTypeAction   CardType = "Action"
	CardTypeItem     CardType = "Item"
	CardTypeSupport  CardType = "Support"
	CardTypeCreature CardType = "Creature"

	// CardTypeDouble is the retired dual-sided type. It is dropped before
	// shaping and ParseCardType rejects it.
	CardTypeDouble CardType = "Double"
)

func ParseCardType(raw string) (CardType, error) {
	switch raw {
	case "Action":
		return CardTypeAction, nil
	case "Item":
		return CardTypeItem, nil
	case "Support":
		return CardTypeSupport, nil
	case "Creature":
		return CardTypeCreature, nil
	default:
		return "", &InvalidCardTypeError{Value: raw}
	}
}

func CardTypes() []CardType {
	return []CardType{CardTypeAction, CardTypeItem, CardTypeSupport, CardTypeCreature}
}
