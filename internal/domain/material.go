package domain

// MaterialType is a coarse category tag for catalog materials
type MaterialType string

const (
	MaterialTypeOre     MaterialType = "ORE"
	MaterialTypeMetal   MaterialType = "METAL"
	MaterialTypeHerb    MaterialType = "HERB"
	MaterialTypeWood    MaterialType = "WOOD"
	MaterialTypeCloth   MaterialType = "CLOTH"
	MaterialTypeLeather MaterialType = "LEATHER"
	MaterialTypeGem     MaterialType = "GEM"
	MaterialTypeMagical MaterialType = "MAGICAL"
	MaterialTypeFood    MaterialType = "FOOD"
	MaterialTypeCrafted MaterialType = "CRAFTED"
)

// Rarity is the ordinal rarity scale for materials
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

var knownRarities = map[Rarity]struct{}{
	RarityCommon:    {},
	RarityUncommon:  {},
	RarityRare:      {},
	RarityEpic:      {},
	RarityLegendary: {},
}

// Valid reports whether the rarity is one of the known values
func (r Rarity) Valid() bool {
	_, ok := knownRarities[r]
	return ok
}

// Material represents a raw or crafted item in the catalog, usable as a
// recipe ingredient or output
type Material struct {
	ID               int          `json:"material_id"`
	Name             string       `json:"name"`
	Description      string       `json:"description,omitempty"`
	MaterialType     MaterialType `json:"material_type"`
	Rarity           Rarity       `json:"rarity"`
	BaseValue        float64      `json:"base_value"`
	Weight           float64      `json:"weight"`
	IsCraftable      bool         `json:"is_craftable"`
	SourceTags       []string     `json:"source_tags,omitempty"`
	IllicitInRegions []string     `json:"illicit_in_regions,omitempty"`
	Properties       Properties   `json:"properties,omitempty"`
}
