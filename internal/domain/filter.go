package domain

// MaterialFilter selects materials in catalog list queries. The convenience
// API treats the filters as mutually exclusive: the first non-zero field in
// declaration order wins. Skip/Limit paginate the result.
type MaterialFilter struct {
	MaterialType  MaterialType `json:"material_type,omitempty"`
	Rarity        Rarity       `json:"rarity,omitempty"`
	SourceTag     string       `json:"source_tag,omitempty"`
	Search        string       `json:"search,omitempty"`
	CraftableOnly bool         `json:"craftable_only,omitempty"`
	Skip          int          `json:"skip,omitempty"`
	Limit         int          `json:"limit,omitempty"`
}

// RecipeFilter selects recipes in catalog list queries, same first-match-wins
// convention as MaterialFilter.
type RecipeFilter struct {
	Category         string `json:"category,omitempty"`
	StationType      string `json:"station_type,omitempty"`
	OutputMaterial   int    `json:"output_material,omitempty"`
	UsingMaterial    int    `json:"using_material,omitempty"`
	Search           string `json:"search,omitempty"`
	Region           string `json:"region,omitempty"`
	DiscoverableOnly bool   `json:"discoverable_only,omitempty"`
	Skip             int    `json:"skip,omitempty"`
	Limit            int    `json:"limit,omitempty"`
}

// CraftingLogFilter selects crafting-log rows for history queries
type CraftingLogFilter struct {
	PlayerID    string `json:"player_id,omitempty"`
	RecipeID    int    `json:"recipe_id,omitempty"`
	SuccessOnly bool   `json:"success_only,omitempty"`
	Skip        int    `json:"skip,omitempty"`
	Limit       int    `json:"limit,omitempty"`
}
