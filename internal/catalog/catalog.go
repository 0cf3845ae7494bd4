package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tdnguyen27/StudyPet_Go/internal/domain"
)

// File names expected under the catalog config directory.
const (
	PetsFile   = "pets.json"
	FoodsFile  = "foods.json"
	QuestsFile = "quests.json"
)

// Minimum pool sizes so generation can draw without replacement.
const (
	MinDailyPool  = 4
	MinWeeklyPool = 9
)

// QuestCatalog holds the static quest templates quests are generated from.
type QuestCatalog struct {
	DailyGuaranteed  domain.QuestTemplate   `json:"daily_guaranteed"`
	WeeklyGuaranteed domain.QuestTemplate   `json:"weekly_guaranteed"`
	DailyPool        []domain.QuestTemplate `json:"daily_pool"`
	WeeklyPool       []domain.QuestTemplate `json:"weekly_pool"`
	Achievements     []domain.QuestTemplate `json:"achievements"`
}

// Catalog is the full set of static read-only game data.
type Catalog struct {
	Pets   []domain.PetCatalogEntry
	Foods  []domain.Food
	Quests QuestCatalog

	foodsByID map[string]domain.Food
}

// Load reads and validates all catalog files from dir.
func Load(dir string) (*Catalog, error) {
	c := &Catalog{}

	if err := readJSON(filepath.Join(dir, PetsFile), &c.Pets); err != nil {
		return nil, fmt.Errorf("failed to load pet catalog: %w", err)
	}
	if err := readJSON(filepath.Join(dir, FoodsFile), &c.Foods); err != nil {
		return nil, fmt.Errorf("failed to load food catalog: %w", err)
	}
	if err := readJSON(filepath.Join(dir, QuestsFile), &c.Quests); err != nil {
		return nil, fmt.Errorf("failed to load quest catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	c.foodsByID = make(map[string]domain.Food, len(c.Foods))
	for _, f := range c.Foods {
		c.foodsByID[f.ID] = f
	}

	return c, nil
}

// New builds a catalog from already-loaded data, bypassing file validation.
func New(pets []domain.PetCatalogEntry, foods []domain.Food, quests QuestCatalog) *Catalog {
	c := &Catalog{Pets: pets, Foods: foods, Quests: quests}
	c.foodsByID = make(map[string]domain.Food, len(foods))
	for _, f := range foods {
		c.foodsByID[f.ID] = f
	}
	return c
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (c *Catalog) validate() error {
	if len(c.Pets) == 0 {
		return fmt.Errorf("pet catalog is empty")
	}
	for _, p := range c.Pets {
		if p.Chance < 0 {
			return fmt.Errorf("pet %q has negative chance", p.Species)
		}
		if p.Rarity.Rank() < 0 {
			return fmt.Errorf("pet %q has unknown rarity %q", p.Species, p.Rarity)
		}
	}
	species := make(map[string]bool, len(c.Pets))
	for _, p := range c.Pets {
		species[p.Species] = true
	}
	for _, f := range c.Foods {
		if f.FavoriteOf != "" && !species[f.FavoriteOf] {
			return fmt.Errorf("food %q favors unknown species %q", f.ID, f.FavoriteOf)
		}
	}
	if len(c.Quests.DailyPool) < MinDailyPool {
		return fmt.Errorf("daily quest pool has fewer than %d templates", MinDailyPool)
	}
	if len(c.Quests.WeeklyPool) < MinWeeklyPool {
		return fmt.Errorf("weekly quest pool has fewer than %d templates", MinWeeklyPool)
	}
	return nil
}

// Food returns the food entry for the given id.
func (c *Catalog) Food(id string) (domain.Food, bool) {
	f, ok := c.foodsByID[id]
	return f, ok
}

// Entries returns the full pet catalog in configured order.
func (c *Catalog) Entries() []domain.PetCatalogEntry {
	return c.Pets
}

// TotalChance sums the configured draw weights over the whole pet catalog.
func (c *Catalog) TotalChance() float64 {
	var total float64
	for _, p := range c.Pets {
		total += p.Chance
	}
	return total
}

// RareOrAbove returns the catalog entries eligible for a pity-forced draw.
func (c *Catalog) RareOrAbove() []domain.PetCatalogEntry {
	var out []domain.PetCatalogEntry
	for _, p := range c.Pets {
		if p.Rarity.AtLeast(domain.RarityRare) {
			out = append(out, p)
		}
	}
	return out
}
