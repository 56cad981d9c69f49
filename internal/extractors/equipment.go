package extractors

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
)

// Weapons renders melee weapons. The proficiency-bonus token in damage
// formulas is replaced with the numeric bonus.
func Weapons(items []dnd5e.Item, proficiencyBonus int) string {
	pb := "+" + strconv.Itoa(proficiencyBonus)

	var b strings.Builder
	for _, item := range items {
		if item.Type != dnd5e.ItemTypeMeleeWeapon {
			continue
		}

		damages := make([]string, 0, len(item.Damages))
		for _, d := range item.Damages {
			damages = append(damages, d.Type+": "+strings.ReplaceAll(d.Formula, dnd5e.ProficiencyBonusToken, pb))
		}

		b.WriteString(render.WeaponItem(render.WeaponCard{
			Name:       orDefault(item.Title, "Unknown Weapon"),
			HitBonus:   orDefault(item.HitBonus, "0"),
			Damage:     strings.Join(damages, ", "),
			Properties: item.Properties,
		}))
	}
	return orDefault(b.String(), render.NoWeapons)
}

// Inventory renders every item regardless of type
func Inventory(items []dnd5e.Item) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(render.InventoryItem(render.InventoryCard{
			Name:     orDefault(item.Title, "Unknown Item"),
			Equipped: item.Equipped,
			Type:     orDefault(item.Type, "Item"),
			Quantity: orDefault(item.Quantity, "1"),
			Weight:   orDefault(item.Weight, "0"),
		}))
	}
	return orDefault(b.String(), render.NoItems)
}
