package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCharacterName is the name carried by the fixture documents
const TestCharacterName = "Thorin Oakenshield"

// WarlockDocument is a multiclass character exercising most facets of a
// sheet: spells with invocations, a slot table, limited-use features and
// rich-text notes.
const WarlockDocument = `{
  "name": "Thorin Oakenshield",
  "abilityScores": {
    "Strength": 14,
    "Dexterity": "13",
    "Constitution": 15,
    "Intelligence": 9,
    "Wisdom": 14,
    "Charisma": 18
  },
  "proficiencyBonus": 3,
  "class": [
    {
      "name": "Warlock [2024]",
      "level": 3,
      "spellAbility": "Charisma",
      "hitPointDie": "1d8",
      "armorTraining": "Light Armor"
    },
    {
      "name": "Fighter",
      "level": 2,
      "hitPointDie": "1d10",
      "armorTraining": "Light Armor, Medium Armor, Shields"
    }
  ],
  "species": {
    "name": "Dragonborn",
    "description": "Born of dragons",
    "size": "Medium",
    "speed": "30 ft.",
    "traits": [
      {
        "name": "Breath Weapon",
        "description": "Exhale destructive energy. You can use this feature a number of times equal to your Proficiency Bonus, regaining all uses on a Long Rest.",
        "customFields": {
          "uses": {"scaling": {"type": "proficiency", "baseValue": 0}}
        }
      },
      {
        "name": "Draconic Flight",
        "description": "As a Bonus Action, sprout wings. Once you use this trait, you can't use it again until you finish a Long Rest."
      },
      {
        "name": "Darkvision",
        "description": "You see in dim light within 60 feet."
      }
    ]
  },
  "background": {"name": "Soldier"},
  "alignment": "Lawful Good",
  "maxHP": 38,
  "armorClass": 15,
  "equipment": [
    {
      "title": "Longsword",
      "type": "Melee Weapon",
      "quantity": 1,
      "weight": 3,
      "equipped": true,
      "hitBonus": 5,
      "damages": {"Slashing": "1d8+pb", "Fire": "1d4"},
      "properties": "Versatile"
    },
    {
      "title": "Light Crossbow",
      "type": "Ranged Weapon",
      "quantity": 1,
      "weight": 5,
      "equipped": false
    },
    {
      "title": "Rations",
      "quantity": 5,
      "weight": 2.5
    }
  ],
  "spells": [
    {"title": "Eldritch Blast", "level": 0, "school": "Evocation", "preparingClass": "Warlock [2024]", "castingTime": "Action", "range": "120 feet", "duration": "Instantaneous", "description": "A beam of crackling energy.\nSource: Player's Handbook"},
    {"title": "Hex", "level": 1, "school": "Enchantment", "preparingClass": "Warlock [2024]", "castingTime": "Bonus Action", "range": "90 feet", "duration": "1 hour", "description": "You place a curse."},
    {"title": "Agonizing Blast", "school": "Invocation", "description": "Add your Charisma modifier to damage."},
    {"title": "Light", "level": 0, "school": "Evocation", "preparingClass": "", "castingTime": "Action", "range": "Touch", "duration": "1 hour", "description": "An object sheds light."}
  ],
  "featuresAndTraits": [
    {
      "name": "Pact Magic",
      "type": "Warlock [2024] Feature",
      "description": "You cast spells through your patron.",
      "spellSlotsPerLevel": {"1": [1], "2": [2], "3": [0, 2]}
    },
    {
      "name": "Second Wind",
      "type": "Fighter Feature",
      "description": "As a Bonus Action, regain hit points. You can use this feature twice, regaining one use on a Short Rest.",
      "customResource": "2"
    },
    {
      "name": "Action Surge",
      "type": "Fighter Feature",
      "description": "You can take one additional action. You can use this feature once per Short Rest."
    },
    "Fighting Style: Defense"
  ],
  "feats": [
    {"name": "Alert", "description": "Add your Proficiency Bonus to Initiative.\nSource: Player's Handbook"}
  ],
  "skillProficiencies": {"Athletics": true, "Perception": true, "Arcana": false},
  "skillExpertise": {"Perception": true},
  "languages": ["Common", "Draconic"],
  "weaponProficiencies": ["Simple Weapons", "Martial Weapons"],
  "toolProficiencies": ["Dice Set"],
  "bio": "Raised in the mountains.\nSeeks his lost hoard.",
  "age": 195,
  "eyes": "Blue",
  "notes": [
    {"title": "Session 1", "content": "[{\"insert\":\"Met the party\\nat the inn\"},{\"insert\":\"\\n\"}]"},
    {"title": "Goals", "content": "Reclaim Erebor\nAvenge kin"},
    "Owes Balin 10 gold"
  ]
}`

// MinimalDocument is the smallest valid character document
const MinimalDocument = `{"name": "Nobody"}`

// MinimalTemplate uses a handful of the assembled fields
const MinimalTemplate = `<html><head><title>$character_name</title></head>` +
	`<body><h1>${character_name}</h1><p>$classes</p><p>Cost: $$5</p>` +
	`<div>$abilities_skills_grouped</div><div>$actions</div></body></html>`

// WriteFile writes content under a fresh temp dir and returns its path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
