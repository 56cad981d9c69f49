package sheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/document"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type AssembleTestSuite struct {
	suite.Suite
	orch *orchestrator
}

func TestAssembleSuite(t *testing.T) {
	suite.Run(t, new(AssembleTestSuite))
}

func (s *AssembleTestSuite) SetupTest() {
	eng, err := engine.New(nil)
	s.Require().NoError(err)
	s.orch = &orchestrator{engine: eng, mode: render.Tolerant}
}

func (s *AssembleTestSuite) assemble(input string) map[string]string {
	doc, err := document.Parse([]byte(input))
	s.Require().NoError(err)
	fields, err := s.orch.assemble(context.Background(), doc.Character())
	s.Require().NoError(err)
	return fields
}

func (s *AssembleTestSuite) TestEveryFieldPresent() {
	for _, input := range []string{testutils.WarlockDocument, testutils.MinimalDocument, `{}`} {
		fields := s.assemble(input)
		s.Assert().Len(fields, len(render.Fields))
		for _, name := range render.Fields {
			s.Assert().Contains(fields, name)
		}
	}
}

func (s *AssembleTestSuite) TestWarlockScalars() {
	fields := s.assemble(testutils.WarlockDocument)

	expected := map[string]string{
		render.FieldCharacterName:      testutils.TestCharacterName,
		render.FieldSpeciesName:        "Dragonborn",
		render.FieldSpeciesDescription: "Born of dragons",
		render.FieldSize:               "Medium",
		render.FieldSpeed:              "30 ft.",
		render.FieldClasses:            "Warlock [2024] 3 / Fighter 2",
		render.FieldBackground:         "Soldier",
		render.FieldAlignment:          "Lawful Good",
		render.FieldMaxHP:              "38",
		render.FieldArmorClass:         "15",
		render.FieldProficiencyBonus:   "+3",
		render.FieldInitiative:         "+1",
		render.FieldPassivePerception:  "18",
		render.FieldHitDice:            "3d8, 2d10",
		render.FieldLanguages:          "Common, Draconic",
		render.FieldProficiencies:      "Simple Weapons, Martial Weapons, Light Armor, Medium Armor, Shields, Dice Set",
	}
	for name, want := range expected {
		s.Assert().Equal(want, fields[name], name)
	}
}

func (s *AssembleTestSuite) TestDefaults() {
	fields := s.assemble(`{}`)

	expected := map[string]string{
		render.FieldCharacterName:        "Unknown",
		render.FieldSpeciesName:          "Unknown",
		render.FieldSpeciesDescription:   "",
		render.FieldSize:                 "Medium",
		render.FieldSpeed:                "30 ft.",
		render.FieldClasses:              "Unknown",
		render.FieldBackground:           "Unknown",
		render.FieldAlignment:            "Unknown",
		render.FieldMaxHP:                "Unknown",
		render.FieldArmorClass:           "Unknown",
		render.FieldSpeciesFeatures:      render.NoFeatures,
		render.FieldFeats:                render.NoFeatures,
		render.FieldSpellcastingSections: "",
		render.FieldSpellsSections:       "",
		render.FieldWeapons:              render.NoWeapons,
		render.FieldInventory:            render.NoItems,
		render.FieldBio:                  render.NoBio,
		render.FieldNotes:                render.NoNotes,
		render.FieldProficiencyBonus:     "+2",
		render.FieldInitiative:           "+0",
		render.FieldPassivePerception:    "10",
		render.FieldHitDice:              "1d10",
		render.FieldLanguages:            "Common",
		render.FieldProficiencies:        "None",
	}
	for name, want := range expected {
		s.Assert().Equal(want, fields[name], name)
	}
	s.Assert().Contains(fields[render.FieldSpellDetailsSections], render.NoSpells)
	s.Assert().Equal(`<div class="feature-item"><strong>Attack</strong></div>`, fields[render.FieldActions])
}

func (s *AssembleTestSuite) TestSpeedFallsBackToDocument() {
	fields := s.assemble(`{"species": {"name": "Elf"}, "speed": "35 ft."}`)
	s.Assert().Equal("35 ft.", fields[render.FieldSpeed])
}

func (s *AssembleTestSuite) TestWarlockFacets() {
	fields := s.assemble(testutils.WarlockDocument)

	s.Assert().Contains(fields[render.FieldSpellcastingSections], "<h2>Warlock [2024] Spellcasting</h2>")
	s.Assert().Contains(fields[render.FieldSpellcastingSections], `<div class="value">+7</div>`)
	s.Assert().Contains(fields[render.FieldSpellcastingSections], `<div class="value">15</div>`)
	s.Assert().Contains(fields[render.FieldSpellcastingSections], render.SlotRow(2, 2))
	s.Assert().NotContains(fields[render.FieldSpellcastingSections], "Fighter Spellcasting")

	s.Assert().Contains(fields[render.FieldActions], render.UsesItem("Breath Weapon", "Long Rest", 3))
	s.Assert().Contains(fields[render.FieldActions], render.NameItem("Draconic Flight"))
	s.Assert().Contains(fields[render.FieldActions], render.UsesItem("Second Wind", "Short Rest", 2))
	s.Assert().Contains(fields[render.FieldActions], render.UsesItem("Action Surge", "Short Rest", 1))
	s.Assert().NotContains(fields[render.FieldActions], "Darkvision")

	s.Assert().Contains(fields[render.FieldWeapons], "Slashing: 1d8+3, Fire: 1d4")
	s.Assert().Contains(fields[render.FieldInventory], "Longsword (Equipped)")
	s.Assert().Contains(fields[render.FieldNotes], render.FeatureItem("Session 1", "Met the party<br>at the inn<br>"))
	s.Assert().Contains(fields[render.FieldFeats], `<span style="color: #888; font-style: italic;">Source: Player's Handbook</span>`)
	s.Assert().Contains(fields[render.FieldClassFeatures], render.FeatureItem("", "Fighting Style: Defense"))
	s.Assert().Contains(fields[render.FieldBio], render.FeatureItem("Age", "195"))
}
