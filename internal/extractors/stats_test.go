package extractors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-sheet/internal/engine/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/extractors"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type StatsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	engine engine.Engine
}

func TestStatsSuite(t *testing.T) {
	suite.Run(t, new(StatsTestSuite))
}

func (s *StatsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	var err error
	s.engine, err = engine.New(nil)
	s.Require().NoError(err)
}

func (s *StatsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *StatsTestSuite) TestClasses() {
	s.Assert().Equal("Unknown", extractors.Classes(nil))
	s.Assert().Equal("Warlock 3 / Unknown 1", extractors.Classes([]dnd5e.Class{
		{Name: "Warlock", Level: 3},
		{Level: 1},
	}))
}

func (s *StatsTestSuite) TestAbilitiesSkillsGrouped() {
	c := builders.NewCharacterBuilder().
		WithProficiencyBonus(3).
		WithAbility(dnd5e.AbilityDexterity, 9).
		WithSkillExpertise(dnd5e.SkillStealth).
		WithSkillProficiency(dnd5e.SkillStealth).
		WithSkillProficiency(dnd5e.SkillAcrobatics).
		Build()
	stats, err := s.engine.CalculateCharacterStats(context.Background(), &engine.CalculateCharacterStatsInput{Character: c})
	s.Require().NoError(err)

	doc := parseHTML(&s.Suite, extractors.AbilitiesSkillsGrouped(stats))
	groups := doc.Find(".ability-group")
	s.Require().Equal(6, groups.Length())
	s.Assert().Equal([]string{"STR", "DEX", "CON", "INT", "WIS", "CHA"}, texts(doc.Find(".stat label")))

	dex := groups.Eq(1)
	s.Assert().Equal("-1", dex.Find(".stat-mod").Text())
	s.Assert().Equal([]string{"+2", "-1", "+5"}, texts(dex.Find(".skill-bonus")))
	s.Assert().Equal("E", dex.Find(".skill-item").Eq(2).Find(".prof-indicator").Text())

	s.Assert().Equal(0, groups.Eq(2).Find(".skill-item").Length())
	s.Assert().Equal(18, doc.Find(".skill-item").Length())

	flat := parseHTML(&s.Suite, extractors.AbilityStats(stats))
	s.Assert().Equal(6, flat.Find(".stat").Length())
	s.Assert().Equal(0, flat.Find(".skill-item").Length())
}

func (s *StatsTestSuite) TestHitDice() {
	testCases := []struct {
		name     string
		classes  []dnd5e.Class
		expected string
	}{
		{name: "no classes", expected: "1d10"},
		{name: "one die", classes: []dnd5e.Class{{Level: 5, HitPointDie: "1d10"}}, expected: "5d10"},
		{name: "bare die", classes: []dnd5e.Class{{Level: 3, HitPointDie: "d8"}}, expected: "3d8"},
		{name: "default die", classes: []dnd5e.Class{{Level: 2}}, expected: "2d10"},
		{name: "multiclass", classes: []dnd5e.Class{{Level: 3, HitPointDie: "1d8"}, {Level: 2, HitPointDie: "1d10"}}, expected: "3d8, 2d10"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, extractors.HitDice(tc.classes))
		})
	}
}

func (s *StatsTestSuite) TestLanguagesAndProficiencies() {
	s.Assert().Equal("Common", extractors.Languages(nil))
	s.Assert().Equal("Common, Elvish", extractors.Languages([]string{"Common", "Elvish"}))

	c := builders.NewCharacterBuilder().
		WithClass(dnd5e.Class{Name: "Fighter", ArmorTraining: "Medium Armor, Light Armor, Shields"}).
		WithClass(dnd5e.Class{Name: "Warlock", ArmorTraining: " Light Armor ,"}).
		Build()
	c.WeaponProficiencies = []string{"Martial Weapons"}
	c.ToolProficiencies = []string{"Dice Set"}

	s.Assert().Equal("Martial Weapons, Light Armor, Medium Armor, Shields, Dice Set", extractors.Proficiencies(c))
	s.Assert().Equal("None", extractors.Proficiencies(builders.NewCharacterBuilder().Build()))
}

func (s *StatsTestSuite) TestSpellcastingSections() {
	mockEngine := enginemock.NewMockEngine(s.ctrl)
	mockEngine.EXPECT().
		CalculateSpellcasting(&engine.CalculateSpellcastingInput{AbilityScore: 18, ProficiencyBonus: 3}).
		Return(&engine.CalculateSpellcastingOutput{AttackBonus: 7, SaveDC: 15})

	c := builders.NewCharacterBuilder().
		WithProficiencyBonus(3).
		WithAbility(dnd5e.AbilityCharisma, 18).
		WithClass(dnd5e.Class{Name: "Warlock [2024]", Level: 2, SpellAbility: dnd5e.AbilityCharisma}).
		WithClass(dnd5e.Class{Name: "Fighter", Level: 2}).
		WithClass(dnd5e.Class{Name: "Wizard", Level: 2, SpellAbility: dnd5e.AbilityIntelligence}).
		WithFeature(dnd5e.Feature{Kind: dnd5e.FeatureNamed, Type: "Warlock Feature", SpellSlots: dnd5e.SpellSlotTable{"2": {2}}}).
		Build()

	doc := parseHTML(&s.Suite, extractors.SpellcastingSections(c, mockEngine))
	s.Require().Equal(1, doc.Find(".section").Length())
	s.Assert().Equal("Warlock [2024] Spellcasting", doc.Find("h2").Text())
	s.Assert().Equal([]string{"+7", "15", "Charisma"}, texts(doc.Find(".info-card .value")))
	s.Assert().Equal(2, doc.Find(".spell-slot-row .prof-indicator").Length())
}

func (s *StatsTestSuite) TestSpellSections() {
	s.Assert().Equal("", extractors.SpellsSection(nil))

	details := parseHTML(&s.Suite, extractors.SpellDetailsSection(nil))
	s.Assert().Equal("Spell Details", details.Find("h2").Text())
	s.Assert().Equal(render.NoSpells, details.Find(".content-box").Text())

	spells := []dnd5e.Spell{{Title: "Guidance", School: "Divination"}}
	doc := parseHTML(&s.Suite, extractors.SpellsSection(spells))
	s.Assert().Equal("Spells", doc.Find("h2").Text())
	s.Assert().Equal("Cantrips:", doc.Find(".content-box p").Text())
}
