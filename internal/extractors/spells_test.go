package extractors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/document"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/extractors"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
)

type SpellsTestSuite struct {
	suite.Suite
	spells []dnd5e.Spell
}

func TestSpellsSuite(t *testing.T) {
	suite.Run(t, new(SpellsTestSuite))
}

func (s *SpellsTestSuite) SetupTest() {
	s.spells = []dnd5e.Spell{
		{Title: "Shield", Level: 1, School: "Abjuration", PreparingClass: "Wizard", CastingTime: "Reaction", Range: "Self", Duration: "1 round", Description: "+5 AC"},
		{Title: "Fire Bolt", Level: 0, School: "Evocation", PreparingClass: "Wizard"},
		{Title: "Fireball", Level: 3, School: "Evocation", PreparingClass: "Wizard"},
		{Title: "Hex", Level: 1, School: "Enchantment", PreparingClass: "Warlock"},
		{Title: "Devil's Sight", School: dnd5e.SchoolInvocation, Description: "See in magical darkness"},
		{Title: "Light", Level: 0, School: "Evocation"},
	}
}

func (s *SpellsTestSuite) TestEmptyListFallsBack() {
	short, detailed := extractors.Spells(nil, "")
	s.Assert().Equal(render.NoSpells, short)
	s.Assert().Equal(render.NoSpells, detailed)

	short, detailed = extractors.Spells(s.spells, "Cleric")
	s.Assert().Equal(render.NoSpells, short)
	s.Assert().Equal(render.NoSpells, detailed)
}

func (s *SpellsTestSuite) TestAllSpellsGroupedByLevel() {
	short, detailed := extractors.Spells(s.spells, "")

	doc := parseHTML(&s.Suite, short)
	s.Assert().Equal(
		[]string{"Invocations:", "Cantrips:", "Level 1:", "Level 3:"},
		texts(doc.Find("p > strong")),
	)
	s.Assert().Equal(
		[]string{"Devil's Sight", "Fire Bolt", "Light", "Shield", "Hex", "Fireball"},
		texts(doc.Find(".feature-item > strong")),
	)
	s.Assert().Contains(short, `<strong>Light</strong> <em>(Known)</em>`)
	s.Assert().Contains(short, `<div class="feature-item"><strong>Devil's Sight</strong></div>`)

	ddoc := parseHTML(&s.Suite, detailed)
	s.Assert().Equal(
		[]string{"Invocations", "Cantrips Spells", "Level 1 Spells", "Level 3 Spells"},
		texts(ddoc.Find("h4")),
	)
	s.Assert().Contains(detailed, render.FeatureItem("Devil's Sight", "See in magical darkness"))
	s.Assert().Contains(detailed, "<strong>Shield</strong> (Abjuration)")
	s.Assert().Contains(detailed, "<em>Casting Time:</em> Reaction, <em>Range:</em> Self, <em>Duration:</em> 1 round<br>+5 AC")
}

func (s *SpellsTestSuite) TestClassFilter() {
	short, _ := extractors.Spells(s.spells, "Wizard")
	doc := parseHTML(&s.Suite, short)
	s.Assert().Equal([]string{"Fire Bolt", "Shield", "Fireball"}, texts(doc.Find(".feature-item > strong")))
	s.Assert().NotContains(short, "Invocations")
}

func (s *SpellsTestSuite) TestWarlockGetsInvocations() {
	short, _ := extractors.Spells(s.spells, "Warlock")
	doc := parseHTML(&s.Suite, short)
	s.Assert().Equal([]string{"Devil's Sight", "Hex"}, texts(doc.Find(".feature-item > strong")))
}

func (s *SpellsTestSuite) TestInvocationNotDuplicated() {
	spells := []dnd5e.Spell{
		{Title: "Agonizing Blast", School: dnd5e.SchoolInvocation, PreparingClass: "Warlock"},
	}
	short, _ := extractors.Spells(spells, "Warlock")
	doc := parseHTML(&s.Suite, short)
	s.Assert().Equal(1, doc.Find(".feature-item").Length())
}

func (s *SpellsTestSuite) TestSpellSlots() {
	features := []dnd5e.Feature{
		{Kind: dnd5e.FeatureNamed, Type: "Cleric Feature", SpellSlots: dnd5e.SpellSlotTable{"1": {9, 9}}},
		{Kind: dnd5e.FeatureNamed, Type: "Wizard Feature", SpellSlots: dnd5e.SpellSlotTable{"1": {2, 0, 0}, "3": {4, 2}}},
	}

	out := extractors.SpellSlots(dnd5e.Class{Name: "Wizard", Level: 1}, features)
	doc := parseHTML(&s.Suite, out)
	s.Require().Equal(1, doc.Find(".spell-slot-row").Length())
	s.Assert().Equal("Level 1:", doc.Find(".slot-label").Text())
	s.Assert().Equal(2, doc.Find(".slot-boxes .prof-indicator").Length())

	out = extractors.SpellSlots(dnd5e.Class{Name: "Wizard [2024]", Level: 3}, features)
	doc = parseHTML(&s.Suite, out)
	s.Assert().Equal([]string{"Level 1:", "Level 2:"}, texts(doc.Find(".slot-label")))
}

func (s *SpellsTestSuite) TestSpellSlotsHugeCountBounded() {
	doc, err := document.Parse([]byte(`{"featuresAndTraits": [{"name": "Spellcasting", "type": "Wizard Feature",` +
		` "spellSlotsPerLevel": {"1": [1e17, 3]}}]}`))
	s.Require().NoError(err)
	c := doc.Character()

	var out string
	s.Require().NotPanics(func() {
		out = extractors.SpellSlots(dnd5e.Class{Name: "Wizard", Level: 1}, c.Features)
	})

	rows := parseHTML(&s.Suite, out).Find(".spell-slot-row")
	s.Require().Equal(2, rows.Length())
	s.Assert().Equal(render.MaxTally, rows.Eq(0).Find(".prof-indicator").Length())
	s.Assert().Equal(3, rows.Eq(1).Find(".prof-indicator").Length())
}

func (s *SpellsTestSuite) TestSpellSlotsFallback() {
	features := []dnd5e.Feature{
		{Kind: dnd5e.FeatureNamed, Type: "Wizard Feature", SpellSlots: dnd5e.SpellSlotTable{"1": {2}}},
		{Kind: dnd5e.FeatureNamed, Type: "Sorcerer Feature", SpellSlots: dnd5e.SpellSlotTable{"5": {4, 3, 2}}},
	}

	testCases := []struct {
		name string
		cls  dnd5e.Class
	}{
		{name: "no level row", cls: dnd5e.Class{Name: "Wizard", Level: 5}},
		{name: "no matching class", cls: dnd5e.Class{Name: "Paladin", Level: 5}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(render.NoSpellSlots, extractors.SpellSlots(tc.cls, features))
		})
	}

	zero := []dnd5e.Feature{{Type: "Wizard Feature", SpellSlots: dnd5e.SpellSlotTable{"1": {0, 0}}}}
	s.Assert().Equal(render.NoSpellSlots, extractors.SpellSlots(dnd5e.Class{Name: "Wizard", Level: 1}, zero))
}
