package render_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
)

type FragmentsTestSuite struct {
	suite.Suite
}

func TestFragmentsSuite(t *testing.T) {
	suite.Run(t, new(FragmentsTestSuite))
}

func (s *FragmentsTestSuite) parse(fragment string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	s.Require().NoError(err)
	return doc
}

func (s *FragmentsTestSuite) TestFeatureItem() {
	s.Assert().Equal(
		`<div class="feature-item"><strong>Darkvision:</strong><div class="feature-text">60 ft.</div></div>`,
		render.FeatureItem("Darkvision:", "60 ft."),
	)
}

func (s *FragmentsTestSuite) TestSpellItem() {
	html := render.SpellItem(render.SpellCard{
		Name:        "Hex",
		School:      "Enchantment",
		CastingTime: "Bonus Action",
		Range:       "90 feet",
		Duration:    "1 hour",
		Description: "You place a curse.",
	})

	doc := s.parse(html)
	s.Assert().Equal("Hex", doc.Find(".feature-item > strong").Text())
	text := doc.Find(".feature-text").Text()
	s.Assert().Contains(text, "Casting Time: Bonus Action, Range: 90 feet, Duration: 1 hour")
	s.Assert().Contains(text, "You place a curse.")
	s.Assert().Contains(html, "</strong> (Enchantment)<div")
}

func (s *FragmentsTestSuite) TestWeaponAndInventory() {
	weapon := render.WeaponItem(render.WeaponCard{Name: "Longsword", HitBonus: "5", Damage: "Slashing: 1d8+3", Properties: "Versatile"})
	s.Assert().Equal(
		`<div class="feature-item"><strong>Longsword</strong><div class="feature-text"><em>Attack Bonus:</em> +5, `+
			`<em>Damage:</em> Slashing: 1d8+3<br><em>Properties:</em> Versatile</div></div>`,
		weapon,
	)

	item := s.parse(render.InventoryItem(render.InventoryCard{Name: "Rope", Equipped: true, Type: "Gear", Quantity: "1", Weight: "10"}))
	s.Assert().Equal("Rope (Equipped)", item.Find("strong").Text())
	s.Assert().Equal("Type: Gear, Quantity: 1, Weight: 10 lbs", item.Find(".feature-text").Text())
}

func (s *FragmentsTestSuite) TestUsesItem() {
	doc := s.parse(render.UsesItem("Second Wind", "Short Rest", 2))
	s.Assert().Equal("Short Rest", doc.Find(".uses-row > span").First().Text())
	s.Assert().Equal(2, doc.Find(".uses-boxes .prof-indicator").Length())

	s.Assert().Equal(`<div class="feature-item"><strong>Dash</strong></div>`, render.UsesItem("Dash", "Long Rest", 0))
}

func (s *FragmentsTestSuite) TestSlotRow() {
	doc := s.parse(render.SlotRow(1, 2))
	s.Assert().Equal("Level 1:", doc.Find(".slot-label").Text())
	s.Assert().Equal(2, doc.Find(".slot-boxes .prof-indicator").Length())
}

func (s *FragmentsTestSuite) TestAbilityGroup() {
	skills := render.SkillItem("Stealth", engine.RankExpertise, "+8") +
		render.SkillItem("Acrobatics", engine.RankProficient, "+5") +
		render.SkillItem("Sleight of Hand", engine.RankNone, "+2")
	doc := s.parse(render.AbilityGroup(render.AbilityStat("DEX", 14, "+2"), skills))

	s.Assert().Equal("DEX", doc.Find(".stat label").Text())
	s.Assert().Equal("14", doc.Find(".stat-value").Text())
	s.Assert().Equal("+2", doc.Find(".stat-mod").Text())
	s.Assert().Equal(3, doc.Find(".skills-box .skill-item").Length())
	s.Assert().Equal("E", doc.Find(".prof-indicator.expertise").Text())
	s.Assert().Equal("P", doc.Find(".prof-indicator.proficient").Text())
	s.Assert().Equal("+2", doc.Find(".skill-item").Last().Find(".skill-bonus").Text())
}

func (s *FragmentsTestSuite) TestSpellcastingSection() {
	doc := s.parse(render.SpellcastingSection(render.SpellcastingCard{
		ClassName:   "Wizard",
		SpellAttack: "+7",
		SaveDC:      15,
		Ability:     "Intelligence",
		Slots:       render.SlotRow(1, 4),
	}))

	s.Assert().Equal("Wizard Spellcasting", doc.Find(".section h2").Text())
	values := doc.Find(".info-card .value").Map(func(_ int, sel *goquery.Selection) string {
		return sel.Text()
	})
	s.Assert().Equal([]string{"+7", "15", "Intelligence"}, values)
	s.Assert().Equal(4, doc.Find(".content-box .prof-indicator").Length())
}

func (s *FragmentsTestSuite) TestTally() {
	s.Assert().Equal("", render.Tally(0))
	s.Assert().Equal("", render.Tally(-2))
	s.Assert().Equal(3, strings.Count(render.Tally(3), "prof-indicator"))
	s.Assert().Equal(render.MaxTally, strings.Count(render.Tally(1_000_000_000), "prof-indicator"))
}
