package document_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/document"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type DocumentTestSuite struct {
	suite.Suite
}

func TestDocumentSuite(t *testing.T) {
	suite.Run(t, new(DocumentTestSuite))
}

func (s *DocumentTestSuite) TestParseRejectsBadInput() {
	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "undecodable",
			input:   `{"name": `,
			message: "Invalid JSON format",
		},
		{
			name:    "array root",
			input:   `[1, 2, 3]`,
			message: "JSON data must be an object",
		},
		{
			name:    "string root",
			input:   `"hello"`,
			message: "JSON data must be an object",
		},
		{
			name:    "empty",
			input:   ``,
			message: "Invalid JSON format",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			doc, err := document.Parse([]byte(tc.input))
			s.Require().Error(err)
			s.Assert().Nil(doc)
			s.Assert().True(errors.IsFormat(err))
			s.Assert().Contains(errors.GetMessage(err), tc.message)
		})
	}
}

func (s *DocumentTestSuite) TestParseStripsBOM() {
	doc, err := document.Parse([]byte("\xef\xbb\xbf" + testutils.MinimalDocument))
	s.Require().NoError(err)
	s.Assert().Equal("Nobody", doc.Character().Name)
}

func (s *DocumentTestSuite) TestLoadFileMissing() {
	path := filepath.Join(s.T().TempDir(), "absent.json")

	_, err := document.LoadFile(path)
	s.Require().Error(err)
	s.Assert().True(errors.IsMissingFile(err))
	s.Assert().Equal("JSON file not found: "+path, errors.GetMessage(err))
}

func (s *DocumentTestSuite) TestLoadFileYAML() {
	path := testutils.WriteFile(s.T(), "hero.yaml", `
name: Mira
abilityScores:
  Strength: 8
  Wisdom: 16
proficiencyBonus: 2
class:
  name: Cleric
  level: 4
  spellAbility: Wisdom
equipment:
  - title: Mace
    type: Melee Weapon
    equipped: yes
    damages:
      Bludgeoning: 1d6+pb
      Radiant: 1d4
`)

	doc, err := document.LoadFile(path)
	s.Require().NoError(err)

	c := doc.Character()
	s.Assert().Equal("Mira", c.Name)
	s.Assert().Equal(8, c.Abilities.Score(dnd5e.AbilityStrength))
	s.Assert().Equal(16, c.Abilities.Score(dnd5e.AbilityWisdom))
	s.Assert().Equal(10, c.Abilities.Score(dnd5e.AbilityCharisma))
	s.Require().Len(c.Classes, 1)
	s.Assert().Equal("Cleric", c.Classes[0].Name)
	s.Assert().Equal(4, c.Classes[0].Level)
	s.Require().Len(c.Equipment, 1)
	s.Assert().Equal([]dnd5e.Damage{
		{Type: "Bludgeoning", Formula: "1d6+pb"},
		{Type: "Radiant", Formula: "1d4"},
	}, c.Equipment[0].Damages)
}

func (s *DocumentTestSuite) TestParseYAMLRejectsNonMapping() {
	_, err := document.ParseYAML([]byte("- one\n- two\n"))
	s.Require().Error(err)
	s.Assert().True(errors.IsFormat(err))
	s.Assert().Equal("YAML data must be an object", errors.GetMessage(err))
}

func (s *DocumentTestSuite) TestIsYAMLPath() {
	s.Assert().True(document.IsYAMLPath("a/b.YML"))
	s.Assert().True(document.IsYAMLPath("hero.yaml"))
	s.Assert().False(document.IsYAMLPath("hero.json"))
	s.Assert().False(document.IsYAMLPath("hero"))
}

func (s *DocumentTestSuite) TestParseYAMLRejectsAliasExpansion() {
	var b strings.Builder
	b.WriteString("a0: &a0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&b, "a%d: &a%d [", i, i)
		for j := 0; j < 10; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "*a%d", i-1)
		}
		b.WriteString("]\n")
	}

	_, err := document.ParseYAML([]byte(b.String()))
	s.Require().Error(err)
	s.Assert().True(errors.IsFormat(err))
	s.Assert().True(strings.HasPrefix(errors.GetMessage(err), "Invalid YAML format: "))
}

func (s *DocumentTestSuite) TestParseYAMLKeepsSmallAliases() {
	doc, err := document.ParseYAML([]byte("base: &base {name: Fighter, level: 2}\nclass: [*base, *base]\nname: Twin\n"))
	s.Require().NoError(err)
	c := doc.Character()
	s.Require().Len(c.Classes, 2)
	s.Assert().Equal("Fighter", c.Classes[1].Name)
	s.Assert().Equal(4, c.TotalLevel())
}
