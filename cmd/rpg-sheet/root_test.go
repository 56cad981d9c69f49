package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type RootCmdTestSuite struct {
	suite.Suite
	documentPath string
	templatePath string
}

func TestRootCmdSuite(t *testing.T) {
	suite.Run(t, new(RootCmdTestSuite))
}

func (s *RootCmdTestSuite) SetupTest() {
	s.documentPath = testutils.WriteFile(s.T(), "thorin.json", testutils.WarlockDocument)
	s.templatePath = testutils.WriteFile(s.T(), "template.html", testutils.MinimalTemplate)
}

func (s *RootCmdTestSuite) execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func (s *RootCmdTestSuite) TestDefaultTemplateResolvesFromWorkingDir() {
	_, err := s.execute(s.documentPath)
	s.Require().Error(err)
	s.Assert().True(errors.IsMissingFile(err))
	s.Assert().Equal("Template file not found: character_template.html", errors.GetMessage(err))
}

func (s *RootCmdTestSuite) TestGenerate() {
	outputPath := filepath.Join(s.T().TempDir(), "sheet.html")

	out, err := s.execute(s.documentPath, outputPath, s.templatePath)
	s.Require().NoError(err)

	s.Assert().Contains(out, "Loading character data from: "+s.documentPath)
	s.Assert().Contains(out, "Generating character sheet using template: "+s.templatePath)
	s.Assert().Contains(out, "Character sheet generated successfully: "+outputPath)

	written, err := os.ReadFile(outputPath)
	s.Require().NoError(err)
	s.Assert().Contains(string(written), "<h1>Thorin Oakenshield</h1>")
}

func (s *RootCmdTestSuite) TestFailures() {
	missing := filepath.Join(s.T().TempDir(), "absent.json")

	testCases := []struct {
		name    string
		args    []string
		check   func(error) bool
		wantMsg string
	}{
		{
			name:  "no document",
			args:  []string{},
			check: errors.IsInvalidArgument,
		},
		{
			name:    "document missing",
			args:    []string{missing},
			check:   errors.IsMissingFile,
			wantMsg: "JSON file not found: " + missing,
		},
		{
			name:    "template missing",
			args:    []string{s.documentPath, filepath.Join(s.T().TempDir(), "out.html"), missing},
			check:   errors.IsMissingFile,
			wantMsg: "Template file not found: " + missing,
		},
		{
			name:  "empty output path",
			args:  []string{s.documentPath, "", s.templatePath},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "bad log level",
			args:  []string{"--log-level", "chatty", s.documentPath},
			check: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.execute(tc.args...)
			s.Require().Error(err)
			s.Assert().True(tc.check(err), "unexpected code %s", errors.GetCode(err))
			if tc.wantMsg != "" {
				s.Assert().Equal(tc.wantMsg, errors.GetMessage(err))
			}
		})
	}
}

func (s *RootCmdTestSuite) TestHelp() {
	for _, args := range [][]string{{"--help"}, {"-h"}, {"help"}} {
		out, err := s.execute(args...)
		s.Require().NoError(err)
		s.Assert().Contains(out, "rpg-sheet <document> [output] [template]")
	}
}

func (s *RootCmdTestSuite) TestDefaultOutputPath() {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "thorin.json", want: "thorin.html"},
		{in: "party/balin.yaml", want: "party/balin.html"},
		{in: "notes", want: "notes.html"},
		{in: "v1.2/thorin", want: "v1.2/thorin.html"},
	}

	for _, tc := range testCases {
		s.Run(tc.in, func() {
			s.Assert().Equal(tc.want, defaultOutputPath(tc.in))
		})
	}
}
