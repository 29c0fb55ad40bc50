package testhelpers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sylvanbot/sylvan/game"
	"github.com/sylvanbot/sylvan/move"
)

// ScenarioTree is a tree as written in a scenario file.
type ScenarioTree struct {
	Cell    int  `yaml:"cell"`
	Size    int  `yaml:"size"`
	Mine    bool `yaml:"mine"`
	Dormant bool `yaml:"dormant,omitempty"`
}

// Scenario is a position with the move the bot must pick in it.
type Scenario struct {
	Name      string         `yaml:"name"`
	Day       int            `yaml:"day"`
	Nutrients int            `yaml:"nutrients"`
	Sun       int            `yaml:"sun"`
	Trees     []ScenarioTree `yaml:"trees"`
	Expect    string         `yaml:"expect"`
}

// LoadScenarios reads a YAML list of scenarios.
func LoadScenarios(path string) ([]Scenario, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scenarios []Scenario
	if err := yaml.Unmarshal(bts, &scenarios); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}

// State builds the scenario's position on the standard board.
func (sc Scenario) State() (*game.State, error) {
	trees := make([]game.PlacedTree, len(sc.Trees))
	for i, t := range sc.Trees {
		trees[i] = game.PlacedTree{Cell: t.Cell, Tree: game.Tree{Size: t.Size, Mine: t.Mine, Dormant: t.Dormant}}
	}
	return game.NewState(StandardBoard, game.Snapshot{Day: sc.Day, Nutrients: sc.Nutrients, Sun: sc.Sun}, trees)
}

// ExpectedMove parses the scenario's expected move.
func (sc Scenario) ExpectedMove() (*move.Move, error) {
	return move.Parse(sc.Expect)
}
