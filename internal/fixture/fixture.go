package fixture

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// Action names a scripted scoreboard operation.
type Action string

const (
	ActionStart  Action = "start"
	ActionUpdate Action = "update"
	ActionForce  Action = "force"
	ActionFinish Action = "finish"
)

// WorldCup is the name of the default scenario.
const WorldCup = "world-cup"

// ErrUnknownScenario is returned when a scenario name is not registered.
var ErrUnknownScenario = errors.New("unknown scenario")

// Step is one scripted operation. Matches are referenced by Label because
// identifiers are only assigned when the start step runs.
type Step struct {
	Action    Action
	Label     string
	Home      string
	Away      string
	HomeScore int
	AwayScore int
}

var scenarios = map[string]func() []Step{
	WorldCup:     worldCup,
	"correction": correction,
}

// Provider serves deterministic scenarios for local runs and tests.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchSteps returns the steps of the named scenario.
func (p *Provider) FetchSteps(ctx context.Context, name string) ([]Step, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	build, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
	}
	return build(), nil
}

// Names lists the registered scenarios in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// worldCup starts five matches and brings them to their final scores.
func worldCup() []Step {
	return []Step{
		{Action: ActionStart, Label: "mex-can", Home: "Mexico", Away: "Canada"},
		{Action: ActionStart, Label: "esp-bra", Home: "Spain", Away: "Brazil"},
		{Action: ActionStart, Label: "ger-fra", Home: "Germany", Away: "France"},
		{Action: ActionStart, Label: "uru-ita", Home: "Uruguay", Away: "Italy"},
		{Action: ActionStart, Label: "arg-aus", Home: "Argentina", Away: "Australia"},
		{Action: ActionUpdate, Label: "mex-can", HomeScore: 0, AwayScore: 5},
		{Action: ActionUpdate, Label: "esp-bra", HomeScore: 10, AwayScore: 2},
		{Action: ActionUpdate, Label: "ger-fra", HomeScore: 2, AwayScore: 2},
		{Action: ActionUpdate, Label: "uru-ita", HomeScore: 6, AwayScore: 6},
		{Action: ActionUpdate, Label: "arg-aus", HomeScore: 3, AwayScore: 1},
	}
}

// correction exercises a disallowed regression, the forced fix, and a finish.
func correction() []Step {
	return []Step{
		{Action: ActionStart, Label: "eng-ned", Home: "England", Away: "Netherlands"},
		{Action: ActionUpdate, Label: "eng-ned", HomeScore: 2, AwayScore: 1},
		{Action: ActionUpdate, Label: "eng-ned", HomeScore: 1, AwayScore: 1},
		{Action: ActionForce, Label: "eng-ned", HomeScore: 1, AwayScore: 1},
		{Action: ActionStart, Label: "por-bel", Home: "Portugal", Away: "Belgium"},
		{Action: ActionFinish, Label: "eng-ned"},
	}
}
