package registry

import (
	"slices"
	"testing"

	"github.com/vovakirdan/ninja-killers/internal/core"
)

type stubGame struct {
	id, title string
	seeded    []core.RunRecord
	name      string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) SeedScores(runs []core.RunRecord)     { g.seeded = runs }
func (g *stubGame) SetPlayerName(name string)            { g.name = name }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Game { return &stubGame{id: "stub-b", title: "Stub B"} })
	Register("stub-a", func() Game { return &stubGame{id: "stub-a", title: "Stub A"} })

	if !Exists("stub-a") || Exists("stub-missing") {
		t.Fatal("Exists mismatch")
	}

	g, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Stub B" {
		t.Errorf("title = %q", g.Title())
	}

	if _, err := Create("stub-missing"); err == nil {
		t.Error("expected error for unknown game")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	if !slices.IsSorted(ids) {
		t.Errorf("List not sorted: %v", ids)
	}
	ia, ib := slices.Index(ids, "stub-a"), slices.Index(ids, "stub-b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("expected stub-a before stub-b in %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestOptionalInterfaces(t *testing.T) {
	var g Game = &stubGame{id: "stub-opt"}

	seeder, ok := g.(ScoreSeeder)
	if !ok {
		t.Fatal("stub should implement ScoreSeeder")
	}
	seeder.SeedScores([]core.RunRecord{{Player: "a", Score: 3}})

	namer, ok := g.(PlayerNamer)
	if !ok {
		t.Fatal("stub should implement PlayerNamer")
	}
	namer.SetPlayerName("kai")

	if _, ok := g.(Resizer); ok {
		t.Error("stub does not implement Resizer")
	}

	s := g.(*stubGame)
	if len(s.seeded) != 1 || s.name != "kai" {
		t.Errorf("hooks not applied: %+v", s)
	}
}
