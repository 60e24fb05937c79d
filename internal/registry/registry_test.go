package registry

import (
	"testing"

	"github.com/vovakirdan/iceslide/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string {
	return g.id
}

func (g *stubGame) Title() string {
	return "Stub " + g.id
}

func (g *stubGame) Description() string {
	return "stub puzzle"
}

func (g *stubGame) Reset(core.RuntimeConfig) {}

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g *stubGame) Render(*core.Screen) {}

func (g *stubGame) State() core.GameState {
	return core.GameState{}
}

func TestRegisterKeepsOrder(t *testing.T) {
	ids := []string{"test-zeta", "test-alpha", "test-mid"}
	for _, id := range ids {
		id := id
		Register(id, func() Game { return &stubGame{id: id} })
	}

	var got []string
	for _, info := range List() {
		for _, id := range ids {
			if info.ID == id {
				got = append(got, info.ID)
				if info.Title != "Stub "+id || info.Description != "stub puzzle" {
					t.Errorf("unexpected info %+v", info)
				}
			}
		}
	}
	if len(got) != len(ids) {
		t.Fatalf("List() returned %v", got)
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("List() order = %v, expected %v", got, ids)
			break
		}
	}

	g, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test-alpha" {
		t.Errorf("Create() returned %q", g.ID())
	}
	if !Exists("test-mid") || Exists("test-missing") {
		t.Error("Exists() mismatch")
	}
	if _, err := Create("test-missing"); err == nil {
		t.Error("Create() of unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })
}
