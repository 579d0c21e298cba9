package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/term2048/internal/game"
)

type fixedStrategy struct {
	dir game.Direction
}

func (f fixedStrategy) Name() string { return "fixed" }

func (f fixedStrategy) BestMove(g game.Grid) (game.Direction, bool) {
	return f.dir, game.Slide(g, f.dir).Changed
}

func init() {
	Register("test-fixed", "Always slides left", func(Options) (Strategy, error) {
		return fixedStrategy{dir: game.Left}, nil
	})
	Register("test-broken", "Rejects every option set", func(Options) (Strategy, error) {
		return nil, errors.New("no")
	})
}

func TestCreate(t *testing.T) {
	s, err := Create("test-fixed", DefaultOptions())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	g := game.GridFromRows([4][4]int{{0, 2}})
	dir, ok := s.BestMove(g)
	if !ok || dir != game.Left {
		t.Errorf("BestMove() = %v, %v, want Left, true", dir, ok)
	}

	if _, err := Create("missing", DefaultOptions()); err == nil {
		t.Error("Create() of unknown strategy should fail")
	}
	if _, err := Create("test-broken", DefaultOptions()); err == nil {
		t.Error("Create() should surface factory errors")
	}
}

func TestList(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Name >= list[i].Name {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Name, list[i].Name)
		}
	}

	found := false
	for _, info := range list {
		if info.Name == "test-fixed" {
			found = true
			if info.Description != "Always slides left" {
				t.Errorf("Description = %q", info.Description)
			}
		}
	}
	if !found {
		t.Error("List() missing test-fixed")
	}
}

func TestExists(t *testing.T) {
	if !Exists("test-fixed") {
		t.Error("Exists(test-fixed) = false")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-fixed", "again", nil)
}
