package cards

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Skeletonxf/card-game/asset"
	"github.com/Skeletonxf/card-game/game"
)

func TestLoadBuiltinPool(t *testing.T) {
	pool, err := Load(asset.Cards, "cards")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if pool.Len() != 5 {
		t.Errorf("Pool size = %d, want 5", pool.Len())
	}

	card, ok := pool.ByName("Staple Dragon")
	if !ok {
		t.Fatal("Staple Dragon missing from pool")
	}
	if card.Name != "Staple Dragon" {
		t.Errorf("Name = %q", card.Name)
	}
	if card.Attack != 6 || card.Defense != 5 {
		t.Errorf("Stats = %d/%d, want 6/5", card.Attack, card.Defense)
	}
	if len(card.Effects) != 1 {
		t.Fatalf("Effects = %d, want 1", len(card.Effects))
	}
	summon, ok := card.Effects[0].(*game.OnSummon)
	if !ok {
		t.Fatalf("Effect type = %T, want *game.OnSummon", card.Effects[0])
	}
	if summon.Mandatory {
		t.Error("Effect unexpectedly mandatory")
	}
	if _, ok := summon.Trigger.(*game.DestroySelfUnless); !ok {
		t.Errorf("Trigger type = %T, want *game.DestroySelfUnless", summon.Trigger)
	}
}

func TestIDsFollowSortedFileOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"cards/b.yaml": {Data: []byte("name: Beta\nattack: 1\ndefense: 1\n")},
		"cards/a.yaml": {Data: []byte("name: Alpha\nattack: 1\ndefense: 1\n")},
		"cards/c.yaml": {Data: []byte("name: Gamma\nattack: 1\ndefense: 1\n")},
	}
	pool, err := Load(fsys, "cards")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	for id, want := range []string{"Alpha", "Beta", "Gamma"} {
		ct, ok := pool.ByID(id)
		if !ok || ct.Name != want {
			t.Errorf("ByID(%d) = %v, want %s", id, ct, want)
		}
	}
	if _, ok := pool.ByID(3); ok {
		t.Error("ByID past the end succeeded")
	}
	if _, ok := pool.ByID(-1); ok {
		t.Error("ByID(-1) succeeded")
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errPart string
	}{
		{"Nameless card", "attack: 1\ndefense: 1\n", "no name"},
		{"Unknown effect", "name: X\neffects:\n  - type: on_tribute\n", "unknown effect"},
		{"Effect without type", "name: X\neffects:\n  - mandatory: true\n", "type discriminator"},
		{"Unknown trigger", "name: X\neffects:\n  - type: on_summon\n    trigger:\n      type: explode\n", "unknown trigger"},
		{"Condition without name", "name: X\neffects:\n  - type: on_summon\n    trigger:\n      type: destroy_self_unless\n      condition:\n        type: named_card_on_field\n", "needs a name"},
		{"Broken YAML", "name: [\n", "yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"cards/x.yaml": {Data: []byte(tt.content)},
			}
			_, err := Load(fsys, "cards")
			if err == nil {
				t.Fatal("Load accepted a bad file")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("Error %q does not mention %q", err, tt.errPart)
			}
		})
	}
}

func TestLoadRejectsDuplicateNames(t *testing.T) {
	fsys := fstest.MapFS{
		"cards/a.yaml": {Data: []byte("name: Twin\n")},
		"cards/b.yaml": {Data: []byte("name: Twin\n")},
	}
	if _, err := Load(fsys, "cards"); err == nil {
		t.Error("Load accepted two cards with the same name")
	}
}

func TestLoadIgnoresOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"cards/a.yaml":      {Data: []byte("name: Alpha\n")},
		"cards/notes.txt":   {Data: []byte("scratch")},
		"cards/sub/b.yaml":  {Data: []byte("name: Nested\n")},
		"cards/README.md":   {Data: []byte("# cards")},
		"cards/.a.yaml.swp": {Data: []byte{0}},
	}
	pool, err := Load(fsys, "cards")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if pool.Len() != 1 {
		t.Errorf("Pool size = %d, want 1 (only top-level .yaml files)", pool.Len())
	}
}
