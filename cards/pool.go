// Package cards loads card type definitions from YAML files into a pool.
//
// One file defines one card type. Type identifiers are assigned from sorted
// file order at load time and are not part of the files themselves.
package cards

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Skeletonxf/card-game/game"
)

// Pool is the loaded card pool. It satisfies game.CardPool.
type Pool struct {
	cards  []*game.CardType
	byName map[string]*game.CardType
}

// Load reads every .yaml file directly under dir in fsys. File names are
// sorted before ID assignment so IDs are stable across runs.
func Load(fsys fs.FS, dir string) (*Pool, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("cards: reading %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	pool := &Pool{byName: make(map[string]*game.CardType)}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("cards: reading %s: %w", name, err)
		}
		ct, err := decodeCardType(data)
		if err != nil {
			return nil, fmt.Errorf("cards: %s: %w", name, err)
		}
		if _, dup := pool.byName[ct.Name]; dup {
			return nil, fmt.Errorf("cards: %s: duplicate card name %q", name, ct.Name)
		}
		ct.ID = len(pool.cards)
		pool.cards = append(pool.cards, ct)
		pool.byName[ct.Name] = ct
	}
	return pool, nil
}

// ByName looks a card type up by its printed name.
func (p *Pool) ByName(name string) (*game.CardType, bool) {
	ct, ok := p.byName[name]
	return ct, ok
}

// ByID looks a card type up by its load-order identifier.
func (p *Pool) ByID(id int) (*game.CardType, bool) {
	if id < 0 || id >= len(p.cards) {
		return nil, false
	}
	return p.cards[id], true
}

// Len returns the number of loaded card types.
func (p *Pool) Len() int {
	return len(p.cards)
}

func decodeCardType(data []byte) (*game.CardType, error) {
	var file struct {
		Name    string      `yaml:"name"`
		Attack  int         `yaml:"attack"`
		Defense int         `yaml:"defense"`
		Effects []yaml.Node `yaml:"effects"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if file.Name == "" {
		return nil, fmt.Errorf("card has no name")
	}

	ct := &game.CardType{
		Name:    file.Name,
		Attack:  file.Attack,
		Defense: file.Defense,
	}
	for i := range file.Effects {
		effect, err := decodeEffect(&file.Effects[i])
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		ct.Effects = append(ct.Effects, effect)
	}
	return ct, nil
}
