// Package menu holds the sidebar's navigation tree.
//
// The tree is plain configuration: groups with optional children, loaded
// from YAML. Every name doubles as a tab id, so names must be unique
// across groups and children alike.
package menu

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_menu.yaml
var defaultMenu []byte

var (
	ErrEmptyName     = errors.New("menu item has no name")
	ErrDuplicateItem = errors.New("duplicate menu item")
	ErrEmptyTree     = errors.New("menu has no items")
)

// Item is a top-level group. A group without children is itself a leaf.
type Item struct {
	Name     string   `yaml:"name"`
	Icon     string   `yaml:"icon,omitempty"`
	Children []string `yaml:"children,omitempty"`
}

// HasChildren reports whether selecting the item expands rather than opens.
func (i Item) HasChildren() bool {
	return len(i.Children) > 0
}

// Tree is the full menu in display order.
type Tree struct {
	Items []Item `yaml:"items"`
}

// Default returns the embedded menu.
func Default() Tree {
	t, err := Parse(defaultMenu)
	if err != nil {
		panic(fmt.Sprintf("embedded menu is invalid: %v", err))
	}
	return t
}

// Load reads a menu file. An empty path yields the embedded default.
func Load(path string) (Tree, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tree{}, fmt.Errorf("read menu %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tree{}, fmt.Errorf("menu %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a YAML menu.
func Parse(data []byte) (Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tree{}, fmt.Errorf("parse menu: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tree{}, err
	}
	return t, nil
}

// Validate checks for empty names and for names used twice.
func (t Tree) Validate() error {
	if len(t.Items) == 0 {
		return ErrEmptyTree
	}
	seen := make(map[string]string)
	check := func(name, where string) error {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w (in %s)", ErrEmptyName, where)
		}
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("%w %q (in %s and %s)", ErrDuplicateItem, name, prev, where)
		}
		seen[name] = where
		return nil
	}
	for i, item := range t.Items {
		if err := check(item.Name, fmt.Sprintf("item %d", i+1)); err != nil {
			return err
		}
		for _, child := range item.Children {
			if err := check(child, item.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// Leaves returns every directly openable name in display order: the
// children of each group, or the group itself when it has none.
func (t Tree) Leaves() []string {
	var out []string
	for _, item := range t.Items {
		if !item.HasChildren() {
			out = append(out, item.Name)
			continue
		}
		out = append(out, item.Children...)
	}
	return out
}

// Find returns the group holding name (the group itself for a top-level
// name) and whether it exists.
func (t Tree) Find(name string) (Item, bool) {
	for _, item := range t.Items {
		if item.Name == name {
			return item, true
		}
		for _, child := range item.Children {
			if child == name {
				return item, true
			}
		}
	}
	return Item{}, false
}

// Marshal encodes the tree back to YAML.
func (t Tree) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}
