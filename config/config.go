// Package config loads class relocation rules from TOML files.
//
//	[[package]]
//	from = "java/lang"
//	to   = "lava/jang"
//
//	[[class]]
//	from = "com/example/Old"
//	to   = "com/example/New"
//
//	[[pattern]]
//	match  = "org/**/internal/**"
//	prefix = "shaded/"
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/gobwas/glob"

	"github.com/dhamidi/jdesc/descriptor"
	"github.com/dhamidi/jdesc/internalname"
)

var ErrInvalidRule = errors.New("invalid rule")

type Rules struct {
	Packages []Rename  `toml:"package"`
	Classes  []Rename  `toml:"class"`
	Patterns []Pattern `toml:"pattern"`
}

type Rename struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// Pattern prepends Prefix to every internal name matching the Match glob.
// '*' stops at '/', '**' crosses it.
type Pattern struct {
	Match  string `toml:"match"`
	Prefix string `toml:"prefix"`

	glob glob.Glob
}

func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rules, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

func Parse(data string) (*Rules, error) {
	var rules Rules
	if _, err := toml.Decode(data, &rules); err != nil {
		return nil, err
	}
	if err := rules.compile(); err != nil {
		return nil, err
	}
	return &rules, nil
}

func (r *Rules) compile() error {
	for i, p := range r.Packages {
		if err := checkPackage(p); err != nil {
			return fmt.Errorf("package rule %d: %w", i, err)
		}
	}
	for i, c := range r.Classes {
		if err := checkClass(c); err != nil {
			return fmt.Errorf("class rule %d: %w", i, err)
		}
	}
	for i := range r.Patterns {
		p := &r.Patterns[i]
		if err := checkPattern(p); err != nil {
			return fmt.Errorf("pattern rule %d: %w", i, err)
		}
	}
	return nil
}

// Rename targets and pattern prefixes end up inside descriptors, so they
// must stay within the internal name alphabet.

func checkPackage(p Rename) error {
	if !descriptor.IsInternalName(p.To) {
		return fmt.Errorf("%w: package target %q is not an internal name", ErrInvalidRule, p.To)
	}
	return nil
}

func checkClass(c Rename) error {
	if c.From == "" {
		return fmt.Errorf("%w: class rule has no 'from'", ErrInvalidRule)
	}
	if !descriptor.IsInternalName(c.To) {
		return fmt.Errorf("%w: class target %q is not an internal name", ErrInvalidRule, c.To)
	}
	return nil
}

func checkPattern(p *Pattern) error {
	if p.Match == "" {
		return fmt.Errorf("%w: pattern rule has no 'match'", ErrInvalidRule)
	}
	if p.Prefix != "" && !descriptor.IsInternalName(p.Prefix) {
		return fmt.Errorf("%w: pattern prefix %q is not an internal name", ErrInvalidRule, p.Prefix)
	}
	g, err := glob.Compile(p.Match, '/')
	if err != nil {
		return fmt.Errorf("%w: pattern %q: %v", ErrInvalidRule, p.Match, err)
	}
	p.glob = g
	return nil
}

// AddPackage appends a package rule; rules added later have lower
// priority.
func (r *Rules) AddPackage(from, to string) error {
	rule := Rename{From: from, To: to}
	if err := checkPackage(rule); err != nil {
		return err
	}
	r.Packages = append(r.Packages, rule)
	return nil
}

func (r *Rules) AddClass(from, to string) error {
	rule := Rename{From: from, To: to}
	if err := checkClass(rule); err != nil {
		return err
	}
	r.Classes = append(r.Classes, rule)
	return nil
}

func (r *Rules) AddPattern(match, prefix string) error {
	rule := Pattern{Match: match, Prefix: prefix}
	if err := checkPattern(&rule); err != nil {
		return err
	}
	r.Patterns = append(r.Patterns, rule)
	return nil
}

// Empty reports whether r has no rules at all.
func (r *Rules) Empty() bool {
	return len(r.Packages) == 0 && len(r.Classes) == 0 && len(r.Patterns) == 0
}

// Mapper applies the first matching package rule, then the first matching
// class rule, then the first matching pattern rule.
func (r *Rules) Mapper() descriptor.Mapper {
	return descriptor.MapperFunc(r.Map)
}

func (r *Rules) Map(name string) string {
	for _, p := range r.Packages {
		if p.From == "" || internalname.InPackage(name, p.From) {
			name = internalname.RenamePackage(name, p.From, p.To)
			break
		}
	}
	for _, c := range r.Classes {
		if name == c.From || internalname.InClass(name, c.From) {
			name = internalname.RenameClass(name, c.From, c.To)
			break
		}
	}
	for _, p := range r.Patterns {
		if p.glob != nil && p.glob.Match(name) {
			name = p.Prefix + name
			break
		}
	}
	return name
}
