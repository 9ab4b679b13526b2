// Package profile describes the team members the terminal can log in as.
package profile

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/archora/archora/internal/vfs"
	"github.com/archora/archora/pkg/archora"
)

// DefaultColor is used when a profile does not pick a prompt color.
const DefaultColor = "#7ee787"

// Skill is one entry of the skills bar chart.
type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

// Project is a showcased project.
type Project struct {
	Name  string   `yaml:"name"`
	Desc  string   `yaml:"desc"`
	Tech  []string `yaml:"tech"`
	Stars int      `yaml:"stars"`
}

// Profile is one team member.
type Profile struct {
	User     string    `yaml:"-"`
	Name     string    `yaml:"name"`
	Role     string    `yaml:"role"`
	Skills   []Skill   `yaml:"skills"`
	Projects []Project `yaml:"projects"`
	City     string    `yaml:"city"`
	Country  string    `yaml:"country"`
	Fun      string    `yaml:"fun"`
	Color    string    `yaml:"color"`
	GitHub   string    `yaml:"github"`
	Email    string    `yaml:"email"`
}

// Location joins city and country the way the terminal prints them.
func (p *Profile) Location() string {
	switch {
	case p.City == "":
		return p.Country
	case p.Country == "":
		return p.City
	}
	return p.City + ", " + p.Country
}

// Registry holds profiles keyed by user name, in file order.
type Registry struct {
	order  []string
	byUser map[string]*Profile
}

// Parse reads a YAML mapping of user name to profile.
func Parse(data []byte) (*Registry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", archora.ErrInvalidFixture, err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: profiles must be a mapping of user name to profile", archora.ErrInvalidFixture)
	}

	m := doc.Content[0]
	reg := &Registry{byUser: make(map[string]*Profile)}
	var errs []error
	for i := 0; i+1 < len(m.Content); i += 2 {
		user := m.Content[i].Value
		if _, dup := reg.byUser[user]; dup {
			errs = append(errs, fmt.Errorf("line %d: duplicate user %q: %w", m.Content[i].Line, user, archora.ErrInvalidFixture))
			continue
		}

		var p Profile
		if err := m.Content[i+1].Decode(&p); err != nil {
			errs = append(errs, fmt.Errorf("user %q: %v: %w", user, err, archora.ErrInvalidFixture))
			continue
		}
		p.User = user
		if p.Color == "" {
			p.Color = DefaultColor
		}
		if err := p.validate(); err != nil {
			errs = append(errs, err)
			continue
		}

		reg.order = append(reg.order, user)
		reg.byUser[user] = &p
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if len(reg.order) == 0 {
		return nil, fmt.Errorf("%w: no profiles defined", archora.ErrInvalidFixture)
	}
	return reg, nil
}

func (p *Profile) validate() error {
	var errs []error
	if !vfs.IsValidName(p.User) || strings.ContainsAny(p.User, "~ \t") {
		errs = append(errs, fmt.Errorf("invalid user name %q: %w", p.User, archora.ErrInvalidFixture))
	}
	if p.Name == "" {
		errs = append(errs, fmt.Errorf("user %q: name is required: %w", p.User, archora.ErrInvalidFixture))
	}
	for _, s := range p.Skills {
		if s.Level < 0 || s.Level > 100 {
			errs = append(errs, fmt.Errorf("user %q: skill %q level %d outside 0-100: %w", p.User, s.Name, s.Level, archora.ErrInvalidFixture))
		}
	}
	return errors.Join(errs...)
}

// Get returns the profile for user.
func (r *Registry) Get(user string) (*Profile, bool) {
	p, ok := r.byUser[user]
	return p, ok
}

// Users returns user names in file order.
func (r *Registry) Users() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Next returns the user after current, wrapping around. Unknown users
// map to the first one.
func (r *Registry) Next(current string) string {
	for i, u := range r.order {
		if u == current {
			return r.order[(i+1)%len(r.order)]
		}
	}
	return r.order[0]
}
