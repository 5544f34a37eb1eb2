package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Aliases holds extra candidate spellings loaded from a YAML file, for
// exports whose vendors or locales label columns outside the built-in
// lists. Keys are table kinds ("keywords", "pages"); role keys are the
// canonical role names.
//
//	keywords:
//	  roles:
//	    name: ["requêtes"]
//	  sheets: ["requêtes principales"]
type Aliases struct {
	Roles  map[TableKind]map[Role][]string
	Sheets map[TableKind][]string
}

type rawAliases map[TableKind]struct {
	Roles  map[Role][]string `yaml:"roles"`
	Sheets []string          `yaml:"sheets"`
}

var knownRoles = map[Role]bool{
	RoleName:        true,
	RoleClicks:      true,
	RoleImpressions: true,
	RoleCTR:         true,
	RolePosition:    true,
}

// LoadAliases reads and validates an alias file. Unknown table kinds or
// role names are rejected so a typo does not silently drop aliases.
func LoadAliases(path string) (*Aliases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read aliases file: %w", err)
	}

	var raw rawAliases
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse aliases file: %w", err)
	}

	aliases := &Aliases{
		Roles:  make(map[TableKind]map[Role][]string),
		Sheets: make(map[TableKind][]string),
	}

	for kind, entry := range raw {
		if kind != TableKeywords && kind != TablePages {
			return nil, fmt.Errorf("unknown table kind %q in aliases file", kind)
		}
		for role := range entry.Roles {
			if !knownRoles[role] {
				return nil, fmt.Errorf("unknown role %q in aliases file", role)
			}
		}
		if len(entry.Roles) > 0 {
			aliases.Roles[kind] = entry.Roles
		}
		if len(entry.Sheets) > 0 {
			aliases.Sheets[kind] = entry.Sheets
		}
	}

	return aliases, nil
}
