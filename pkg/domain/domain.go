// Package domain adds commands for the named entities of the campaign
// data, each linking to the entity's page.
package domain

import (
	_ "embed"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/arthur-debert/docrender/pkg/actions"
	"github.com/arthur-debert/docrender/pkg/backend"
	"github.com/arthur-debert/docrender/pkg/document"
	"github.com/arthur-debert/docrender/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Kind is one kind of entity.
type Kind struct {
	// Command is the command name, e.g. "Monster".
	Command string `yaml:"command"`
	// Path is the URL path segment of the kind's pages.
	Path string `yaml:"path"`
}

// Catalog lists the entity kinds.
type Catalog struct {
	Kinds []Kind `yaml:"kinds"`
}

//go:embed catalog.yaml
var embeddedCatalog []byte

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	return Parse(embeddedCatalog)
})

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return defaultCatalog()
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read entity catalog %s", path)
	}
	return Parse(data)
}

// Parse reads a catalog from YAML.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse entity catalog")
	}
	for i, k := range c.Kinds {
		if k.Command == "" {
			return nil, errors.Newf(errors.ErrConfigInvalid, "entity kind %d has no command", i)
		}
		if k.Path == "" {
			c.Kinds[i].Path = cases.Lower(language.Und).String(k.Command)
		}
	}
	return &c, nil
}

// Slug turns an entity name into the last segment of its URL.
func Slug(name string) string {
	lower := cases.Lower(language.Und).String(strings.TrimSpace(name))
	var b strings.Builder
	dash := false
	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}

// Layer returns the entity commands for a backend. HTML gets anchors
// below baseURL; the text backends print the entity name.
func (c *Catalog) Layer(kind backend.Kind, baseURL string) document.Layer {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	entries := make(map[string]document.Action, len(c.Kinds))
	for _, k := range c.Kinds {
		if kind == backend.HTML {
			entries[k.Command] = &actions.Link{
				Class:  k.Command,
				Prefix: baseURL + k.Path + "/",
				Target: Slug,
			}
		} else {
			entries[k.Command] = actions.NewIdentity(1)
		}
	}
	return document.Layer{Name: "domain", Entries: entries}
}

// Registry builds kind's action table with the default catalog on top.
func Registry(kind backend.Kind, settings backend.Settings, baseURL string) (document.Registry, error) {
	catalog, err := Default()
	if err != nil {
		return nil, err
	}
	return backend.Build(kind, settings, catalog.Layer(kind, baseURL))
}
