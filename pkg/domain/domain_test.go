package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/docrender/pkg/backend"
	"github.com/arthur-debert/docrender/pkg/command"
	"github.com/arthur-debert/docrender/pkg/domain"
	"github.com/arthur-debert/docrender/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := domain.Default()
	require.NoError(t, err)

	var commands []string
	for _, k := range catalog.Kinds {
		commands = append(commands, k.Command)
	}
	assert.Subset(t, commands, []string{"Monster", "Spell", "Item", "Feat", "Skill", "Class"})
}

func TestParse(t *testing.T) {
	catalog, err := domain.Parse([]byte("kinds:\n  - command: Deity\n"))
	require.NoError(t, err)
	assert.Equal(t, []domain.Kind{{Command: "Deity", Path: "deity"}}, catalog.Kinds)

	_, err = domain.Parse([]byte("kinds:\n  - path: x\n"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))

	_, err = domain.Parse([]byte("kinds: ["))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kinds:\n  - command: Deity\n    path: gods\n"), 0644))

	catalog, err := domain.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.Kind{{Command: "Deity", Path: "gods"}}, catalog.Kinds)

	_, err = domain.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"Goblin":              "goblin",
		"  Dire Wolf ":        "dire-wolf",
		"Bull's Strength":     "bull-s-strength",
		"Potion (Cure Light)": "potion-cure-light",
	}
	for in, want := range tests {
		assert.Equal(t, want, domain.Slug(in), in)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		name   string
		kind   backend.Kind
		markup string
		want   string
	}{
		{"html link", backend.HTML, `\Monster{Goblin}`, `<a class="Monster" href="/monster/goblin">Goblin</a>`},
		{"html explicit target", backend.HTML, `\Spell{Magic Missile}{missile}`, `<a class="Spell" href="/spell/missile">Magic Missile</a>`},
		{"ascii text", backend.ASCII, `\Monster{Goblin}`, "Goblin"},
		{"ansi text", backend.ANSI, `\Item{Rope}`, "Rope"},
		{"backend entries kept", backend.ASCII, `\bold{\Feat{Dodge}}`, "DODGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := domain.Registry(tt.kind, backend.Settings{}, "/")
			require.NoError(t, err)
			doc, err := backend.NewDocument(backend.Options{Kind: tt.kind, Registry: reg})
			require.NoError(t, err)

			out, err := doc.Render(command.MustParse(tt.markup))
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}
