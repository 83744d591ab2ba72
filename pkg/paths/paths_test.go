package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrides(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/docrender-config")
	t.Setenv(EnvStateDir, "/tmp/docrender-state")

	assert.Equal(t, "/tmp/docrender-config", ConfigDir())
	assert.Equal(t, "/tmp/docrender-config/config.toml", ConfigFile())
	assert.Equal(t, "/tmp/docrender-state/docrender.log", LogFile())
	assert.Equal(t, []string{
		"/tmp/docrender-config/config.toml",
		"/tmp/docrender-config/config.yaml",
		"/tmp/docrender-config/config.yml",
	}, UserConfigCandidates())
}

func TestDefaultsEndInAppDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")

	assert.Equal(t, AppDirName, filepath.Base(ConfigDir()))
	assert.Equal(t, AppDirName, filepath.Base(StateDir()))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tilde_only", in: "~", want: home},
		{name: "tilde_prefix", in: "~/conf", want: filepath.Join(home, "conf")},
		{name: "absolute", in: "/etc/docrender", want: "/etc/docrender"},
		{name: "tilde_user_untouched", in: "~other/x", want: "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandHome(tt.in))
		})
	}
}
