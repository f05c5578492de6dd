package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/portfolio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_YAMLFile(t *testing.T) {
	content := `site_dir: ./site
state_file: /tmp/state.json
locale: en-US
port: 9090
fetch_timeout: 5s
dropdown_class: light-dropdown
verbose: true
`
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "./site", cfg.SiteDir)
	assert.Equal(t, "/tmp/state.json", cfg.StateFile)
	assert.Equal(t, "en-US", cfg.Locale)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
	assert.Equal(t, "light-dropdown", cfg.DropdownClass)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated"), 0644))

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 9090\nlocale: pt-BR\n"), 0644))

	t.Setenv("PORTFOLIO_PORT", "7070")
	t.Setenv("PORTFOLIO_CONTENT_URL", "https://example.com")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "pt-BR", cfg.Locale)
	assert.Equal(t, "https://example.com", cfg.ContentURL)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	original := Defaults()
	original.Locale = "en"

	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestMarshal_OmitsUnset(t *testing.T) {
	c := Config{Port: 9000}
	out, err := c.Marshal()
	require.NoError(t, err)
	assert.Equal(t, "port: 9000\n", string(out))
}

func TestValidate(t *testing.T) {
	siteDir := t.TempDir()
	filePath := filepath.Join(siteDir, "file.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "defaults", cfg: Defaults()},
		{name: "existing site dir", cfg: Config{SiteDir: siteDir}},
		{name: "content url", cfg: Config{ContentURL: "https://example.com/portfolio"}},
		{name: "exclusive sources", cfg: Config{SiteDir: siteDir, ContentURL: "https://example.com"}, wantErr: "mutually exclusive"},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "'port'"},
		{name: "huge port", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "bad timeout", cfg: Config{FetchTimeout: "soon"}, wantErr: "fetch_timeout"},
		{name: "zero timeout", cfg: Config{FetchTimeout: "0s"}, wantErr: "must be positive"},
		{name: "relative url", cfg: Config{ContentURL: "/content"}, wantErr: "absolute http(s) URL"},
		{name: "ftp url", cfg: Config{ContentURL: "ftp://example.com"}, wantErr: "absolute http(s) URL"},
		{name: "missing site dir", cfg: Config{SiteDir: filepath.Join(siteDir, "nope")}, wantErr: "site directory not found"},
		{name: "site dir is a file", cfg: Config{SiteDir: filePath}, wantErr: "not a directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000, ContentURL: "https://example.com"}
	merged := cfg.MergeWithDefaults(Config{
		SiteDir:       "./site",
		StateFile:     "state.json",
		Port:          8080,
		FetchTimeout:  "10s",
		DropdownClass: "dark-dropdown",
		Locale:        "pt-BR",
	})

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "https://example.com", merged.ContentURL)
	assert.Empty(t, merged.SiteDir, "an explicit content url keeps the site dir unset")
	assert.Equal(t, "state.json", merged.StateFile)
	assert.Equal(t, "10s", merged.FetchTimeout)
	assert.Equal(t, "dark-dropdown", merged.DropdownClass)
	assert.Equal(t, "pt-BR", merged.Locale)

	// original is untouched
	assert.Empty(t, cfg.StateFile)
}

func TestTimeout_Invalid(t *testing.T) {
	assert.Zero(t, (&Config{FetchTimeout: "never"}).Timeout())
	assert.Zero(t, (&Config{}).Timeout())
}

func TestResolveLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")

	assert.Equal(t, "en_US.UTF-8", (&Config{}).ResolveLocale())
	assert.Equal(t, "pt-BR", (&Config{Locale: "pt-BR"}).ResolveLocale())

	t.Setenv("LC_ALL", "pt_PT.UTF-8")
	assert.Equal(t, "pt_PT.UTF-8", SystemLocale())
}

func TestForcedLang(t *testing.T) {
	lang, err := ForcedLang("en")
	require.NoError(t, err)
	assert.Equal(t, types.EN, lang)

	_, err = ForcedLang("fr")
	assert.ErrorContains(t, err, "unsupported language")
}
