package i18n

import (
	"testing"

	"github.com/jonathan/portfolio/internal/storage"
	"github.com/jonathan/portfolio/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMatchLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   types.Lang
		ok     bool
	}{
		{locale: "pt-BR", want: types.PT, ok: true},
		{locale: "pt", want: types.PT, ok: true},
		{locale: "PT-pt", want: types.PT, ok: true},
		{locale: "en-US", want: types.EN, ok: true},
		{locale: "en_GB.UTF-8", want: types.EN, ok: true},
		{locale: "pt_BR.UTF-8@euro", want: types.PT, ok: true},
		{locale: "en;q=0.5,pt-BR;q=0.9", want: types.PT, ok: true},
		{locale: "en-US,pt;q=0.8", want: types.EN, ok: true},
		{locale: "fr-FR,en;q=0.8", ok: false},
		{locale: "es, en", ok: false},
		{locale: "und-US", ok: false},
		{locale: "fr-FR", ok: false},
		{locale: "es", ok: false},
		{locale: "C", ok: false},
		{locale: "POSIX", ok: false},
		{locale: "", ok: false},
		{locale: "   ", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, ok := MatchLocale(tt.locale)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_Precedence(t *testing.T) {
	tests := []struct {
		name   string
		prefs  map[string]string
		locale string
		want   types.Lang
	}{
		{name: "persisted preference wins", prefs: map[string]string{"lang": "en"}, locale: "pt-BR", want: types.EN},
		{name: "locale when nothing persisted", locale: "en-US", want: types.EN},
		{name: "invalid persisted value falls through", prefs: map[string]string{"lang": "de"}, locale: "en", want: types.EN},
		{name: "default when nothing matches", locale: "ja-JP", want: types.PT},
		{name: "only the preferred entry counts", locale: "es, en", want: types.PT},
		{name: "default with empty locale", want: types.PT},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil, nil, nil, storage.NewMemoryStore(tt.prefs), nil)
			assert.Equal(t, tt.want, c.Detect(tt.locale))
		})
	}
}
