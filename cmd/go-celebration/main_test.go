package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-celebration/internal/config"
)

func TestOverrides_AsPrefs(t *testing.T) {
	tests := []struct {
		name string
		opts overrides
		want map[string]string
	}{
		{"None", overrides{}, map[string]string{}},
		{
			name: "Theme and language",
			opts: overrides{theme: "sunset", lang: "fr"},
			want: map[string]string{config.PrefTheme: "sunset", config.PrefLanguage: "fr"},
		},
		{
			name: "All",
			opts: overrides{theme: "ocean", themeFile: "/tmp/t.yaml", lang: "en", assets: "/srv/pics"},
			want: map[string]string{
				config.PrefTheme:     "ocean",
				config.PrefThemeFile: "/tmp/t.yaml",
				config.PrefLanguage:  "en",
				config.PrefAssetDir:  "/srv/pics",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.asPrefs())
		})
	}
}
