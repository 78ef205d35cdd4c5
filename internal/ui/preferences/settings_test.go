package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     Settings
	}{
		{
			name:     "defaults unchanged",
			settings: DefaultSettings(),
			want:     DefaultSettings(),
		},
		{
			name:     "volume too high",
			settings: Settings{ChimeEnabled: false, ChimeVolume: 4, Language: "ru"},
			want:     Settings{ChimeEnabled: false, ChimeVolume: 0.8, Language: "ru"},
		},
		{
			name:     "unknown language",
			settings: Settings{ChimeEnabled: true, ChimeVolume: 0, Language: "klingon"},
			want:     Settings{ChimeEnabled: true, ChimeVolume: 0, Language: "en"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.settings.Normalize())
		})
	}
}
