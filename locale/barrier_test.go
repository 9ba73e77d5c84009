package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestBarrierLabel(t *testing.T) {
	cases := []struct {
		name  string
		prefs []language.Tag
		want  string
	}{
		{name: "no preference falls back to english", want: "Dismiss"},
		{name: "german", prefs: []language.Tag{language.German}, want: "Schließen"},
		{name: "japanese", prefs: []language.Tag{language.Japanese}, want: "閉じる"},
		{
			name:  "unknown locale falls through to the next preference",
			prefs: []language.Tag{language.Icelandic, language.French},
			want:  "Ignorer",
		},
		{
			name:  "all unknown locales fall back to english",
			prefs: []language.Tag{language.Icelandic},
			want:  "Dismiss",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BarrierLabel(tc.prefs...); got != tc.want {
				t.Errorf("BarrierLabel(%v) = %q, want %q", tc.prefs, got, tc.want)
			}
		})
	}
}
