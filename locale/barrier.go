// Package locale resolves the few user-facing strings of the pull-down
// menu, most notably the accessibility description of the modal backdrop.
package locale

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const barrierMessageID = "PullDownBarrier"

// hard fallback when no bundle message resolves
const defaultBarrierLabel = "Dismiss"

var bundle = newBundle()

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)

	messages := map[language.Tag]string{
		language.English:    "Dismiss",
		language.German:     "Schließen",
		language.Spanish:    "Descartar",
		language.French:     "Ignorer",
		language.Italian:    "Ignora",
		language.Japanese:   "閉じる",
		language.Korean:     "닫기",
		language.Portuguese: "Ignorar",
		language.Chinese:    "关闭",
	}
	for tag, text := range messages {
		b.AddMessages(tag, &i18n.Message{
			ID:    barrierMessageID,
			Other: text,
		})
	}
	return b
}

// BarrierLabel resolves the backdrop description for the preferred locales.
// It falls through the requested locales, then English, then a hard-coded
// default.
func BarrierLabel(prefs ...language.Tag) string {
	langs := make([]string, 0, len(prefs)+1)
	for _, tag := range prefs {
		langs = append(langs, tag.String())
	}

	if msg, err := i18n.NewLocalizer(bundle, langs...).Localize(&i18n.LocalizeConfig{
		MessageID: barrierMessageID,
	}); err == nil && msg != "" {
		return msg
	}

	if msg, err := i18n.NewLocalizer(bundle, language.English.String()).Localize(&i18n.LocalizeConfig{
		MessageID: barrierMessageID,
	}); err == nil && msg != "" {
		return msg
	}

	return defaultBarrierLabel
}
