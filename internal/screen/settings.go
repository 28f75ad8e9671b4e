package screen

import (
	"context"

	"github.com/yusrlabs/yusr/internal/app"
	"github.com/yusrlabs/yusr/internal/i18n"
)

type languageOption struct {
	Code     i18n.Language `json:"code"`
	Name     string        `json:"name"`
	Native   string        `json:"native"`
	Selected bool          `json:"selected"`
}

type settingsBody struct {
	DarkModeLabel string           `json:"darkModeLabel"`
	DarkMode      bool             `json:"darkMode"`
	LanguageLabel string           `json:"languageLabel"`
	Languages     []languageOption `json:"languages"`
	FontSizeLabel string           `json:"fontSizeLabel"`
	FontSize      int              `json:"fontSize"`
	MinFontSize   int              `json:"minFontSize"`
	MaxFontSize   int              `json:"maxFontSize"`
}

func renderSettings(_ context.Context, rc renderContext) (any, error) {
	s := rc.state

	body := settingsBody{
		DarkModeLabel: rc.t("darkMode"),
		DarkMode:      s.DarkMode,
		LanguageLabel: rc.t("language"),
		FontSizeLabel: rc.t("fontSize"),
		FontSize:      s.GlobalFontSize,
		MinFontSize:   app.MinFontSize,
		MaxFontSize:   app.MaxFontSize,
	}
	for _, dn := range i18n.DisplayNames() {
		body.Languages = append(body.Languages, languageOption{
			Code:     dn.Code,
			Name:     dn.Name,
			Native:   dn.Native,
			Selected: dn.Code == s.Language,
		})
	}
	return body, nil
}
