package screen

import (
	"context"

	"github.com/yusrlabs/yusr/internal/app"
)

type welcomeBody struct {
	AppName  string `json:"appName"`
	Greeting string `json:"greeting"`
	Subtitle string `json:"subtitle"`
	Next     string `json:"next"`
}

func renderWelcome(_ context.Context, rc renderContext) (any, error) {
	return welcomeBody{
		AppName:  "يُسر",
		Greeting: rc.t("welcome"),
		Subtitle: rc.t("subtitle"),
		Next:     "modeSelect",
	}, nil
}

type modeOption struct {
	Mode app.UserMode `json:"mode"`
	Name string       `json:"name"`
	Desc string       `json:"desc"`
}

type modeSelectBody struct {
	Prompt string       `json:"prompt"`
	Modes  []modeOption `json:"modes"`
}

func renderModeSelect(_ context.Context, rc renderContext) (any, error) {
	return modeSelectBody{
		Prompt: rc.t("selectMode"),
		Modes: []modeOption{
			{app.ModePilgrim, rc.t("pilgrimMode"), rc.t("pilgrimDesc")},
			{app.ModeOrganizer, rc.t("organizerMode"), rc.t("organizerDesc")},
		},
	}, nil
}

type loginBody struct {
	ModeLabel           string `json:"modeLabel"`
	UsernamePlaceholder string `json:"usernamePlaceholder"`
	PasswordPlaceholder string `json:"passwordPlaceholder"`
	SignIn              string `json:"signIn"`
}

func renderLogin(_ context.Context, rc renderContext) (any, error) {
	modeKey := "pilgrimMode"
	if rc.state.UserMode == app.ModeOrganizer {
		modeKey = "organizerMode"
	}
	return loginBody{
		ModeLabel:           rc.t(modeKey),
		UsernamePlaceholder: rc.t("username"),
		PasswordPlaceholder: rc.t("password"),
		SignIn:              rc.t("signIn"),
	}, nil
}
