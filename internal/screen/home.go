package screen

import (
	"context"

	"github.com/yusrlabs/yusr/internal/app"
)

// menuTiles lists the home grid in display order. Labels resolve through
// the translation tables; Screen is the navigation target.
var menuTiles = []struct{ Label, Screen string }{
	{"dailyGuide", "dailyGuide"},
	{"tawafCounter", "tawaf"},
	{"wallet", "wallet"},
	{"library", "library"},
	{"navigation", "navigation"},
	{"services", "services"},
	{"safety", "safety"},
	{"sheikhs", "sheikhs"},
	{"alerts", "alerts"},
	{"profile", "profile"},
	{"settings", "settings"},
}

type menuTile struct {
	Screen string `json:"screen"`
	Label  string `json:"label"`
}

type homeBody struct {
	HajjDayLabel string     `json:"hajjDayLabel"`
	HajjDay      int        `json:"hajjDay"`
	DayName      string     `json:"dayName"`
	DayProgress  float64    `json:"dayProgress"`
	PilgrimName  string     `json:"pilgrimName,omitempty"`
	CampaignName string     `json:"campaignName,omitempty"`
	Menu         []menuTile `json:"menu"`
}

func renderHome(ctx context.Context, rc renderContext) (any, error) {
	s := rc.state

	dayName, err := rc.content.DayName(ctx, s.HajjDay)
	if err != nil {
		return nil, err
	}

	body := homeBody{
		HajjDayLabel: rc.t("hajjDay"),
		HajjDay:      s.HajjDay,
		DayName:      dayName,
		DayProgress:  app.HajjDayProgress(s),
	}
	if p := s.PilgrimData; p != nil {
		body.PilgrimName = rc.pick(p.NameAr, p.Name)
		body.CampaignName = p.CampaignName
	}

	// Organizers see the group dashboard first.
	if s.UserMode == app.ModeOrganizer {
		body.Menu = append(body.Menu, menuTile{"groupStatus", rc.t("groupStatus")})
	}
	for _, tile := range menuTiles {
		body.Menu = append(body.Menu, menuTile{tile.Screen, rc.t(tile.Label)})
	}
	return body, nil
}
