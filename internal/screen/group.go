package screen

import (
	"context"

	"github.com/yusrlabs/yusr/internal/content"
)

type groupMemberItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
}

type groupStatusBody struct {
	PilgrimsLabel  string            `json:"pilgrimsLabel"`
	PresentLabel   string            `json:"presentLabel"`
	SeparatedLabel string            `json:"separatedLabel"`
	AllPresent     bool              `json:"allPresent"`
	Present        int               `json:"present"`
	Separated      int               `json:"separated"`
	SendAlertLabel string            `json:"sendAlertLabel"`
	Members        []groupMemberItem `json:"members"`
}

func renderGroupStatus(ctx context.Context, rc renderContext) (any, error) {
	members, err := rc.content.GroupMembers(ctx)
	if err != nil {
		return nil, err
	}

	body := groupStatusBody{
		PilgrimsLabel:  rc.t("pilgrims"),
		PresentLabel:   rc.t("present"),
		SeparatedLabel: rc.t("separated"),
		SendAlertLabel: rc.t("sendAlert"),
	}
	for _, m := range members {
		statusKey := "present"
		if m.Status == content.StatusSeparated {
			statusKey = "separated"
			body.Separated++
		} else {
			body.Present++
		}
		body.Members = append(body.Members, groupMemberItem{
			ID:          m.ID,
			Name:        rc.pick(m.NameAr, m.NameEn),
			Status:      m.Status,
			StatusLabel: rc.t(statusKey),
		})
	}
	body.AllPresent = body.Separated == 0
	return body, nil
}
