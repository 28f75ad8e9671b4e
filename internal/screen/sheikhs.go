package screen

import "context"

type sheikhItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Languages   string `json:"languages"`
	Available   bool   `json:"available"`
	StatusLabel string `json:"statusLabel"`
}

type sheikhsBody struct {
	CallLabel string       `json:"callLabel"`
	Sheikhs   []sheikhItem `json:"sheikhs"`
}

func renderSheikhs(ctx context.Context, rc renderContext) (any, error) {
	sheikhs, err := rc.content.Sheikhs(ctx)
	if err != nil {
		return nil, err
	}
	body := sheikhsBody{CallLabel: rc.t("callSheikh")}
	for _, sh := range sheikhs {
		statusKey := "busy"
		if sh.Available {
			statusKey = "available"
		}
		body.Sheikhs = append(body.Sheikhs, sheikhItem{
			ID:          sh.ID,
			Name:        rc.pick(sh.NameAr, sh.NameEn),
			Languages:   rc.pick(sh.LanguagesAr, sh.LanguagesEn),
			Available:   sh.Available,
			StatusLabel: rc.t(statusKey),
		})
	}
	return body, nil
}
