package screen

import "context"

type alertItem struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

type alertsBody struct {
	Alerts []alertItem `json:"alerts"`
}

func renderAlerts(ctx context.Context, rc renderContext) (any, error) {
	alerts, err := rc.content.Alerts(ctx)
	if err != nil {
		return nil, err
	}
	body := alertsBody{Alerts: make([]alertItem, 0, len(alerts))}
	for _, a := range alerts {
		body.Alerts = append(body.Alerts, alertItem{
			ID:      a.ID,
			Type:    a.Type,
			Title:   rc.pick(a.TitleAr, a.TitleEn),
			Message: rc.pick(a.MessageAr, a.MessageEn),
			Time:    a.Time,
		})
	}
	return body, nil
}
