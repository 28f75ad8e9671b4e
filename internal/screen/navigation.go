package screen

import "context"

type destinationItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Distance string `json:"distance"`
	Time     string `json:"time"`
	Selected bool   `json:"selected"`
}

type navigationBody struct {
	LocationLabel string            `json:"locationLabel"`
	NavigateLabel string            `json:"navigateLabel"`
	Destinations  []destinationItem `json:"destinations"`
}

func renderNavigation(ctx context.Context, rc renderContext) (any, error) {
	dests, err := rc.content.Destinations(ctx)
	if err != nil {
		return nil, err
	}
	s := rc.state

	body := navigationBody{
		LocationLabel: rc.pick("موقعك الحالي", "Your Location"),
		NavigateLabel: rc.t("navigate"),
	}
	for _, d := range dests {
		body.Destinations = append(body.Destinations, destinationItem{
			ID:       d.ID,
			Name:     rc.pick(d.NameAr, d.NameEn),
			Distance: d.Distance,
			Time:     d.Time,
			Selected: s.SelectedDestination != nil && s.SelectedDestination.ID == d.ID,
		})
	}
	return body, nil
}

type routeStepItem struct {
	Direction string `json:"direction"`
	Text      string `json:"text"`
}

type routeBody struct {
	Destination    string          `json:"destination"`
	DistanceLabel  string          `json:"distanceLabel"`
	Distance       string          `json:"distance"`
	TimeLabel      string          `json:"timeLabel"`
	Time           string          `json:"time"`
	CurrentStep    string          `json:"currentStep"`
	NextStepsLabel string          `json:"nextStepsLabel"`
	Steps          []routeStepItem `json:"steps"`
}

// renderRoute needs a selected destination; without one it sends the
// session back to the destination picker.
func renderRoute(ctx context.Context, rc renderContext) (any, error) {
	dest := rc.state.SelectedDestination
	if dest == nil {
		return nil, Redirect{Target: "navigation"}
	}

	steps, err := rc.content.RouteSteps(ctx)
	if err != nil {
		return nil, err
	}

	body := routeBody{
		Destination:    rc.pick(dest.NameAr, dest.NameEn),
		DistanceLabel:  rc.t("distance"),
		Distance:       dest.Distance,
		TimeLabel:      rc.t("estimatedTime"),
		Time:           dest.Time,
		CurrentStep:    rc.pick("استمر للأمام", "Continue straight"),
		NextStepsLabel: rc.pick("الخطوات التالية", "Next Steps"),
	}
	for _, st := range steps {
		body.Steps = append(body.Steps, routeStepItem{
			Direction: st.Direction,
			Text:      rc.pick(st.TextAr, st.TextEn),
		})
	}
	return body, nil
}
