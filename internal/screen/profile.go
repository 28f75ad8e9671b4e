package screen

import (
	"context"
	"strings"
)

type infoRow struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	Highlight bool   `json:"highlight,omitempty"`
}

type profileBody struct {
	Name          string    `json:"name"`
	PilgrimID     string    `json:"pilgrimId"`
	PersonalLabel string    `json:"personalLabel"`
	HealthLabel   string    `json:"healthLabel"`
	Personal      []infoRow `json:"personal"`
	Health        []infoRow `json:"health"`
}

func renderProfile(_ context.Context, rc renderContext) (any, error) {
	p := rc.state.PilgrimData
	if p == nil {
		return nil, Redirect{Target: "home"}
	}

	return profileBody{
		Name:          rc.pick(p.NameAr, p.Name),
		PilgrimID:     p.ID,
		PersonalLabel: rc.t("personalInfo"),
		HealthLabel:   rc.t("healthInfo"),
		Personal: []infoRow{
			{Label: rc.t("name"), Value: p.Name},
			{Label: rc.t("passport"), Value: p.PassportNumber},
			{Label: rc.t("nationality"), Value: p.Nationality},
			{Label: rc.t("campaign"), Value: p.CampaignName},
		},
		Health: []infoRow{
			{Label: rc.t("bloodType"), Value: p.BloodType, Highlight: true},
			{Label: rc.t("diseases"), Value: joinOrNone(p.ChronicDiseases)},
			{Label: rc.t("allergies"), Value: joinOrNone(p.Allergies)},
			{Label: rc.t("emergency"), Value: p.EmergencyContact},
			{Value: p.EmergencyPhone},
		},
	}, nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
