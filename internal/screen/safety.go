package screen

import "context"

type safetyBody struct {
	Status        string `json:"status"`
	StatusTitle   string `json:"statusTitle"`
	StatusDetail  string `json:"statusDetail"`
	GPSActive     bool   `json:"gpsActive"`
	CampaignLabel string `json:"campaignLabel"`
	CampaignID    string `json:"campaignId"`
	CampaignName  string `json:"campaignName"`
	SOSLabel      string `json:"sosLabel"`
}

// renderSafety shows the mock geofence status for the pilgrim's campaign;
// it needs the pilgrim record.
func renderSafety(_ context.Context, rc renderContext) (any, error) {
	p := rc.state.PilgrimData
	if p == nil {
		return nil, Redirect{Target: "home"}
	}

	return safetyBody{
		Status:        "withinRange",
		StatusTitle:   rc.pick("ضمن نطاق الحملة", "Within Campaign Range"),
		StatusDetail:  rc.pick("موقعك آمن", "Your location is safe"),
		GPSActive:     true,
		CampaignLabel: rc.t("campaign"),
		CampaignID:    p.CampaignID,
		CampaignName:  p.CampaignName,
		SOSLabel:      rc.pick("طلب مساعدة طارئة", "Request Emergency Help"),
	}, nil
}
