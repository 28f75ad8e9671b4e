package screen

import "context"

type serviceItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Distance string `json:"distance"`
	Nearby   int    `json:"nearby"`
}

type servicesBody struct {
	NearbyLabel string        `json:"nearbyLabel"`
	Services    []serviceItem `json:"services"`
}

func renderServices(ctx context.Context, rc renderContext) (any, error) {
	services, err := rc.content.Services(ctx)
	if err != nil {
		return nil, err
	}
	body := servicesBody{NearbyLabel: rc.t("nearbyServices")}
	for _, sv := range services {
		body.Services = append(body.Services, serviceItem{
			ID:       sv.ID,
			Name:     rc.pick(sv.NameAr, sv.NameEn),
			Distance: sv.Distance,
			Nearby:   sv.Nearby,
		})
	}
	return body, nil
}
