package screen

import (
	"context"

	"github.com/yusrlabs/yusr/internal/content"
)

type libraryEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type librarySection struct {
	ID    string         `json:"id"`
	Label string         `json:"label"`
	Items []libraryEntry `json:"items"`
}

type libraryBody struct {
	Sections []librarySection `json:"sections"`
}

func renderLibrary(ctx context.Context, rc renderContext) (any, error) {
	var body libraryBody
	for _, sec := range []struct{ id, labelKey string }{
		{content.SectionAdhkar, "adhkar"},
		{content.SectionDuaa, "duaa"},
	} {
		items, err := rc.content.Library(ctx, sec.id)
		if err != nil {
			return nil, err
		}
		section := librarySection{ID: sec.id, Label: rc.t(sec.labelKey)}
		for _, it := range items {
			section.Items = append(section.Items, libraryEntry{
				ID:      it.ID,
				Title:   rc.pick(it.TitleAr, it.TitleEn),
				Content: rc.pick(it.ContentAr, it.ContentEn),
			})
		}
		body.Sections = append(body.Sections, section)
	}
	return body, nil
}
