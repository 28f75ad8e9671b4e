package screen

import (
	"context"
	"errors"
	"fmt"

	"github.com/yusrlabs/yusr/internal/app"
	"github.com/yusrlabs/yusr/internal/content"
	"github.com/yusrlabs/yusr/internal/i18n"
)

// renderContext is what a renderer sees: an immutable snapshot, the
// content store, and a translator for the snapshot's language.
type renderContext struct {
	state   app.State
	content *content.Store
	t       func(string) string

	// arabic selects the Arabic variant of bilingual content fields.
	arabic bool
}

type renderFunc func(ctx context.Context, rc renderContext) (any, error)

type screenDef struct {
	titleKey string
	render   renderFunc
}

// Router maps screen IDs to renderers.
type Router struct {
	content *content.Store
	screens map[string]screenDef
}

func NewRouter(c *content.Store) *Router {
	r := &Router{content: c}
	r.screens = map[string]screenDef{
		"welcome":     {"welcome", renderWelcome},
		"modeSelect":  {"selectMode", renderModeSelect},
		"login":       {"login", renderLogin},
		"home":        {"home", renderHome},
		"tawaf":       {"tawafCounter", renderTawaf},
		"wallet":      {"wallet", renderWallet},
		"dailyGuide":  {"dailyGuide", renderDailyGuide},
		"library":     {"library", renderLibrary},
		"alerts":      {"alerts", renderAlerts},
		"profile":     {"profile", renderProfile},
		"settings":    {"settings", renderSettings},
		"navigation":  {"navigation", renderNavigation},
		"services":    {"services", renderServices},
		"safety":      {"safety", renderSafety},
		"sheikhs":     {"sheikhs", renderSheikhs},
		"groupStatus": {"groupStatus", renderGroupStatus},
		"route":       {"routeGuidance", renderRoute},
		"support":     {"technicalSupport", renderSupport},
	}
	return r
}

// Render resolves the store's current screen and renders it. Unknown IDs
// fall back to the welcome screen. A renderer redirect navigates the store
// and renders the target; a second redirect is a bug and fails.
func (r *Router) Render(ctx context.Context, store *app.Store) (View, error) {
	snap := store.Snapshot()
	id, def := r.resolve(snap.CurrentScreen)

	body, err := r.renderOne(ctx, def, snap)
	var rd Redirect
	if errors.As(err, &rd) {
		store.NavigateTo(rd.Target)
		snap = store.Snapshot()
		id, def = r.resolve(snap.CurrentScreen)
		body, err = r.renderOne(ctx, def, snap)
		if errors.As(err, &rd) {
			return View{}, fmt.Errorf("screen %s: redirect loop to %s", id, rd.Target)
		}
	}
	if err != nil {
		return View{}, fmt.Errorf("rendering %s: %w", id, err)
	}

	t := i18n.Translator(snap.Language)
	return View{
		Screen:   id,
		Title:    t(def.titleKey),
		Dir:      i18n.Dir(snap.Language),
		DarkMode: snap.DarkMode,
		FontSize: snap.GlobalFontSize,
		Body:     body,
	}, nil
}

func (r *Router) resolve(id string) (string, screenDef) {
	if def, ok := r.screens[id]; ok {
		return id, def
	}
	return app.DefaultScreen, r.screens[app.DefaultScreen]
}

func (r *Router) renderOne(ctx context.Context, def screenDef, snap app.State) (any, error) {
	rc := renderContext{
		state:   snap,
		content: r.content,
		t:       i18n.Translator(snap.Language),
		arabic:  snap.Language == i18n.Arabic,
	}
	return def.render(ctx, rc)
}

// pick chooses between the Arabic and English variant of a content field.
func (rc renderContext) pick(ar, en string) string {
	if rc.arabic {
		return ar
	}
	return en
}
