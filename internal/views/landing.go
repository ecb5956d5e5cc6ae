package views

import (
	"strconv"

	"github.com/akeren/vannie-landing/domain/waitlist"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Site holds the static marketing copy.
type Site struct {
	Name         string
	Tagline      string
	Pitch        []string
	Features     []string
	AppStoreURL  string
	PlayStoreURL string
}

func DefaultSite() Site {
	return Site{
		Name:    "Vannie",
		Tagline: "Your smart inventory companion is coming soon",
		Pitch: []string{
			"Track your products effortlessly. Get insights instantly.",
			"Be the first to know when we launch.",
		},
		Features:     []string{"Barcode scanning", "Smart tracking", "Usage insights"},
		AppStoreURL:  "#",
		PlayStoreURL: "#",
	}
}

// WaitlistForm is what the shell needs to draw the form for one render.
type WaitlistForm struct {
	FormID          string
	Action          string
	State           waitlist.FormState
	CollectPlatform bool
}

type LandingData struct {
	Site  Site
	Form  WaitlistForm
	Year  int
	Title string
}

func LandingPage(data LandingData) g.Node {
	return Layout(
		PageConfig{
			Title:    data.Title,
			Keywords: []string{"makeup", "beauty", "inventory", "tracking", "cosmetics", "skincare"},
		},
		Div(
			Class("landing"),
			Main(
				Class("landing__main"),
				Brand(data.Site),
				Pitch(data.Site.Pitch),
				SignupForm(data.Form),
				Features(data.Site.Features),
				Mockups(),
				StoreBadges(data.Site),
			),
			PageFooter(data.Site.Name, data.Year),
		),
	)
}

func Brand(site Site) g.Node {
	return Div(
		Class("brand"),
		H1(Class("brand__name"), g.Text(site.Name)),
		P(Class("brand__tagline"), g.Text(site.Tagline)),
	)
}

func Pitch(lines []string) g.Node {
	return Div(
		Class("pitch"),
		g.Group(g.Map(lines, func(line string) g.Node {
			return P(g.Text(line))
		})),
	)
}

func SignupForm(form WaitlistForm) g.Node {
	state := form.State
	loading := state.Status == waitlist.StatusLoading

	action := form.Action
	if action == "" {
		action = "/waitlist"
	}

	buttonText := "Join Waitlist"
	if loading {
		buttonText = "Joining..."
	}

	return g.El("form",
		Class("waitlist"),
		ID("waitlist-form"),
		Method("post"),
		Action(action),

		Input(Type("hidden"), Name("form_id"), Value(form.FormID)),
		Input(Type("hidden"), Name("status"), Value(string(state.Status))),
		Input(Type("hidden"), Name("message"), Value(state.Message)),

		g.If(form.CollectPlatform, PlatformPicker(state.Platform, loading)),

		Div(
			Class("waitlist__row"),
			Input(
				Type("email"),
				Name("email"),
				ID("waitlist-email"),
				Value(state.Email),
				Placeholder("Enter your email"),
				g.Attr("autocomplete", "email"),
				Class("waitlist__input"),
				Required(),
				g.If(loading, Disabled()),
			),
			Button(
				Type("submit"),
				Class("waitlist__submit"),
				g.Attr("data-loading-text", "Joining..."),
				g.If(loading, Disabled()),
				g.Text(buttonText),
			),
		),

		g.If(state.HasMessage(), StatusMessage(state)),
	)
}

func PlatformPicker(selected waitlist.Platform, disabled bool) g.Node {
	platforms := []waitlist.Platform{waitlist.PlatformIOS, waitlist.PlatformAndroid}

	return Div(
		Class("platforms"),
		g.Attr("role", "radiogroup"),
		g.Attr("aria-label", "Your device"),
		g.Group(g.Map(platforms, func(p waitlist.Platform) g.Node {
			id := "platform-" + string(p)
			return Label(
				Class("platforms__option"),
				g.Attr("for", id),
				Input(
					Type("radio"),
					Name("phone_os"),
					ID(id),
					Value(string(p)),
					g.If(selected == p, Checked()),
					g.If(disabled, Disabled()),
				),
				Span(g.Text(p.Label())),
			)
		})),
	)
}

func StatusMessage(state waitlist.FormState) g.Node {
	class := "status status--error"
	if state.Status == waitlist.StatusSuccess {
		class = "status status--success"
	}

	return P(
		Class(class),
		g.Attr("role", "status"),
		g.Attr("aria-live", "polite"),
		g.Text(state.Message),
	)
}

func Features(features []string) g.Node {
	return Ul(
		Class("features"),
		g.Group(g.Map(features, func(feature string) g.Node {
			return Li(
				Class("features__item"),
				Img(Src("/static/images/check.svg"), Alt(""), Width("20"), Height("20")),
				Span(g.Text(feature)),
			)
		})),
	)
}

func Mockups() g.Node {
	return Div(
		Class("mockups"),
		Img(
			Class("mockups__phone"),
			Src("/static/images/screenshot-inventory.svg"),
			Alt("Vannie inventory screen"),
			g.Attr("loading", "lazy"),
		),
		Img(
			Class("mockups__phone mockups__phone--offset"),
			Src("/static/images/screenshot-expiry.svg"),
			Alt("Vannie expiry alerts screen"),
			g.Attr("loading", "lazy"),
		),
	)
}

func StoreBadges(site Site) g.Node {
	return Div(
		Class("badges"),
		A(
			Href(site.AppStoreURL),
			g.Attr("aria-label", "Download on the App Store"),
			Img(Src("/static/images/badge-app-store.svg"), Alt("Download on the App Store"), Height("48")),
		),
		A(
			Href(site.PlayStoreURL),
			g.Attr("aria-label", "Get it on Google Play"),
			Img(Src("/static/images/badge-google-play.svg"), Alt("Get it on Google Play"), Height("48")),
		),
	)
}

func PageFooter(name string, year int) g.Node {
	return Footer(
		Class("footer"),
		P(g.Raw("&copy; "), g.Text(strconv.Itoa(year)+" "+name+". All rights reserved.")),
	)
}
