package views

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
	Keywords    []string
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Vannie - Your Beauty Inventory Bestie"
	}

	if config.Description == "" {
		config.Description = "Track your makeup collection, get expiry alerts, and never lose sight of your beauty products. Join the waitlist for early access!"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),
				g.If(len(config.Keywords) > 0, Meta(Name("keywords"), Content(strings.Join(config.Keywords, ", ")))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.OGImage != "", Meta(g.Attr("property", "og:image"), Content(config.OGImage))),

				Link(Rel("icon"), Href("/static/images/favicon.svg"), Type("image/svg+xml")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
			),
			Body(
				Class("page"),
				g.Group(content),

				Script(Src("/static/js/waitlist.js"), Defer()),
			),
		),
	})
}
