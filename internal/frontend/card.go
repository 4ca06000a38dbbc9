package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/budallas/webclient/internal/game"
)

// cardUI renders one card face: rank corners and a big suit glyph,
// red or black by suit. extraClass marks selection/beaten styling;
// onClick may be nil for non-interactive cards.
func cardUI(c game.Card, extraClass string, onClick app.EventHandler) app.UI {
	class := "card black"
	if c.Suit.IsRed() {
		class = "card red"
	}
	if extraClass != "" {
		class += " " + extraClass
	}

	div := app.Div().Class(class).Body(
		app.Div().Class("card-top").Body(
			app.Text(c.RankLabel()),
			app.Small().Text(string(c.Suit)),
		),
		app.Div().Class("card-center").Text(string(c.Suit)),
		app.Div().Class("card-bottom").Body(
			app.Text(c.RankLabel()),
			app.Small().Text(string(c.Suit)),
		),
	)
	if onClick != nil {
		div.OnClick(onClick)
	}
	return div
}

// suitOnlyUI stands in for the trump card once it has been taken.
func suitOnlyUI(s game.Suit) app.UI {
	class := "suit-marker black"
	if s.IsRed() {
		class = "suit-marker red"
	}
	return app.Div().Class(class).Text(string(s))
}
