package frontend

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

type TopBar struct {
	app.Compo
}

func (t *TopBar) Render() app.UI {
	right := app.Li().Text("")
	if State.Session.Name != "" {
		right = app.Li().Text(fmt.Sprintf("%s @ %s", State.Session.Name, State.Session.Room))
	}

	return app.Nav().Body(
		app.Ul().Body(
			app.Li().Body(
				app.Strong().Text("Budallas"),
			),
		),
		app.Ul().Body(right),
	)
}
