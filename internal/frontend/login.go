package frontend

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Login is the entry form: display name plus room id.
type Login struct {
	app.Compo
	ErrorMessage string
}

func (l *Login) onNameChange(ctx app.Context, e app.Event) {
	State.PendingName = ctx.JSSrc().Get("value").String()
}

func (l *Login) onRoomChange(ctx app.Context, e app.Event) {
	State.PendingRoom = ctx.JSSrc().Get("value").String()
}

func (l *Login) onJoin(ctx app.Context, e app.Event) {
	e.PreventDefault()
	klog.V(1).Infof("Login: join requested for name=%q room=%q", State.PendingName, State.PendingRoom)
	if err := State.Join(State.PendingName, State.PendingRoom); err != nil {
		l.ErrorMessage = fmt.Sprintf("%v", err)
		return
	}
	l.ErrorMessage = ""
}

func (l *Login) Render() app.UI {
	var errorUI app.UI = app.Text("")
	if l.ErrorMessage != "" {
		errorUI = app.Div().Style("color", "red").Style("margin-bottom", "1rem").Text(l.ErrorMessage)
	}

	return app.Article().Body(
		app.Header().Body(
			app.H2().Text("Budallas"),
			app.P().Text("A trick-taking card duel. Last one holding cards is the fool."),
		),
		errorUI,
		app.Form().OnSubmit(l.onJoin).Body(
			app.Label().For("name").Text("Your Name"),
			app.Input().
				Type("text").
				ID("name").
				Name("name").
				Placeholder("Enter your name").
				Value(State.PendingName).
				AutoComplete(false).
				OnInput(l.onNameChange),
			app.Label().For("room").Text("Room ID"),
			app.Input().
				Type("text").
				ID("room").
				Name("room").
				Placeholder("e.g. kitchen-table").
				Value(State.PendingRoom).
				AutoComplete(false).
				OnInput(l.onRoomChange),
			app.Button().Type("submit").Text("Join"),
		),
	)
}
