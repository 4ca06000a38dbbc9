package frontend

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Lobby is the waiting room: the roster pushed by lobby_update and the
// start button once enough players are present.
type Lobby struct {
	app.Compo

	onUpdate func()
}

func (l *Lobby) OnMount(ctx app.Context) {
	klog.V(1).Infof("Lobby: OnMount called")
	l.onUpdate = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
	State.Listeners["lobby"] = l.onUpdate
}

func (l *Lobby) OnDismount() {
	delete(State.Listeners, "lobby")
}

func (l *Lobby) onStart(ctx app.Context, e app.Event) {
	State.SendStart()
}

func (l *Lobby) onLeave(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if app.Window().Call("confirm", "Leave the room?").Bool() {
		State.Leave()
	}
}

func (l *Lobby) Render() app.UI {
	var playersList []app.UI
	for _, name := range State.Session.LobbyPlayers {
		label := name
		if name == State.Session.Name {
			label += " (You)"
		}
		playersList = append(playersList, app.Li().Text(label))
	}

	status := "Waiting for more players..."
	var startUI app.UI = app.Text("")
	if State.Session.Ready() {
		status = "Ready to begin."
		startUI = app.Button().Text("Start Game").OnClick(l.onStart)
	}

	return app.Div().Body(
		&TopBar{},
		app.Article().Body(
			app.Header().Body(
				app.H3().Text(fmt.Sprintf("Room: %s", State.Session.Room)),
			),
			app.P().Text(status),
			app.Ul().Body(playersList...),
			app.Footer().Body(
				startUI,
				app.A().Href("#").Class("secondary").Text("Leave").OnClick(l.onLeave),
			),
		),
	)
}
