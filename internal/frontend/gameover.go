package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// GameOver shows the terminal message for the finished round. It
// offers a restart (server-side, confirmed) and a way back to the
// lobby; left alone, the session returns to the lobby by itself.
type GameOver struct {
	app.Compo

	onUpdate func()
}

func (o *GameOver) OnMount(ctx app.Context) {
	klog.V(1).Infof("GameOver: OnMount called")
	o.onUpdate = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
	State.Listeners["gameover"] = o.onUpdate
}

func (o *GameOver) OnDismount() {
	delete(State.Listeners, "gameover")
}

func (o *GameOver) onRestart(ctx app.Context, e app.Event) {
	if app.Window().Call("confirm", "Restart the game for everyone?").Bool() {
		State.SendRestart()
	}
}

func (o *GameOver) onBackToLobby(ctx app.Context, e app.Event) {
	State.Session.ReturnToLobby()
	State.Notify()
}

func (o *GameOver) onLeave(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if app.Window().Call("confirm", "Leave the room?").Bool() {
		State.Leave()
	}
}

func (o *GameOver) Render() app.UI {
	return app.Div().Body(
		&TopBar{},
		app.Article().Body(
			app.Header().Body(
				app.H2().Text("Game Over"),
			),
			app.P().Text(State.Session.GameOverMessage),
			app.P().Class("ins").Text("Returning to the lobby shortly..."),
			app.Footer().Body(
				app.Button().Text("Restart Game").OnClick(o.onRestart),
				app.Button().Class("secondary").Text("Back to Lobby").OnClick(o.onBackToLobby),
				app.A().Href("#").Class("secondary").Text("Leave").OnClick(o.onLeave),
			),
		),
	)
}
