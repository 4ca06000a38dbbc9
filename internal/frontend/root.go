package frontend

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/budallas/webclient/internal/session"
)

// Root is the single-page shell: it picks the screen for the current
// session phase. The original client toggled overlay divs; here each
// screen is its own component and the phase decides which one mounts.
type Root struct {
	app.Compo

	onUpdate func()
}

func (r *Root) OnAppUpdate(ctx app.Context) {
	if State.Session.Phase == session.PhaseInGame {
		klog.Infof("Root: app update available, not reloading mid-game")
		return
	}
	klog.Infof("Root: app update available, reloading...")
	ctx.Reload()
}

func (r *Root) OnMount(ctx app.Context) {
	klog.V(1).Infof("Root: OnMount called")
	r.onUpdate = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
	State.Listeners["root"] = r.onUpdate
}

func (r *Root) OnDismount() {
	delete(State.Listeners, "root")
}

func (r *Root) Render() app.UI {
	var screen app.UI
	switch State.Session.Phase {
	case session.PhaseLobby:
		screen = &Lobby{}
	case session.PhaseInGame:
		screen = &Game{}
	case session.PhaseGameOver:
		screen = &GameOver{}
	default:
		screen = &Login{}
	}

	return app.Main().Class("container").Body(screen)
}
