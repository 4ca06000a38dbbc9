package frontend

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/budallas/webclient/internal/game"
	"github.com/budallas/webclient/internal/session"
)

// Game renders the in-game screen from the projected view: header,
// status line, opponents, table, hand, the action bar, and chat. All
// decisions live in internal/session; this component only draws.
type Game struct {
	app.Compo

	onUpdate func()
}

func (g *Game) OnAppUpdate(ctx app.Context) {
	klog.Infof("Game: app update available, not reloading mid-game")
}

func (g *Game) OnMount(ctx app.Context) {
	klog.V(1).Infof("Game: OnMount called")
	g.onUpdate = func() {
		ctx.Dispatch(func(ctx app.Context) {})
	}
	State.Listeners["game"] = g.onUpdate
}

func (g *Game) OnDismount() {
	delete(State.Listeners, "game")
}

func (g *Game) onHandClick(c game.Card) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		State.Session.ClickHand(c)
		State.Notify()
	}
}

func (g *Game) onTableClick(c game.Card) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		State.Session.ClickTable(c)
		State.Notify()
	}
}

func (g *Game) onAction(kind session.ActionKind) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		State.DoAction(kind)
	}
}

func (g *Game) onLeave(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if app.Window().Call("confirm", "Leave the game?").Bool() {
		State.Leave()
	}
}

func (g *Game) renderHeader(v session.View) app.UI {
	var trumpUI app.UI
	if v.TrumpCard != nil {
		trumpUI = cardUI(*v.TrumpCard, "trump", nil)
	} else {
		trumpUI = suitOnlyUI(v.TrumpSuit)
	}

	return app.Div().Class("game-header").Body(
		app.Div().Class("trump-container").Body(
			app.Small().Text("Trump"),
			trumpUI,
		),
		app.Div().Class("game-stats").Body(
			app.P().Body(
				app.Strong().Text("Deck: "),
				app.Text(fmt.Sprintf("%d", v.DeckCount)),
			),
			app.P().Body(
				app.Strong().Text("Attacker: "),
				app.Text(v.Attacker),
			),
			app.P().Body(
				app.Strong().Text("Defender: "),
				app.Text(v.Defender),
			),
		),
	)
}

func (g *Game) renderOpponents(v session.View) app.UI {
	var items []app.UI
	for _, o := range v.Opponents {
		class := "opponent"
		if o.Active {
			class += " active"
		}
		if o.Winner {
			class += " winner"
		}

		body := []app.UI{
			app.Strong().Text(o.Name),
			app.Small().Text(fmt.Sprintf("%d cards", o.CardCount)),
		}
		if len(o.Hand) > 0 {
			// Spectators see everyone's cards.
			var revealed []app.UI
			for _, c := range o.Hand {
				revealed = append(revealed, cardUI(c, "mini", nil))
			}
			body = append(body, app.Div().Class("revealed-hand").Body(revealed...))
		}
		items = append(items, app.Div().Class(class).Body(body...))
	}
	return app.Div().Class("opponents").Body(items...)
}

func (g *Game) renderTable(v session.View) app.UI {
	var groups []app.UI
	for _, pair := range v.Table.Pairs {
		groups = append(groups, app.Div().Class("card-group pair").Body(
			cardUI(pair.Attack, "beaten", nil),
			cardUI(pair.Defense, "defender-card", nil),
		))
	}
	for _, a := range v.Table.Attacks {
		class := ""
		if a.Selected {
			class = "selected-target"
		}
		var onClick app.EventHandler
		if a.Clickable {
			onClick = g.onTableClick(a.Card)
		}
		groups = append(groups, app.Div().Class("card-group").Body(
			cardUI(a.Card, class, onClick),
		))
	}
	return app.Div().Class("battlefield").Body(groups...)
}

func (g *Game) renderHand(v session.View) app.UI {
	if v.Spectating {
		return app.Div().Class("hand").Body(
			app.P().Class("hand-note").Text(v.HandNote),
		)
	}
	var cards []app.UI
	for _, h := range v.Hand {
		class := ""
		if h.Selected {
			class = "selected-hand"
		}
		cards = append(cards, cardUI(h.Card, class, g.onHandClick(h.Card)))
	}
	return app.Div().Class("hand").Body(cards...)
}

func (g *Game) renderActions(v session.View) app.UI {
	if v.Spectating {
		return app.Text("")
	}
	return app.Div().Class("actions").Body(
		app.Button().Text("Attack").OnClick(g.onAction(session.ActionAttack)),
		app.Button().Text("Defend").OnClick(g.onAction(session.ActionDefend)),
		app.Button().Text("Pass").OnClick(g.onAction(session.ActionPass)),
		app.Button().Class("secondary").Text("Take").OnClick(g.onAction(session.ActionTake)),
		app.Button().Class("secondary").Text("Skip").OnClick(g.onAction(session.ActionSkip)),
	)
}

func (g *Game) Render() app.UI {
	v := State.View()

	var hintUI app.UI = app.Text("")
	if State.Hint != "" {
		hintUI = app.P().Class("hint").Text(State.Hint)
	}
	var errorUI app.UI = app.Text("")
	if State.ErrorMessage != "" {
		errorUI = app.P().Style("color", "red").Text("Error: " + State.ErrorMessage)
	}

	return app.Div().Body(
		&TopBar{},
		g.renderHeader(v),
		app.P().Class("status-message").Text(v.Status),
		hintUI,
		errorUI,
		g.renderOpponents(v),
		g.renderTable(v),
		g.renderHand(v),
		g.renderActions(v),
		&ChatPanel{},
		app.A().Href("#").Class("secondary").Text("Leave Game").OnClick(g.onLeave),
	)
}
