package frontend

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

// ChatPanel is the append-only chat log plus the input line. Lines
// arrive as receive_chat events and are never edited or removed.
type ChatPanel struct {
	app.Compo
	pending string
}

func (c *ChatPanel) onInput(ctx app.Context, e app.Event) {
	c.pending = ctx.JSSrc().Get("value").String()
}

func (c *ChatPanel) onSend(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if c.pending == "" {
		return
	}
	State.SendChat(c.pending)
	c.pending = ""
}

func (c *ChatPanel) Render() app.UI {
	var lines []app.UI
	for _, line := range State.Chat {
		lines = append(lines, app.P().Class("chat-line").Body(
			app.Strong().Text(fmt.Sprintf("%s: ", line.Name)),
			app.Text(line.Message),
		))
	}

	return app.Div().Class("chat").Body(
		app.Div().Class("chat-log").Body(lines...),
		app.Form().OnSubmit(c.onSend).Body(
			app.Input().
				Type("text").
				Placeholder("Say something...").
				Value(c.pending).
				OnInput(c.onInput),
			app.Button().Type("submit").Text("Send"),
		),
	)
}
