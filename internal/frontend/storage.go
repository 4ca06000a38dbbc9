package frontend

import (
	"errors"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"github.com/budallas/webclient/internal/session"
)

// browserKV backs the identity store with window.localStorage. During
// server-side prerendering there is no browser, so an in-memory map is
// used instead; the id minted there is never shown to a user.
type browserKV struct{}

func newBrowserKV() session.KV {
	if app.IsServer {
		return session.MemKV{}
	}
	return browserKV{}
}

func (browserKV) Get(key string) (string, bool) {
	ls := app.Window().Get("localStorage")
	if !ls.Truthy() {
		return "", false
	}
	v := ls.Call("getItem", key)
	if !v.Truthy() {
		return "", false
	}
	return v.String(), true
}

func (browserKV) Set(key, value string) error {
	ls := app.Window().Get("localStorage")
	if !ls.Truthy() {
		// Private browsing modes can refuse storage entirely.
		return errors.New("local storage unavailable")
	}
	ls.Call("setItem", key, value)
	return nil
}
