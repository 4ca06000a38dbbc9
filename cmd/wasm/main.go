package main

import (
	"flag"
	"os"

	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"

	"github.com/budallas/webclient/internal/frontend"
)

func main() {
	// Initialize klog for WASM, forcing logs to stderr (console)
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	fs.Set("logtostderr", "true")
	klog.SetOutput(os.Stderr)
	klog.Infof("WASM started!")

	// Single-page client: the root component switches screens on the
	// session phase, the way the original toggled overlay divs.
	app.Route("/", func() app.Composer { return &frontend.Root{} })

	frontend.InitState()

	// When building for WEB (GOOS=js GOARCH=wasm), this runs the
	// client; in any other build it is a no-op.
	app.RunWhenOnBrowser()
}
