package main

import (
	"flag"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/floraverde/storefront/internal/backend"
	"github.com/floraverde/storefront/internal/cart"
	"github.com/floraverde/storefront/internal/catalog"
	"github.com/floraverde/storefront/internal/checkout"
	"github.com/floraverde/storefront/internal/config"
	"github.com/floraverde/storefront/internal/platform"
	"github.com/floraverde/storefront/internal/session"
	"github.com/floraverde/storefront/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "cl.floraverde.storefront"
	AppName = "Flora Verde"

	WindowWidth  = 1100
	WindowHeight = 760
)

func main() {
	configPath := flag.String("config", "", "path to storefront.yaml (default: working or config directory)")
	envPath := flag.String("env", "", "path to a .env file (default: working or config directory)")
	open := flag.String("open", "", `initial location, e.g. "catalog?category=Interior"`)
	flag.Parse()

	fmt.Printf("%s storefront v%s starting...\n", AppName, version)

	if dir, err := platform.GetConfigDir(); err == nil {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			log.Printf("failed to ensure config dir: %v", err)
		}
	}

	if *configPath == "" {
		*configPath = platform.FindConfigFile(platform.BootstrapConfigFile)
	}
	if *envPath == "" {
		*envPath = platform.FindConfigFile(platform.DotEnvFile)
	}

	bootstrap, err := config.LoadBootstrap(*configPath, *envPath)
	if err != nil {
		log.Printf("using built-in defaults: %v", err)
	}

	location := bootstrap.OpenLocation
	if *open != "" {
		location = *open
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewStoreTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettingsWithDefaults(myApp, bootstrap)
	log.Printf("backend %s (timeout %s)", settings.GetAPIBaseURL(), settings.GetRequestTimeout())

	client := backend.NewClient(settings.GetAPIBaseURL(), backend.WithTimeout(settings.GetRequestTimeout()))
	catalogSvc := catalog.NewService(client)
	cartSvc := cart.NewService(cart.NewPreferencesStore(myApp.Preferences()), catalogSvc)
	checkoutSvc := checkout.NewService(client, cartSvc)
	sess := session.New(catalogSvc, cartSvc, checkoutSvc)

	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, sess, settings, localization)
	rootUI.Start(location)

	// Show and run
	myWindow.ShowAndRun()
}
