package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/setavenger/ethwallet-demo/internal/configs"
	"github.com/setavenger/ethwallet-demo/internal/controller"
	"github.com/setavenger/ethwallet-demo/internal/gui"
	"github.com/setavenger/ethwallet-demo/internal/logging"
)

var dataDir string

func init() {
	var debug bool
	pflag.BoolVar(&debug, "debug", false, "enable debug logging")
	pflag.StringVar(&dataDir, "datadir", "", "path to data directory for the wallet demo")
	pflag.Parse()

	if debug {
		logging.SetLogLevel(zerolog.DebugLevel)
	} else {
		logging.SetLogLevel(zerolog.InfoLevel)
	}
}

func main() {
	cfg, err := configs.Load(dataDir)
	if err != nil {
		// the demo still works on built-in defaults
		logging.L.Err(err).Msg("failed to load config, using defaults")
		cfg = configs.Default()
	}

	myApp := app.New()
	myApp.SetIcon(theme.AccountIcon())

	mainWindow := myApp.NewWindow("Ethereum Wallet Demo")
	mainWindow.Resize(fyne.NewSize(900, 700))
	mainWindow.CenterOnScreen()

	manager := controller.NewManager(cfg)
	mainGUI := gui.NewMainGUI(myApp, mainWindow, manager)
	mainWindow.SetContent(mainGUI.GetContent())
	gui.NewTrayManager(myApp, mainGUI)

	mainWindow.SetOnClosed(mainGUI.Cleanup)

	mainGUI.Start()
	mainWindow.ShowAndRun()
}
