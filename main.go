// towerkrieg-local is a terminal application to play Towerkrieg hot-seat.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/jessevdk/go-flags"
	"github.com/rivo/tview"
	"go.uber.org/zap"

	"towerkrieg-local/config"
	"towerkrieg-local/engine"
	"towerkrieg-local/engine/local"
	"towerkrieg-local/logging"
	"towerkrieg-local/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

var opts struct {
	Play     bool           `long:"play" description:"Start a game immediately"`
	Position flags.Filename `short:"p" long:"position" description:"Board diagram to start from instead of the standard opening"`
	Focus    bool           `long:"focus" description:"Start in focus mode (fullscreen board)"`
	LogFile  string         `long:"log-file" description:"Write logs to this file (overrides config)"`
	LogLevel string         `long:"log-level" description:"Log level: debug, info, warn, error (overrides config)"`
	Version  bool           `long:"version" description:"Print version and exit"`
}

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config
var log *zap.SugaredLogger
var lastGameCfg engine.GameConfig

func main() {
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("towerkrieg-local %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err = logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()
	log.Infow("starting", "version", Version)

	quickStart := opts.Play || opts.Position != "" || opts.Focus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ▦ towerkrieg ")

	gameHint = tview.NewTextView()
	gameHint.SetDynamicColors(true)
	gameHint.SetBorder(true)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoard(app, cfg, gameHint, log)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc {
			gameBoard.ResetSelection()
			return nil
		}
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveSelection(-1, 0)
		case tcell.KeyDown:
			gameBoard.MoveSelection(1, 0)
		case tcell.KeyLeft:
			gameBoard.MoveSelection(0, -1)
		case tcell.KeyRight:
			gameBoard.MoveSelection(0, 1)
		case tcell.KeyEnter:
			gameBoard.Select()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveSelection(0, -1)
			case 'j':
				gameBoard.MoveSelection(1, 0)
			case 'k':
				gameBoard.MoveSelection(-1, 0)
			case 'l':
				gameBoard.MoveSelection(0, 1)
			case ' ':
				gameBoard.Select()
			case 'r':
				gameBoard.Resign()
			case 'n':
				gameBoard.Close()
				startGame(lastGameCfg)
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	setupUI := ui.NewGameSetup(string(opts.Position),
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, log, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 72), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		gameCfg := engine.DefaultConfig()
		gameCfg.PositionPath = string(opts.Position)
		startGame(gameCfg)
		if opts.Focus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		log.Errorw("terminal error", zap.Error(err))
		panic(err)
	}
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	lastGameCfg = gameCfg

	eng := local.NewLocalEngine(gameCfg, log)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		log.Errorw("could not start game", "position", gameCfg.PositionPath, zap.Error(err))
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
				rootPage.SwitchToPage("setup")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	gameBoard.SetGameID(eng.ID())
	rootPage.SwitchToPage("gameview")
}
