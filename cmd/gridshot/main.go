package main

import (
	"flag"
	"log"

	"chosenoffset.com/gridshot/internal/assets"
	"chosenoffset.com/gridshot/internal/config"
	"chosenoffset.com/gridshot/internal/game"
	"chosenoffset.com/gridshot/internal/gamescanner"
	ebitenrender "chosenoffset.com/gridshot/internal/render/ebiten"
	"chosenoffset.com/gridshot/internal/ui/menu"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the settings file")
	dataDir := flag.String("data", "", "override the asset directory")
	levelName := flag.String("level", "", "override the level file inside the asset directory")
	windowed := flag.Bool("windowed", false, "run in a window instead of fullscreen")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *dataDir != "" {
		cfg.Assets.DataDir = *dataDir
	}
	if *levelName != "" {
		cfg.Assets.Level = *levelName
	}
	if *windowed {
		cfg.Window.Fullscreen = false
	}

	// Scan data directory for level files
	log.Println("Scanning data directory for levels...")
	levels, err := gamescanner.ScanLevels(cfg.Assets.DataDir)
	if err != nil {
		log.Fatalf("Failed to scan data directory: %v", err)
	}
	// A level named on the command line must exist; the configured default
	// may fall back to whatever level the directory holds
	picked, err := gamescanner.PickLevel(levels, cfg.Assets.Level, *levelName != "")
	if err != nil {
		log.Fatalf("Failed to pick a level in %s: %v", cfg.Assets.DataDir, err)
	}
	if picked != cfg.Assets.Level {
		log.Printf("Level %s not found, using %s", cfg.Assets.Level, picked)
		cfg.Assets.Level = picked
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	lib, err := assets.Load(loader, cfg.Assets.DataDir)
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}

	// Create the main menu
	mainMenu := menu.NewMainMenu(renderer, inputMgr, lib.Background, menu.Options{
		StartLabel: cfg.Menu.StartLabel,
		ExitLabel:  cfg.Menu.ExitLabel,
		FontScale:  cfg.Menu.FontScale,
	}, cfg.Window.Width, cfg.Window.Height)

	// Create the game manager
	gameManager := game.NewManager(cfg, renderer, inputMgr, lib)
	gameManager.SetMainMenu(mainMenu)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetFullscreen(cfg.Window.Fullscreen)
	engine.SetTPS(cfg.FPS)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
