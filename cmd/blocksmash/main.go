package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/blocksmash/asset"
	"github.com/lixenwraith/blocksmash/audio"
	"github.com/lixenwraith/blocksmash/config"
	"github.com/lixenwraith/blocksmash/core"
	"github.com/lixenwraith/blocksmash/engine"
	"github.com/lixenwraith/blocksmash/game"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to TOML config file")
	assetsFlag = flag.String("assets", "", "Asset root directory (overrides config)")
	seedFlag   = flag.Int64("seed", 0, "Random seed for the ball launch, 0 picks one from the clock")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag   = flag.Bool("mute", false, "Start with audio disabled")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func main() {
	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := config.Load(*configFlag, explicit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *assetsFlag != "" {
		cfg.Assets.Root = *assetsFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if *dumpFlag {
		if err := config.Write(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Config write failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rate := beep.SampleRate(cfg.Audio.SampleRate)
	loader := asset.NewLoader(os.DirFS(cfg.Assets.Root), rate)
	if err := loader.Preload(); err != nil {
		log.Printf("assets: preload from %s: %v (using built-ins)", cfg.Assets.Root, err)
	}

	// Audio failures never stop the game
	var player engine.AudioPlayer
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(rate, cfg.Audio.MasterVolume)
		if err := sm.Initialize(); err != nil {
			log.Printf("audio: initialization failed: %v (continuing without audio)", err)
		} else {
			player = sm
			defer sm.Cleanup()
		}
	}

	g, err := game.New(game.Options{
		Config: cfg,
		Seed:   seed,
		Loader: loader,
		Audio:  player,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashFinalizer(screen.Fini)
	defer screen.Fini()

	screen.HideCursor()
	g.AttachScreen(screen)
	g.Run(screen)

	core.SetCrashFinalizer(nil)
	log.Printf("exit: frame %d, score %d", g.FrameNumber(), g.Score())
}
