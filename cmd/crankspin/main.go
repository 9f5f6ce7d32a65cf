// Command crankspin runs the rotating bitmap sample on a simulated handheld
// drawn in the terminal.
//
// Arrows, WASD or HJKL move the bitmap; the mouse wheel or ',' and '.'
// turn the crank; 'c' docks the crank; Esc, Ctrl+C or 'q' quit.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/crankspin/app"
	"github.com/lixenwraith/crankspin/audio"
	"github.com/lixenwraith/crankspin/config"
	"github.com/lixenwraith/crankspin/core"
	"github.com/lixenwraith/crankspin/device"
	"github.com/lixenwraith/crankspin/service"
	"github.com/lixenwraith/crankspin/status"
	"github.com/lixenwraith/crankspin/terminal"
)

var (
	configFlag  = flag.String("config", "", "Path to TOML config (default: "+config.DefaultPath+" if present)")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/")
	metricsFlag = flag.String("metrics", "", "Serve Prometheus metrics on address, e.g. :9100")
	muteFlag    = flag.Bool("mute", false, "Disable crank click audio")
)

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crankspin: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *metricsFlag != "" {
		cfg.Metrics.Addr = *metricsFlag
	}

	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "crankspin: %v\n", err)
		os.Exit(1)
	}

	reg := status.NewRegistry()
	sound := audio.NewSoundManager(cfg.AudioConfig())

	hub := service.NewHub()
	hub.Register(sound)
	if cfg.Metrics.Addr != "" {
		hub.Register(newMetricsService(cfg.Metrics.Addr, newMetricsHandler(reg, cfg.Metrics.Namespace)))
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "crankspin: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the app crashes
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	// Normal exit terminal cleanup
	defer func() {
		core.SetCrashScreen(nil)
		screen.Fini()
	}()

	dev := device.New(cfg.DeviceConfig(), device.NewRealTimeProvider(), reg)
	dev.OnCrankDetent(sound.PlayClick)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigs)
	core.Go(func() {
		<-sigs
		dev.Stop()
	})

	fe := terminal.New(screen, keys, cfg.TerminalOptions())
	fe.Start()

	dispatcher := app.NewDispatcher()
	dev.Run(dispatcher.HandleEvent, fe)
}

// loadConfig reads an explicit path strictly and the default path optionally
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadOptional(config.DefaultPath)
}
