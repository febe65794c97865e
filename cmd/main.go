package main

import (
	"flag"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/kchaow/filemanager/config"
	"github.com/kchaow/filemanager/internal/i18n"
	"github.com/kchaow/filemanager/internal/util"
	"github.com/kchaow/filemanager/menu"
	"github.com/kchaow/filemanager/volume"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		verbose    int
		lang       string
		dir        string
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML, JSON or TOML config file")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.IntVar(&verbose, "verbose", config.WarnVerbose, "Log verbosity level between 1 (error) and 5 (trace). Default is 2 (warn).")
	flag.IntVar(&verbose, "v", config.WarnVerbose, "--verbose (shorthand)")
	flag.StringVar(&lang, "lang", config.DefaultLang, "Console language, ru or en")
	flag.StringVar(&lang, "l", config.DefaultLang, "--lang (shorthand)")
	flag.StringVar(&dir, "dir", "", "Default directory offered at the directory prompt. Default is the user home.")
	flag.StringVar(&dir, "d", "", "--dir (shorthand)")
	flag.Parse()

	// Only flags given on the command line override file and environment
	flags := &config.ConfigOverride{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "verbose", "v":
			flags.LogLvl = &verbose
		case "lang", "l":
			flags.Lang = &lang
		case "dir", "d":
			flags.DefaultDir = &dir
		}
	})

	// Bootstrap logger until the config is known
	util.InitializeLogger(config.DefaultLogLvl, os.Stderr)
	logger := util.GetLogger("main")

	cfg, err := config.Load(configPath, flags)
	if err != nil {
		logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config")
	}

	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			logger.Fatal().Err(err).Str("logFile", cfg.LogFile).Msg("Failed to open log file")
		}
		defer f.Close()
		logOut = f
	}
	util.InitializeLogger(cfg.LogLvl, logOut)
	util.WithSession(uuid.NewString())
	logger = util.GetLogger("main")
	logger.Info().Str("lang", cfg.Lang).Str("defaultDir", cfg.DefaultDir).Msg("File manager starting")

	printer, err := i18n.NewPrinter(cfg.Lang)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load messages")
	}

	console := menu.NewController(os.Stdin, os.Stdout, cfg.DefaultDir, printer, volume.NewSystemInspector())
	if err := console.Run(); err != nil {
		logger.Error().Err(err).Msg("Console stopped")
		os.Exit(1)
	}
	logger.Info().Msg("File manager exited")
}
