package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/callscope/pkg/assistant"
	"github.com/umputun/callscope/pkg/config"
	"github.com/umputun/callscope/pkg/dialer"
	"github.com/umputun/callscope/pkg/llm"
	"github.com/umputun/callscope/pkg/provider/twilio"
	"github.com/umputun/callscope/pkg/provider/vapi"
	"github.com/umputun/callscope/pkg/repository"
	"github.com/umputun/callscope/pkg/scriptcache"
	"github.com/umputun/callscope/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"CONFIG" default:"config.yml" description:"configuration file"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	SetupLog(opts.Debug)
	if opts.NoColor {
		color.NoColor = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}
	log.Print("[INFO] shutdown complete")
}

// run loads configuration, wires services and serves until ctx is canceled
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	// re-setup logger with secrets from config
	SetupLog(opts.Debug, secrets(cfg)...)
	log.Printf("[INFO] starting callscope version %s", revision)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to setup database: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	cache := scriptcache.New(repos.Config)

	vapiClient := vapi.New(vapi.Params{
		BaseURL:       cfg.Vapi.BaseURL,
		APIKey:        cfg.Vapi.APIKey,
		PhoneNumberID: cfg.Vapi.PhoneNumberID,
		AssistantID:   cfg.Vapi.AssistantID,
		Timeout:       cfg.Vapi.Timeout,
	})
	twilioClient := twilio.New(twilio.Params{
		AccountSID:  cfg.Twilio.AccountSID,
		AuthToken:   cfg.Twilio.AuthToken,
		PhoneNumber: cfg.Twilio.PhoneNumber,
		CallerIDTTL: cfg.Twilio.CallerIDTTL,
		Timeout:     cfg.Twilio.Timeout,
	})
	logProviders(cfg)

	dl := dialer.New(dialer.Params{
		Vapi:               vapiClient,
		Twilio:             twilioClient,
		Config:             cache,
		BaseURL:            cfg.Server.BaseURL,
		DefaultCountryCode: cfg.Phone.DefaultCountryCode,
	})

	assistantSvc := assistant.New(cache, repos.Config, assistant.Defaults{
		Name:                  cfg.Assistant.Name,
		Language:              cfg.Assistant.Language,
		ModelProvider:         cfg.Assistant.ModelProvider,
		ModelName:             cfg.Assistant.ModelName,
		TranscriptionProvider: cfg.Assistant.TranscriptionProvider,
		TranscriptionModel:    cfg.Assistant.TranscriptionModel,
		TranscriptionLanguage: cfg.Assistant.TranscriptionLanguage,
		HindiVoiceID:          cfg.Assistant.HindiVoiceID,
	})

	srv := server.New(cfg, server.Deps{
		Cache:              cache,
		Configs:            repos.Config,
		Candidates:         repos.Candidate,
		Scripts:            repos.Script,
		Dialer:             dl,
		Assistant:          assistantSvc,
		Vapi:               vapiClient,
		Twilio:             twilioClient,
		LLM:                llm.NewModelChecker(cfg.LLM),
		DB:                 repos,
		WebhookSecret:      cfg.Webhook.Secret,
		DefaultCountryCode: cfg.Phone.DefaultCountryCode,
	}, revision, opts.Debug)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// logProviders reports which call providers are usable
func logProviders(cfg *config.Config) {
	if !cfg.VapiConfigured() {
		log.Printf("[WARN] vapi api key not set, vapi and hybrid calls disabled")
	}
	if !cfg.TwilioConfigured() {
		log.Printf("[WARN] twilio credentials or caller number not set, twilio calls disabled")
	}
	if !cfg.LLMConfigured() {
		log.Printf("[DEBUG] llm endpoint not set, diagnostics will skip it")
	}
}

// secrets returns the non-empty credentials to be masked in logs
func secrets(cfg *config.Config) []string {
	var res []string
	for _, s := range []string{cfg.Vapi.APIKey, cfg.Twilio.AuthToken, cfg.Webhook.Secret, cfg.LLM.APIKey} {
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

// SetupLog configures lgr and the standard logger, secrets are masked in the output
func SetupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
