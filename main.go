package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"iconsmith/internal/adapters/encoder"
	"iconsmith/internal/adapters/file"
	"iconsmith/internal/adapters/renderer"
	"iconsmith/internal/core/domain"
	"iconsmith/internal/core/service"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting iconsmith...")

	viper.AddConfigPath(".")
	viper.SetConfigName("iconsmith")
	viper.SetConfigType("toml")

	setDefaults()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
		log.Info().Msg("no config file found, using defaults")
	}

	applyLogLevel()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	set, err := iconSetFromConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid icon set in config")
	}

	svc := service.NewIconService(renderer.NewCanvasRenderer(), encoder.NewImageEncoder(), file.NewDiskWriter())

	if err := svc.GenerateAll(ctx, set); err != nil {
		log.Fatal().Err(err).Msg("icon generation failed")
	}

	if !viper.GetBool("generator.watch") {
		return
	}

	watch(ctx, svc)
}

// watch regenerates the icon set whenever the config file changes, until
// the process is interrupted.
func watch(ctx context.Context, svc *service.IconService) {
	changed := make(chan fsnotify.Event, 1)

	viper.OnConfigChange(func(e fsnotify.Event) {
		select {
		case changed <- e:
		default:
		}
	})
	viper.WatchConfig()

	log.Info().Msg("watching config for changes")

	for {
		select {
		case e := <-changed:
			log.Info().Str("file", e.Name).Msg("config changed, regenerating")

			applyLogLevel()

			set, err := iconSetFromConfig()
			if err != nil {
				log.Error().Err(err).Msg("invalid icon set in config")
				continue
			}

			if err := svc.GenerateAll(ctx, set); err != nil {
				log.Error().Err(err).Msg("regeneration failed")
			}
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			return
		}
	}
}

func applyLogLevel() {
	var logLevel zerolog.Level

	switch viper.GetString("generator.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)
}

func setDefaults() {
	viper.SetDefault("output.dir", "icons")
	viper.SetDefault("output.ico", "")
	viper.SetDefault("icons.sizes", []int{16, 48, 128})
	viper.SetDefault("icons.supersample", 1)
	viper.SetDefault("palette.background", "#2EB67D")
	viper.SetDefault("palette.foreground", "#FFFFFF")
	viper.SetDefault("generator.log_level", "info")
	viper.SetDefault("generator.watch", false)
}

func iconSetFromConfig() (domain.IconSet, error) {
	background, err := domain.ParseHexColor(viper.GetString("palette.background"))
	if err != nil {
		return domain.IconSet{}, err
	}

	foreground, err := domain.ParseHexColor(viper.GetString("palette.foreground"))
	if err != nil {
		return domain.IconSet{}, err
	}

	return domain.IconSet{
		Sizes:     viper.GetIntSlice("icons.sizes"),
		OutputDir: viper.GetString("output.dir"),
		Palette: domain.Palette{
			Background: background,
			Foreground: foreground,
		},
		Supersample: viper.GetInt("icons.supersample"),
		BundleName:  viper.GetString("output.ico"),
	}, nil
}
