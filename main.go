// Package main provides the turn-by-turn guidance application
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/micutio/navkit/internal"
	"github.com/micutio/navkit/internal/route"
	"github.com/micutio/navkit/tickerapp"
	"github.com/micutio/navkit/tuiapp"
	"github.com/spf13/pflag"
)

const (
	// thisAppName is the name of this application as shown on notifications.
	thisAppName = "navkit"
	// directionsTimeout bounds the request to the directions service.
	directionsTimeout = 30 * time.Second
)

var errNoRouteSource = errors.New("no route given, use --route or --google")

type arguments struct {
	configPath string
	routePath  string
	units      string
	locale     string
	isTicker   bool
	google     []string
}

func main() {
	var args arguments

	setupCommandLineFlags(&args)

	// Parse all arguments provided to the program on launch.
	pflag.Parse()

	if err := run(args); err != nil {
		slog.Error("navkit: ", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(args arguments) error {
	cfg := internal.DefaultConfig()
	if args.configPath != "" {
		loaded, err := internal.LoadConfig(args.configPath)
		if err != nil {
			return err //nolint:wrapcheck // already wrapped
		}
		cfg = loaded
	}

	// Flags override the config file.
	if args.units != "" {
		cfg.Units = args.units
	}
	if args.locale != "" {
		cfg.Locale = args.locale
	}
	if args.routePath != "" {
		cfg.Route = args.routePath
	}

	options, err := cfg.Options()
	if err != nil {
		return err //nolint:wrapcheck // already wrapped
	}

	r, err := loadRoute(options.Route, args.google)
	if err != nil {
		return err
	}

	if args.isTicker {
		return tickerapp.Run(thisAppName, options, r) //nolint:wrapcheck // already wrapped
	}

	return tuiapp.Run(thisAppName, options, r) //nolint:wrapcheck // already wrapped
}

func loadRoute(path string, google []string) (*route.Route, error) {
	if len(google) == 2 { //nolint:mnd // origin and destination
		apiKey, err := route.LoadAPIKey()
		if err != nil {
			return nil, fmt.Errorf("loadRoute: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), directionsTimeout)
		defer cancel()

		r, err := route.FetchGoogle(ctx, apiKey, google[0], google[1])
		if err != nil {
			return nil, fmt.Errorf("loadRoute: %w", err)
		}

		return r, nil
	}

	if path == "" {
		return nil, fmt.Errorf("loadRoute: %w", errNoRouteSource)
	}

	r, err := route.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loadRoute: %w", err)
	}

	return r, nil
}

func setupCommandLineFlags(args *arguments) {
	pflag.StringVarP(&args.configPath, "config", "c", "", "read settings from a TOML or YAML file")
	pflag.StringVarP(&args.routePath, "route", "r", "", "route file (JSON) to guide along")
	pflag.StringVarP(&args.units, "units", "u", "", "unit system: metric, imperial_us or imperial_uk")
	pflag.StringVarP(&args.locale, "locale", "L", "", "BCP 47 language tag of the instructions, e.g. de-DE")

	// Whether to launch the Ticker or TUI app.
	pflag.BoolVarP(
		&args.isTicker,
		"ticker",
		"t",
		false,
		"print guidance on the command line without TUI")
	pflag.Lookup("ticker").NoOptDefVal = "true"

	// Fetch the route from the Google Directions API instead of a file.
	pflag.StringSliceVarP(
		&args.google,
		"google",
		"g",
		nil,
		"fetch the route between origin,destination from Google Directions (needs GOOGLE_MAPS_API_KEY)")
}
