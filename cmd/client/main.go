package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/riegum-client/internal/adapter"
	"github.com/MKhiriev/riegum-client/internal/client"
	"github.com/MKhiriev/riegum-client/internal/config"
	"github.com/MKhiriev/riegum-client/internal/crypto"
	"github.com/MKhiriev/riegum-client/internal/logger"
	"github.com/MKhiriev/riegum-client/internal/service"
	"github.com/MKhiriev/riegum-client/internal/session"
	"github.com/MKhiriev/riegum-client/internal/store"
	"github.com/MKhiriev/riegum-client/internal/tui"
	"github.com/MKhiriev/riegum-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("riegum-client", cfg.App.LogFile)
	log.Info().
		Stringer("build", buildInfo).
		Str("api", cfg.Adapter.Address).
		Msg("starting client")

	ctx, stop := signal.NotifyContext(log.WithContext(context.Background()), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sealer, err := crypto.NewCookieSealer(cfg.App.StorageKey)
	if err != nil {
		log.Fatal().Err(err).Msg("create cookie sealer")
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, sealer, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer localStorage.Close()

	// the navigator is attached once the UI exists
	sess, err := session.NewClient(ctx, cfg.Adapter, localStorage.Cookies, localStorage.SessionState, nil, log.Component("session"))
	if err != nil {
		log.Fatal().Err(err).Msg("create session client")
	}

	api := adapter.NewHTTPRiegumAdapter(sess, log.Component("adapter"))
	geocoder := adapter.NewGoogleGeocoder(cfg.Adapter, log.Component("geocoder"))
	services := service.NewClientServices(sess, api, geocoder, localStorage, log.Component("service"))

	ui := tui.New(services, buildInfo, log.Component("tui"))
	sess.SetNavigator(ui)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "riegum: %v\n", err)
		localStorage.Close()
		os.Exit(1)
	}
}
