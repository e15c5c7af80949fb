package cmd

import (
	"fmt"

	config "github.com/integra/explorer/configs"
	"github.com/integra/explorer/internal/explorer"
	"github.com/integra/explorer/internal/history"
	customLogger "github.com/integra/explorer/internal/log"
	"github.com/integra/explorer/internal/publisher"
	"github.com/integra/explorer/internal/storage"
	"github.com/rs/zerolog/log"
)

// app bundles the long-lived dependencies shared by the commands.
type app struct {
	storage   storage.IStorage
	history   history.Store
	publisher *publisher.Publisher
	service   *explorer.Service
}

func newApp() (*app, error) {
	st, err := storage.NewStorageConnector(&config.Cfg.Storage, &config.Cfg.Cache)
	if err != nil {
		return nil, err
	}

	hist, err := history.NewStore(&config.Cfg.History)
	if err != nil {
		st.MainStorage.Close()
		return nil, fmt.Errorf("failed to create search history: %w", err)
	}

	pub, err := publisher.NewPublisher(&config.Cfg.Publisher)
	if err != nil {
		// events still reach the log without kafka
		log.Error().Err(err).Msg("Failed to initialize publisher")
		pub, _ = publisher.NewPublisher(&config.PublisherConfig{})
	}

	events := customLogger.NewEventsLogger(pub)
	svc := explorer.NewService(st,
		explorer.WithHistory(hist),
		explorer.WithEventLogger(events),
		explorer.WithDefaultChainId(config.Cfg.API.DefaultChainId),
		explorer.WithSearchLimit(config.Cfg.API.SearchLimit),
	)
	return &app{storage: st, history: hist, publisher: pub, service: svc}, nil
}

func (a *app) Close() {
	if err := a.publisher.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close publisher")
	}
	if err := a.history.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close search history")
	}
	if err := a.storage.MainStorage.Close(); err != nil {
		log.Warn().Err(err).Msg("Failed to close storage")
	}
}
