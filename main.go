package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gardenquote/collections"
	"gardenquote/commands"
	"gardenquote/config"
	"gardenquote/handlers"
	"gardenquote/services"
	"gardenquote/store"
)

func main() {
	configPath := os.Getenv("GARDEN_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	settings, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()

	st, closeStore, err := openStore(context.Background(), app, settings.Storage)
	if err != nil {
		log.Fatal(err)
	}

	q, err := services.NewQuoter(settings, st)
	if err != nil {
		log.Fatal(err)
	}

	app.RootCmd.AddCommand(commands.NewPriceListCommand(q))

	// Create collections on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Quote form ───────────────────────────────────────────
		se.Router.GET("/", handlers.HandleQuoteForm(q))
		se.Router.POST("/quote/totals", handlers.HandleQuoteTotals(q))
		se.Router.GET("/quote/custom-line", handlers.HandleCustomLine())
		se.Router.POST("/draft", handlers.HandleDraftSave(q))
		se.Router.POST("/quote/pdf", handlers.HandleQuoteGenerate(app, q))

		// ── Register and exports ─────────────────────────────────
		se.Router.GET("/documents", handlers.HandleDocumentList(app, q))
		se.Router.GET("/documents/export.xlsx", handlers.HandleDocumentExport(app, q))
		se.Router.GET("/tarifs.pdf", handlers.HandlePriceList(q))

		if settings.Metrics.Enabled {
			se.Router.GET("/metrics", apis.WrapStdHandler(promhttp.Handler()))
		}

		return se.Next()
	})

	app.OnTerminate().BindFunc(func(e *core.TerminateEvent) error {
		closeStore()
		return e.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// openStore returns the key-value store selected in the settings and a
// function releasing it.
func openStore(ctx context.Context, app *pocketbase.PocketBase, cfg config.Storage) (store.Store, func(), error) {
	switch cfg.Backend {
	case "postgres":
		if err := store.Migrate(cfg.DSN); err != nil {
			return nil, nil, fmt.Errorf("migrate postgres store: %w", err)
		}
		pg, err := store.NewPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("store: using postgres")
		return pg, pg.Close, nil
	default:
		return store.NewPocketBase(app), func() {}, nil
	}
}
