package main

import (
	"context"
	"net/http"

	"locator-api/internal/completion"
	"locator-api/internal/config"
	"locator-api/internal/gazetteer"
	"locator-api/internal/geocode"
	"locator-api/internal/handler"
	"locator-api/internal/places"
	"locator-api/internal/repository"
	"locator-api/internal/resolver"
	"locator-api/internal/service"
	"locator-api/internal/suggest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)

	completionClient := completion.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	geocodeClient := geocode.NewClient(cfg.GoogleMapsAPIKey)
	placesClient := places.NewClient(cfg.GoogleMapsAPIKey)

	res := resolver.New(
		resolver.NewCompletionStrategy(completionClient),
		resolver.NewGazetteerStrategy(gazetteer.Default()),
		resolver.NewGeocoderStrategy(geocodeClient),
		log.Logger,
	)

	resolveService := service.NewResolveService(res, repo, log.Logger)
	suggestService, err := service.NewSuggestService(placesClient, suggest.NewRanker(), cfg.SuggestCacheSize, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create suggest service")
	}

	resolveHandler := handler.NewResolveHandler(resolveService)
	suggestHandler := handler.NewSuggestHandler(suggestService)
	addressesHandler := handler.NewAddressesHandler(resolveService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.POST("/resolve", resolveHandler.Resolve)
	r.GET("/suggestions", suggestHandler.Suggest)
	r.GET("/addresses", addressesHandler.List)

	r.Run(cfg.ServerAddress)
}
