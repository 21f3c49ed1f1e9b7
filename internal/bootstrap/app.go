package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"beautips-backend/internal/catalog"
	"beautips-backend/internal/embedding"
	"beautips-backend/internal/embedding/ollama"
	"beautips-backend/internal/llm"
	"beautips-backend/internal/llm/gemini"
	"beautips-backend/internal/recommend"
	"beautips-backend/internal/services/health"
	"beautips-backend/internal/shared/config"
	"beautips-backend/internal/shared/server"
	"beautips-backend/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	CatalogRepo      catalog.Repo
	Embedder         embedding.Client
	LLM              llm.Client
	Index            *recommend.Index
	RecommendService *recommend.Service

	CatalogHandler   *catalog.Handler
	RecommendHandler *recommend.Handler
	Health           *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo catalog.Repo
	if sqlDB != nil {
		repo = &catalog.PGRepo{DB: sqlDB}
	} else {
		repo = catalog.NewMemoryRepo()
	}

	embedder, err := buildEmbedder(cfg)
	if err != nil {
		return nil, err
	}
	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	index := recommend.NewIndex(embedder)
	recommendSvc := &recommend.Service{
		Repo: repo,
		Assembler: &recommend.Assembler{
			Repo:  repo,
			Index: index,
			TopK:  cfg.TopK,
		},
		LLM: llmClient,
	}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		CatalogRepo:      repo,
		Embedder:         embedder,
		LLM:              llmClient,
		Index:            index,
		RecommendService: recommendSvc,
		CatalogHandler:   catalog.NewHandler(repo),
		RecommendHandler: recommend.NewHandler(recommendSvc),
		Health:           health.NewService(sqlDB, index),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		CatalogHandler:   app.CatalogHandler,
		RecommendHandler: app.RecommendHandler,
		Health:           app.Health,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory catalog")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory catalog: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildEmbedder(cfg config.Config) (embedding.Client, error) {
	if strings.TrimSpace(cfg.EmbeddingsURL) == "" {
		log.Printf("bootstrap: EMBEDDINGS_URL empty; semantic index disabled")
		return embedding.PlaceholderClient{}, nil
	}
	return ollama.NewClient(cfg.EmbeddingsURL, cfg.EmbeddingsModel)
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.GoogleAPIKey) == "" {
		log.Printf("bootstrap: GOOGLE_API_KEY empty; recommendations will degrade")
		return llm.PlaceholderClient{}, nil
	}
	return gemini.NewClient(cfg.GoogleAPIKey, cfg.LLMModel)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
