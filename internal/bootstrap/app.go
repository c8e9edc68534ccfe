// Package bootstrap builds the application dependency graph: database,
// object store, LLM provider, services, handlers, and the HTTP router.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"jobmatch-backend/internal/analysis"
	googleauth "jobmatch-backend/internal/auth"
	"jobmatch-backend/internal/extraction"
	"jobmatch-backend/internal/jobs"
	"jobmatch-backend/internal/llm"
	openai "jobmatch-backend/internal/llm/openai"
	"jobmatch-backend/internal/matchscores"
	"jobmatch-backend/internal/resumes"
	"jobmatch-backend/internal/shared/config"
	"jobmatch-backend/internal/shared/server"
	"jobmatch-backend/internal/shared/storage/db"
	"jobmatch-backend/internal/shared/storage/object"
	localstore "jobmatch-backend/internal/shared/storage/object/local"
	s3store "jobmatch-backend/internal/shared/storage/object/s3"
	"jobmatch-backend/internal/similarity"
	"jobmatch-backend/internal/users"
)

// App holds the built application.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	JobsRepo    jobs.Repo
	ResumesRepo resumes.Repo
	UsersRepo   users.Repo
	ScoresRepo  matchscores.Repo

	JobsService     *jobs.Service
	ResumesService  *resumes.Service
	UsersService    *users.Service
	AnalysisService *analysis.Service

	JobsHandler     *jobs.Handler
	ResumesHandler  *resumes.Handler
	UsersHandler    *users.Handler
	AnalysisHandler *analysis.Handler
	GoogleAuth      *googleauth.GoogleService
}

// Build prepares all dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		DB:              app.DB,
		JobsHandler:     app.JobsHandler,
		ResumesHandler:  app.ResumesHandler,
		UsersHandler:    app.UsersHandler,
		AnalysisHandler: app.AnalysisHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider == "openai" && strings.TrimSpace(os.Getenv("OPENAI_API_KEY")) != "" {
		return openai.NewClient(os.Getenv("OPENAI_API_KEY"), cfg.LLMModel, cfg.EmbeddingModel)
	}
	if !isDevLike(cfg.Env) {
		return nil, fmt.Errorf("LLM provider %q not configured", cfg.LLMProvider)
	}
	log.Printf("bootstrap: no LLM provider configured; analysis endpoints will fail until one is set")
	return llm.PlaceholderClient{}, nil
}

func buildServices(app *App) error {
	var jobRepo jobs.Repo
	var resumeRepo resumes.Repo
	var userRepo users.Repo
	var scoreRepo matchscores.Repo

	if app.DB != nil {
		jobRepo = &jobs.PGRepo{DB: app.DB}
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		scoreRepo = &matchscores.PGRepo{DB: app.DB}
	} else {
		jobRepo = jobs.NewMemoryRepo()
		resumeRepo = resumes.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		scoreRepo = matchscores.NewMemoryRepo()
	}

	llmClient, err := buildLLM(app.Config)
	if err != nil {
		return err
	}

	jobSvc := jobs.NewService(jobRepo)
	resumeSvc := resumes.NewService(resumeRepo, app.Store)
	userSvc := users.NewService(userRepo)
	analysisSvc := analysis.NewService(
		jobSvc,
		resumeSvc,
		extraction.NewExtractor(llmClient),
		similarity.NewScorer(llmClient),
		scoreRepo,
	)

	googleAuthSvc := googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	app.JobsRepo = jobRepo
	app.ResumesRepo = resumeRepo
	app.UsersRepo = userRepo
	app.ScoresRepo = scoreRepo
	app.JobsService = jobSvc
	app.ResumesService = resumeSvc
	app.UsersService = userSvc
	app.AnalysisService = analysisSvc
	app.JobsHandler = jobs.NewHandler(jobSvc)
	app.ResumesHandler = resumes.NewHandler(resumeSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.AnalysisHandler = analysis.NewHandler(analysisSvc, scoreRepo)
	app.GoogleAuth = googleAuthSvc

	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
