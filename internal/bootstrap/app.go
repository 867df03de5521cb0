package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/McFranco99/ToolHR/internal/companies"
	"github.com/McFranco99/ToolHR/internal/licensing"
	"github.com/McFranco99/ToolHR/internal/plans"
	"github.com/McFranco99/ToolHR/internal/seed"
	"github.com/McFranco99/ToolHR/internal/services/health"
	"github.com/McFranco99/ToolHR/internal/shared/config"
	"github.com/McFranco99/ToolHR/internal/shared/server"
	"github.com/McFranco99/ToolHR/internal/shared/storage/db"
	"github.com/McFranco99/ToolHR/internal/subscriptions"
	"github.com/McFranco99/ToolHR/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	PlansRepo     plans.Repo
	CompaniesRepo companies.Repo
	SubsRepo      subscriptions.Repo
	UsersRepo     users.Repo

	PlansService     *plans.Service
	CompaniesService *companies.Service
	UsersService     *users.Service
	SeatsService     *licensing.Service
	SeedService      *seed.Service
	HealthService    *health.Service

	PlansHandler     *plans.Handler
	CompaniesHandler *companies.Handler
	UsersHandler     *users.Handler
	SeedHandler      *seed.Handler
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

	app := &App{Config: cfg, DB: sqlDB}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		HealthService:    app.HealthService,
		PlansHandler:     app.PlansHandler,
		CompaniesHandler: app.CompaniesHandler,
		UsersHandler:     app.UsersHandler,
		SeedHandler:      app.SeedHandler,
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

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
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

func buildServices(app *App) error {
	var (
		planRepo    plans.Repo
		companyRepo companies.Repo
		subRepo     subscriptions.Repo
		userRepo    users.Repo
		seatsSvc    *licensing.Service
	)

	if app.DB != nil {
		planRepo = &plans.PGRepo{DB: app.DB}
		companyRepo = &companies.PGRepo{DB: app.DB}
		subRepo = &subscriptions.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
		seatsSvc = licensing.NewPostgresService(licensing.NewPGStore(app.DB))
	} else {
		planRepo = plans.NewMemoryRepo()
		companyRepo = companies.NewMemoryRepo()
		subRepo = subscriptions.NewMemoryRepo()
		memUsers := users.NewMemoryRepo()
		userRepo = memUsers
		seatsSvc = licensing.NewRepoService(licensing.NewRepoStore(subRepo, memUsers))
	}

	planSvc := plans.NewService(planRepo)
	companySvc := &companies.Service{
		Repo:  companyRepo,
		Plans: planSvc,
		Subs:  subRepo,
		Seats: seatsSvc,
	}
	userSvc := &users.Service{
		Repo:      userRepo,
		Companies: companyDirectory{repo: companyRepo},
		Seats:     seatsSvc,
	}
	seedSvc := &seed.Service{
		Plans:     planSvc,
		Companies: companyRepo,
		Subs:      subRepo,
	}

	app.PlansRepo = planRepo
	app.CompaniesRepo = companyRepo
	app.SubsRepo = subRepo
	app.UsersRepo = userRepo
	app.PlansService = planSvc
	app.CompaniesService = companySvc
	app.UsersService = userSvc
	app.SeatsService = seatsSvc
	app.SeedService = seedSvc
	app.HealthService = health.NewService()
	app.PlansHandler = plans.NewHandler(planSvc)
	app.CompaniesHandler = companies.NewHandler(companySvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.SeedHandler = seed.NewHandler(seedSvc)

	if app.CompaniesHandler == nil || app.UsersHandler == nil || app.PlansHandler == nil {
		return errors.New("failed to initialize handlers")
	}
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

// companyDirectory adapts the companies repository to the users package's
// existence check, translating the not-found sentinel across packages.
type companyDirectory struct {
	repo companies.Repo
}

func (d companyDirectory) Exists(ctx context.Context, companyID string) error {
	_, err := d.repo.GetByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, companies.ErrNotFound) {
			return users.ErrCompanyNotFound
		}
		return err
	}
	return nil
}
