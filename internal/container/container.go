package container

import (
	"fmt"
	"log"

	"oceanquery/adapters/argo"
	"oceanquery/adapters/postgres"
	"oceanquery/app"
	"oceanquery/internal/analysis"
	"oceanquery/internal/config"
	"oceanquery/internal/interpret"
	"oceanquery/internal/respond"
	"oceanquery/internal/visualize"
	"oceanquery/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	QueryRepo ports.QueryRepository

	// Pipeline components
	Interpreter *interpret.Interpreter
	Engine      *analysis.Engine
	Builder     *visualize.Builder
	Composer    *respond.Composer
	Source      ports.DataSource

	// Application services
	ChatService      *app.ChatService
	DashboardService *app.DashboardService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{Config: cfg}
	c.initPipeline()

	return c, nil
}

// InitWithDatabase initializes components that require database access.
// Without it the container runs with persistence disabled.
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}

	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.DB = db
	c.QueryRepo = postgres.NewQueryRepository(db)

	// Rebuild the services now that the query log is available.
	c.initServices()

	log.Printf("Container initialized with database connection")
	return nil
}

// initPipeline constructs the stateless pipeline components and the
// services on top of them.
func (c *Container) initPipeline() {
	c.Interpreter = interpret.NewInterpreter(nil)
	c.Engine = analysis.NewEngine(analysis.Config{
		AnomalyZScore:   c.Config.Analysis.AnomalyZScore,
		TrendConfidence: c.Config.Analysis.TrendConfidence,
	})
	c.Builder = visualize.NewBuilder(visualize.Config{
		MapMarkerLimit: c.Config.Visualization.MapMarkerLimit,
	})
	c.Composer = respond.NewComposer()
	c.Source = argo.NewMockSource(c.Config.Source.Seed)

	c.initServices()
}

func (c *Container) initServices() {
	c.ChatService = app.NewChatService(
		c.Interpreter, c.Source, c.Engine, c.Builder, c.Composer,
		c.QueryRepo, c.Config.Source.FetchTimeout)
	c.DashboardService = app.NewDashboardService(c.QueryRepo)
}

// Close releases the container's resources.
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
