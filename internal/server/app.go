package server

import (
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ortobahn/ortobahn/internal/config"
	"github.com/ortobahn/ortobahn/internal/templating/render"
	"github.com/ortobahn/ortobahn/internal/webui"
	"github.com/ortobahn/ortobahn/pkg/logger"
	"github.com/ortobahn/ortobahn/pkg/parser"
)

// App holds the runtime state shared by handlers: configuration, the open
// database handle and the embedded template/static filesystems.
type App struct {
	TemplateFS fs.FS
	PublicFS   fs.FS
	Locs       render.Localizations
	DBDir      string
	DBPath     string
	Config     *config.Config
	DB         *sql.DB
	StartTime  time.Time
}

// NewApp builds the application state from a loaded configuration. The UI
// strings are parsed once here so a malformed locstrings.yml fails startup
// instead of every request.
func NewApp(cfg *config.Config) (*App, error) {
	var locs render.Localizations
	if err := parser.ParseYAMLFile(webui.TemplateFS, "txt/locstrings.yml", &locs); err != nil {
		return nil, fmt.Errorf("failed to parse locstrings.yml: %w", err)
	}

	a := &App{
		TemplateFS: webui.TemplateFS,
		PublicFS:   webui.PublicFS,
		Locs:       locs,
		Config:     cfg,
		StartTime:  time.Now(),
	}

	return a, nil
}

// GetUptime returns how long the server has been running.
func (a *App) GetUptime() string {
	return time.Since(a.StartTime).String()
}

// Shutdown performs a clean shutdown of the application
func (a *App) Shutdown() error {
	logger.Info("Initiating application shutdown")

	if err := CloseDB(a); err != nil {
		logger.Error("Error during database shutdown", "error", err)
		return err
	}

	logger.Info("Application shutdown completed successfully")
	return nil
}
