package config

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/conorfennell/memora/internal/validation"
)

func newValidator() (*validation.Validator, error) {
	v, err := validation.New()
	if err != nil {
		return nil, err
	}
	v.Validate.RegisterStructValidation(validateStorage, StorageConfig{})
	if err := v.RegisterMessage("backend_required", "{0} is required for the {1} backend"); err != nil {
		return nil, err
	}
	return v, nil
}

// validateStorage requires the connection setting of the selected backend.
func validateStorage(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(StorageConfig)
	switch cfg.Backend {
	case BackendSQLite:
		if strings.TrimSpace(cfg.SQLite.Path) == "" {
			sl.ReportError(cfg.SQLite.Path, "sqlite.path", "Path", "backend_required", BackendSQLite)
		}
	case BackendPostgres:
		if strings.TrimSpace(cfg.Postgres.URL) == "" {
			sl.ReportError(cfg.Postgres.URL, "postgres.url", "URL", "backend_required", BackendPostgres)
		}
	}
}
