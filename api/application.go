package api

import (
	"github.com/dev-toolbox/color-api/models"
	"github.com/dev-toolbox/color-api/scheduler"
)

type Config struct {
	HTTPPort        string
	HistorySecret   string
	HistoryDuration int // seconds
	HistorySize     int
	CookieDomain    string
	AllowedOrigins  []string
	DevMode         bool
}

type Application struct {
	Config     Config
	Scheduler  *scheduler.Scheduler
	historyKey []byte
}

// NewApplication derives the history signing key from the config.
func NewApplication(config Config, sched *scheduler.Scheduler) (*Application, error) {
	key, err := models.DeriveHistoryKey(config.HistorySecret)
	if err != nil {
		return nil, err
	}
	if config.HistorySize <= 0 {
		config.HistorySize = models.DefaultHistorySize
	}
	return &Application{
		Config:     config,
		Scheduler:  sched,
		historyKey: key,
	}, nil
}
