package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/lebrongpt/compare-ui/internal/models"
	"github.com/lebrongpt/compare-ui/internal/view"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// StatsProxy is the slice of the remote stats client the JSON proxy
// endpoints forward to.
type StatsProxy interface {
	PlayerStats(ctx context.Context, name string) (*models.PlayerStats, error)
	Compare(ctx context.Context, player1, player2 string) (*models.ComparisonResult, error)
}

type Config struct {
	Controller *view.Controller
	Stats      StatsProxy
	Logger     *zap.Logger
}

type Handler struct {
	view      *view.Controller
	stats     StatsProxy
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		view:      cfg.Controller,
		stats:     cfg.Stats,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}
