// Package view holds the comparison view controller: the process-local
// UI state and the state transitions driven by user and network events.
package view

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lebrongpt/compare-ui/internal/models"
)

var (
	// ErrCompareInFlight rejects a comparison started while one is running.
	ErrCompareInFlight = errors.New("a comparison is already in progress")
	// ErrEmptyPlayerName rejects a comparison without a second player.
	ErrEmptyPlayerName = errors.New("second player name is empty")
)

// fallbackErrorMessage is shown when a failure carries no message text.
const fallbackErrorMessage = "something went wrong comparing players"

// Prometheus metrics
var (
	comparisonsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compare_ui_comparisons_started_total",
		Help: "Comparison flows started",
	})
	comparisonsSucceeded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compare_ui_comparisons_succeeded_total",
		Help: "Comparison flows that completed successfully",
	})
	comparisonsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "compare_ui_comparisons_failed_total",
		Help: "Comparison flows that ended in an error",
	})
)

// StatsClient is the slice of the remote stats service this controller
// consumes.
type StatsClient interface {
	PlayerStats(ctx context.Context, name string) (*models.PlayerStats, error)
	Compare(ctx context.Context, player1, player2 string) (*models.ComparisonResult, error)
}

// State is a point-in-time snapshot of the view.
type State struct {
	FirstPlayerName   string
	SecondPlayerName  string
	FirstPlayerStats  *models.PlayerStats
	SecondPlayerStats *models.PlayerStats
	Loading           bool
	ErrorMessage      string
}

// CanCompare reports whether the compare action is enabled: not loading
// and a non-blank second player name.
func (s State) CanCompare() bool {
	return !s.Loading && strings.TrimSpace(s.SecondPlayerName) != ""
}

// Controller owns the view state. All mutation goes through its
// methods; state is only ever written by the comparison flow itself.
type Controller struct {
	client StatsClient
	logger *zap.SugaredLogger

	mu    sync.Mutex
	state State
}

// New creates a controller with a fixed first player.
func New(firstPlayer string, client StatsClient, logger *zap.Logger) *Controller {
	return &Controller{
		client: client,
		logger: logger.Sugar(),
		state:  State{FirstPlayerName: firstPlayer},
	}
}

// SetSecondPlayerName records the user's input.
func (c *Controller) SetSecondPlayerName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SecondPlayerName = name
}

// Snapshot returns a copy of the current state. Stat records are cloned
// so renderers cannot alias controller-owned maps.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.state
	snap.FirstPlayerStats = c.state.FirstPlayerStats.Clone()
	snap.SecondPlayerStats = c.state.SecondPlayerStats.Clone()
	return snap
}

// Compare runs one full comparison flow:
//
//  1. Refuse if already in flight or the second player name is blank.
//  2. Set loading, clear any previous error.
//  3. Fetch both players concurrently with a fail-fast join: the first
//     rejection wins, the sibling is cancelled and its result discarded.
//  4. Store both records wholesale (pre-comparison cut).
//  5. Issue the dependent comparison call.
//  6. Replace only each record's stats mapping from the response.
//  7. On any failure, surface its message in the error panel.
//  8. Always clear loading last.
func (c *Controller) Compare(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Loading {
		c.mu.Unlock()
		return ErrCompareInFlight
	}
	second := strings.TrimSpace(c.state.SecondPlayerName)
	if second == "" {
		c.mu.Unlock()
		return ErrEmptyPlayerName
	}
	first := c.state.FirstPlayerName
	c.state.Loading = true
	c.state.ErrorMessage = ""
	c.mu.Unlock()

	id := uuid.NewString()
	comparisonsStarted.Inc()
	c.logger.Infow("Comparison started", "id", id, "player1", first, "player2", second)

	var err error
	defer func() { c.settle(id, err) }()
	err = c.runCompare(ctx, first, second)
	return err
}

func (c *Controller) runCompare(ctx context.Context, first, second string) error {
	var firstStats, secondStats *models.PlayerStats

	// Fail-fast join: the first error cancels the sibling's context and
	// is the one Wait returns. Results land in locals and are committed
	// only after a clean Wait, so a losing sibling can never reach state.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ps, err := c.client.PlayerStats(gctx, first)
		if err != nil {
			return err
		}
		firstStats = ps
		return nil
	})
	g.Go(func() error {
		ps, err := c.client.PlayerStats(gctx, second)
		if err != nil {
			return err
		}
		secondStats = ps
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	c.state.FirstPlayerStats = firstStats
	c.state.SecondPlayerStats = secondStats
	c.mu.Unlock()

	result, err := c.client.Compare(ctx, first, second)
	if err != nil {
		return err
	}

	// Targeted update: swap in the recomputed mappings, keep the names
	// from the initial fetch.
	c.mu.Lock()
	if c.state.FirstPlayerStats != nil {
		c.state.FirstPlayerStats.Stats = result.Player1Stats
	}
	if c.state.SecondPlayerStats != nil {
		c.state.SecondPlayerStats.Stats = result.Player2Stats
	}
	c.mu.Unlock()
	return nil
}

// settle clears the loading flag and records the outcome. It runs on
// every exit path of Compare.
func (c *Controller) settle(id string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = false
	if err == nil {
		comparisonsSucceeded.Inc()
		c.logger.Infow("Comparison finished", "id", id)
		return
	}
	msg := err.Error()
	if msg == "" {
		msg = fallbackErrorMessage
	}
	c.state.ErrorMessage = msg
	comparisonsFailed.Inc()
	c.logger.Errorw("Comparison failed", "id", id, "error", err)
}
