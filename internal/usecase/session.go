package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

type gameRepo interface {
	Save(ctx context.Context, state entity.GameState) error
	Load(ctx context.Context, fallback entity.GameState) (entity.GameState, error)
}

type botService interface {
	SelectMove(board entity.Board) (int, error)
}

// Renderer - draws a view. Called after every accepted change, once the state is saved.
type Renderer interface {
	Render(ctx context.Context, view View)
}

// Session - owns the one game of the process.
//
// Every event (cell activation, reset, mode toggle, scheduled computer move)
// runs to completion under mu, so changes never overlap. Reset and mode toggle
// bump version; a scheduled computer move that sees a different version is dropped.
type Session struct {
	logger   *slog.Logger
	gameRepo gameRepo
	bot      botService
	renderer Renderer
	cpuDelay time.Duration

	mu      sync.Mutex
	state   entity.GameState
	version uint64
	pending *time.Timer
	closed  bool
}

func NewSession(logger *slog.Logger, gameRepo gameRepo, bot botService, renderer Renderer, cpuDelay time.Duration) *Session {
	return &Session{
		logger:   logger.With("component", "session"),
		gameRepo: gameRepo,
		bot:      bot,
		renderer: renderer,
		cpuDelay: cpuDelay,
		state:    entity.NewGameState(false),
	}
}

// Start - restores the previous game or starts a fresh one, then saves and renders it.
func (that *Session) Start(ctx context.Context) View {
	log := that.logger.With("method", "Start")

	that.mu.Lock()
	defer that.mu.Unlock()

	state, err := that.gameRepo.Load(ctx, entity.NewGameState(false))
	switch {
	case err == nil:
		log.Info("game restored", "current", state.Current.String(), "cpuMode", state.CPUMode)
	case errors.Is(err, repository.ErrStateNotFound):
		log.Info("no saved game, starting a new one")
	case errors.Is(err, repository.ErrMalformedState):
		log.Warn("saved game is malformed, starting a new one", "error", err)
	default:
		log.Error("could not load saved game, starting a new one", "error", err)
	}

	that.state = state
	that.version++

	view := that.commit(ctx, true)

	// the previous process may have stopped while the computer was about to move
	that.scheduleCPUMove(ctx)

	return view
}

// Activate - a click on a cell. Clicks on taken cells, after the game ended, or
// on the computer's turn are ignored and come back with Accepted set to false.
func (that *Session) Activate(ctx context.Context, cell int) View {
	log := that.logger.With("method", "Activate", "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	if tictactoe.IsCPUTurn(that.state) {
		log.Debug("move ignored", "error", apperror.ErrNotYourTurn)
		return newView(that.state, false)
	}

	next, outcome, applied := tictactoe.ApplyMove(that.state, cell)
	if !applied {
		log.Debug("move ignored", "error", tictactoe.ValidateMove(that.state, cell))
		return newView(that.state, false)
	}

	that.state = next
	that.version++

	view := that.commit(ctx, true, moveSounds(outcome)...)
	that.scheduleCPUMove(ctx)

	return view
}

// Reset - starts a new game in the same mode and drops any pending computer move.
func (that *Session) Reset(ctx context.Context) View {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state = tictactoe.Reset(that.state)
	that.bumpVersion()

	that.logger.Info("game reset", "cpuMode", that.state.CPUMode)

	return that.commit(ctx, true)
}

// ToggleCPUMode - switches the computer opponent on or off; the game always restarts.
func (that *Session) ToggleCPUMode(ctx context.Context) View {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state = tictactoe.ToggleCPUMode(that.state)
	that.bumpVersion()

	that.logger.Info("cpu mode toggled", "cpuMode", that.state.CPUMode)

	return that.commit(ctx, true)
}

// View - the current game without changing it.
func (that *Session) View() View {
	that.mu.Lock()
	defer that.mu.Unlock()

	return newView(that.state, true)
}

// State - a copy of the current game.
func (that *Session) State() entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.state
}

// Close - stops a pending computer move. Later events still work but nothing is scheduled.
func (that *Session) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closed = true
	that.stopPending()
}

func (that *Session) playCPUMove(ctx context.Context, version uint64) {
	log := that.logger.With("method", "playCPUMove")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed || version != that.version {
		log.Debug("stale computer move dropped", "scheduled", version, "current", that.version)
		return
	}

	that.pending = nil

	if !tictactoe.IsCPUTurn(that.state) {
		return
	}

	cell, err := that.bot.SelectMove(that.state.Board)
	if err != nil {
		log.Debug("computer has no move", "error", err)
		return
	}

	next, outcome, applied := tictactoe.ApplyMove(that.state, cell)
	if !applied {
		log.Error("computer picked an invalid cell", "cell", cell)
		return
	}

	that.state = next
	that.version++

	log.Debug("computer moved", "cell", cell)

	that.commit(ctx, true, moveSounds(outcome)...)
}

// scheduleCPUMove - arms the delayed computer move when it is its turn. Caller holds mu.
func (that *Session) scheduleCPUMove(ctx context.Context) {
	if that.closed || !tictactoe.IsCPUTurn(that.state) {
		return
	}

	that.stopPending()

	version := that.version
	ctx = context.WithoutCancel(ctx)

	that.pending = time.AfterFunc(that.cpuDelay, func() {
		that.playCPUMove(ctx, version)
	})
}

func (that *Session) bumpVersion() {
	that.version++
	that.stopPending()
}

func (that *Session) stopPending() {
	if that.pending != nil {
		that.pending.Stop()
		that.pending = nil
	}
}

// commit - saves the state and renders it. A failed save is logged, the game goes on.
func (that *Session) commit(ctx context.Context, accepted bool, sounds ...string) View {
	if err := that.gameRepo.Save(ctx, that.state); err != nil {
		that.logger.Error("failed to save game", "error", err)
	}

	view := newView(that.state, accepted, sounds...)

	if that.renderer != nil {
		that.renderer.Render(ctx, view)
	}

	return view
}

func moveSounds(outcome entity.Outcome) []string {
	if outcome.IsFinal() {
		return []string{SoundClick, SoundWin}
	}

	return []string{SoundClick}
}
