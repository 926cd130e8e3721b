package service

import (
	"errors"
	"math/rand/v2"
	"sync"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// BotService - picks the computer's cell. It never looks ahead, it only picks an empty cell at random.
type BotService interface {
	SelectMove(board entity.Board) (int, error)
}

type botService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewBotService - rng may be nil, then a randomly seeded source is used.
func NewBotService(rng *rand.Rand) BotService {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint: gosec // it's ok
	}

	return &botService{
		rng: rng,
	}
}

func (that *botService) SelectMove(board entity.Board) (int, error) {
	availableCells := board.EmptyCells()
	if len(availableCells) == 0 {
		return -1, ErrNoAvailableMoves
	}

	that.mu.Lock()
	chosenCell := availableCells[that.rng.IntN(len(availableCells))]
	that.mu.Unlock()

	return chosenCell, nil
}
