package manager

// maxHistory bounds the number of finished games kept for the session.
const maxHistory = 50

// GameRecord describes one finished game.
type GameRecord struct {
	Score  int
	Length int
	Ticks  int
	Cause  CollisionType
}

// StateManager keeps the in-memory record of the games played in this
// session. Nothing is written to disk.
type StateManager struct {
	highScore   int
	gamesPlayed int
	history     []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		history: make([]GameRecord, 0),
	}
}

func (sm *StateManager) AddGame(record GameRecord) {
	sm.gamesPlayed++
	if record.Score > sm.highScore {
		sm.highScore = record.Score
	}
	if len(sm.history) >= maxHistory {
		sm.history = sm.history[1:]
	}
	sm.history = append(sm.history, record)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

// GetAverageScore averages over the retained history.
func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.history {
		sum += r.Score
	}
	return float64(sum) / float64(len(sm.history))
}

func (sm *StateManager) GetHistory() []GameRecord {
	out := make([]GameRecord, len(sm.history))
	copy(out, sm.history)
	return out
}
