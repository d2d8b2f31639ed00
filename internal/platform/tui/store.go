package tui

import "github.com/vovakirdan/space-shooter/internal/storage"

//go:generate go tool mockgen -destination=./mocks/score_store.go -package=mocks . ScoreStore

// ScoreStore is the leaderboard a session reads and writes.
// *storage.Store satisfies it.
type ScoreStore interface {
	SaveScore(gameID, matchID, player string, score, level int) (int64, error)
	HighScore(gameID string) (int, error)
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

var _ ScoreStore = (*storage.Store)(nil)
