package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/space-shooter/internal/platform/tui/mocks"
	"github.com/vovakirdan/space-shooter/internal/storage"
)

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "shooter", "Space Shooter", 80, 24)
	if view := m.View(); !strings.Contains(view, "not being recorded") {
		t.Errorf("expected the no-store message:\n%s", view)
	}
}

func TestScoreboardEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().TopScores("shooter", maxScores).Return(nil, nil)
	store.EXPECT().GetGameStats("shooter").Return(&storage.GameStats{GameID: "shooter"}, nil)

	m := NewScoreboardModel(store, "shooter", "Space Shooter", 80, 24)
	if view := m.View(); !strings.Contains(view, "No scores recorded yet") {
		t.Errorf("expected the empty message:\n%s", view)
	}
}

func TestScoreboardLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	store.EXPECT().TopScores(gomock.Any(), gomock.Any()).Return(nil, errors.New("database is locked"))

	m := NewScoreboardModel(store, "shooter", "Space Shooter", 80, 24)
	if view := m.View(); !strings.Contains(view, "database is locked") {
		t.Errorf("expected the load error:\n%s", view)
	}
}

func TestScoreboardRowsAndStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockScoreStore(ctrl)
	when := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	store.EXPECT().TopScores("shooter", maxScores).Return([]storage.ScoreEntry{
		{Score: 36, Level: 4, Player: "kim", CreatedAt: when},
		{Score: 12, Level: 2, CreatedAt: when},
	}, nil)
	store.EXPECT().GetGameStats("shooter").Return(&storage.GameStats{
		GamesCount: 2, HighScore: 36, BestLevel: 4, AvgScore: 24,
	}, nil)

	m := NewScoreboardModel(store, "shooter", "Space Shooter", 100, 30)
	view := m.View()
	for _, want := range []string{"HIGH SCORES - Space Shooter", "kim", "36", "#2", "Mar 14 09:30", "2 games", "avg 24.0"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "shooter", "Space Shooter", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	board := next.(ScoreboardModel)
	if !board.IsGoingBack() || cmd != nil {
		t.Error("embedded board should flag back without quitting")
	}

	m.standalone = true
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("standalone board should quit on back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText should not trim, got %q", got)
	}
}
