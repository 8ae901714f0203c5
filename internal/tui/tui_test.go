package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/spider/spider"
	"github.com/lox/spider/internal/randutil"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		want    command
		wantErr bool
	}{
		{"move 3 7", command{Kind: cmdMove, Src: 3, Dst: 7, Count: 1}, false},
		{"m 0 9 4", command{Kind: cmdMove, Src: 0, Dst: 9, Count: 4}, false},
		{"  MOVE 1 2  ", command{Kind: cmdMove, Src: 1, Dst: 2, Count: 1}, false},
		{"new", command{Kind: cmdNew}, false},
		{"n", command{Kind: cmdNew}, false},
		{"save", command{Kind: cmdSave}, false},
		{"load", command{Kind: cmdLoad}, false},
		{"q", command{Kind: cmdQuit}, false},
		{"", command{}, true},
		{"move 1", command{}, true},
		{"move 1 2 3 4", command{}, true},
		{"move one 2", command{}, true},
		{"move 1 2 0", command{}, true},
		{"shuffle", command{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseCommand(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func testModel(t *testing.T, game *spider.Game, opts Options) *Model {
	t.Helper()
	newGame := func() *spider.Game {
		return spider.New(spider.Spades, randutil.New(99))
	}
	return NewModel(game, newGame, log.New(io.Discard), opts)
}

// nearWinGame is one move from victory: pile 0 holds king down to two,
// pile 1 the final ace, and the stock is empty.
func nearWinGame() *spider.Game {
	g := &spider.Game{Suit: spider.Spades}
	id := spider.CardID(0)
	for r := spider.King; r >= spider.Two; r-- {
		g.Tableau[0] = append(g.Tableau[0], spider.Card{ID: id, Suit: spider.Spades, Rank: r, FaceUp: true})
		id++
	}
	g.Tableau[1] = spider.Pile{{ID: id, Suit: spider.Spades, Rank: spider.Ace, FaceUp: true}}
	return g
}

func TestRunCommandMove(t *testing.T) {
	g := nearWinGame()
	m := testModel(t, g, Options{Clock: quartz.NewMock(t)})

	_, _ = m.runCommand("move 1 0")

	assert.True(t, g.Won(), "moving the ace should complete and resolve the sequence")
}

func TestRunCommandRejectsIllegalMove(t *testing.T) {
	g := nearWinGame()
	m := testModel(t, g, Options{Clock: quartz.NewMock(t)})

	_, cmd := m.runCommand("move 0 1")

	assert.Nil(t, cmd)
	assert.Len(t, g.Tableau[0], 12, "rejected move must not change the pile")
	require.NotEmpty(t, m.gameLog)
}

func TestRunCommandBadPile(t *testing.T) {
	m := testModel(t, nearWinGame(), Options{Clock: quartz.NewMock(t)})

	_, _ = m.runCommand("move 42 0")

	require.NotEmpty(t, m.gameLog)
}

func TestWinSchedulesDelayedReset(t *testing.T) {
	mock := quartz.NewMock(t)
	m := testModel(t, nearWinGame(), Options{Clock: mock, ResetDelay: 3 * time.Second})

	_, cmd := m.runCommand("move 1 0")
	require.NotNil(t, cmd, "winning move should schedule the reset")

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	mock.Advance(3 * time.Second)

	select {
	case msg := <-done:
		_, ok := msg.(resetMsg)
		require.True(t, ok, "expected resetMsg, got %T", msg)
		_, _ = m.Update(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("reset timer never fired")
	}

	assert.False(t, m.game.Won(), "reset should deal a fresh game")
	assert.Len(t, m.game.Stock, 50)
}

func TestNewCommandDealsFreshGame(t *testing.T) {
	m := testModel(t, nearWinGame(), Options{Clock: quartz.NewMock(t)})

	_, _ = m.runCommand("new")

	assert.Len(t, m.game.Stock, 50)
}
