package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanDropOnFoundation(t *testing.T) {
	tests := []struct {
		name      string
		candidate Card
		top       Card
		hasTop    bool
		want      bool
	}{
		{"ace on empty", up(Ace, Spades), Card{}, false, true},
		{"two on empty", up(Two, Spades), Card{}, false, false},
		{"king on empty", up(King, Hearts), Card{}, false, false},
		{"same suit next rank", up(Two, Hearts), up(Ace, Hearts), true, true},
		{"same suit queen on jack", up(Queen, Clubs), up(Jack, Clubs), true, true},
		{"same color other suit", up(Two, Diamonds), up(Ace, Hearts), true, false},
		{"other color", up(Two, Clubs), up(Ace, Hearts), true, false},
		{"rank skip", up(Three, Hearts), up(Ace, Hearts), true, false},
		{"same rank", up(Ace, Hearts), up(Ace, Hearts), true, false},
		{"descending", up(Four, Spades), up(Five, Spades), true, false},
		{"ace on king", up(Ace, Spades), up(King, Spades), true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDropOnFoundation(tt.candidate, tt.top, tt.hasTop))
		})
	}
}

func TestCanDropOnPile(t *testing.T) {
	tests := []struct {
		name      string
		candidate Card
		top       Card
		hasTop    bool
		want      bool
	}{
		{"king on empty", up(King, Diamonds), Card{}, false, true},
		{"queen on empty", up(Queen, Diamonds), Card{}, false, false},
		{"red on black", up(Queen, Hearts), up(King, Spades), true, true},
		{"black on red", up(Six, Clubs), up(Seven, Diamonds), true, true},
		{"red on red", up(Queen, Diamonds), up(King, Hearts), true, false},
		{"black on black", up(Queen, Spades), up(King, Clubs), true, false},
		{"wrong rank", up(Jack, Hearts), up(King, Spades), true, false},
		{"ascending", up(King, Hearts), up(Queen, Spades), true, false},
		{"face-down top", up(Queen, Hearts), down(King, Spades), true, false},
		{"ace on two", up(Ace, Hearts), up(Two, Clubs), true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDropOnPile(tt.candidate, tt.top, tt.hasTop))
		})
	}
}

func TestAccepts(t *testing.T) {
	tab := NewTableau()
	tab.Foundations[0].PushRun([]Card{up(Ace, Hearts)})
	tab.Piles[0].PushRun([]Card{down(Three, Clubs), up(Nine, Spades)})
	tab.Waste.PushRun([]Card{up(Ten, Clubs)})

	single := []Card{up(Two, Hearts)}
	run := []Card{up(Eight, Hearts), up(Seven, Clubs)}

	assert.True(t, Accepts(&tab.Foundations[0], single))
	assert.False(t, Accepts(&tab.Foundations[0], []Card{up(Two, Hearts), up(Three, Hearts)}),
		"foundations take one card at a time")

	assert.True(t, Accepts(&tab.Piles[0], run), "pile checks the bottom of the run")
	assert.False(t, Accepts(&tab.Piles[0], []Card{up(Seven, Clubs)}))
	assert.True(t, Accepts(&tab.Piles[1], []Card{up(King, Spades), up(Queen, Hearts)}))

	assert.False(t, Accepts(&tab.Waste, []Card{up(Nine, Hearts)}), "waste never accepts drops")
	assert.False(t, Accepts(&tab.Stock, single))
	assert.False(t, Accepts(&tab.Drag, single))
	assert.False(t, Accepts(&tab.Piles[1], nil))
}
