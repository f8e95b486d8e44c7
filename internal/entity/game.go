package entity

import (
	"strconv"
)

const (
	MarkX = "x"
	MarkO = "o"

	EmptyCell = ""
)

type StateTag string

const (
	StateOngoing StateTag = "ongoing"
	StateTie     StateTag = "tie"
	StateWon     StateTag = "won"
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// GameState - the observed state of a game. Winner is set only when Tag is StateWon.
type GameState struct {
	Tag    StateTag `json:"tag"`
	Winner string   `json:"winner,omitempty"`
}

func (that GameState) IsOngoing() bool {
	return that.Tag == StateOngoing
}

type GameMeta struct {
	Owner Player    `json:"owner"`
	Image string    `json:"image"`
	State GameState `json:"state"`
}

type Move struct {
	Account string `json:"account"`
	Mark    string `json:"mark"`
	Cell    int    `json:"cell"`
}

// GameData - everything the action endpoints read about a game on a single request.
type GameData struct {
	Meta    GameMeta
	History []Move
	Options []string
}

type Game struct {
	ID       string    `json:"id"`
	Board    [9]string `json:"board"`
	Owner    Player    `json:"owner"`
	Opponent *Player   `json:"opponent,omitempty"`
	Image    string    `json:"image"`
	Moves    []Move    `json:"moves"`
}

func NewGame(id string, owner Player, image string) *Game {
	return &Game{
		ID:    id,
		Owner: owner,
		Image: image,
		Moves: []Move{},
	}
}

// State - derives the game state from the board.
func (that *Game) State() GameState {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return GameState{Tag: StateWon, Winner: a}
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return GameState{Tag: StateOngoing}
		}
	}

	return GameState{Tag: StateTie}
}

// MoveOptions - labels of the unoccupied cells, "1" to "9" in board order.
func (that *Game) MoveOptions() []string {
	options := make([]string, 0, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			options = append(options, CellLabel(i))
		}
	}

	return options
}

func (that *Game) Meta() GameMeta {
	return GameMeta{
		Owner: that.Owner,
		Image: that.Image,
		State: that.State(),
	}
}

func (that *Game) Data() *GameData {
	history := make([]Move, len(that.Moves))
	copy(history, that.Moves)

	return &GameData{
		Meta:    that.Meta(),
		History: history,
		Options: that.MoveOptions(),
	}
}

// IsPlayer - reports whether the account is the owner or the opponent of the game.
func (that *Game) IsPlayer(account string) bool {
	if that.Owner.Account == account {
		return true
	}

	return that.Opponent != nil && that.Opponent.Account == account
}

func (that *Game) LastMove() (Move, bool) {
	if len(that.Moves) == 0 {
		return Move{}, false
	}

	return that.Moves[len(that.Moves)-1], true
}

func CellLabel(index int) string {
	return strconv.Itoa(index + 1)
}

// OppositeMark - the symbol of the other player.
func OppositeMark(mark string) string {
	if mark == MarkX {
		return MarkO
	}

	return MarkX
}

func IsValidMark(mark string) bool {
	return mark == MarkX || mark == MarkO
}
