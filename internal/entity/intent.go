package entity

import (
	"net/url"
	"strings"
)

// MoveQuery - values the client substituted into the submission URL.
type MoveQuery struct {
	Move     string
	Char     string
	Username string
}

// HasMove reports whether both move and char were supplied.
func (that MoveQuery) HasMove() bool {
	return strings.TrimSpace(that.Move) != "" && strings.TrimSpace(that.Char) != ""
}

// MoveIntent - a proposed move carried to the confirmation step through the follow-up URL.
type MoveIntent struct {
	Payer    string
	Move     string
	Char     string
	Username string
}

func NewMoveIntent(payer string, query MoveQuery) MoveIntent {
	return MoveIntent{
		Payer:    payer,
		Move:     query.Move,
		Char:     query.Char,
		Username: query.Username,
	}
}

func (that MoveIntent) Query() url.Values {
	values := url.Values{}
	values.Set("move", that.Move)
	values.Set("char", that.Char)
	values.Set("username", that.Username)
	values.Set("payer", that.Payer)

	return values
}

// ConfirmHref - the follow-up link of the confirmation endpoint for the game.
func (that MoveIntent) ConfirmHref(gameID string) string {
	return "/" + url.PathEscape(gameID) + "/confirm?" + that.Query().Encode()
}
