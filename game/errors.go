package game

import "errors"

var (
	ErrAlreadyStarted = errors.New("session already started")
	ErrNotGameOver    = errors.New("game is not over")
	ErrSessionClosed  = errors.New("session is closed")
)
