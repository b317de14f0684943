package types

import (
	"net/http"
)

type NavigationEvent struct {
	Action string `json:"action"`
	Query  string `json:"query"`
	Mode   string `json:"mode"`
}

type Tracking interface {
	TrackSession(sessionId int, r *http.Request)
	TrackView(sessionId int, filters *FilterState, resultLen int, page int, r *http.Request)
	TrackNavigation(sessionId int, event NavigationEvent) error
	Close() error
}
