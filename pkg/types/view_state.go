package types

import "net/url"

const FirstPage = 1

// ViewState is everything the listing needs to render, reconstructed from
// the query string on every request. Extra carries query keys the listing
// does not own so they survive a rewrite of the query.
type ViewState struct {
	Filters FilterState `json:"filters"`
	Sort    SortState   `json:"sort"`
	Page    int         `json:"page"`
	Extra   url.Values  `json:"-"`
}

func DefaultViewState() ViewState {
	return ViewState{
		Sort: DefaultSort(),
		Page: FirstPage,
	}
}
