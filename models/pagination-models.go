package cheqprint_models

import (
	"net/url"
	"strconv"
)

type PrintHistoryFilter struct {
	Limit int
}

// QueryString renders the filter as the query part of the print-history endpoint.
func (f PrintHistoryFilter) QueryString() string {
	values := url.Values{}
	values.Set("limit", strconv.Itoa(f.Limit))
	return values.Encode()
}
