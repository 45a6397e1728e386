package cheqprint_utils

import (
	"github.com/rotisserie/eris"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/json"
)

const jsonMediaType = "application/json"

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(jsonMediaType, json.Minify)
	return m
}

// MinifyJSON strips insignificant whitespace from a JSON document.
func MinifyJSON(data []byte) ([]byte, error) {
	out, err := minifier.Bytes(jsonMediaType, data)
	if err != nil {
		return nil, eris.Wrap(err, "minifying json")
	}
	return out, nil
}
