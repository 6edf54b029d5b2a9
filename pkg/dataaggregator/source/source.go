package source

import "errors"

var UnsupportedSourceError = errors.New("Unsupported Source for this query")
