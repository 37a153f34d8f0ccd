package loader

import "errors"

var errEmptyImage = errors.New("program image is empty")
