package mines

import "errors"

var ErrInvalidConfiguration = errors.New("invalid configuration")
