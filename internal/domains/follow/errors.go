package follow

import "errors"

var ErrSelfFollow = errors.New("cannot follow yourself")
