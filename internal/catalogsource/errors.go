package catalogsource

import "errors"

var ErrBadStatus = errors.New("response status not ok")
