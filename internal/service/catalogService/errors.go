package catalogService

import "errors"

var ErrTopicNotFound = errors.New("topic not found")
