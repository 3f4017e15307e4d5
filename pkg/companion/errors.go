package companion

import "errors"

var (
	errRateLimited = errors.New("companion rate limit reached")
	errEmptyReply  = errors.New("provider returned an empty reply")
)
