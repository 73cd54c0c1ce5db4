package leave

import "errors"

var ErrLeaveNotFound = errors.New("leave request not found")
