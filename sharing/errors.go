package sharing

import "errors"

// ErrThresholdOutOfRange reports k > n or k < 1 passed to GenShares.
var ErrThresholdOutOfRange = errors.New("sharing: threshold must satisfy 1 <= k <= n")
