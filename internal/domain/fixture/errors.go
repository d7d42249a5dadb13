package fixture

import "errors"

// ErrConfiguration reports a fixture configuration that cannot produce a schedule.
var ErrConfiguration = errors.New("invalid fixture configuration")
