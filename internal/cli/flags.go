package cli

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/yoinky/internal/errors"
)

// ParseInterval parses the --interval flag.
// Range checks happen with the rest of the config validation.
func ParseInterval(flag string) (time.Duration, error) {
	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid interval", flag),
			"Try something like 250ms, 1s, or 2s.")
	}
	return d, nil
}
