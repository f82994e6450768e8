package client

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrRateLimit = errors.New("rate limit")

// The backend encodes the remaining wait inside the rejection message, e.g.
// "请等待 8 秒后再试".
var waitPattern = regexp.MustCompile(`(\d+)\s*秒`)

func wrapRateLimit(seconds int) error {
	return fmt.Errorf("%d:%w", seconds, ErrRateLimit)
}

// IsRateLimit reports whether err is a rate-limit rejection and, if so, the
// seconds to wait before retrying.
func IsRateLimit(err error) (int, bool) {
	if err == nil || !errors.Is(err, ErrRateLimit) {
		return 0, false
	}

	seconds, _, found := strings.Cut(err.Error(), ":")
	if !found {
		return 0, false
	}

	n, convErr := strconv.Atoi(seconds)
	if convErr != nil {
		return 0, false
	}

	return n, true
}

// parseWaitSeconds extracts an embedded wait duration from a business
// rejection message.
func parseWaitSeconds(err error) (int, bool) {
	if err == nil {
		return 0, false
	}

	match := waitPattern.FindStringSubmatch(err.Error())
	if match == nil {
		return 0, false
	}

	n, convErr := strconv.Atoi(match[1])
	if convErr != nil {
		return 0, false
	}

	return n, true
}
