package settings

import (
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// errInvalidTime marks a time value that parsed but violated a range or
// format constraint (minutes, seconds, fraction digit count).
var errInvalidTime = errors.New("invalid time")

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func parseDouble(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

// parseTime converts a play/record length value to a duration.
//
// Two forms are accepted: a bare integer counted as whole seconds, or
// MM:SS[.mmm] with minutes in [0,99], seconds in [0,59] and an optional
// fraction of 1 to 3 digits (right-padded to milliseconds).
func parseTime(s string) (time.Duration, error) {
	sep := strings.IndexByte(s, ':')
	if sep < 0 {
		// Bare seconds
		secs, err := parseInt(s)
		if err != nil {
			return 0, err
		}
		return time.Duration(secs) * time.Second, nil
	}

	min, err := parseInt(s[:sep])
	if err != nil {
		return 0, err
	}
	if min < 0 || min > 99 {
		return 0, errInvalidTime
	}

	rest := s[sep+1:]
	secStr := rest
	ms := 0
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		secStr = rest[:dot]
		msStr := rest[dot+1:]

		// Digit count is a format constraint, checked before the digits
		// themselves so "1:30." fails as an invalid time, not a bad int.
		if len(msStr) < 1 || len(msStr) > 3 {
			return 0, errInvalidTime
		}
		ms, err = parseInt(msStr)
		if err != nil {
			return 0, err
		}
		switch len(msStr) {
		case 1:
			ms *= 100
		case 2:
			ms *= 10
		}
		if ms < 0 {
			return 0, errInvalidTime
		}
	}

	sec, err := parseInt(secStr)
	if err != nil {
		return 0, err
	}
	if sec < 0 || sec > 59 {
		return 0, errInvalidTime
	}

	total := (min*60+sec)*1000 + ms
	return time.Duration(total) * time.Millisecond, nil
}
