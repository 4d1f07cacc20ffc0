package config

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	// Embedded zone database so IANA names resolve the same on every host.
	_ "time/tzdata"

	"github.com/vk/pvcircus/internal/circuserr"
)

var utcOffset = regexp.MustCompile(`^(?:UTC|GMT)([+-])(\d{1,2})(?::?(\d{2}))?$`)

// ParseTimezone accepts "UTC", "UTC+H", "UTC-HH:MM" (GMT works the same) or
// an IANA zone name. Anything else is a Timezone error. The empty string
// yields a nil location.
func ParseTimezone(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	switch tz {
	case "":
		return nil, nil
	case "UTC", "GMT", "Z":
		return time.UTC, nil
	}

	if m := utcOffset.FindStringSubmatch(tz); m != nil {
		hours, _ := strconv.Atoi(m[2])
		minutes := 0
		if m[3] != "" {
			minutes, _ = strconv.Atoi(m[3])
		}
		if hours > 14 || minutes > 59 {
			return nil, circuserr.Timezone(tz)
		}
		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(tz, offset), nil
	}

	// "Local" would make results depend on the host.
	if tz == "Local" {
		return nil, circuserr.Timezone(tz)
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, circuserr.Timezone(tz)
	}
	return loc, nil
}
