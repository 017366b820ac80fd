package market

import (
	"fmt"
	"strings"
)

// Interval is a chart bucket size accepted by the chart command.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval4h  Interval = "4h"
	Interval1d  Interval = "1d"
	Interval1w  Interval = "1w"
	Interval2w  Interval = "2w"
)

// intervalMinutes maps each interval to Kraken's native minute count.
var intervalMinutes = map[Interval]int{
	Interval1m:  1,
	Interval5m:  5,
	Interval15m: 15,
	Interval30m: 30,
	Interval1h:  60,
	Interval4h:  240,
	Interval1d:  1440,
	Interval1w:  10080,
	Interval2w:  21600,
}

// ParseInterval validates a user-supplied interval. An unrecognized value
// is a caller error, rejected before any request is sent.
func ParseInterval(s string) (Interval, error) {
	iv := Interval(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := intervalMinutes[iv]; !ok {
		return "", fmt.Errorf("unknown interval %q (valid: 1m, 5m, 15m, 30m, 1h, 4h, 1d, 1w, 2w)", s)
	}
	return iv, nil
}

// Minutes returns the exchange-native minute count for the interval.
func (i Interval) Minutes() int {
	return intervalMinutes[i]
}
