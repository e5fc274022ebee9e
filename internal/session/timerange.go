package session

import "fmt"

// TimeRange scopes a trend detail query.
type TimeRange string

const (
	RangeWeek     TimeRange = "1w"
	RangeMonth    TimeRange = "1m"
	RangeYear     TimeRange = "1y"
	RangeTwoYears TimeRange = "2y"
)

// DefaultRange is applied on first drill-down into a product.
const DefaultRange = RangeMonth

// TimeRanges lists the range tabs in display order.
var TimeRanges = []TimeRange{RangeWeek, RangeMonth, RangeYear, RangeTwoYears}

// ParseTimeRange validates a wire/config value.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case RangeWeek, RangeMonth, RangeYear, RangeTwoYears:
		return TimeRange(s), nil
	}
	return "", fmt.Errorf("unknown time range %q (valid: 1w, 1m, 1y, 2y)", s)
}

// Label returns the tab label for the range.
func (r TimeRange) Label() string {
	switch r {
	case RangeWeek:
		return "1 Week"
	case RangeMonth:
		return "1 Month"
	case RangeYear:
		return "1 Year"
	case RangeTwoYears:
		return "2 Years"
	}
	return string(r)
}
