package sanitize

import (
	"math"
	"strings"
)

// SanitizeAggregate is the aggregate/k-anonymity domain entry point:
// sanitize_aggregate(map, device) -> map.
//
// Requires AGGREGATE_STATISTICS; without it, returns an empty map. Retains
// only numeric scalars (floats rounded half-away-from-zero to two decimal
// places) and any key whose name contains "period" or "range"
// (case-insensitive) as a passthrough. After that pass, any integer value
// strictly less than 5 is replaced by the k-anonymity sentinel "< 5".
func SanitizeAggregate(record *Mapping, device Device, opts ...ContextOption) *Mapping {
	ctx := NewContext(AggregateReport, Analytics, opts...)

	if !device.HasPermission(CapAggregateStatistics) {
		logPermissionDenied(AggregateReport, CapAggregateStatistics, device.DeviceID())
		return NewMapping()
	}

	out := NewMapping()
	record.Range(func(key string, v Value) bool {
		lower := strings.ToLower(key)
		isPassthrough := strings.Contains(lower, "period") || strings.Contains(lower, "range")

		if v.Kind != KindScalar {
			return true
		}

		switch val := v.Scalar.(type) {
		case int64:
			if val < 5 {
				out.SetScalar(key, "< 5")
			} else {
				out.SetScalar(key, val)
			}
		case int:
			if int64(val) < 5 {
				out.SetScalar(key, "< 5")
			} else {
				out.SetScalar(key, val)
			}
		case float64:
			out.SetScalar(key, roundHalfAwayFromZero(val))
		case string:
			if isPassthrough {
				out.SetScalar(key, val)
			}
		default:
			if isPassthrough {
				out.SetScalar(key, val)
			}
		}
		return true
	})

	if ctx.IncludeMeta {
		stampMetadata(out)
	}
	return out
}

// roundHalfAwayFromZero rounds x to two decimal places, ties away from
// zero (math.Round already implements ties-away-from-zero).
func roundHalfAwayFromZero(x float64) float64 {
	return math.Round(x*100) / 100
}
