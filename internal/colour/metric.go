package colour

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownMetric is returned when a metric name is not recognised.
var ErrUnknownMetric = errors.New("unknown colour metric")

// Metric selects the distance function used for nearest colour matching.
type Metric string

const (
	// MetricEuclidean is the straight line distance in RGB space, truncated to an integer.
	// Cheap, but weights every channel equally.
	MetricEuclidean Metric = "euclidean"

	// MetricRedmean is the "redmean" approximation of perceived difference.
	// Red and blue are weighted by how red the pair is on average.
	MetricRedmean Metric = "redmean"

	// MetricCIELab is the CIE76 delta E in L*a*b* space.
	MetricCIELab Metric = "cielab"
)

// ValidMetrics returns the list of valid metric names.
func ValidMetrics() []Metric {
	return []Metric{MetricEuclidean, MetricRedmean, MetricCIELab}
}

// IsValid reports whether m names a known metric.
func (m Metric) IsValid() bool {
	for _, valid := range ValidMetrics() {
		if m == valid {
			return true
		}
	}
	return false
}

// ParseMetric converts a metric name to a Metric. Matching is case-insensitive.
func ParseMetric(name string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(name)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q (valid metrics: %v)", ErrUnknownMetric, name, ValidMetrics())
	}
	return m, nil
}

// Distance returns the distance between a and b under the metric.
// Smaller is closer. Unknown metrics fall back to MetricEuclidean.
func (m Metric) Distance(a, b RGB) float64 {
	switch m {
	case MetricRedmean:
		return RedmeanDistance(a, b)
	case MetricCIELab:
		return LabDistance(a, b)
	default:
		return float64(EuclideanDistance(a, b))
	}
}

// EuclideanDistance returns floor(sqrt(dR² + dG² + dB²)).
func EuclideanDistance(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return int(math.Sqrt(float64(dr*dr + dg*dg + db*db)))
}

// RedmeanDistance returns the redmean weighted distance between a and b.
// The weights use integer shifts, so results differ slightly from the
// floating point form of the formula.
// https://www.compuphase.com/cmetric.htm
func RedmeanDistance(a, b RGB) float64 {
	rmean := (int(a.R) + int(b.R)) >> 1
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	sq := (((512 + rmean) * dr * dr) >> 8) + 4*dg*dg + (((767 - rmean) * db * db) >> 8)
	return math.Sqrt(float64(sq))
}

// LabDistance returns the CIE76 distance between a and b in L*a*b* space.
func LabDistance(a, b RGB) float64 {
	return a.ToColorful().DistanceLab(b.ToColorful())
}
