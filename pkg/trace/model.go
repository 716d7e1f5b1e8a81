package trace

// Dataset is the offset history as written by the PTP monitor: one header
// row and one row per sample. Missing cells are stored as NaN.
type Dataset struct {
	Path    string
	Header  []string
	Samples []int
	rows    [][]float64
}

// Point is a single offset measurement in nanoseconds.
type Point struct {
	Sample   int
	OffsetNs float64
}

// Series is one monitored source (usually a camera).
type Series struct {
	Column string
	Label  string
	Points []Point
}

func (d *Dataset) NumRows() int {
	return len(d.Samples)
}

func (d *Dataset) ColumnIndex(name string) int {
	for i, h := range d.Header {
		if h == name {
			return i
		}
	}
	return -1
}

func (s *Series) Values() []float64 {
	values := make([]float64, len(s.Points))
	for i, p := range s.Points {
		values[i] = p.OffsetNs
	}
	return values
}

func (s *Series) Latest() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}
