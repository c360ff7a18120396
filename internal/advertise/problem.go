package advertise

// PatternKind classifies a detected movement defect.
type PatternKind int

const (
	PatternVibration PatternKind = iota
	PatternApproachingEnemy
	PatternCenterDwelling
)

// String returns the wire name used in the persisted report.
func (k PatternKind) String() string {
	switch k {
	case PatternVibration:
		return "vibration"
	case PatternApproachingEnemy:
		return "approaching_enemy"
	case PatternCenterDwelling:
		return "center_dwelling"
	default:
		return "unknown"
	}
}

// ProblemPattern is one appended entry in the session's defect log.
// A vibration pattern is recorded at most once per session; the others repeat.
type ProblemPattern struct {
	Kind        PatternKind
	Position    Point
	Enemy       Point // only meaningful when HasEnemy is set
	HasEnemy    bool
	TimeSeconds float64
	Description string
}
