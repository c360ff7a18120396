package advertise

import (
	"fmt"

	json "github.com/json-iterator/go"
)

// AnalysisResult is the finished summary of one observation session.
type AnalysisResult struct {
	CenterTimeRatio       float64
	VibrationRatio        float64
	EnemyAvoidanceRate    float64
	AvgDistanceFromCenter float64
	AvgDistanceToEnemy    float64
	Heatmap               [][]int
	Problems              []ProblemPattern
	PositionHistory       []Point
}

// reportJSON is the persisted wire form of AnalysisResult. Field names are
// part of the external format; do not rename.
type reportJSON struct {
	CenterTimeRatio       float64       `json:"center_time_ratio"`
	VibrationRatio        float64       `json:"vibration_ratio"`
	EnemyAvoidanceRate    float64       `json:"enemy_avoidance_rate"`
	AvgDistanceFromCenter float64       `json:"average_distance_from_center"`
	AvgDistanceToEnemy    float64       `json:"average_distance_to_nearest_enemy"`
	Heatmap               [][]int       `json:"player_movement_heatmap"`
	Problems              []patternJSON `json:"problematic_patterns"`
	PositionHistory       [][2]float64  `json:"position_history"`
}

type patternJSON struct {
	Type        string      `json:"type"`
	Position    [2]float64  `json:"position"`
	Time        float64     `json:"time"`
	Description string      `json:"description"`
	Enemy       *[2]float64 `json:"enemy_position,omitempty"`
}

// MarshalReport serializes the result to its persisted JSON form.
func MarshalReport(r *AnalysisResult) ([]byte, error) {
	out := reportJSON{
		CenterTimeRatio:       r.CenterTimeRatio,
		VibrationRatio:        r.VibrationRatio,
		EnemyAvoidanceRate:    r.EnemyAvoidanceRate,
		AvgDistanceFromCenter: r.AvgDistanceFromCenter,
		AvgDistanceToEnemy:    r.AvgDistanceToEnemy,
		Heatmap:               r.Heatmap,
		Problems:              []patternJSON{},
		PositionHistory:       [][2]float64{},
	}
	for _, p := range r.Problems {
		pj := patternJSON{
			Type:        p.Kind.String(),
			Position:    [2]float64{p.Position.X, p.Position.Y},
			Time:        p.TimeSeconds,
			Description: p.Description,
		}
		if p.HasEnemy {
			pj.Enemy = &[2]float64{p.Enemy.X, p.Enemy.Y}
		}
		out.Problems = append(out.Problems, pj)
	}
	for _, pos := range r.PositionHistory {
		out.PositionHistory = append(out.PositionHistory, [2]float64{pos.X, pos.Y})
	}
	return json.MarshalIndent(out, "", "  ")
}

// UnmarshalReport parses a persisted report back into an AnalysisResult.
func UnmarshalReport(data []byte) (*AnalysisResult, error) {
	var in reportJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	r := &AnalysisResult{
		CenterTimeRatio:       in.CenterTimeRatio,
		VibrationRatio:        in.VibrationRatio,
		EnemyAvoidanceRate:    in.EnemyAvoidanceRate,
		AvgDistanceFromCenter: in.AvgDistanceFromCenter,
		AvgDistanceToEnemy:    in.AvgDistanceToEnemy,
		Heatmap:               in.Heatmap,
	}
	for _, pj := range in.Problems {
		kind, err := parsePatternKind(pj.Type)
		if err != nil {
			return nil, err
		}
		p := ProblemPattern{
			Kind:        kind,
			Position:    Point{X: pj.Position[0], Y: pj.Position[1]},
			TimeSeconds: pj.Time,
			Description: pj.Description,
		}
		if pj.Enemy != nil {
			p.Enemy = Point{X: pj.Enemy[0], Y: pj.Enemy[1]}
			p.HasEnemy = true
		}
		r.Problems = append(r.Problems, p)
	}
	for _, pos := range in.PositionHistory {
		r.PositionHistory = append(r.PositionHistory, Point{X: pos[0], Y: pos[1]})
	}
	return r, nil
}

func parsePatternKind(s string) (PatternKind, error) {
	switch s {
	case "vibration":
		return PatternVibration, nil
	case "approaching_enemy":
		return PatternApproachingEnemy, nil
	case "center_dwelling":
		return PatternCenterDwelling, nil
	default:
		return 0, fmt.Errorf("unknown pattern type %q", s)
	}
}
