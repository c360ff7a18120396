package advertise

import "fmt"

// Verdict grades one session's movement quality from its analysis result.
// The score starts at 100 and loses points per defect band.
type Verdict struct {
	Score      float64 // 0-100
	Grade      string  // A+ .. F
	Defects    []string
	Acceptable bool
}

// acceptableScore is the floor a session must reach for its controller to be
// considered good enough to keep.
const acceptableScore = 70.0

// GradeSession scores an analysis result. Each metric deducts in two bands, a
// heavy one for the threshold the early-stop conditions use and a lighter one
// for a milder miss.
func GradeSession(res *AnalysisResult) Verdict {
	v := Verdict{Score: 100}

	switch {
	case res.CenterTimeRatio > 0.7:
		v.Score -= 30
		v.Defects = append(v.Defects,
			fmt.Sprintf("center dwelling (%.0f%% of session)", res.CenterTimeRatio*100))
	case res.CenterTimeRatio > 0.4:
		v.Score -= 15
		v.Defects = append(v.Defects,
			fmt.Sprintf("center bias (%.0f%% of session)", res.CenterTimeRatio*100))
	}

	switch {
	case res.VibrationRatio > 0.5:
		v.Score -= 25
		v.Defects = append(v.Defects,
			fmt.Sprintf("heavy vibration (%.0f%% of frames)", res.VibrationRatio*100))
	case res.VibrationRatio > 0.2:
		v.Score -= 10
		v.Defects = append(v.Defects,
			fmt.Sprintf("intermittent vibration (%.0f%% of frames)", res.VibrationRatio*100))
	}

	switch {
	case res.EnemyAvoidanceRate < 0.2:
		v.Score -= 20
		v.Defects = append(v.Defects,
			fmt.Sprintf("poor enemy avoidance (%.0f%%)", res.EnemyAvoidanceRate*100))
	case res.EnemyAvoidanceRate < 0.5:
		v.Score -= 10
		v.Defects = append(v.Defects,
			fmt.Sprintf("weak enemy avoidance (%.0f%%)", res.EnemyAvoidanceRate*100))
	}

	coverage := heatmapCoverage(res.Heatmap)
	switch {
	case coverage < 0.1:
		v.Score -= 15
		v.Defects = append(v.Defects,
			fmt.Sprintf("very low arena coverage (%.0f%%)", coverage*100))
	case coverage < 0.25:
		v.Score -= 5
		v.Defects = append(v.Defects,
			fmt.Sprintf("low arena coverage (%.0f%%)", coverage*100))
	}

	if v.Score < 0 {
		v.Score = 0
	}
	v.Grade = LetterGrade(v.Score)
	v.Acceptable = v.Score >= acceptableScore
	return v
}

func heatmapCoverage(hm [][]int) float64 {
	total, visited := 0, 0
	for _, row := range hm {
		for _, n := range row {
			total++
			if n > 0 {
				visited++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(visited) / float64(total)
}

// LetterGrade maps a 0-100 score to a letter grade.
func LetterGrade(score float64) string {
	switch {
	case score >= 93:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 78:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 62:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 45:
		return "D"
	default:
		return "F"
	}
}
