package advertise

import (
	"fmt"
	"strings"
	"time"
)

// Format renders the report as a human-readable block, one metric per line.
func (r *SessionReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s (id=%s) ===\n", r.Label, r.ID)
	fmt.Fprintf(&sb, "frames: %d  stopped_early: %v  elapsed: %s\n",
		r.Frames, r.StoppedEarly, r.Elapsed.Round(time.Millisecond))
	res := r.Result
	fmt.Fprintf(&sb, "center time ratio:     %.3f\n", res.CenterTimeRatio)
	fmt.Fprintf(&sb, "vibration ratio:       %.3f\n", res.VibrationRatio)
	fmt.Fprintf(&sb, "enemy avoidance rate:  %.3f\n", res.EnemyAvoidanceRate)
	fmt.Fprintf(&sb, "avg dist from center:  %.1f\n", res.AvgDistanceFromCenter)
	fmt.Fprintf(&sb, "avg dist to enemy:     %.1f\n", res.AvgDistanceToEnemy)
	fmt.Fprintf(&sb, "arena coverage:        %.1f%%\n", heatmapCoverage(res.Heatmap)*100)
	fmt.Fprintf(&sb, "grade: %s (%.0f)", r.Verdict.Grade, r.Verdict.Score)
	if r.Verdict.Acceptable {
		sb.WriteString("  [acceptable]\n")
	} else {
		sb.WriteString("  [needs improvement]\n")
	}
	sb.WriteString(FormatProblems(res.Problems))
	return sb.String()
}

// FormatProblems renders the defect list, or a single OK line when empty.
func FormatProblems(problems []ProblemPattern) string {
	if len(problems) == 0 {
		return "no movement defects detected\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "defects (%d):\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(&sb, "  [%6.1fs] %-17s at (%.0f,%.0f)",
			p.TimeSeconds, p.Kind, p.Position.X, p.Position.Y)
		if p.HasEnemy {
			fmt.Fprintf(&sb, " enemy (%.0f,%.0f)", p.Enemy.X, p.Enemy.Y)
		}
		fmt.Fprintf(&sb, "  %s\n", p.Description)
	}
	return sb.String()
}

// FormatComparison renders a baseline-vs-improved table so the effect of the
// controller swap is readable at a glance.
func FormatComparison(baseline, improved *SessionReport) string {
	var sb strings.Builder
	sb.WriteString("=== baseline vs improved ===\n")
	row := func(name string, b, i float64, lowerBetter bool) {
		marker := " "
		if (lowerBetter && i < b) || (!lowerBetter && i > b) {
			marker = "+"
		} else if i != b {
			marker = "-"
		}
		fmt.Fprintf(&sb, "%s %-22s %8.3f -> %8.3f\n", marker, name, b, i)
	}
	row("center time ratio", baseline.Result.CenterTimeRatio, improved.Result.CenterTimeRatio, true)
	row("vibration ratio", baseline.Result.VibrationRatio, improved.Result.VibrationRatio, true)
	row("enemy avoidance rate", baseline.Result.EnemyAvoidanceRate, improved.Result.EnemyAvoidanceRate, false)
	row("avg dist from center", baseline.Result.AvgDistanceFromCenter, improved.Result.AvgDistanceFromCenter, false)
	row("arena coverage", heatmapCoverage(baseline.Result.Heatmap), heatmapCoverage(improved.Result.Heatmap), false)
	fmt.Fprintf(&sb, "grade: %s (%.0f) -> %s (%.0f)\n",
		baseline.Verdict.Grade, baseline.Verdict.Score,
		improved.Verdict.Grade, improved.Verdict.Score)
	fmt.Fprintf(&sb, "defects: %d -> %d\n",
		len(baseline.Result.Problems), len(improved.Result.Problems))
	return sb.String()
}
