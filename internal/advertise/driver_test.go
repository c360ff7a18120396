package advertise

import (
	"testing"
)

func TestSessionStopsEarlyOnDwellingAgent(t *testing.T) {
	d := NewSessionDriver(
		WithSeed(42),
		WithLabel("dwell"),
		WithOrbitingEnemy(100, 0, EnemyMob),
		WithStationaryAgent(),
		WithAgentAt(400, 300),
	)
	rep, err := d.Run()
	if err != nil {
		t.Fatalf("Run: %v\n%s", err, d.Log.Format())
	}

	if !rep.StoppedEarly {
		t.Fatalf("session ran to the full budget (%d frames)\n%s", rep.Frames, d.Log.Format())
	}
	if rep.Frames != 900 {
		t.Fatalf("Frames = %d, want the first eligible stop at 900", rep.Frames)
	}
	if rep.Result.CenterTimeRatio < 0.95 {
		t.Fatalf("CenterTimeRatio = %v for a center-pinned agent", rep.Result.CenterTimeRatio)
	}

	foundDwelling := false
	for _, p := range rep.Result.Problems {
		if p.Kind == PatternCenterDwelling {
			foundDwelling = true
		}
	}
	if !foundDwelling {
		t.Fatalf("no center_dwelling pattern in %d problems", len(rep.Result.Problems))
	}
	if rep.Verdict.Acceptable {
		t.Fatalf("verdict %s (%v) acceptable for a dwelling agent", rep.Verdict.Grade, rep.Verdict.Score)
	}
	if !d.Log.HasEntry("stop", "early_stop", "") {
		t.Fatalf("early stop not logged:\n%s", d.Log.Format())
	}
}

func TestSessionLogsLifecycle(t *testing.T) {
	d := NewSessionDriver(
		WithSeed(7),
		WithMaxFrames(400),
		WithHomingEnemies(3),
	)
	if _, err := d.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !d.Log.HasEntry("session", "start", "") || !d.Log.HasEntry("session", "end", "") {
		t.Fatalf("missing lifecycle entries:\n%s", d.Log.Format())
	}
	if d.Log.CountCategory("enemy", "top_threat") == 0 {
		t.Fatalf("no threat ranking logged over 400 frames:\n%s", d.Log.Format())
	}
}

func TestImprovedSessionRoamsMore(t *testing.T) {
	baseline, err := NewSessionDriver(
		WithSeed(42),
		WithMaxFrames(1800),
		WithStationaryAgent(),
		WithAgentAt(400, 300),
	).Run()
	if err != nil {
		t.Fatalf("baseline: %v", err)
	}

	improved, err := NewSessionDriver(
		WithSeed(42),
		WithMaxFrames(1800),
		WithStrategySet(),
	).Run()
	if err != nil {
		t.Fatalf("improved: %v", err)
	}

	if improved.Result.CenterTimeRatio >= baseline.Result.CenterTimeRatio {
		t.Fatalf("center ratio did not drop: baseline %v, improved %v",
			baseline.Result.CenterTimeRatio, improved.Result.CenterTimeRatio)
	}
	b := heatmapCoverage(baseline.Result.Heatmap)
	i := heatmapCoverage(improved.Result.Heatmap)
	if i <= b {
		t.Fatalf("coverage did not grow: baseline %v, improved %v", b, i)
	}
	if improved.Verdict.Score <= baseline.Verdict.Score {
		t.Fatalf("score did not improve: baseline %v, improved %v",
			baseline.Verdict.Score, improved.Verdict.Score)
	}
}

func TestSessionReportIDsAreUnique(t *testing.T) {
	opts := []SessionOption{WithSeed(1), WithMaxFrames(300), WithStationaryAgent()}
	a, err := NewSessionDriver(opts...).Run()
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := NewSessionDriver(opts...).Run()
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("two sessions share report ID %s", a.ID)
	}
}
