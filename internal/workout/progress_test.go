package workout

import (
	"testing"
	"time"

	"github.com/mmynk/dayplanner/internal/models"
)

func planExercise(id string, sets int, weight float64) models.WorkoutPlanExercise {
	return models.WorkoutPlanExercise{
		ID:            id,
		PlannedSets:   sets,
		PlannedWeight: weight,
		Exercise:      &models.Exercise{Name: "Exercise " + id},
	}
}

func loggedSet(planExerciseID string, reps int, weight float64, feeling int) models.WorkoutSet {
	return models.WorkoutSet{WorkoutPlanExerciseID: planExerciseID, Reps: reps, Weight: weight, Feeling: feeling}
}

func TestIsExerciseComplete(t *testing.T) {
	bench := planExercise("bench", 3, 20)
	var sets []models.WorkoutSet

	for i := 1; i <= 3; i++ {
		if IsExerciseComplete(bench, sets) {
			t.Fatalf("complete after %d sets, want incomplete", i-1)
		}
		if got := NextSetNumber(sets, bench.ID); got != i {
			t.Errorf("NextSetNumber = %d, want %d", got, i)
		}
		sets = append(sets, loggedSet(bench.ID, 10, 20, 3))
	}

	if !IsExerciseComplete(bench, sets) {
		t.Error("incomplete after 3 sets, want complete")
	}

	// Sets of another exercise do not count.
	other := planExercise("row", 1, 0)
	if IsExerciseComplete(other, sets) {
		t.Error("row complete without any row sets")
	}
}

func TestSessionProgress(t *testing.T) {
	tests := []struct {
		name      string
		exercises []models.WorkoutPlanExercise
		sets      int
		want      Progress
	}{
		{name: "empty plan", exercises: nil, sets: 0, want: Progress{Done: 0, Total: 0, Percent: 0}},
		{name: "empty plan with sets", exercises: nil, sets: 2, want: Progress{Done: 2, Total: 0, Percent: 0}},
		{name: "one third", exercises: []models.WorkoutPlanExercise{planExercise("a", 3, 0)}, sets: 1, want: Progress{Done: 1, Total: 3, Percent: 33}},
		{name: "rounds half up", exercises: []models.WorkoutPlanExercise{planExercise("a", 8, 0)}, sets: 1, want: Progress{Done: 1, Total: 8, Percent: 13}},
		{name: "capped", exercises: []models.WorkoutPlanExercise{planExercise("a", 2, 0)}, sets: 5, want: Progress{Done: 5, Total: 2, Percent: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sets := make([]models.WorkoutSet, tt.sets)
			if got := SessionProgress(tt.exercises, sets); got != tt.want {
				t.Errorf("SessionProgress = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFirstIncompleteExercise(t *testing.T) {
	exercises := []models.WorkoutPlanExercise{planExercise("a", 1, 0), planExercise("b", 2, 0)}
	sets := []models.WorkoutSet{loggedSet("a", 10, 0, 3)}

	if got := FirstIncompleteExercise(exercises, sets); got != 1 {
		t.Errorf("FirstIncompleteExercise = %d, want 1", got)
	}
	if IsSessionFullyComplete(exercises, sets) {
		t.Error("session complete with b missing sets")
	}

	sets = append(sets, loggedSet("b", 10, 0, 3), loggedSet("b", 10, 0, 3))
	if got := FirstIncompleteExercise(exercises, sets); got != 0 {
		t.Errorf("FirstIncompleteExercise on finished session = %d, want 0", got)
	}
	if !IsSessionFullyComplete(exercises, sets) {
		t.Error("session incomplete with every exercise done")
	}
}

func TestWeightDiffs(t *testing.T) {
	exercises := []models.WorkoutPlanExercise{planExercise("a", 3, 20), planExercise("b", 3, 40), planExercise("c", 3, 10)}
	sets := []models.WorkoutSet{
		loggedSet("a", 10, 20, 3),
		loggedSet("a", 10, 20, 3),
		loggedSet("b", 8, 45, 4),
		loggedSet("b", 8, 42.5, 4),
		loggedSet("b", 8, 45, 5),
		loggedSet("b", 8, 40, 5),
	}

	diffs := WeightDiffs(exercises, sets)
	if len(diffs) != 1 {
		t.Fatalf("got %d diffs, want 1: %+v", len(diffs), diffs)
	}
	d := diffs[0]
	if d.WorkoutPlanExerciseID != "b" || d.PlannedWeight != 40 || d.ExerciseName != "Exercise b" {
		t.Errorf("unexpected diff %+v", d)
	}
	if len(d.UsedWeights) != 2 || d.UsedWeights[0] != 42.5 || d.UsedWeights[1] != 45 {
		t.Errorf("UsedWeights = %v, want [42.5 45]", d.UsedWeights)
	}
}

func TestSummarize(t *testing.T) {
	start := time.Date(2026, 2, 2, 18, 0, 0, 0, time.UTC)
	sets := []models.WorkoutSet{
		loggedSet("a", 10, 20, 3),
		loggedSet("a", 8, 25, 4),
		loggedSet("a", 6, 30, 4),
	}

	got := Summarize(sets, start, start.Add(75*time.Minute), 1)
	if got.Duration != "1h15" {
		t.Errorf("Duration = %q, want 1h15", got.Duration)
	}
	if got.TotalSets != 3 || got.TotalReps != 24 {
		t.Errorf("totals = %d sets / %d reps, want 3 / 24", got.TotalSets, got.TotalReps)
	}
	if got.TotalVolume != 580 {
		t.Errorf("TotalVolume = %v, want 580", got.TotalVolume)
	}
	if got.AverageFeeling != 3.7 {
		t.Errorf("AverageFeeling = %v, want 3.7", got.AverageFeeling)
	}

	empty := Summarize(nil, start, start, 0)
	if empty.AverageFeeling != 0 || empty.Duration != "0 min" {
		t.Errorf("empty summary = %+v", empty)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[time.Duration]string{
		0:                 "0 min",
		59 * time.Second:  "0 min",
		42 * time.Minute:  "42 min",
		60 * time.Minute:  "1h",
		125 * time.Minute: "2h05",
	}
	for d, want := range tests {
		if got := FormatDuration(d); got != want {
			t.Errorf("FormatDuration(%v) = %q, want %q", d, got, want)
		}
	}
}

func TestFormatRest(t *testing.T) {
	tests := map[int]string{0: "0:00", 5: "0:05", 90: "1:30", 600: "10:00"}
	for secs, want := range tests {
		if got := FormatRest(secs); got != want {
			t.Errorf("FormatRest(%d) = %q, want %q", secs, got, want)
		}
	}
}
