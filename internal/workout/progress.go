package workout

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/mmynk/dayplanner/internal/models"
)

// Progress counts logged sets against the planned total of a session.
type Progress struct {
	Done    int
	Total   int
	Percent int
}

// SessionProgress compares the logged sets with the sum of planned sets.
// Percent is capped at 100 and is 0 for a plan with no planned sets.
func SessionProgress(exercises []models.WorkoutPlanExercise, sets []models.WorkoutSet) Progress {
	total := 0
	for _, e := range exercises {
		total += e.PlannedSets
	}
	done := len(sets)

	percent := 0
	if total > 0 {
		percent = min(int(math.Round(float64(done)/float64(total)*100)), 100)
	}
	return Progress{Done: done, Total: total, Percent: percent}
}

// SetsForExercise returns the sets logged against one plan exercise.
func SetsForExercise(sets []models.WorkoutSet, planExerciseID string) []models.WorkoutSet {
	var out []models.WorkoutSet
	for _, s := range sets {
		if s.WorkoutPlanExerciseID == planExerciseID {
			out = append(out, s)
		}
	}
	return out
}

// NextSetNumber is the set number the next logged set of an exercise gets.
func NextSetNumber(sets []models.WorkoutSet, planExerciseID string) int {
	return len(SetsForExercise(sets, planExerciseID)) + 1
}

// IsExerciseComplete reports whether at least PlannedSets sets were logged.
func IsExerciseComplete(exercise models.WorkoutPlanExercise, sets []models.WorkoutSet) bool {
	return len(SetsForExercise(sets, exercise.ID)) >= exercise.PlannedSets
}

// FirstIncompleteExercise returns the index of the first exercise still
// missing sets, or 0 when every exercise is complete.
func FirstIncompleteExercise(exercises []models.WorkoutPlanExercise, sets []models.WorkoutSet) int {
	for i, e := range exercises {
		if !IsExerciseComplete(e, sets) {
			return i
		}
	}
	return 0
}

// IsSessionFullyComplete reports whether every exercise is complete.
func IsSessionFullyComplete(exercises []models.WorkoutPlanExercise, sets []models.WorkoutSet) bool {
	for _, e := range exercises {
		if !IsExerciseComplete(e, sets) {
			return false
		}
	}
	return true
}

// WeightDiff lists the weights used for an exercise that differ from the plan.
type WeightDiff struct {
	WorkoutPlanExerciseID string
	ExerciseName          string
	PlannedWeight         float64
	UsedWeights           []float64
}

// WeightDiffs returns, per exercise with logged sets, the distinct weights
// (ascending) that differ from the planned weight. Exercises performed at the
// planned weight only are omitted.
func WeightDiffs(exercises []models.WorkoutPlanExercise, sets []models.WorkoutSet) []WeightDiff {
	var diffs []WeightDiff
	for _, e := range exercises {
		var used []float64
		for _, s := range SetsForExercise(sets, e.ID) {
			if s.Weight != e.PlannedWeight && !slices.Contains(used, s.Weight) {
				used = append(used, s.Weight)
			}
		}
		if len(used) == 0 {
			continue
		}
		slices.Sort(used)

		name := ""
		if e.Exercise != nil {
			name = e.Exercise.Name
		}
		diffs = append(diffs, WeightDiff{
			WorkoutPlanExerciseID: e.ID,
			ExerciseName:          name,
			PlannedWeight:         e.PlannedWeight,
			UsedWeights:           used,
		})
	}
	return diffs
}

// Summary is the end-of-session recap.
type Summary struct {
	Duration       string
	TotalSets      int
	TotalReps      int
	TotalVolume    float64
	AverageFeeling float64
	ExerciseCount  int
}

// Summarize totals the logged sets of a session that ran from startedAt to end.
func Summarize(sets []models.WorkoutSet, startedAt, end time.Time, exerciseCount int) Summary {
	summary := Summary{
		Duration:      FormatDuration(end.Sub(startedAt)),
		TotalSets:     len(sets),
		ExerciseCount: exerciseCount,
	}

	feeling := 0
	for _, s := range sets {
		summary.TotalReps += s.Reps
		summary.TotalVolume += float64(s.Reps) * s.Weight
		feeling += s.Feeling
	}
	if len(sets) > 0 {
		summary.AverageFeeling = math.Round(float64(feeling)/float64(len(sets))*10) / 10
	}
	return summary
}

// FormatDuration renders whole minutes as "42 min", "1h" or "1h05".
func FormatDuration(d time.Duration) string {
	minutes := int(d / time.Minute)
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours, rest := minutes/60, minutes%60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%02d", hours, rest)
}

// FormatRest renders a countdown as "m:ss".
func FormatRest(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
