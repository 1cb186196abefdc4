// Package stats aggregates completed workout sessions into the series and
// summaries shown on the history screens.
//
// All functions take the completed sessions of one user with their sets
// loaded. Sessions are scanned linearly on every call; nothing is cached.
package stats

import (
	"slices"
	"time"

	"github.com/mmynk/dayplanner/internal/models"
)

// WeightPoint is the heaviest set of one exercise in one session.
type WeightPoint struct {
	Date      time.Time
	MaxWeight float64
	SessionID string
}

// VolumePoint is the sum of reps × weight over the sets of one session.
type VolumePoint struct {
	Date      time.Time
	Volume    float64
	SessionID string
}

// ExerciseSummary holds running totals for one exercise.
type ExerciseSummary struct {
	TotalSessions int
	TotalSets     int
	BestWeight    float64

	// BestVolume is the best per-session volume.
	BestVolume float64

	// LastWeight is the weight of the most recently logged set.
	LastWeight float64

	// LastDate is the start of the session holding that set, nil without data.
	LastDate *time.Time
}

// WeightProgression returns the max weight lifted for exerciseID in each
// completed session, oldest first. Sessions without such sets are skipped.
func WeightProgression(sessions []models.WorkoutSession, exerciseID string) []WeightPoint {
	var points []WeightPoint
	for _, session := range chronological(completed(sessions)) {
		sets := setsOf(session.Sets, exerciseID)
		if len(sets) == 0 {
			continue
		}

		maxWeight := sets[0].Weight
		for _, s := range sets[1:] {
			maxWeight = max(maxWeight, s.Weight)
		}
		points = append(points, WeightPoint{
			Date:      session.StartedAt,
			MaxWeight: maxWeight,
			SessionID: session.ID,
		})
	}
	return points
}

// VolumeOverTime returns the volume of each completed session, oldest first.
// An empty exerciseID counts every set of the session.
func VolumeOverTime(sessions []models.WorkoutSession, exerciseID string) []VolumePoint {
	var points []VolumePoint
	for _, session := range chronological(completed(sessions)) {
		sets := session.Sets
		if exerciseID != "" {
			sets = setsOf(sets, exerciseID)
		}
		if len(sets) == 0 {
			continue
		}
		points = append(points, VolumePoint{
			Date:      session.StartedAt,
			Volume:    Volume(sets),
			SessionID: session.ID,
		})
	}
	return points
}

// Summarize computes the summary of exerciseID over completed sessions.
// It returns the zero summary when no set of the exercise was logged.
func Summarize(sessions []models.WorkoutSession, exerciseID string) ExerciseSummary {
	var (
		summary  ExerciseSummary
		last     *models.WorkoutSet
		lastDate time.Time
	)

	for _, session := range completed(sessions) {
		sets := setsOf(session.Sets, exerciseID)
		if len(sets) == 0 {
			continue
		}

		summary.TotalSessions++
		summary.TotalSets += len(sets)
		summary.BestVolume = max(summary.BestVolume, Volume(sets))

		for i := range sets {
			s := &sets[i]
			summary.BestWeight = max(summary.BestWeight, s.Weight)
			if last == nil || s.CompletedAt.After(last.CompletedAt) {
				last = s
				lastDate = session.StartedAt
			}
		}
	}

	if last != nil {
		summary.LastWeight = last.Weight
		summary.LastDate = &lastDate
	}
	return summary
}

// Volume sums reps × weight.
func Volume(sets []models.WorkoutSet) float64 {
	var v float64
	for _, s := range sets {
		v += float64(s.Reps) * s.Weight
	}
	return v
}

// GroupByExercise buckets sets by exercise, preserving first-seen order of
// the exercises and the order of sets within each bucket.
func GroupByExercise(sets []models.WorkoutSet) (order []string, groups map[string][]models.WorkoutSet) {
	groups = make(map[string][]models.WorkoutSet)
	for _, s := range sets {
		if _, ok := groups[s.ExerciseID]; !ok {
			order = append(order, s.ExerciseID)
		}
		groups[s.ExerciseID] = append(groups[s.ExerciseID], s)
	}
	return order, groups
}

func completed(sessions []models.WorkoutSession) []models.WorkoutSession {
	out := make([]models.WorkoutSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Status == models.SessionCompleted {
			out = append(out, s)
		}
	}
	return out
}

func chronological(sessions []models.WorkoutSession) []models.WorkoutSession {
	slices.SortStableFunc(sessions, func(a, b models.WorkoutSession) int {
		return a.StartedAt.Compare(b.StartedAt)
	})
	return sessions
}

func setsOf(sets []models.WorkoutSet, exerciseID string) []models.WorkoutSet {
	var out []models.WorkoutSet
	for _, s := range sets {
		if s.ExerciseID == exerciseID {
			out = append(out, s)
		}
	}
	return out
}
