package service

import (
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/dayplanner/pkg/api"
)

func findExercise(t *testing.T, client *api.Client, name string) api.Exercise {
	t.Helper()
	list := call[api.ListExercisesRequest, api.ListExercisesResponse](t, client, api.ExerciseListProcedure,
		&api.ListExercisesRequest{Search: name})
	for _, e := range list.Exercises {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("exercise %q not found", name)
	return api.Exercise{}
}

func TestExerciseCatalog(t *testing.T) {
	env := setupTestServer(t)
	client := env.register(t, "alice@example.com")

	seeded := call[api.Empty, api.SeedExercisesResponse](t, client, api.ExerciseSeedProcedure, &api.Empty{})
	if seeded.Count == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	again := call[api.Empty, api.SeedExercisesResponse](t, client, api.ExerciseSeedProcedure, &api.Empty{})
	if again.Count != seeded.Count {
		t.Errorf("expected reseeding to upsert %d exercises, got %d", seeded.Count, again.Count)
	}

	all := call[api.ListExercisesRequest, api.ListExercisesResponse](t, client, api.ExerciseListProcedure, &api.ListExercisesRequest{})
	if len(all.Exercises) != seeded.Count {
		t.Errorf("expected %d exercises after reseeding, got %d", seeded.Count, len(all.Exercises))
	}

	dumbbells := call[api.ListExercisesRequest, api.ListExercisesResponse](t, client, api.ExerciseListProcedure,
		&api.ListExercisesRequest{Equipment: "halteres"})
	if len(dumbbells.Exercises) == 0 {
		t.Error("expected dumbbell exercises")
	}
	for _, e := range dumbbells.Exercises {
		if e.Equipment != "halteres" {
			t.Errorf("%s: expected halteres, got %s", e.Name, e.Equipment)
		}
	}
}

func TestWorkoutSession(t *testing.T) {
	env := setupTestServer(t)
	client := env.register(t, "alice@example.com")
	call[api.Empty, api.SeedExercisesResponse](t, client, api.ExerciseSeedProcedure, &api.Empty{})

	bench := findExercise(t, client, "Développé couché barre")

	plan := call[api.CreateWorkoutPlanRequest, api.WorkoutPlanResponse](t, client, api.WorkoutPlanCreateProcedure,
		&api.CreateWorkoutPlanRequest{Name: "Push"}).Plan

	sets := 2
	pe := call[api.AddPlanExerciseRequest, api.PlanExerciseResponse](t, client, api.PlanExerciseAddProcedure,
		&api.AddPlanExerciseRequest{WorkoutPlanID: plan.ID, ExerciseID: bench.ID, PlannedSets: &sets}).Exercise
	if pe.PlannedSets != 2 || pe.PlannedReps != 10 || pe.PlannedWeight != 0 || pe.PlannedRestSeconds != 90 {
		t.Errorf("unexpected targets: %+v", pe)
	}

	session := call[api.StartSessionRequest, api.SessionResponse](t, client, api.SessionStartProcedure,
		&api.StartSessionRequest{WorkoutPlanID: plan.ID}).Session
	if session.Status != "in_progress" {
		t.Fatalf("expected in_progress, got %s", session.Status)
	}

	active := call[api.Empty, api.SessionResponse](t, client, api.SessionGetActiveProcedure, &api.Empty{})
	if active.Session == nil || active.Session.ID != session.ID {
		t.Errorf("expected active session %s, got %+v", session.ID, active.Session)
	}

	for i, weight := range []float64{60, 62.5} {
		call[api.LogSetRequest, api.SetResponse](t, client, api.SetLogProcedure, &api.LogSetRequest{
			SessionID:             session.ID,
			ExerciseID:            bench.ID,
			WorkoutPlanExerciseID: pe.ID,
			SetNumber:             i + 1,
			Reps:                  8,
			Weight:                weight,
			Feeling:               3,
		})
	}

	progress := call[api.IDRequest, api.ProgressResponse](t, client, api.SessionProgressProcedure, &api.IDRequest{ID: session.ID})
	if progress.Done != 2 || progress.Total != 2 || progress.Percent != 100 || !progress.FullyComplete {
		t.Errorf("unexpected progress: %+v", progress)
	}
	if progress.Summary.TotalVolume != 8*60+8*62.5 {
		t.Errorf("unexpected volume %v", progress.Summary.TotalVolume)
	}
	if len(progress.WeightDiffs) != 1 || len(progress.WeightDiffs[0].UsedWeights) != 2 {
		t.Errorf("unexpected weight diffs: %+v", progress.WeightDiffs)
	}
	if progress.Exercises[0].RestLabel != "1:30" {
		t.Errorf("expected rest label 1:30, got %s", progress.Exercises[0].RestLabel)
	}

	detail := call[api.IDRequest, api.SessionDetailResponse](t, client, api.SessionDetailProcedure, &api.IDRequest{ID: session.ID})
	if len(detail.Exercises) != 1 || detail.Exercises[0].ExerciseID != bench.ID || detail.Exercises[0].ExerciseName != bench.Name {
		t.Fatalf("unexpected exercise groups: %+v", detail.Exercises)
	}
	if sets := detail.Exercises[0].Sets; len(sets) != 2 || sets[0].SetNumber != 1 || sets[1].Weight != 62.5 {
		t.Errorf("unexpected grouped sets: %+v", sets)
	}
	if detail.Summary.TotalSets != 2 || detail.Summary.TotalReps != 16 || detail.Summary.AverageFeeling != 3 || detail.Summary.ExerciseCount != 1 {
		t.Errorf("unexpected detail summary: %+v", detail.Summary)
	}

	pending := call[api.ExerciseStatsRequest, api.ExerciseSummaryResponse](t, client, api.StatsExerciseSummaryProcedure,
		&api.ExerciseStatsRequest{ExerciseID: bench.ID})
	if pending.TotalSets != 0 || pending.LastDate != nil {
		t.Errorf("sets of an unfinished session should not count: %+v", pending)
	}

	notes := "bonne séance"
	done := call[api.CompleteSessionRequest, api.SessionResponse](t, client, api.SessionCompleteProcedure,
		&api.CompleteSessionRequest{ID: session.ID, Notes: &notes}).Session
	if done.Status != "completed" || done.CompletedAt == nil || done.Notes == nil || *done.Notes != notes {
		t.Errorf("unexpected completed session: %+v", done)
	}

	expectCode[api.LogSetRequest, api.SetResponse](t, client, api.SetLogProcedure, &api.LogSetRequest{
		SessionID: session.ID, ExerciseID: bench.ID, WorkoutPlanExerciseID: pe.ID, SetNumber: 3, Reps: 5, Weight: 60, Feeling: 2,
	}, connect.CodeFailedPrecondition)
	expectCode[api.LogSetRequest, api.SetResponse](t, client, api.SetLogProcedure, &api.LogSetRequest{
		SessionID: session.ID, ExerciseID: bench.ID, WorkoutPlanExerciseID: pe.ID, SetNumber: 3, Reps: 5, Weight: 60, Feeling: 6,
	}, connect.CodeInvalidArgument)

	active = call[api.Empty, api.SessionResponse](t, client, api.SessionGetActiveProcedure, &api.Empty{})
	if active.Session != nil {
		t.Errorf("expected no active session, got %s", active.Session.ID)
	}

	history := call[api.ListHistoryRequest, api.SessionsResponse](t, client, api.SessionListHistoryProcedure,
		&api.ListHistoryRequest{Limit: 10})
	if len(history.Sessions) != 1 || history.Total != 1 || len(history.Sessions[0].Sets) != 2 {
		t.Errorf("unexpected history: total=%d sessions=%d", history.Total, len(history.Sessions))
	}

	weights := call[api.ExerciseStatsRequest, api.WeightProgressionResponse](t, client, api.StatsWeightProgressionProcedure,
		&api.ExerciseStatsRequest{ExerciseID: bench.ID})
	if len(weights.Points) != 1 || weights.Points[0].MaxWeight != 62.5 {
		t.Errorf("unexpected weight progression: %+v", weights.Points)
	}

	volume := call[api.VolumeOverTimeRequest, api.VolumeOverTimeResponse](t, client, api.StatsVolumeOverTimeProcedure,
		&api.VolumeOverTimeRequest{})
	if len(volume.Points) != 1 || volume.Points[0].Volume != 980 {
		t.Errorf("unexpected volume: %+v", volume.Points)
	}

	summary := call[api.ExerciseStatsRequest, api.ExerciseSummaryResponse](t, client, api.StatsExerciseSummaryProcedure,
		&api.ExerciseStatsRequest{ExerciseID: bench.ID})
	if summary.TotalSessions != 1 || summary.TotalSets != 2 || summary.BestWeight != 62.5 || summary.LastWeight != 62.5 || summary.LastDate == nil {
		t.Errorf("unexpected summary: %+v", summary)
	}

	// Another user sees none of it.
	other := env.register(t, "bob@example.com")
	expectCode[api.IDRequest, api.SessionResponse](t, other, api.SessionGetByIDProcedure,
		&api.IDRequest{ID: session.ID}, connect.CodeNotFound)
	expectCode[api.StartSessionRequest, api.SessionResponse](t, other, api.SessionStartProcedure,
		&api.StartSessionRequest{WorkoutPlanID: plan.ID}, connect.CodeNotFound)
}

func TestReorderPlanExercises(t *testing.T) {
	env := setupTestServer(t)
	client := env.register(t, "alice@example.com")
	call[api.Empty, api.SeedExercisesResponse](t, client, api.ExerciseSeedProcedure, &api.Empty{})

	all := call[api.ListExercisesRequest, api.ListExercisesResponse](t, client, api.ExerciseListProcedure, &api.ListExercisesRequest{})
	plan := call[api.CreateWorkoutPlanRequest, api.WorkoutPlanResponse](t, client, api.WorkoutPlanCreateProcedure,
		&api.CreateWorkoutPlanRequest{Name: "Full body"}).Plan

	var ids []string
	for i := range 4 {
		pe := call[api.AddPlanExerciseRequest, api.PlanExerciseResponse](t, client, api.PlanExerciseAddProcedure,
			&api.AddPlanExerciseRequest{WorkoutPlanID: plan.ID, ExerciseID: all.Exercises[i].ID, Order: i}).Exercise
		ids = append(ids, pe.ID)
	}

	items := make([]api.OrderItem, len(ids))
	for i, id := range ids {
		items[i] = api.OrderItem{ID: id, Order: len(ids) - 1 - i}
	}
	call[api.ReorderRequest, api.Empty](t, client, api.PlanExerciseReorderProcedure, &api.ReorderRequest{Items: items})

	got := call[api.IDRequest, api.WorkoutPlanResponse](t, client, api.WorkoutPlanGetByIDProcedure, &api.IDRequest{ID: plan.ID}).Plan
	if len(got.Exercises) != len(ids) {
		t.Fatalf("expected %d exercises, got %d", len(ids), len(got.Exercises))
	}
	for i, pe := range got.Exercises {
		if pe.ID != ids[len(ids)-1-i] {
			t.Errorf("position %d: expected %s, got %s", i, ids[len(ids)-1-i], pe.ID)
		}
	}

	plans := call[api.Empty, api.ListWorkoutPlansResponse](t, client, api.WorkoutPlanListProcedure, &api.Empty{})
	if len(plans.Plans) != 1 || plans.Plans[0].ExerciseCount != 4 {
		t.Errorf("unexpected plans: %+v", plans.Plans)
	}
}

func TestSessionLifecycle(t *testing.T) {
	env := setupTestServer(t)
	client := env.register(t, "alice@example.com")
	call[api.Empty, api.SeedExercisesResponse](t, client, api.ExerciseSeedProcedure, &api.Empty{})

	squat := findExercise(t, client, "Squat barre")
	plan := call[api.CreateWorkoutPlanRequest, api.WorkoutPlanResponse](t, client, api.WorkoutPlanCreateProcedure,
		&api.CreateWorkoutPlanRequest{Name: "Legs"}).Plan

	pe := call[api.AddPlanExerciseRequest, api.PlanExerciseResponse](t, client, api.PlanExerciseAddProcedure,
		&api.AddPlanExerciseRequest{WorkoutPlanID: plan.ID, ExerciseID: squat.ID}).Exercise
	if pe.PlannedSets != 3 || pe.PlannedReps != 10 || pe.PlannedWeight != 0 || pe.PlannedRestSeconds != 90 {
		t.Errorf("expected default targets, got %+v", pe)
	}
	call[api.UpdatePlanExerciseRequest, api.PlanExerciseResponse](t, client, api.PlanExerciseUpdateProcedure,
		&api.UpdatePlanExerciseRequest{ID: pe.ID, PlannedSets: 5, PlannedReps: 5, PlannedWeight: 80, PlannedRestSeconds: 180})
	expectCode[api.UpdatePlanExerciseRequest, api.PlanExerciseResponse](t, client, api.PlanExerciseUpdateProcedure,
		&api.UpdatePlanExerciseRequest{ID: pe.ID, PlannedSets: 0, PlannedReps: 5}, connect.CodeInvalidArgument)

	session := call[api.StartSessionRequest, api.SessionResponse](t, client, api.SessionStartProcedure,
		&api.StartSessionRequest{WorkoutPlanID: plan.ID}).Session

	logged := call[api.LogSetRequest, api.SetResponse](t, client, api.SetLogProcedure, &api.LogSetRequest{
		SessionID: session.ID, ExerciseID: squat.ID, WorkoutPlanExerciseID: pe.ID, SetNumber: 1, Reps: 5, Weight: 75, Feeling: 4,
	}).Set
	updated := call[api.UpdateSetRequest, api.SetResponse](t, client, api.SetUpdateProcedure,
		&api.UpdateSetRequest{ID: logged.ID, Reps: 5, Weight: 80, Feeling: 3}).Set
	if updated.SetNumber != 1 || updated.SessionID != session.ID || updated.ExerciseID != squat.ID ||
		updated.WorkoutPlanExerciseID != pe.ID || updated.CompletedAt != logged.CompletedAt || updated.Weight != 80 {
		t.Errorf("expected the stored set back, got %+v", updated)
	}
	expectCode[api.UpdateSetRequest, api.SetResponse](t, client, api.SetUpdateProcedure,
		&api.UpdateSetRequest{ID: "missing", Reps: 5, Weight: 80, Feeling: 3}, connect.CodeNotFound)

	got := call[api.IDRequest, api.SessionResponse](t, client, api.SessionGetByIDProcedure, &api.IDRequest{ID: session.ID}).Session
	if len(got.Sets) != 1 || got.Sets[0].Weight != 80 || got.Sets[0].Feeling != 3 {
		t.Fatalf("expected the updated set, got %+v", got.Sets)
	}
	if got.WorkoutPlan == nil || got.WorkoutPlan.Exercises[0].PlannedSets != 5 {
		t.Errorf("expected the session to carry the updated plan, got %+v", got.WorkoutPlan)
	}

	progress := call[api.IDRequest, api.ProgressResponse](t, client, api.SessionProgressProcedure, &api.IDRequest{ID: session.ID})
	if progress.Done != 1 || progress.Total != 5 || progress.Percent != 20 || progress.FullyComplete {
		t.Errorf("unexpected progress: %+v", progress)
	}
	if progress.Exercises[0].NextSetNumber != 2 || progress.Exercises[0].RestLabel != "3:00" {
		t.Errorf("unexpected exercise progress: %+v", progress.Exercises[0])
	}

	call[api.IDRequest, api.Empty](t, client, api.SetDeleteProcedure, &api.IDRequest{ID: logged.ID})
	got = call[api.IDRequest, api.SessionResponse](t, client, api.SessionGetByIDProcedure, &api.IDRequest{ID: session.ID}).Session
	if len(got.Sets) != 0 {
		t.Errorf("expected the set to be deleted, got %d sets", len(got.Sets))
	}

	abandoned := call[api.IDRequest, api.SessionResponse](t, client, api.SessionAbandonProcedure, &api.IDRequest{ID: session.ID}).Session
	if abandoned.Status != "abandoned" || abandoned.CompletedAt == nil {
		t.Errorf("unexpected abandoned session: %+v", abandoned)
	}

	byPlan := call[api.ListByPlanRequest, api.SessionsResponse](t, client, api.SessionListByPlanProcedure,
		&api.ListByPlanRequest{WorkoutPlanID: plan.ID})
	if len(byPlan.Sessions) != 1 || byPlan.Sessions[0].ID != session.ID {
		t.Errorf("unexpected sessions for plan: %+v", byPlan.Sessions)
	}
	history := call[api.ListHistoryRequest, api.SessionsResponse](t, client, api.SessionListHistoryProcedure, &api.ListHistoryRequest{})
	if len(history.Sessions) != 0 || history.Total != 0 {
		t.Errorf("abandoned sessions are not history: %+v", history)
	}

	call[api.UpdateWorkoutPlanRequest, api.WorkoutPlanResponse](t, client, api.WorkoutPlanUpdateProcedure,
		&api.UpdateWorkoutPlanRequest{ID: plan.ID, Name: "Lower body"})
	call[api.IDRequest, api.Empty](t, client, api.PlanExerciseRemoveProcedure, &api.IDRequest{ID: pe.ID})
	renamed := call[api.IDRequest, api.WorkoutPlanResponse](t, client, api.WorkoutPlanGetByIDProcedure, &api.IDRequest{ID: plan.ID}).Plan
	if renamed.Name != "Lower body" || len(renamed.Exercises) != 0 {
		t.Errorf("unexpected plan after edits: %+v", renamed)
	}

	call[api.IDRequest, api.Empty](t, client, api.WorkoutPlanDeleteProcedure, &api.IDRequest{ID: plan.ID})
	expectCode[api.IDRequest, api.WorkoutPlanResponse](t, client, api.WorkoutPlanGetByIDProcedure,
		&api.IDRequest{ID: plan.ID}, connect.CodeNotFound)
	expectCode[api.IDRequest, api.SessionResponse](t, client, api.SessionGetByIDProcedure,
		&api.IDRequest{ID: session.ID}, connect.CodeNotFound)
}
