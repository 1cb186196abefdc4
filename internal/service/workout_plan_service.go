package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dayplanner/internal/middleware"
	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/storage"
	"github.com/mmynk/dayplanner/pkg/api"
)

// Targets of a plan exercise added without explicit values.
const (
	DefaultPlannedSets        = 3
	DefaultPlannedReps        = 10
	DefaultPlannedWeight      = 0.0
	DefaultPlannedRestSeconds = 90
)

// WorkoutPlanService manages workout plans and their exercises.
type WorkoutPlanService struct {
	store  storage.WorkoutStore
	logger *slog.Logger
}

func NewWorkoutPlanService(store storage.WorkoutStore, logger *slog.Logger) *WorkoutPlanService {
	return &WorkoutPlanService{store: store, logger: logger}
}

func (s *WorkoutPlanService) List(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.ListWorkoutPlansResponse], error) {
	plans, err := s.store.ListWorkoutPlans(ctx, middleware.GetUserID(ctx))
	if err != nil {
		s.logger.Error("ListWorkoutPlans failed", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListWorkoutPlansResponse{Plans: make([]api.WorkoutPlan, 0, len(plans))}
	for i := range plans {
		resp.Plans = append(resp.Plans, *toAPIPlan(&plans[i]))
	}
	return connect.NewResponse(resp), nil
}

// GetByID returns a plan with its exercises in order.
func (s *WorkoutPlanService) GetByID(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.WorkoutPlanResponse], error) {
	plan, err := s.store.GetWorkoutPlan(ctx, middleware.GetUserID(ctx), req.Msg.ID)
	if err != nil {
		s.logger.Warn("GetWorkoutPlan failed", "plan_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.WorkoutPlanResponse{Plan: toAPIPlan(plan)}), nil
}

func (s *WorkoutPlanService) Create(ctx context.Context, req *connect.Request[api.CreateWorkoutPlanRequest]) (*connect.Response[api.WorkoutPlanResponse], error) {
	plan := &models.WorkoutPlan{Name: req.Msg.Name, UserID: middleware.GetUserID(ctx)}
	if err := s.store.CreateWorkoutPlan(ctx, plan); err != nil {
		s.logger.Error("CreateWorkoutPlan failed", "name", plan.Name, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Workout plan created", "plan_id", plan.ID)
	return connect.NewResponse(&api.WorkoutPlanResponse{Plan: toAPIPlan(plan)}), nil
}

func (s *WorkoutPlanService) Update(ctx context.Context, req *connect.Request[api.UpdateWorkoutPlanRequest]) (*connect.Response[api.WorkoutPlanResponse], error) {
	plan := &models.WorkoutPlan{ID: req.Msg.ID, Name: req.Msg.Name, UserID: middleware.GetUserID(ctx)}
	if err := s.store.UpdateWorkoutPlan(ctx, plan); err != nil {
		s.logger.Error("UpdateWorkoutPlan failed", "plan_id", plan.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.WorkoutPlanResponse{Plan: toAPIPlan(plan)}), nil
}

// Delete removes a plan with its exercises and sessions.
func (s *WorkoutPlanService) Delete(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.store.DeleteWorkoutPlan(ctx, middleware.GetUserID(ctx), req.Msg.ID); err != nil {
		s.logger.Error("DeleteWorkoutPlan failed", "plan_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Workout plan deleted", "plan_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

// AddExercise appends an exercise to a plan, filling omitted targets with
// the defaults.
func (s *WorkoutPlanService) AddExercise(ctx context.Context, req *connect.Request[api.AddPlanExerciseRequest]) (*connect.Response[api.PlanExerciseResponse], error) {
	pe := &models.WorkoutPlanExercise{
		Order:              req.Msg.Order,
		PlannedSets:        valueOr(req.Msg.PlannedSets, DefaultPlannedSets),
		PlannedReps:        valueOr(req.Msg.PlannedReps, DefaultPlannedReps),
		PlannedWeight:      valueOr(req.Msg.PlannedWeight, DefaultPlannedWeight),
		PlannedRestSeconds: valueOr(req.Msg.PlannedRestSeconds, DefaultPlannedRestSeconds),
		ExerciseID:         req.Msg.ExerciseID,
		WorkoutPlanID:      req.Msg.WorkoutPlanID,
		UserID:             middleware.GetUserID(ctx),
	}
	if err := s.store.AddPlanExercise(ctx, pe); err != nil {
		s.logger.Warn("AddPlanExercise failed", "plan_id", pe.WorkoutPlanID, "exercise_id", pe.ExerciseID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PlanExerciseResponse{Exercise: toAPIPlanExercise(pe)}), nil
}

func (s *WorkoutPlanService) UpdateExercise(ctx context.Context, req *connect.Request[api.UpdatePlanExerciseRequest]) (*connect.Response[api.PlanExerciseResponse], error) {
	pe := &models.WorkoutPlanExercise{
		ID:                 req.Msg.ID,
		PlannedSets:        req.Msg.PlannedSets,
		PlannedReps:        req.Msg.PlannedReps,
		PlannedWeight:      req.Msg.PlannedWeight,
		PlannedRestSeconds: req.Msg.PlannedRestSeconds,
		UserID:             middleware.GetUserID(ctx),
	}
	if err := s.store.UpdatePlanExercise(ctx, pe); err != nil {
		s.logger.Error("UpdatePlanExercise failed", "plan_exercise_id", pe.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PlanExerciseResponse{Exercise: toAPIPlanExercise(pe)}), nil
}

func (s *WorkoutPlanService) RemoveExercise(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.store.RemovePlanExercise(ctx, middleware.GetUserID(ctx), req.Msg.ID); err != nil {
		s.logger.Error("RemovePlanExercise failed", "plan_exercise_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

// ReorderExercises writes the new position of every listed plan exercise.
func (s *WorkoutPlanService) ReorderExercises(ctx context.Context, req *connect.Request[api.ReorderRequest]) (*connect.Response[api.Empty], error) {
	userID := middleware.GetUserID(ctx)
	if err := reorder(ctx, req.Msg.Items, func(ctx context.Context, u models.OrderUpdate) error {
		return s.store.SetPlanExerciseOrder(ctx, userID, u)
	}); err != nil {
		s.logger.Error("ReorderExercises failed", "count", len(req.Msg.Items), "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
