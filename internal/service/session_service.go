package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/dayplanner/internal/middleware"
	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/stats"
	"github.com/mmynk/dayplanner/internal/storage"
	"github.com/mmynk/dayplanner/internal/workout"
	"github.com/mmynk/dayplanner/pkg/api"
)

// SessionService runs workout sessions and their logged sets.
type SessionService struct {
	store  storage.WorkoutStore
	logger *slog.Logger
	now    func() time.Time
}

func NewSessionService(store storage.WorkoutStore, logger *slog.Logger) *SessionService {
	return &SessionService{store: store, logger: logger, now: time.Now}
}

// Start opens an in-progress session of a plan, optionally from a planned slot.
func (s *SessionService) Start(ctx context.Context, req *connect.Request[api.StartSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	session := &models.WorkoutSession{
		WorkoutPlanID: req.Msg.WorkoutPlanID,
		PlannedSlotID: optionalID(req.Msg.PlannedSlotID),
		UserID:        middleware.GetUserID(ctx),
	}
	if err := s.store.StartSession(ctx, session); err != nil {
		s.logger.Warn("StartSession failed", "plan_id", session.WorkoutPlanID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Workout session started", "session_id", session.ID, "plan_id", session.WorkoutPlanID)
	return connect.NewResponse(&api.SessionResponse{Session: toAPISession(session)}), nil
}

// GetByID returns a session with its plan and sets.
func (s *SessionService) GetByID(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.SessionResponse], error) {
	session, err := s.store.GetSession(ctx, middleware.GetUserID(ctx), req.Msg.ID)
	if err != nil {
		s.logger.Warn("GetSession failed", "session_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SessionResponse{Session: toAPISession(session)}), nil
}

// Detail returns a session with its sets grouped by exercise and its totals.
func (s *SessionService) Detail(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.SessionDetailResponse], error) {
	session, err := s.store.GetSession(ctx, middleware.GetUserID(ctx), req.Msg.ID)
	if err != nil {
		s.logger.Warn("GetSession failed", "session_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	end := s.now()
	if session.CompletedAt != nil {
		end = *session.CompletedAt
	}

	order, groups := stats.GroupByExercise(session.Sets)
	resp := &api.SessionDetailResponse{
		Session:   toAPISession(session),
		Exercises: make([]api.ExerciseSets, 0, len(order)),
		Summary:   toAPISummary(workout.Summarize(session.Sets, session.StartedAt, end, len(order))),
	}
	for _, id := range order {
		sets := groups[id]
		group := api.ExerciseSets{ExerciseID: id, Sets: make([]api.WorkoutSet, 0, len(sets))}
		if sets[0].Exercise != nil {
			group.ExerciseName = sets[0].Exercise.Name
		}
		for i := range sets {
			group.Sets = append(group.Sets, *toAPISet(&sets[i]))
		}
		resp.Exercises = append(resp.Exercises, group)
	}

	return connect.NewResponse(resp), nil
}

// Complete finishes a session. On a finished session only the notes change.
func (s *SessionService) Complete(ctx context.Context, req *connect.Request[api.CompleteSessionRequest]) (*connect.Response[api.SessionResponse], error) {
	return s.finish(ctx, req.Msg.ID, models.SessionCompleted, req.Msg.Notes)
}

func (s *SessionService) Abandon(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.SessionResponse], error) {
	return s.finish(ctx, req.Msg.ID, models.SessionAbandoned, nil)
}

func (s *SessionService) finish(ctx context.Context, id string, status models.SessionStatus, notes *string) (*connect.Response[api.SessionResponse], error) {
	userID := middleware.GetUserID(ctx)
	if err := s.store.FinishSession(ctx, userID, id, status, notes); err != nil {
		s.logger.Error("FinishSession failed", "session_id", id, "status", status, "error", err)
		return nil, toConnectError(err)
	}

	session, err := s.store.GetSession(ctx, userID, id)
	if err != nil {
		return nil, toConnectError(err)
	}

	s.logger.Info("Workout session finished", "session_id", id, "status", session.Status, "sets", len(session.Sets))
	return connect.NewResponse(&api.SessionResponse{Session: toAPISession(session)}), nil
}

func (s *SessionService) ListByPlan(ctx context.Context, req *connect.Request[api.ListByPlanRequest]) (*connect.Response[api.SessionsResponse], error) {
	sessions, err := s.store.ListSessionsByPlan(ctx, middleware.GetUserID(ctx), req.Msg.WorkoutPlanID)
	if err != nil {
		s.logger.Error("ListSessionsByPlan failed", "plan_id", req.Msg.WorkoutPlanID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SessionsResponse{Sessions: toAPISessions(sessions)}), nil
}

// GetActive returns the session in progress, or a null session.
func (s *SessionService) GetActive(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SessionResponse], error) {
	session, err := s.store.GetActiveSession(ctx, middleware.GetUserID(ctx))
	if err != nil {
		s.logger.Error("GetActiveSession failed", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.SessionResponse{}
	if session != nil {
		resp.Session = toAPISession(session)
	}
	return connect.NewResponse(resp), nil
}

// ListHistory returns completed sessions newest first. Total ignores Limit.
func (s *SessionService) ListHistory(ctx context.Context, req *connect.Request[api.ListHistoryRequest]) (*connect.Response[api.SessionsResponse], error) {
	sessions, total, err := s.store.ListCompletedSessions(ctx, middleware.GetUserID(ctx), models.HistoryFilter{
		ExerciseID: req.Msg.ExerciseID,
		Limit:      req.Msg.Limit,
	})
	if err != nil {
		s.logger.Error("ListCompletedSessions failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SessionsResponse{Sessions: toAPISessions(sessions), Total: total}), nil
}

// Progress reports how far a session is through its plan.
func (s *SessionService) Progress(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.ProgressResponse], error) {
	session, err := s.store.GetSession(ctx, middleware.GetUserID(ctx), req.Msg.ID)
	if err != nil {
		s.logger.Warn("GetSession failed", "session_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	var exercises []models.WorkoutPlanExercise
	if session.WorkoutPlan != nil {
		exercises = session.WorkoutPlan.Exercises
	}
	sets := session.Sets

	end := s.now()
	if session.CompletedAt != nil {
		end = *session.CompletedAt
	}

	progress := workout.SessionProgress(exercises, sets)
	summary := workout.Summarize(sets, session.StartedAt, end, len(exercises))
	resp := &api.ProgressResponse{
		Done:          progress.Done,
		Total:         progress.Total,
		Percent:       progress.Percent,
		Exercises:     make([]api.ExerciseProgress, 0, len(exercises)),
		CurrentIndex:  workout.FirstIncompleteExercise(exercises, sets),
		FullyComplete: workout.IsSessionFullyComplete(exercises, sets),
		Summary:       toAPISummary(summary),
		WeightDiffs: []api.WeightDiff{},
	}

	for _, e := range exercises {
		name := ""
		if e.Exercise != nil {
			name = e.Exercise.Name
		}
		resp.Exercises = append(resp.Exercises, api.ExerciseProgress{
			WorkoutPlanExerciseID: e.ID,
			ExerciseName:          name,
			SetsDone:              len(workout.SetsForExercise(sets, e.ID)),
			PlannedSets:           e.PlannedSets,
			Complete:              workout.IsExerciseComplete(e, sets),
			NextSetNumber:         workout.NextSetNumber(sets, e.ID),
			RestLabel:             workout.FormatRest(e.PlannedRestSeconds),
		})
	}
	for _, d := range workout.WeightDiffs(exercises, sets) {
		resp.WeightDiffs = append(resp.WeightDiffs, api.WeightDiff{
			WorkoutPlanExerciseID: d.WorkoutPlanExerciseID,
			ExerciseName:          d.ExerciseName,
			PlannedWeight:         d.PlannedWeight,
			UsedWeights:           d.UsedWeights,
		})
	}

	return connect.NewResponse(resp), nil
}

// LogSet records a set. Finished sessions reject new sets.
func (s *SessionService) LogSet(ctx context.Context, req *connect.Request[api.LogSetRequest]) (*connect.Response[api.SetResponse], error) {
	set := &models.WorkoutSet{
		SetNumber:             req.Msg.SetNumber,
		Reps:                  req.Msg.Reps,
		Weight:                req.Msg.Weight,
		Feeling:               req.Msg.Feeling,
		ExerciseID:            req.Msg.ExerciseID,
		WorkoutPlanExerciseID: req.Msg.WorkoutPlanExerciseID,
		SessionID:             req.Msg.SessionID,
		UserID:                middleware.GetUserID(ctx),
	}
	if err := s.store.LogSet(ctx, set); err != nil {
		s.logger.Warn("LogSet failed", "session_id", set.SessionID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Debug("Set logged", "session_id", set.SessionID, "set_id", set.ID, "set_number", set.SetNumber)
	return connect.NewResponse(&api.SetResponse{Set: toAPISet(set)}), nil
}

func (s *SessionService) UpdateSet(ctx context.Context, req *connect.Request[api.UpdateSetRequest]) (*connect.Response[api.SetResponse], error) {
	set := &models.WorkoutSet{
		ID:      req.Msg.ID,
		Reps:    req.Msg.Reps,
		Weight:  req.Msg.Weight,
		Feeling: req.Msg.Feeling,
		UserID:  middleware.GetUserID(ctx),
	}
	if err := s.store.UpdateSet(ctx, set); err != nil {
		s.logger.Error("UpdateSet failed", "set_id", set.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SetResponse{Set: toAPISet(set)}), nil
}

func (s *SessionService) DeleteSet(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.store.DeleteSet(ctx, middleware.GetUserID(ctx), req.Msg.ID); err != nil {
		s.logger.Error("DeleteSet failed", "set_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}
