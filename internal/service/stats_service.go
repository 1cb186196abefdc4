package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dayplanner/internal/middleware"
	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/stats"
	"github.com/mmynk/dayplanner/internal/storage"
	"github.com/mmynk/dayplanner/pkg/api"
)

// StatsService aggregates the completed sessions of the caller.
type StatsService struct {
	store  storage.WorkoutStore
	logger *slog.Logger
}

func NewStatsService(store storage.WorkoutStore, logger *slog.Logger) *StatsService {
	return &StatsService{store: store, logger: logger}
}

func (s *StatsService) history(ctx context.Context, exerciseID string) ([]models.WorkoutSession, error) {
	sessions, _, err := s.store.ListCompletedSessions(ctx, middleware.GetUserID(ctx), models.HistoryFilter{ExerciseID: exerciseID})
	if err != nil {
		s.logger.Error("ListCompletedSessions failed", "exercise_id", exerciseID, "error", err)
		return nil, err
	}
	return sessions, nil
}

// WeightProgression returns the heaviest set of an exercise per session.
func (s *StatsService) WeightProgression(ctx context.Context, req *connect.Request[api.ExerciseStatsRequest]) (*connect.Response[api.WeightProgressionResponse], error) {
	sessions, err := s.history(ctx, req.Msg.ExerciseID)
	if err != nil {
		return nil, toConnectError(err)
	}

	points := stats.WeightProgression(sessions, req.Msg.ExerciseID)
	resp := &api.WeightProgressionResponse{Points: make([]api.WeightPoint, 0, len(points))}
	for _, p := range points {
		resp.Points = append(resp.Points, api.WeightPoint{
			Date:      millis(p.Date),
			MaxWeight: p.MaxWeight,
			SessionID: p.SessionID,
		})
	}
	return connect.NewResponse(resp), nil
}

// VolumeOverTime returns the volume per session, for one exercise or all.
func (s *StatsService) VolumeOverTime(ctx context.Context, req *connect.Request[api.VolumeOverTimeRequest]) (*connect.Response[api.VolumeOverTimeResponse], error) {
	sessions, err := s.history(ctx, req.Msg.ExerciseID)
	if err != nil {
		return nil, toConnectError(err)
	}

	points := stats.VolumeOverTime(sessions, req.Msg.ExerciseID)
	resp := &api.VolumeOverTimeResponse{Points: make([]api.VolumePoint, 0, len(points))}
	for _, p := range points {
		resp.Points = append(resp.Points, api.VolumePoint{
			Date:      millis(p.Date),
			Volume:    p.Volume,
			SessionID: p.SessionID,
		})
	}
	return connect.NewResponse(resp), nil
}

func (s *StatsService) ExerciseSummary(ctx context.Context, req *connect.Request[api.ExerciseStatsRequest]) (*connect.Response[api.ExerciseSummaryResponse], error) {
	sessions, err := s.history(ctx, req.Msg.ExerciseID)
	if err != nil {
		return nil, toConnectError(err)
	}

	summary := stats.Summarize(sessions, req.Msg.ExerciseID)
	return connect.NewResponse(&api.ExerciseSummaryResponse{
		TotalSessions: summary.TotalSessions,
		TotalSets:     summary.TotalSets,
		BestWeight:    summary.BestWeight,
		BestVolume:    summary.BestVolume,
		LastWeight:    summary.LastWeight,
		LastDate:      millisPtr(summary.LastDate),
	}), nil
}
