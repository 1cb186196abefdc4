package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dayplanner/internal/defaults"
	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/storage"
	"github.com/mmynk/dayplanner/pkg/api"
)

// ExerciseService exposes the global exercise catalog.
type ExerciseService struct {
	store  storage.ExerciseStore
	logger *slog.Logger
}

func NewExerciseService(store storage.ExerciseStore, logger *slog.Logger) *ExerciseService {
	return &ExerciseService{store: store, logger: logger}
}

// List returns the catalog ordered by muscle group then name.
func (s *ExerciseService) List(ctx context.Context, req *connect.Request[api.ListExercisesRequest]) (*connect.Response[api.ListExercisesResponse], error) {
	exercises, err := s.store.ListExercises(ctx, models.ExerciseFilter{
		MuscleGroup: req.Msg.MuscleGroup,
		Equipment:   req.Msg.Equipment,
		Search:      req.Msg.Search,
	})
	if err != nil {
		s.logger.Error("ListExercises failed", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListExercisesResponse{Exercises: make([]api.Exercise, 0, len(exercises))}
	for i := range exercises {
		resp.Exercises = append(resp.Exercises, *toAPIExercise(&exercises[i]))
	}
	return connect.NewResponse(resp), nil
}

// Seed upserts the built-in catalog. It is safe to call repeatedly.
func (s *ExerciseService) Seed(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.SeedExercisesResponse], error) {
	exercises := defaults.Exercises()
	if err := s.store.UpsertExercises(ctx, exercises); err != nil {
		s.logger.Error("SeedExercises failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Exercise catalog seeded", "count", len(exercises))
	return connect.NewResponse(&api.SeedExercisesResponse{Count: len(exercises)}), nil
}
