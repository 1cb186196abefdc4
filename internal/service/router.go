package service

import (
	"context"
	"log/slog"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/dayplanner/internal/auth"
	"github.com/mmynk/dayplanner/internal/middleware"
	"github.com/mmynk/dayplanner/internal/planner"
	"github.com/mmynk/dayplanner/internal/storage"
	"github.com/mmynk/dayplanner/pkg/api"
)

// Options carries the dependencies of every service.
type Options struct {
	Store         storage.Store
	Authenticator auth.Authenticator
	JWTManager    *auth.JWTManager
	Logger        *slog.Logger

	// Metrics is optional.
	Metrics *middleware.Metrics

	Version string
}

// router registers unary handlers on a mux with the shared interceptor chain.
type router struct {
	mux    *http.ServeMux
	public []connect.HandlerOption
	authed []connect.HandlerOption
}

func newRouter(mux *http.ServeMux, opts Options) *router {
	validate := middleware.NewValidator()

	var public, authed []connect.Interceptor
	if opts.Metrics != nil {
		public = append(public, opts.Metrics.Interceptor())
		authed = append(authed, opts.Metrics.Interceptor())
	}
	logging := middleware.LoggingInterceptor(opts.Logger)
	validation := middleware.ValidationInterceptor(validate)
	public = append(public, logging, validation)
	authed = append(authed, logging, middleware.RequireAuth(opts.JWTManager), validation)

	return &router{
		mux:    mux,
		public: []connect.HandlerOption{api.WithCodec(), connect.WithInterceptors(public...)},
		authed: []connect.HandlerOption{api.WithCodec(), connect.WithInterceptors(authed...)},
	}
}

func handle[Req, Res any](r *router, procedure string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error)) {
	r.mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, r.authed...))
}

func handlePublic[Req, Res any](r *router, procedure string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error)) {
	r.mux.Handle(procedure, connect.NewUnaryHandler(procedure, fn, r.public...))
}

// Register mounts every service on mux.
func Register(mux *http.ServeMux, opts Options) {
	r := newRouter(mux, opts)
	store, logger := opts.Store, opts.Logger
	plan := planner.New(store, logger)

	health := NewHealthService(opts.Version)
	handlePublic(r, api.HealthCheckProcedure, health.Check)

	authSvc := NewAuthService(opts.Authenticator, opts.JWTManager, store, logger)
	handlePublic(r, api.AuthRegisterProcedure, authSvc.Register)
	handlePublic(r, api.AuthLoginProcedure, authSvc.Login)
	handle(r, api.AuthMeProcedure, authSvc.Me)

	categories := NewCategoryService(store, logger)
	handle(r, api.CategoryListProcedure, categories.List)
	handle(r, api.CategoryCreateProcedure, categories.Create)
	handle(r, api.CategoryUpdateProcedure, categories.Update)
	handle(r, api.CategoryDeleteProcedure, categories.Delete)
	handle(r, api.SubcategoryCreateProcedure, categories.CreateSubcategory)
	handle(r, api.SubcategoryUpdateProcedure, categories.UpdateSubcategory)
	handle(r, api.SubcategoryDeleteProcedure, categories.DeleteSubcategory)

	templates := NewTemplateService(store, logger)
	handle(r, api.DayTemplateListProcedure, templates.List)
	handle(r, api.DayTemplateGetByIDProcedure, templates.GetByID)
	handle(r, api.DayTemplateCreateProcedure, templates.Create)
	handle(r, api.DayTemplateUpdateProcedure, templates.Update)
	handle(r, api.DayTemplateDeleteProcedure, templates.Delete)
	handle(r, api.TemplateSlotCreateProcedure, templates.CreateSlot)
	handle(r, api.TemplateSlotUpdateProcedure, templates.UpdateSlot)
	handle(r, api.TemplateSlotDeleteProcedure, templates.DeleteSlot)
	handle(r, api.TemplateSlotReorderProcedure, templates.ReorderSlots)
	handle(r, api.RecurrenceListProcedure, templates.ListRecurrences)
	handle(r, api.RecurrenceSetProcedure, templates.SetRecurrence)
	handle(r, api.RecurrenceUnsetProcedure, templates.UnsetRecurrence)

	days := NewPlannerService(plan, store, logger)
	handle(r, api.PlannedDayGetRangeProcedure, days.GetRange)
	handle(r, api.PlannedDayGetWeekProcedure, days.GetWeek)
	handle(r, api.PlannedDayGetMonthProcedure, days.GetMonth)
	handle(r, api.PlannedDayTimelineProcedure, days.Timeline)
	handle(r, api.PlannedDayApplyTemplateProcedure, days.ApplyTemplate)
	handle(r, api.PlannedDayClearDayProcedure, days.ClearDay)
	handle(r, api.PlannedSlotCreateProcedure, days.CreateSlot)
	handle(r, api.PlannedSlotUpdateProcedure, days.UpdateSlot)
	handle(r, api.PlannedSlotDeleteProcedure, days.DeleteSlot)

	exercises := NewExerciseService(store, logger)
	handle(r, api.ExerciseListProcedure, exercises.List)
	handle(r, api.ExerciseSeedProcedure, exercises.Seed)

	plans := NewWorkoutPlanService(store, logger)
	handle(r, api.WorkoutPlanListProcedure, plans.List)
	handle(r, api.WorkoutPlanGetByIDProcedure, plans.GetByID)
	handle(r, api.WorkoutPlanCreateProcedure, plans.Create)
	handle(r, api.WorkoutPlanUpdateProcedure, plans.Update)
	handle(r, api.WorkoutPlanDeleteProcedure, plans.Delete)
	handle(r, api.PlanExerciseAddProcedure, plans.AddExercise)
	handle(r, api.PlanExerciseUpdateProcedure, plans.UpdateExercise)
	handle(r, api.PlanExerciseRemoveProcedure, plans.RemoveExercise)
	handle(r, api.PlanExerciseReorderProcedure, plans.ReorderExercises)

	sessions := NewSessionService(store, logger)
	handle(r, api.SessionStartProcedure, sessions.Start)
	handle(r, api.SessionGetByIDProcedure, sessions.GetByID)
	handle(r, api.SessionCompleteProcedure, sessions.Complete)
	handle(r, api.SessionAbandonProcedure, sessions.Abandon)
	handle(r, api.SessionListByPlanProcedure, sessions.ListByPlan)
	handle(r, api.SessionGetActiveProcedure, sessions.GetActive)
	handle(r, api.SessionListHistoryProcedure, sessions.ListHistory)
	handle(r, api.SessionProgressProcedure, sessions.Progress)
	handle(r, api.SessionDetailProcedure, sessions.Detail)
	handle(r, api.SetLogProcedure, sessions.LogSet)
	handle(r, api.SetUpdateProcedure, sessions.UpdateSet)
	handle(r, api.SetDeleteProcedure, sessions.DeleteSet)

	stats := NewStatsService(store, logger)
	handle(r, api.StatsWeightProgressionProcedure, stats.WeightProgression)
	handle(r, api.StatsVolumeOverTimeProcedure, stats.VolumeOverTime)
	handle(r, api.StatsExerciseSummaryProcedure, stats.ExerciseSummary)
}
