package api

// PathPrefix starts every RPC path.
const PathPrefix = "/dayplanner.v1."

const (
	HealthCheckProcedure = PathPrefix + "HealthService/Check"

	AuthRegisterProcedure = PathPrefix + "AuthService/Register"
	AuthLoginProcedure    = PathPrefix + "AuthService/Login"
	AuthMeProcedure       = PathPrefix + "AuthService/Me"

	CategoryListProcedure   = PathPrefix + "CategoryService/List"
	CategoryCreateProcedure = PathPrefix + "CategoryService/Create"
	CategoryUpdateProcedure = PathPrefix + "CategoryService/Update"
	CategoryDeleteProcedure = PathPrefix + "CategoryService/Delete"

	SubcategoryCreateProcedure = PathPrefix + "SubcategoryService/Create"
	SubcategoryUpdateProcedure = PathPrefix + "SubcategoryService/Update"
	SubcategoryDeleteProcedure = PathPrefix + "SubcategoryService/Delete"

	DayTemplateListProcedure    = PathPrefix + "DayTemplateService/List"
	DayTemplateGetByIDProcedure = PathPrefix + "DayTemplateService/GetByID"
	DayTemplateCreateProcedure  = PathPrefix + "DayTemplateService/Create"
	DayTemplateUpdateProcedure  = PathPrefix + "DayTemplateService/Update"
	DayTemplateDeleteProcedure  = PathPrefix + "DayTemplateService/Delete"

	TemplateSlotCreateProcedure  = PathPrefix + "TemplateSlotService/Create"
	TemplateSlotUpdateProcedure  = PathPrefix + "TemplateSlotService/Update"
	TemplateSlotDeleteProcedure  = PathPrefix + "TemplateSlotService/Delete"
	TemplateSlotReorderProcedure = PathPrefix + "TemplateSlotService/Reorder"

	RecurrenceListProcedure  = PathPrefix + "TemplateRecurrenceService/List"
	RecurrenceSetProcedure   = PathPrefix + "TemplateRecurrenceService/Set"
	RecurrenceUnsetProcedure = PathPrefix + "TemplateRecurrenceService/Unset"

	PlannedDayGetRangeProcedure      = PathPrefix + "PlannedDayService/GetRange"
	PlannedDayGetWeekProcedure       = PathPrefix + "PlannedDayService/GetWeek"
	PlannedDayGetMonthProcedure      = PathPrefix + "PlannedDayService/GetMonth"
	PlannedDayTimelineProcedure      = PathPrefix + "PlannedDayService/Timeline"
	PlannedDayApplyTemplateProcedure = PathPrefix + "PlannedDayService/ApplyTemplate"
	PlannedDayClearDayProcedure      = PathPrefix + "PlannedDayService/ClearDay"

	PlannedSlotCreateProcedure = PathPrefix + "PlannedSlotService/Create"
	PlannedSlotUpdateProcedure = PathPrefix + "PlannedSlotService/Update"
	PlannedSlotDeleteProcedure = PathPrefix + "PlannedSlotService/Delete"

	ExerciseListProcedure = PathPrefix + "ExerciseService/List"
	ExerciseSeedProcedure = PathPrefix + "ExerciseService/Seed"

	WorkoutPlanListProcedure    = PathPrefix + "WorkoutPlanService/List"
	WorkoutPlanGetByIDProcedure = PathPrefix + "WorkoutPlanService/GetByID"
	WorkoutPlanCreateProcedure  = PathPrefix + "WorkoutPlanService/Create"
	WorkoutPlanUpdateProcedure  = PathPrefix + "WorkoutPlanService/Update"
	WorkoutPlanDeleteProcedure  = PathPrefix + "WorkoutPlanService/Delete"

	PlanExerciseAddProcedure     = PathPrefix + "WorkoutPlanExerciseService/Add"
	PlanExerciseUpdateProcedure  = PathPrefix + "WorkoutPlanExerciseService/Update"
	PlanExerciseRemoveProcedure  = PathPrefix + "WorkoutPlanExerciseService/Remove"
	PlanExerciseReorderProcedure = PathPrefix + "WorkoutPlanExerciseService/Reorder"

	SessionStartProcedure       = PathPrefix + "WorkoutSessionService/Start"
	SessionGetByIDProcedure     = PathPrefix + "WorkoutSessionService/GetByID"
	SessionCompleteProcedure    = PathPrefix + "WorkoutSessionService/Complete"
	SessionAbandonProcedure     = PathPrefix + "WorkoutSessionService/Abandon"
	SessionListByPlanProcedure  = PathPrefix + "WorkoutSessionService/ListByPlan"
	SessionGetActiveProcedure   = PathPrefix + "WorkoutSessionService/GetActive"
	SessionListHistoryProcedure = PathPrefix + "WorkoutSessionService/ListHistory"
	SessionProgressProcedure    = PathPrefix + "WorkoutSessionService/Progress"
	SessionDetailProcedure      = PathPrefix + "WorkoutSessionService/Detail"

	SetLogProcedure    = PathPrefix + "WorkoutSetService/Log"
	SetUpdateProcedure = PathPrefix + "WorkoutSetService/Update"
	SetDeleteProcedure = PathPrefix + "WorkoutSetService/Delete"

	StatsWeightProgressionProcedure = PathPrefix + "StatsService/WeightProgression"
	StatsVolumeOverTimeProcedure    = PathPrefix + "StatsService/VolumeOverTime"
	StatsExerciseSummaryProcedure   = PathPrefix + "StatsService/ExerciseSummary"
)
