package api

// Request validation uses go-playground/validator struct tags and runs before
// any handler.

// Empty is the request or response of procedures without fields.
type Empty struct{}

// IDRequest addresses one row.
type IDRequest struct {
	ID string `json:"id" validate:"required"`
}

// Health

type CheckResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Auth

type RegisterRequest struct {
	Email       string `json:"email" validate:"required"`
	DisplayName string `json:"displayName" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse answers Register and Login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type MeResponse struct {
	User *User `json:"user"`
}

// Categories

type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon" validate:"required"`
	Color string `json:"color" validate:"required"`
}

type UpdateCategoryRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Icon  string `json:"icon" validate:"required"`
	Color string `json:"color" validate:"required"`
}

type CategoryResponse struct {
	Category *Category `json:"category"`
}

type CreateSubcategoryRequest struct {
	Name       string  `json:"name" validate:"required"`
	CategoryID string  `json:"categoryId" validate:"required"`
	ModuleType *string `json:"moduleType"`
}

type UpdateSubcategoryRequest struct {
	ID         string  `json:"id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	ModuleType *string `json:"moduleType"`
}

type SubcategoryResponse struct {
	Subcategory *Subcategory `json:"subcategory"`
}

// Templates

type ListDayTemplatesResponse struct {
	Templates []DayTemplate `json:"templates"`
}

type CreateDayTemplateRequest struct {
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required"`
}

type UpdateDayTemplateRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Color string `json:"color" validate:"required"`
}

type DayTemplateResponse struct {
	Template *DayTemplate `json:"template"`
}

type CreateTemplateSlotRequest struct {
	TemplateID    string `json:"templateId" validate:"required"`
	StartTime     string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime       string `json:"endTime" validate:"required,datetime=15:04"`
	SubcategoryID string `json:"subcategoryId" validate:"required"`
	Order         int    `json:"order" validate:"min=0"`
}

type UpdateTemplateSlotRequest struct {
	ID            string `json:"id" validate:"required"`
	StartTime     string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime       string `json:"endTime" validate:"required,datetime=15:04"`
	SubcategoryID string `json:"subcategoryId" validate:"required"`
	Order         int    `json:"order" validate:"min=0"`
}

type TemplateSlotResponse struct {
	Slot *TemplateSlot `json:"slot"`
}

// OrderItem moves one row to Order.
type OrderItem struct {
	ID    string `json:"id" validate:"required"`
	Order int    `json:"order" validate:"min=0"`
}

type ReorderRequest struct {
	Items []OrderItem `json:"items" validate:"required,dive"`
}

type ListRecurrencesResponse struct {
	Recurrences []Recurrence `json:"recurrences"`
}

type SetRecurrenceRequest struct {
	TemplateID string `json:"templateId" validate:"required"`
	DayOfWeek  int    `json:"dayOfWeek" validate:"min=0,max=6"`
}

type UnsetRecurrenceRequest struct {
	DayOfWeek int `json:"dayOfWeek" validate:"min=0,max=6"`
}

type RecurrenceResponse struct {
	Recurrence *Recurrence `json:"recurrence"`
}

// Planned days

type GetRangeRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// GetWeekRequest selects a week either by ISO week or by any date in it.
type GetWeekRequest struct {
	// Week is an ISO week such as "2026-W06".
	Week string `json:"week" validate:"required_without=Date"`
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type GetMonthRequest struct {
	Month string `json:"month" validate:"required,datetime=2006-01"`
}

type PlannedDaysResponse struct {
	Days []PlannedDay `json:"days"`
}

type TimelineRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`

	// NowMinutes is the current time as minutes since midnight.
	NowMinutes int `json:"nowMinutes" validate:"min=0,max=1439"`
}

type TimelineSlot struct {
	Slot     PlannedSlot `json:"slot"`
	Status   string      `json:"status"`
	Progress float64     `json:"progress"`
}

type TimelineResponse struct {
	Day         *PlannedDay    `json:"day"`
	Slots       []TimelineSlot `json:"slots"`
	ActiveIndex int            `json:"activeIndex"`
}

type ApplyTemplateRequest struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	TemplateID string `json:"templateId" validate:"required"`
}

type ClearDayRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type PlannedDayResponse struct {
	Day *PlannedDay `json:"day"`
}

type CreatePlannedSlotRequest struct {
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime     string  `json:"startTime" validate:"required,datetime=15:04"`
	EndTime       string  `json:"endTime" validate:"required,datetime=15:04"`
	SubcategoryID string  `json:"subcategoryId" validate:"required"`
	Order         int     `json:"order" validate:"min=0"`
	WorkoutPlanID *string `json:"workoutPlanId"`
}

type UpdatePlannedSlotRequest struct {
	ID            string  `json:"id" validate:"required"`
	StartTime     string  `json:"startTime" validate:"required,datetime=15:04"`
	EndTime       string  `json:"endTime" validate:"required,datetime=15:04"`
	SubcategoryID string  `json:"subcategoryId" validate:"required"`
	Order         int     `json:"order" validate:"min=0"`
	WorkoutPlanID *string `json:"workoutPlanId"`
}

type PlannedSlotResponse struct {
	Slot *PlannedSlot `json:"slot"`
}

// Exercises

type ListExercisesRequest struct {
	MuscleGroup string `json:"muscleGroup"`
	Equipment   string `json:"equipment"`
	Search      string `json:"search"`
}

type ListExercisesResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type SeedExercisesResponse struct {
	Count int `json:"count"`
}

// Workout plans

type ListWorkoutPlansResponse struct {
	Plans []WorkoutPlan `json:"plans"`
}

type CreateWorkoutPlanRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateWorkoutPlanRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type WorkoutPlanResponse struct {
	Plan *WorkoutPlan `json:"plan"`
}

// AddPlanExerciseRequest adds an exercise to a plan. Omitted targets default
// to 3 sets of 10 reps at 0 kg with 90 s of rest.
type AddPlanExerciseRequest struct {
	WorkoutPlanID      string   `json:"workoutPlanId" validate:"required"`
	ExerciseID         string   `json:"exerciseId" validate:"required"`
	Order              int      `json:"order" validate:"min=0"`
	PlannedSets        *int     `json:"plannedSets" validate:"omitempty,min=1"`
	PlannedReps        *int     `json:"plannedReps" validate:"omitempty,min=1"`
	PlannedWeight      *float64 `json:"plannedWeight" validate:"omitempty,min=0"`
	PlannedRestSeconds *int     `json:"plannedRestSeconds" validate:"omitempty,min=0"`
}

type UpdatePlanExerciseRequest struct {
	ID                 string  `json:"id" validate:"required"`
	PlannedSets        int     `json:"plannedSets" validate:"min=1"`
	PlannedReps        int     `json:"plannedReps" validate:"min=1"`
	PlannedWeight      float64 `json:"plannedWeight" validate:"min=0"`
	PlannedRestSeconds int     `json:"plannedRestSeconds" validate:"min=0"`
}

type PlanExerciseResponse struct {
	Exercise *WorkoutPlanExercise `json:"exercise"`
}

// Sessions

type StartSessionRequest struct {
	WorkoutPlanID string  `json:"workoutPlanId" validate:"required"`
	PlannedSlotID *string `json:"plannedSlotId"`
}

type CompleteSessionRequest struct {
	ID    string  `json:"id" validate:"required"`
	Notes *string `json:"notes"`
}

type ListByPlanRequest struct {
	WorkoutPlanID string `json:"workoutPlanId" validate:"required"`
}

type ListHistoryRequest struct {
	// Limit caps the returned sessions, 0 for no limit.
	Limit      int    `json:"limit" validate:"min=0,max=100"`
	ExerciseID string `json:"exerciseId"`
}

type SessionResponse struct {
	// Session is null when GetActive finds no session in progress.
	Session *WorkoutSession `json:"session"`
}

type SessionsResponse struct {
	Sessions []WorkoutSession `json:"sessions"`

	// Total counts matching sessions regardless of the limit.
	Total int `json:"total"`
}

type ExerciseProgress struct {
	WorkoutPlanExerciseID string `json:"workoutPlanExerciseId"`
	ExerciseName          string `json:"exerciseName"`
	SetsDone              int    `json:"setsDone"`
	PlannedSets           int    `json:"plannedSets"`
	Complete              bool   `json:"complete"`
	NextSetNumber         int    `json:"nextSetNumber"`
	RestLabel             string `json:"restLabel"`
}

type WeightDiff struct {
	WorkoutPlanExerciseID string    `json:"workoutPlanExerciseId"`
	ExerciseName          string    `json:"exerciseName"`
	PlannedWeight         float64   `json:"plannedWeight"`
	UsedWeights           []float64 `json:"usedWeights"`
}

type SessionSummary struct {
	Duration       string  `json:"duration"`
	TotalSets      int     `json:"totalSets"`
	TotalReps      int     `json:"totalReps"`
	TotalVolume    float64 `json:"totalVolume"`
	AverageFeeling float64 `json:"averageFeeling"`
	ExerciseCount  int     `json:"exerciseCount"`
}

type ProgressResponse struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`

	Exercises []ExerciseProgress `json:"exercises"`

	// CurrentIndex is the first exercise still missing sets.
	CurrentIndex  int            `json:"currentIndex"`
	FullyComplete bool           `json:"fullyComplete"`
	Summary       SessionSummary `json:"summary"`
	WeightDiffs   []WeightDiff   `json:"weightDiffs"`
}

// ExerciseSets holds the sets of one exercise within a session, in logged
// order.
type ExerciseSets struct {
	ExerciseID   string       `json:"exerciseId"`
	ExerciseName string       `json:"exerciseName"`
	Sets         []WorkoutSet `json:"sets"`
}

type SessionDetailResponse struct {
	Session   *WorkoutSession `json:"session"`
	Exercises []ExerciseSets  `json:"exercises"`
	Summary   SessionSummary  `json:"summary"`
}

// Sets

type LogSetRequest struct {
	SessionID             string  `json:"sessionId" validate:"required"`
	ExerciseID            string  `json:"exerciseId" validate:"required"`
	WorkoutPlanExerciseID string  `json:"workoutPlanExerciseId" validate:"required"`
	SetNumber             int     `json:"setNumber" validate:"min=1"`
	Reps                  int     `json:"reps" validate:"min=0"`
	Weight                float64 `json:"weight" validate:"min=0"`
	Feeling               int     `json:"feeling" validate:"min=1,max=5"`
}

type UpdateSetRequest struct {
	ID      string  `json:"id" validate:"required"`
	Reps    int     `json:"reps" validate:"min=0"`
	Weight  float64 `json:"weight" validate:"min=0"`
	Feeling int     `json:"feeling" validate:"min=1,max=5"`
}

type SetResponse struct {
	Set *WorkoutSet `json:"set"`
}

// Stats

type ExerciseStatsRequest struct {
	ExerciseID string `json:"exerciseId" validate:"required"`
}

type VolumeOverTimeRequest struct {
	// ExerciseID restricts the volume to one exercise when set.
	ExerciseID string `json:"exerciseId"`
}

type WeightPoint struct {
	Date      int64   `json:"date"`
	MaxWeight float64 `json:"maxWeight"`
	SessionID string  `json:"sessionId"`
}

type WeightProgressionResponse struct {
	Points []WeightPoint `json:"points"`
}

type VolumePoint struct {
	Date      int64   `json:"date"`
	Volume    float64 `json:"volume"`
	SessionID string  `json:"sessionId"`
}

type VolumeOverTimeResponse struct {
	Points []VolumePoint `json:"points"`
}

type ExerciseSummaryResponse struct {
	TotalSessions int     `json:"totalSessions"`
	TotalSets     int     `json:"totalSets"`
	BestWeight    float64 `json:"bestWeight"`
	BestVolume    float64 `json:"bestVolume"`
	LastWeight    float64 `json:"lastWeight"`
	LastDate      *int64  `json:"lastDate"`
}
