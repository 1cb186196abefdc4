package api

// Timestamps are Unix milliseconds.

type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	CreatedAt   int64  `json:"createdAt"`
}

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	Color         string        `json:"color"`
	IsDefault     bool          `json:"isDefault"`
	CreatedAt     int64         `json:"createdAt"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

type Subcategory struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ModuleType *string   `json:"moduleType"`
	IsDefault  bool      `json:"isDefault"`
	CategoryID string    `json:"categoryId"`
	CreatedAt  int64     `json:"createdAt"`
	Category   *Category `json:"category,omitempty"`
}

type DayTemplate struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Color       string         `json:"color"`
	CreatedAt   int64          `json:"createdAt"`
	Slots       []TemplateSlot `json:"slots,omitempty"`
	Recurrences []Recurrence   `json:"recurrences,omitempty"`
}

type TemplateSlot struct {
	ID            string       `json:"id"`
	StartTime     string       `json:"startTime"`
	EndTime       string       `json:"endTime"`
	Order         int          `json:"order"`
	SubcategoryID string       `json:"subcategoryId"`
	TemplateID    string       `json:"templateId"`
	Subcategory   *Subcategory `json:"subcategory,omitempty"`
}

type Recurrence struct {
	ID         string       `json:"id"`
	DayOfWeek  int          `json:"dayOfWeek"`
	TemplateID string       `json:"templateId"`
	Template   *DayTemplate `json:"template,omitempty"`
}

type PlannedDay struct {
	ID         string        `json:"id"`
	Date       string        `json:"date"`
	TemplateID *string       `json:"templateId"`
	Template   *DayTemplate  `json:"template"`
	Slots      []PlannedSlot `json:"slots"`
}

type PlannedSlot struct {
	ID             string       `json:"id"`
	StartTime      string       `json:"startTime"`
	EndTime        string       `json:"endTime"`
	Order          int          `json:"order"`
	SubcategoryID  string       `json:"subcategoryId"`
	PlannedDayID   string       `json:"plannedDayId"`
	TemplateSlotID *string      `json:"templateSlotId"`
	WorkoutPlanID  *string      `json:"workoutPlanId"`
	Subcategory    *Subcategory `json:"subcategory,omitempty"`
}

type Exercise struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscleGroup"`
	Equipment   string  `json:"equipment"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

type WorkoutPlan struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	CreatedAt     int64                 `json:"createdAt"`
	ExerciseCount int                   `json:"exerciseCount"`
	Exercises     []WorkoutPlanExercise `json:"exercises,omitempty"`
}

type WorkoutPlanExercise struct {
	ID                 string    `json:"id"`
	Order              int       `json:"order"`
	PlannedSets        int       `json:"plannedSets"`
	PlannedReps        int       `json:"plannedReps"`
	PlannedWeight      float64   `json:"plannedWeight"`
	PlannedRestSeconds int       `json:"plannedRestSeconds"`
	ExerciseID         string    `json:"exerciseId"`
	WorkoutPlanID      string    `json:"workoutPlanId"`
	Exercise           *Exercise `json:"exercise,omitempty"`
}

type WorkoutSession struct {
	ID            string       `json:"id"`
	Status        string       `json:"status"`
	StartedAt     int64        `json:"startedAt"`
	CompletedAt   *int64       `json:"completedAt"`
	Notes         *string      `json:"notes"`
	WorkoutPlanID string       `json:"workoutPlanId"`
	PlannedSlotID *string      `json:"plannedSlotId"`
	WorkoutPlan   *WorkoutPlan `json:"workoutPlan,omitempty"`
	Sets          []WorkoutSet `json:"sets"`
}

type WorkoutSet struct {
	ID                    string    `json:"id"`
	SetNumber             int       `json:"setNumber"`
	Reps                  int       `json:"reps"`
	Weight                float64   `json:"weight"`
	Feeling               int       `json:"feeling"`
	ExerciseID            string    `json:"exerciseId"`
	WorkoutPlanExerciseID string    `json:"workoutPlanExerciseId,omitempty"`
	SessionID             string    `json:"sessionId"`
	CompletedAt           int64     `json:"completedAt"`
	Exercise              *Exercise `json:"exercise,omitempty"`
}
