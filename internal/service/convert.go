package service

import (
	"time"

	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/workout"
	"github.com/mmynk/dayplanner/pkg/api"
)

func millis(t time.Time) int64 {
	return t.UnixMilli()
}

func millisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   time.Unix(u.CreatedAt, 0).UnixMilli(),
	}
}

func toAPICategory(c *models.Category) *api.Category {
	out := &api.Category{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		IsDefault: c.IsDefault,
		CreatedAt: millis(c.CreatedAt),
	}
	for i := range c.Subcategories {
		out.Subcategories = append(out.Subcategories, *toAPISubcategory(&c.Subcategories[i]))
	}
	return out
}

func toAPISubcategory(s *models.Subcategory) *api.Subcategory {
	out := &api.Subcategory{
		ID:         s.ID,
		Name:       s.Name,
		ModuleType: s.ModuleType,
		IsDefault:  s.IsDefault,
		CategoryID: s.CategoryID,
		CreatedAt:  millis(s.CreatedAt),
	}
	if s.Category != nil {
		out.Category = toAPICategory(s.Category)
	}
	return out
}

func toAPITemplate(t *models.DayTemplate) *api.DayTemplate {
	out := &api.DayTemplate{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: millis(t.CreatedAt),
	}
	for i := range t.Slots {
		out.Slots = append(out.Slots, *toAPITemplateSlot(&t.Slots[i]))
	}
	for i := range t.Recurrences {
		out.Recurrences = append(out.Recurrences, *toAPIRecurrence(&t.Recurrences[i]))
	}
	return out
}

func toAPITemplateSlot(s *models.TemplateSlot) *api.TemplateSlot {
	out := &api.TemplateSlot{
		ID:            s.ID,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Order:         s.Order,
		SubcategoryID: s.SubcategoryID,
		TemplateID:    s.TemplateID,
	}
	if s.Subcategory != nil {
		out.Subcategory = toAPISubcategory(s.Subcategory)
	}
	return out
}

func toAPIRecurrence(r *models.Recurrence) *api.Recurrence {
	out := &api.Recurrence{
		ID:         r.ID,
		DayOfWeek:  r.DayOfWeek,
		TemplateID: r.TemplateID,
	}
	if r.Template != nil {
		out.Template = toAPITemplate(r.Template)
	}
	return out
}

func toAPIPlannedDay(d *models.PlannedDay) *api.PlannedDay {
	out := &api.PlannedDay{
		ID:         d.ID,
		Date:       d.Date,
		TemplateID: d.TemplateID,
		Slots:      make([]api.PlannedSlot, 0, len(d.Slots)),
	}
	if d.Template != nil {
		out.Template = toAPITemplate(d.Template)
	}
	for i := range d.Slots {
		out.Slots = append(out.Slots, *toAPIPlannedSlot(&d.Slots[i]))
	}
	return out
}

func toAPIPlannedDays(days []models.PlannedDay) []api.PlannedDay {
	out := make([]api.PlannedDay, 0, len(days))
	for i := range days {
		out = append(out, *toAPIPlannedDay(&days[i]))
	}
	return out
}

func toAPIPlannedSlot(s *models.PlannedSlot) *api.PlannedSlot {
	out := &api.PlannedSlot{
		ID:             s.ID,
		StartTime:      s.StartTime,
		EndTime:        s.EndTime,
		Order:          s.Order,
		SubcategoryID:  s.SubcategoryID,
		PlannedDayID:   s.PlannedDayID,
		TemplateSlotID: s.TemplateSlotID,
		WorkoutPlanID:  s.WorkoutPlanID,
	}
	if s.Subcategory != nil {
		out.Subcategory = toAPISubcategory(s.Subcategory)
	}
	return out
}

func toAPIExercise(e *models.Exercise) *api.Exercise {
	return &api.Exercise{
		ID:          e.ID,
		Name:        e.Name,
		MuscleGroup: e.MuscleGroup,
		Equipment:   e.Equipment,
		Description: e.Description,
		ImageURL:    e.ImageURL,
	}
}

func toAPIPlan(p *models.WorkoutPlan) *api.WorkoutPlan {
	out := &api.WorkoutPlan{
		ID:            p.ID,
		Name:          p.Name,
		CreatedAt:     millis(p.CreatedAt),
		ExerciseCount: p.ExerciseCount,
	}
	for i := range p.Exercises {
		out.Exercises = append(out.Exercises, *toAPIPlanExercise(&p.Exercises[i]))
	}
	return out
}

func toAPIPlanExercise(pe *models.WorkoutPlanExercise) *api.WorkoutPlanExercise {
	out := &api.WorkoutPlanExercise{
		ID:                 pe.ID,
		Order:              pe.Order,
		PlannedSets:        pe.PlannedSets,
		PlannedReps:        pe.PlannedReps,
		PlannedWeight:      pe.PlannedWeight,
		PlannedRestSeconds: pe.PlannedRestSeconds,
		ExerciseID:         pe.ExerciseID,
		WorkoutPlanID:      pe.WorkoutPlanID,
	}
	if pe.Exercise != nil {
		out.Exercise = toAPIExercise(pe.Exercise)
	}
	return out
}

func toAPISession(s *models.WorkoutSession) *api.WorkoutSession {
	out := &api.WorkoutSession{
		ID:            s.ID,
		Status:        string(s.Status),
		StartedAt:     millis(s.StartedAt),
		CompletedAt:   millisPtr(s.CompletedAt),
		Notes:         s.Notes,
		WorkoutPlanID: s.WorkoutPlanID,
		PlannedSlotID: s.PlannedSlotID,
		Sets:          make([]api.WorkoutSet, 0, len(s.Sets)),
	}
	if s.WorkoutPlan != nil {
		out.WorkoutPlan = toAPIPlan(s.WorkoutPlan)
	}
	for i := range s.Sets {
		out.Sets = append(out.Sets, *toAPISet(&s.Sets[i]))
	}
	return out
}

func toAPISessions(sessions []models.WorkoutSession) []api.WorkoutSession {
	out := make([]api.WorkoutSession, 0, len(sessions))
	for i := range sessions {
		out = append(out, *toAPISession(&sessions[i]))
	}
	return out
}

func toAPISet(s *models.WorkoutSet) *api.WorkoutSet {
	out := &api.WorkoutSet{
		ID:                    s.ID,
		SetNumber:             s.SetNumber,
		Reps:                  s.Reps,
		Weight:                s.Weight,
		Feeling:               s.Feeling,
		ExerciseID:            s.ExerciseID,
		WorkoutPlanExerciseID: s.WorkoutPlanExerciseID,
		SessionID:             s.SessionID,
		CompletedAt:           millis(s.CompletedAt),
	}
	if s.Exercise != nil {
		out.Exercise = toAPIExercise(s.Exercise)
	}
	return out
}

func toAPISummary(s workout.Summary) api.SessionSummary {
	return api.SessionSummary{
		Duration:       s.Duration,
		TotalSets:      s.TotalSets,
		TotalReps:      s.TotalReps,
		TotalVolume:    s.TotalVolume,
		AverageFeeling: s.AverageFeeling,
		ExerciseCount:  s.ExerciseCount,
	}
}
