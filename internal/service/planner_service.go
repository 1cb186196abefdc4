package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dayplanner/internal/calendar"
	"github.com/mmynk/dayplanner/internal/middleware"
	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/planner"
	"github.com/mmynk/dayplanner/internal/storage"
	"github.com/mmynk/dayplanner/pkg/api"
)

// PlannerService serves planned days, materializing them on read, and their
// slots.
type PlannerService struct {
	planner *planner.Planner
	store   storage.PlannerStore
	logger  *slog.Logger
}

func NewPlannerService(p *planner.Planner, store storage.PlannerStore, logger *slog.Logger) *PlannerService {
	return &PlannerService{planner: p, store: store, logger: logger}
}

// GetRange returns one planned day per date of the inclusive range.
func (s *PlannerService) GetRange(ctx context.Context, req *connect.Request[api.GetRangeRequest]) (*connect.Response[api.PlannedDaysResponse], error) {
	days, err := s.planner.GetRange(ctx, middleware.GetUserID(ctx), req.Msg.StartDate, req.Msg.EndDate)
	if err != nil {
		s.logger.Warn("GetRange failed", "start", req.Msg.StartDate, "end", req.Msg.EndDate, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PlannedDaysResponse{Days: toAPIPlannedDays(days)}), nil
}

// GetWeek returns a Monday..Sunday week. Week wins over Date when both are set.
func (s *PlannerService) GetWeek(ctx context.Context, req *connect.Request[api.GetWeekRequest]) (*connect.Response[api.PlannedDaysResponse], error) {
	userID := middleware.GetUserID(ctx)
	var (
		days []models.PlannedDay
		err  error
	)
	if req.Msg.Week != "" {
		days, err = s.planner.GetWeek(ctx, userID, req.Msg.Week)
	} else {
		days, err = s.planner.GetWeekOf(ctx, userID, req.Msg.Date)
	}
	if err != nil {
		s.logger.Warn("GetWeek failed", "week", req.Msg.Week, "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PlannedDaysResponse{Days: toAPIPlannedDays(days)}), nil
}

func (s *PlannerService) GetMonth(ctx context.Context, req *connect.Request[api.GetMonthRequest]) (*connect.Response[api.PlannedDaysResponse], error) {
	days, err := s.planner.GetMonth(ctx, middleware.GetUserID(ctx), req.Msg.Month)
	if err != nil {
		s.logger.Warn("GetMonth failed", "month", req.Msg.Month, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PlannedDaysResponse{Days: toAPIPlannedDays(days)}), nil
}

// Timeline returns a day with the status of each slot at NowMinutes.
func (s *PlannerService) Timeline(ctx context.Context, req *connect.Request[api.TimelineRequest]) (*connect.Response[api.TimelineResponse], error) {
	tl, err := s.planner.Timeline(ctx, middleware.GetUserID(ctx), req.Msg.Date, req.Msg.NowMinutes)
	if err != nil {
		s.logger.Warn("Timeline failed", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.TimelineResponse{
		Day:         toAPIPlannedDay(&tl.Day),
		Slots:       make([]api.TimelineSlot, 0, len(tl.Slots)),
		ActiveIndex: tl.ActiveIndex,
	}
	for i := range tl.Slots {
		resp.Slots = append(resp.Slots, api.TimelineSlot{
			Slot:     *toAPIPlannedSlot(&tl.Slots[i].Slot),
			Status:   string(tl.Slots[i].Status),
			Progress: tl.Slots[i].Progress,
		})
	}
	return connect.NewResponse(resp), nil
}

// ApplyTemplate replaces the slots of a day with those of a template.
func (s *PlannerService) ApplyTemplate(ctx context.Context, req *connect.Request[api.ApplyTemplateRequest]) (*connect.Response[api.PlannedDayResponse], error) {
	userID := middleware.GetUserID(ctx)
	if err := s.planner.ApplyTemplate(ctx, userID, req.Msg.Date, req.Msg.TemplateID); err != nil {
		s.logger.Warn("ApplyTemplate failed", "date", req.Msg.Date, "template_id", req.Msg.TemplateID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Template applied", "date", req.Msg.Date, "template_id", req.Msg.TemplateID)
	return s.day(ctx, userID, req.Msg.Date)
}

// ClearDay empties a day.
func (s *PlannerService) ClearDay(ctx context.Context, req *connect.Request[api.ClearDayRequest]) (*connect.Response[api.PlannedDayResponse], error) {
	userID := middleware.GetUserID(ctx)
	if err := s.planner.ClearDay(ctx, userID, req.Msg.Date); err != nil {
		s.logger.Error("ClearDay failed", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}
	return s.day(ctx, userID, req.Msg.Date)
}

func (s *PlannerService) day(ctx context.Context, userID, date string) (*connect.Response[api.PlannedDayResponse], error) {
	days, err := s.planner.GetRange(ctx, userID, date, date)
	if err != nil {
		return nil, toConnectError(err)
	}
	if len(days) != 1 {
		return nil, connect.NewError(connect.CodeInternal, fmt.Errorf("expected one day for %s, got %d", date, len(days)))
	}
	return connect.NewResponse(&api.PlannedDayResponse{Day: toAPIPlannedDay(&days[0])}), nil
}

// CreateSlot adds a slot to the day of Date, creating the day when needed.
func (s *PlannerService) CreateSlot(ctx context.Context, req *connect.Request[api.CreatePlannedSlotRequest]) (*connect.Response[api.PlannedSlotResponse], error) {
	if err := calendar.ValidateSlotTimes(req.Msg.StartTime, req.Msg.EndTime); err != nil {
		return nil, toConnectError(fmt.Errorf("%w: %v", errInvalid, err))
	}

	slot := &models.PlannedSlot{
		StartTime:     req.Msg.StartTime,
		EndTime:       req.Msg.EndTime,
		Order:         req.Msg.Order,
		SubcategoryID: req.Msg.SubcategoryID,
		WorkoutPlanID: optionalID(req.Msg.WorkoutPlanID),
		UserID:        middleware.GetUserID(ctx),
	}
	if err := s.store.CreatePlannedSlot(ctx, req.Msg.Date, slot); err != nil {
		s.logger.Warn("CreatePlannedSlot failed", "date", req.Msg.Date, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Planned slot created", "slot_id", slot.ID, "date", req.Msg.Date)
	return connect.NewResponse(&api.PlannedSlotResponse{Slot: toAPIPlannedSlot(slot)}), nil
}

// UpdateSlot overwrites a slot and detaches it from its template slot.
func (s *PlannerService) UpdateSlot(ctx context.Context, req *connect.Request[api.UpdatePlannedSlotRequest]) (*connect.Response[api.PlannedSlotResponse], error) {
	if err := calendar.ValidateSlotTimes(req.Msg.StartTime, req.Msg.EndTime); err != nil {
		return nil, toConnectError(fmt.Errorf("%w: %v", errInvalid, err))
	}

	slot := &models.PlannedSlot{
		ID:            req.Msg.ID,
		StartTime:     req.Msg.StartTime,
		EndTime:       req.Msg.EndTime,
		Order:         req.Msg.Order,
		SubcategoryID: req.Msg.SubcategoryID,
		WorkoutPlanID: optionalID(req.Msg.WorkoutPlanID),
		UserID:        middleware.GetUserID(ctx),
	}
	if err := s.store.UpdatePlannedSlot(ctx, slot); err != nil {
		s.logger.Warn("UpdatePlannedSlot failed", "slot_id", slot.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.PlannedSlotResponse{Slot: toAPIPlannedSlot(slot)}), nil
}

func (s *PlannerService) DeleteSlot(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.store.DeletePlannedSlot(ctx, middleware.GetUserID(ctx), req.Msg.ID); err != nil {
		s.logger.Error("DeletePlannedSlot failed", "slot_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

// optionalID treats an empty string as absent.
func optionalID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
