package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/dayplanner/internal/calendar"
	"github.com/mmynk/dayplanner/internal/middleware"
	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/storage"
	"github.com/mmynk/dayplanner/pkg/api"
)

// TemplateService manages day templates, their slots and the weekday
// recurrence map.
type TemplateService struct {
	store  storage.TemplateStore
	logger *slog.Logger
}

func NewTemplateService(store storage.TemplateStore, logger *slog.Logger) *TemplateService {
	return &TemplateService{store: store, logger: logger}
}

func (s *TemplateService) List(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.ListDayTemplatesResponse], error) {
	templates, err := s.store.ListDayTemplates(ctx, middleware.GetUserID(ctx))
	if err != nil {
		s.logger.Error("ListDayTemplates failed", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListDayTemplatesResponse{Templates: make([]api.DayTemplate, 0, len(templates))}
	for i := range templates {
		resp.Templates = append(resp.Templates, *toAPITemplate(&templates[i]))
	}
	return connect.NewResponse(resp), nil
}

func (s *TemplateService) GetByID(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.DayTemplateResponse], error) {
	tpl, err := s.store.GetDayTemplate(ctx, middleware.GetUserID(ctx), req.Msg.ID)
	if err != nil {
		s.logger.Warn("GetDayTemplate failed", "template_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.DayTemplateResponse{Template: toAPITemplate(tpl)}), nil
}

func (s *TemplateService) Create(ctx context.Context, req *connect.Request[api.CreateDayTemplateRequest]) (*connect.Response[api.DayTemplateResponse], error) {
	tpl := &models.DayTemplate{
		Name:   req.Msg.Name,
		Color:  req.Msg.Color,
		UserID: middleware.GetUserID(ctx),
	}
	if err := s.store.CreateDayTemplate(ctx, tpl); err != nil {
		s.logger.Error("CreateDayTemplate failed", "name", tpl.Name, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Day template created", "template_id", tpl.ID)
	return connect.NewResponse(&api.DayTemplateResponse{Template: toAPITemplate(tpl)}), nil
}

func (s *TemplateService) Update(ctx context.Context, req *connect.Request[api.UpdateDayTemplateRequest]) (*connect.Response[api.DayTemplateResponse], error) {
	tpl := &models.DayTemplate{
		ID:     req.Msg.ID,
		Name:   req.Msg.Name,
		Color:  req.Msg.Color,
		UserID: middleware.GetUserID(ctx),
	}
	if err := s.store.UpdateDayTemplate(ctx, tpl); err != nil {
		s.logger.Error("UpdateDayTemplate failed", "template_id", tpl.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.DayTemplateResponse{Template: toAPITemplate(tpl)}), nil
}

// Delete removes a template with its slots and recurrences. Planned days
// generated from it keep their slots.
func (s *TemplateService) Delete(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.store.DeleteDayTemplate(ctx, middleware.GetUserID(ctx), req.Msg.ID); err != nil {
		s.logger.Error("DeleteDayTemplate failed", "template_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Day template deleted", "template_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *TemplateService) CreateSlot(ctx context.Context, req *connect.Request[api.CreateTemplateSlotRequest]) (*connect.Response[api.TemplateSlotResponse], error) {
	if err := calendar.ValidateSlotTimes(req.Msg.StartTime, req.Msg.EndTime); err != nil {
		return nil, toConnectError(fmt.Errorf("%w: %v", errInvalid, err))
	}

	slot := &models.TemplateSlot{
		StartTime:     req.Msg.StartTime,
		EndTime:       req.Msg.EndTime,
		Order:         req.Msg.Order,
		SubcategoryID: req.Msg.SubcategoryID,
		TemplateID:    req.Msg.TemplateID,
		UserID:        middleware.GetUserID(ctx),
	}
	if err := s.store.CreateTemplateSlot(ctx, slot); err != nil {
		s.logger.Warn("CreateTemplateSlot failed", "template_id", slot.TemplateID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.TemplateSlotResponse{Slot: toAPITemplateSlot(slot)}), nil
}

func (s *TemplateService) UpdateSlot(ctx context.Context, req *connect.Request[api.UpdateTemplateSlotRequest]) (*connect.Response[api.TemplateSlotResponse], error) {
	if err := calendar.ValidateSlotTimes(req.Msg.StartTime, req.Msg.EndTime); err != nil {
		return nil, toConnectError(fmt.Errorf("%w: %v", errInvalid, err))
	}

	slot := &models.TemplateSlot{
		ID:            req.Msg.ID,
		StartTime:     req.Msg.StartTime,
		EndTime:       req.Msg.EndTime,
		Order:         req.Msg.Order,
		SubcategoryID: req.Msg.SubcategoryID,
		UserID:        middleware.GetUserID(ctx),
	}
	if err := s.store.UpdateTemplateSlot(ctx, slot); err != nil {
		s.logger.Warn("UpdateTemplateSlot failed", "slot_id", slot.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.TemplateSlotResponse{Slot: toAPITemplateSlot(slot)}), nil
}

func (s *TemplateService) DeleteSlot(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.store.DeleteTemplateSlot(ctx, middleware.GetUserID(ctx), req.Msg.ID); err != nil {
		s.logger.Error("DeleteTemplateSlot failed", "slot_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

// ReorderSlots writes the new position of every listed slot.
func (s *TemplateService) ReorderSlots(ctx context.Context, req *connect.Request[api.ReorderRequest]) (*connect.Response[api.Empty], error) {
	userID := middleware.GetUserID(ctx)
	if err := reorder(ctx, req.Msg.Items, func(ctx context.Context, u models.OrderUpdate) error {
		return s.store.SetTemplateSlotOrder(ctx, userID, u)
	}); err != nil {
		s.logger.Error("ReorderSlots failed", "count", len(req.Msg.Items), "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *TemplateService) ListRecurrences(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.ListRecurrencesResponse], error) {
	recurrences, err := s.store.ListRecurrences(ctx, middleware.GetUserID(ctx))
	if err != nil {
		s.logger.Error("ListRecurrences failed", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListRecurrencesResponse{Recurrences: make([]api.Recurrence, 0, len(recurrences))}
	for i := range recurrences {
		resp.Recurrences = append(resp.Recurrences, *toAPIRecurrence(&recurrences[i]))
	}
	return connect.NewResponse(resp), nil
}

// SetRecurrence assigns a template to a weekday, replacing any previous
// assignment of that weekday. Days already materialized are not affected.
func (s *TemplateService) SetRecurrence(ctx context.Context, req *connect.Request[api.SetRecurrenceRequest]) (*connect.Response[api.RecurrenceResponse], error) {
	rec := &models.Recurrence{
		DayOfWeek:  req.Msg.DayOfWeek,
		TemplateID: req.Msg.TemplateID,
		UserID:     middleware.GetUserID(ctx),
	}
	if err := s.store.SetRecurrence(ctx, rec); err != nil {
		s.logger.Warn("SetRecurrence failed", "day_of_week", rec.DayOfWeek, "template_id", rec.TemplateID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Recurrence set", "day_of_week", rec.DayOfWeek, "template_id", rec.TemplateID)
	return connect.NewResponse(&api.RecurrenceResponse{Recurrence: toAPIRecurrence(rec)}), nil
}

func (s *TemplateService) UnsetRecurrence(ctx context.Context, req *connect.Request[api.UnsetRecurrenceRequest]) (*connect.Response[api.Empty], error) {
	if err := s.store.UnsetRecurrence(ctx, middleware.GetUserID(ctx), req.Msg.DayOfWeek); err != nil {
		s.logger.Error("UnsetRecurrence failed", "day_of_week", req.Msg.DayOfWeek, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

// reorder applies the updates concurrently. Each targets a distinct row.
func reorder(ctx context.Context, items []api.OrderItem, apply func(context.Context, models.OrderUpdate) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, item := range items {
		g.Go(func() error {
			return apply(ctx, models.OrderUpdate{ID: item.ID, Order: item.Order})
		})
	}
	return g.Wait()
}
