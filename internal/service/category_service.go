package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/dayplanner/internal/middleware"
	"github.com/mmynk/dayplanner/internal/models"
	"github.com/mmynk/dayplanner/internal/storage"
	"github.com/mmynk/dayplanner/pkg/api"
)

// CategoryService manages categories and their subcategories.
type CategoryService struct {
	store  storage.CategoryStore
	logger *slog.Logger
}

func NewCategoryService(store storage.CategoryStore, logger *slog.Logger) *CategoryService {
	return &CategoryService{store: store, logger: logger}
}

// List returns the caller's categories with their subcategories.
func (s *CategoryService) List(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.ListCategoriesResponse], error) {
	categories, err := s.store.ListCategories(ctx, middleware.GetUserID(ctx))
	if err != nil {
		s.logger.Error("ListCategories failed", "error", err)
		return nil, toConnectError(err)
	}

	resp := &api.ListCategoriesResponse{Categories: make([]api.Category, 0, len(categories))}
	for i := range categories {
		resp.Categories = append(resp.Categories, *toAPICategory(&categories[i]))
	}
	return connect.NewResponse(resp), nil
}

func (s *CategoryService) Create(ctx context.Context, req *connect.Request[api.CreateCategoryRequest]) (*connect.Response[api.CategoryResponse], error) {
	cat := &models.Category{
		Name:   req.Msg.Name,
		Icon:   req.Msg.Icon,
		Color:  req.Msg.Color,
		UserID: middleware.GetUserID(ctx),
	}
	if err := s.store.CreateCategory(ctx, cat); err != nil {
		s.logger.Error("CreateCategory failed", "name", cat.Name, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Category created", "category_id", cat.ID)
	return connect.NewResponse(&api.CategoryResponse{Category: toAPICategory(cat)}), nil
}

func (s *CategoryService) Update(ctx context.Context, req *connect.Request[api.UpdateCategoryRequest]) (*connect.Response[api.CategoryResponse], error) {
	cat := &models.Category{
		ID:     req.Msg.ID,
		Name:   req.Msg.Name,
		Icon:   req.Msg.Icon,
		Color:  req.Msg.Color,
		UserID: middleware.GetUserID(ctx),
	}
	if err := s.store.UpdateCategory(ctx, cat); err != nil {
		s.logger.Error("UpdateCategory failed", "category_id", cat.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.CategoryResponse{Category: toAPICategory(cat)}), nil
}

// Delete removes a category and its subcategories. Default categories are
// protected.
func (s *CategoryService) Delete(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.store.DeleteCategory(ctx, middleware.GetUserID(ctx), req.Msg.ID); err != nil {
		s.logger.Warn("DeleteCategory failed", "category_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Category deleted", "category_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}

func (s *CategoryService) CreateSubcategory(ctx context.Context, req *connect.Request[api.CreateSubcategoryRequest]) (*connect.Response[api.SubcategoryResponse], error) {
	sub := &models.Subcategory{
		Name:       req.Msg.Name,
		ModuleType: req.Msg.ModuleType,
		CategoryID: req.Msg.CategoryID,
		UserID:     middleware.GetUserID(ctx),
	}
	if err := s.store.CreateSubcategory(ctx, sub); err != nil {
		s.logger.Error("CreateSubcategory failed", "category_id", sub.CategoryID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Subcategory created", "subcategory_id", sub.ID, "category_id", sub.CategoryID)
	return connect.NewResponse(&api.SubcategoryResponse{Subcategory: toAPISubcategory(sub)}), nil
}

func (s *CategoryService) UpdateSubcategory(ctx context.Context, req *connect.Request[api.UpdateSubcategoryRequest]) (*connect.Response[api.SubcategoryResponse], error) {
	sub := &models.Subcategory{
		ID:         req.Msg.ID,
		Name:       req.Msg.Name,
		ModuleType: req.Msg.ModuleType,
		UserID:     middleware.GetUserID(ctx),
	}
	if err := s.store.UpdateSubcategory(ctx, sub); err != nil {
		s.logger.Error("UpdateSubcategory failed", "subcategory_id", sub.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SubcategoryResponse{Subcategory: toAPISubcategory(sub)}), nil
}

func (s *CategoryService) DeleteSubcategory(ctx context.Context, req *connect.Request[api.IDRequest]) (*connect.Response[api.Empty], error) {
	if err := s.store.DeleteSubcategory(ctx, middleware.GetUserID(ctx), req.Msg.ID); err != nil {
		s.logger.Warn("DeleteSubcategory failed", "subcategory_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Subcategory deleted", "subcategory_id", req.Msg.ID)
	return connect.NewResponse(&api.Empty{}), nil
}
