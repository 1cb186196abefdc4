package service

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/dayplanner/internal/auth"
	"github.com/mmynk/dayplanner/internal/middleware"
	"github.com/mmynk/dayplanner/internal/storage/sqlite"
	"github.com/mmynk/dayplanner/pkg/api"
)

type testEnv struct {
	client *api.Client
	store  *sqlite.SQLiteStore
}

// setupTestServer serves every service from a temp database.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	mux := http.NewServeMux()
	Register(mux, Options{
		Store:         store,
		Authenticator: auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost),
		JWTManager:    auth.NewJWTManager("test-secret", time.Hour),
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:       middleware.NewMetrics(prometheus.NewRegistry()),
		Version:       "test",
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{client: api.NewClient(server.Client(), server.URL), store: store}
}

// register creates an account and returns a client authenticated as it.
func (e *testEnv) register(t *testing.T, email string) *api.Client {
	t.Helper()
	resp, err := api.Call[api.RegisterRequest, api.AuthResponse](context.Background(), e.client, api.AuthRegisterProcedure,
		&api.RegisterRequest{Email: email, DisplayName: "Tester", Password: "password123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return e.client.WithToken(resp.Token)
}

func call[Req, Res any](t *testing.T, c *api.Client, procedure string, req *Req) *Res {
	t.Helper()
	resp, err := api.Call[Req, Res](context.Background(), c, procedure, req)
	if err != nil {
		t.Fatalf("%s failed: %v", procedure, err)
	}
	return resp
}

func expectCode[Req, Res any](t *testing.T, c *api.Client, procedure string, req *Req, want connect.Code) {
	t.Helper()
	_, err := api.Call[Req, Res](context.Background(), c, procedure, req)
	if got := connect.CodeOf(err); err == nil || got != want {
		t.Errorf("%s: expected code %v, got %v (%v)", procedure, want, got, err)
	}
}

func TestHealth(t *testing.T) {
	env := setupTestServer(t)
	resp := call[api.Empty, api.CheckResponse](t, env.client, api.HealthCheckProcedure, &api.Empty{})
	if resp.Status != "ok" || resp.Version != "test" {
		t.Errorf("unexpected health response: %+v", resp)
	}
}

func TestAuthFlow(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()

	client := env.register(t, "alice@example.com")

	me := call[api.Empty, api.MeResponse](t, client, api.AuthMeProcedure, &api.Empty{})
	if me.User.Email != "alice@example.com" || me.User.DisplayName != "Tester" {
		t.Errorf("unexpected user: %+v", me.User)
	}

	login, err := api.Call[api.LoginRequest, api.AuthResponse](ctx, env.client, api.AuthLoginProcedure,
		&api.LoginRequest{Email: "alice@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.Token == "" || login.User.ID != me.User.ID {
		t.Errorf("unexpected login response: %+v", login)
	}

	tests := []struct {
		name string
		req  api.RegisterRequest
		want connect.Code
	}{
		{"duplicate", api.RegisterRequest{Email: "alice@example.com", DisplayName: "A", Password: "password123"}, connect.CodeAlreadyExists},
		{"weak password", api.RegisterRequest{Email: "bob@example.com", DisplayName: "B", Password: "short"}, connect.CodeInvalidArgument},
		{"bad email", api.RegisterRequest{Email: "bob", DisplayName: "B", Password: "password123"}, connect.CodeInvalidArgument},
		{"missing name", api.RegisterRequest{Email: "bob@example.com", Password: "password123"}, connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectCode[api.RegisterRequest, api.AuthResponse](t, env.client, api.AuthRegisterProcedure, &tt.req, tt.want)
		})
	}

	expectCode[api.LoginRequest, api.AuthResponse](t, env.client, api.AuthLoginProcedure,
		&api.LoginRequest{Email: "alice@example.com", Password: "wrong-password"}, connect.CodeUnauthenticated)
	expectCode[api.Empty, api.MeResponse](t, env.client, api.AuthMeProcedure, &api.Empty{}, connect.CodeUnauthenticated)
}

func TestDefaultCategories(t *testing.T) {
	env := setupTestServer(t)
	client := env.register(t, "alice@example.com")

	list := call[api.Empty, api.ListCategoriesResponse](t, client, api.CategoryListProcedure, &api.Empty{})
	if len(list.Categories) != 5 {
		t.Fatalf("expected 5 default categories, got %d", len(list.Categories))
	}

	var sport *api.Category
	for i := range list.Categories {
		if list.Categories[i].Name == "Sport" {
			sport = &list.Categories[i]
		}
	}
	if sport == nil {
		t.Fatal("expected a Sport category")
	}
	if !sport.IsDefault || len(sport.Subcategories) != 3 {
		t.Errorf("unexpected Sport category: %+v", sport)
	}

	expectCode[api.IDRequest, api.Empty](t, client, api.CategoryDeleteProcedure,
		&api.IDRequest{ID: sport.ID}, connect.CodeFailedPrecondition)
	expectCode[api.IDRequest, api.Empty](t, client, api.SubcategoryDeleteProcedure,
		&api.IDRequest{ID: sport.Subcategories[0].ID}, connect.CodeFailedPrecondition)

	// User-created rows can be deleted.
	created := call[api.CreateCategoryRequest, api.CategoryResponse](t, client, api.CategoryCreateProcedure,
		&api.CreateCategoryRequest{Name: "Jardin", Icon: "leaf", Color: "#22c55e"})
	sub := call[api.CreateSubcategoryRequest, api.SubcategoryResponse](t, client, api.SubcategoryCreateProcedure,
		&api.CreateSubcategoryRequest{Name: "Potager", CategoryID: created.Category.ID})
	call[api.IDRequest, api.Empty](t, client, api.SubcategoryDeleteProcedure, &api.IDRequest{ID: sub.Subcategory.ID})
	call[api.IDRequest, api.Empty](t, client, api.CategoryDeleteProcedure, &api.IDRequest{ID: created.Category.ID})

	list = call[api.Empty, api.ListCategoriesResponse](t, client, api.CategoryListProcedure, &api.Empty{})
	if len(list.Categories) != 5 {
		t.Errorf("expected 5 categories after delete, got %d", len(list.Categories))
	}

	// Another user cannot attach subcategories to this category.
	other := env.register(t, "bob@example.com")
	expectCode[api.CreateSubcategoryRequest, api.SubcategoryResponse](t, other, api.SubcategoryCreateProcedure,
		&api.CreateSubcategoryRequest{Name: "Intrus", CategoryID: sport.ID}, connect.CodeNotFound)
}
