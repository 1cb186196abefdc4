package service

import (
	"context"

	"connectrpc.com/connect"

	"github.com/mmynk/dayplanner/pkg/api"
)

// HealthService answers liveness probes.
type HealthService struct {
	version string
}

func NewHealthService(version string) *HealthService {
	return &HealthService{version: version}
}

func (s *HealthService) Check(ctx context.Context, req *connect.Request[api.Empty]) (*connect.Response[api.CheckResponse], error) {
	return connect.NewResponse(&api.CheckResponse{Status: "ok", Version: s.version}), nil
}
