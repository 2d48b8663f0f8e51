package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	"github.com/eslsoft/kelimo/internal/adapter/mapping"
	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/usecase"
)

const (
	ProgressServiceName = "kelimo.v1.ProgressService"

	ProgressServiceGetProgressProcedure = "/" + ProgressServiceName + "/GetProgress"
)

type ProgressServiceServer struct {
	uc usecase.ProgressUsecase
}

func NewProgressServiceServer(uc usecase.ProgressUsecase) *ProgressServiceServer {
	return &ProgressServiceServer{uc: uc}
}

func (s *ProgressServiceServer) GetProgress(ctx context.Context, _ *connect.Request[mapping.GetProgressRequest]) (*connect.Response[entity.ProgressSnapshot], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, err := s.uc.GetProgressSnapshot(ctx, userID)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(snapshot), nil
}

func (s *ProgressServiceServer) handlers(opts ...connect.HandlerOption) map[string]*connect.Handler {
	return map[string]*connect.Handler{
		ProgressServiceGetProgressProcedure: connect.NewUnaryHandler(ProgressServiceGetProgressProcedure, s.GetProgress, opts...),
	}
}
