package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	"github.com/eslsoft/kelimo/internal/adapter/mapping"
	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/usecase"
	"github.com/eslsoft/kelimo/internal/usecase/practice"
)

const (
	PracticeServiceName = "kelimo.v1.PracticeService"

	PracticeServiceGenerateGameProcedure     = "/" + PracticeServiceName + "/GenerateGame"
	PracticeServiceRecordGameResultProcedure = "/" + PracticeServiceName + "/RecordGameResult"
)

type PracticeServiceServer struct {
	uc usecase.PracticeUsecase
}

func NewPracticeServiceServer(uc usecase.PracticeUsecase) *PracticeServiceServer {
	return &PracticeServiceServer{uc: uc}
}

func (s *PracticeServiceServer) GenerateGame(ctx context.Context, req *connect.Request[mapping.GenerateGameRequest]) (*connect.Response[mapping.GenerateGameResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	mode, err := entity.ParseQuizMode(req.Msg.Mode)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	set, err := s.uc.GenerateGame(ctx, userID, entity.GameType(req.Msg.GameType), practice.Options{Mode: mode})
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(mapping.ToGenerateGameResponse(set)), nil
}

func (s *PracticeServiceServer) RecordGameResult(ctx context.Context, req *connect.Request[mapping.RecordGameResultRequest]) (*connect.Response[entity.GameResult], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	saved, err := s.uc.RecordGameResult(ctx, userID, mapping.FromRecordGameResultRequest(req.Msg))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(saved), nil
}

func (s *PracticeServiceServer) handlers(opts ...connect.HandlerOption) map[string]*connect.Handler {
	return map[string]*connect.Handler{
		PracticeServiceGenerateGameProcedure:     connect.NewUnaryHandler(PracticeServiceGenerateGameProcedure, s.GenerateGame, opts...),
		PracticeServiceRecordGameResultProcedure: connect.NewUnaryHandler(PracticeServiceRecordGameResultProcedure, s.RecordGameResult, opts...),
	}
}
