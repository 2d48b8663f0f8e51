package connectrpc

import (
	"context"

	"connectrpc.com/connect"

	"github.com/eslsoft/kelimo/internal/adapter/mapping"
	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/usecase"
)

const (
	WordServiceName = "kelimo.v1.WordService"

	WordServiceGetFeedProcedure          = "/" + WordServiceName + "/GetFeed"
	WordServiceSwipeProcedure            = "/" + WordServiceName + "/Swipe"
	WordServiceListLearnedWordsProcedure = "/" + WordServiceName + "/ListLearnedWords"
)

type WordServiceServer struct {
	uc usecase.WordUsecase
}

func NewWordServiceServer(uc usecase.WordUsecase) *WordServiceServer {
	return &WordServiceServer{uc: uc}
}

func (s *WordServiceServer) GetFeed(ctx context.Context, req *connect.Request[mapping.GetFeedRequest]) (*connect.Response[mapping.GetFeedResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	words, err := s.uc.Feed(ctx, userID, req.Msg.Limit)
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&mapping.GetFeedResponse{Words: words}), nil
}

func (s *WordServiceServer) Swipe(ctx context.Context, req *connect.Request[mapping.SwipeRequest]) (*connect.Response[entity.SwipeRecord], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := s.uc.Swipe(ctx, userID, req.Msg.WordID, entity.SwipeStatus(req.Msg.Status))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(rec), nil
}

func (s *WordServiceServer) ListLearnedWords(ctx context.Context, req *connect.Request[mapping.ListLearnedWordsRequest]) (*connect.Response[mapping.ListLearnedWordsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	items, total, err := s.uc.ListLearnedWords(ctx, mapping.ToListLearnedWordQuery(userID, req.Msg))
	if err != nil {
		return nil, mapping.ToConnectError(err)
	}
	return connect.NewResponse(&mapping.ListLearnedWordsResponse{Words: items, Total: total}), nil
}

func (s *WordServiceServer) handlers(opts ...connect.HandlerOption) map[string]*connect.Handler {
	return map[string]*connect.Handler{
		WordServiceGetFeedProcedure:          connect.NewUnaryHandler(WordServiceGetFeedProcedure, s.GetFeed, opts...),
		WordServiceSwipeProcedure:            connect.NewUnaryHandler(WordServiceSwipeProcedure, s.Swipe, opts...),
		WordServiceListLearnedWordsProcedure: connect.NewUnaryHandler(WordServiceListLearnedWordsProcedure, s.ListLearnedWords, opts...),
	}
}
