package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/kelimo/internal/adapter/connectrpc"
	"github.com/eslsoft/kelimo/internal/adapter/mapping"
	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/infrastructure/config"
	"github.com/eslsoft/kelimo/internal/usecase"
	"github.com/eslsoft/kelimo/internal/usecase/practice"
)

const testSecret = "test-secret"

type stubWords struct{ usecase.WordUsecase }

func (stubWords) Feed(_ context.Context, userID string, _ int) ([]entity.Word, error) {
	return []entity.Word{{ID: "w1", Text: "apple", Meaning: "elma:" + userID}}, nil
}

type stubProgress struct{}

func (stubProgress) GetProgressSnapshot(context.Context, string) (*entity.ProgressSnapshot, error) {
	return &entity.ProgressSnapshot{LearnedCount: 3, Accuracy: 75}, nil
}

type stubPractice struct{}

func (stubPractice) GenerateGame(context.Context, string, entity.GameType, practice.Options) (*entity.GameSet, error) {
	return nil, entity.NewInsufficientPoolError(5, 2)
}

func (stubPractice) RecordGameResult(_ context.Context, userID string, r entity.GameResult) (*entity.GameResult, error) {
	r.UserID = userID
	return &r, nil
}

type stubLogin struct{ states map[string]string }

func (s *stubLogin) Begin(_ context.Context, returnURL string) (string, error) {
	s.states["st"] = returnURL
	return "st", nil
}

func (s *stubLogin) Complete(_ context.Context, state, token string) (string, error) {
	u, ok := s.states[state]
	if !ok {
		return "", entity.ErrLoginStateNotFound
	}
	delete(s.states, state)
	return u + "?token=" + token, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:8081"}},
		Auth:   config.AuthConfig{JWTSecret: testSecret},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	validator, err := connectrpc.NewValidator()
	require.NoError(t, err)

	cfg := testConfig()
	services := connectrpc.Services{
		Word:     connectrpc.NewWordServiceServer(stubWords{}),
		Progress: connectrpc.NewProgressServiceServer(stubProgress{}),
		Practice: connectrpc.NewPracticeServiceServer(stubPractice{}),
		Auth:     connectrpc.NewAuthServiceServer(&stubLogin{states: map[string]string{}}),
	}
	srv := httptest.NewServer(NewHandler(cfg, logger, services, validator))
	t.Cleanup(srv.Close)
	return srv
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := connectrpc.SignToken(testSecret, userID, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRequiresBearerToken(t *testing.T) {
	srv := newTestServer(t)
	client := connect.NewClient[mapping.GetFeedRequest, mapping.GetFeedResponse](
		srv.Client(), srv.URL+connectrpc.WordServiceGetFeedProcedure, connectrpc.ClientOptions()...)

	_, err := client.CallUnary(context.Background(), connect.NewRequest(&mapping.GetFeedRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	req := connect.NewRequest(&mapping.GetFeedRequest{})
	req.Header().Set("Authorization", "Bearer not-a-jwt")
	_, err = client.CallUnary(context.Background(), req)
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	req = connect.NewRequest(&mapping.GetFeedRequest{Limit: 5})
	req.Header().Set("Authorization", bearer(t, "u42"))
	resp, err := client.CallUnary(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Msg.Words, 1)
	assert.Equal(t, "elma:u42", resp.Msg.Words[0].Meaning)
}

func TestValidationRejectsBadRequest(t *testing.T) {
	srv := newTestServer(t)
	client := connect.NewClient[mapping.GetFeedRequest, mapping.GetFeedResponse](
		srv.Client(), srv.URL+connectrpc.WordServiceGetFeedProcedure, connectrpc.ClientOptions()...)

	req := connect.NewRequest(&mapping.GetFeedRequest{Limit: 500})
	req.Header().Set("Authorization", bearer(t, "u1"))
	_, err := client.CallUnary(context.Background(), req)
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	assert.Contains(t, err.Error(), "limit")
}

func TestInsufficientPoolCarriesCounts(t *testing.T) {
	srv := newTestServer(t)
	client := connect.NewClient[mapping.GenerateGameRequest, mapping.GenerateGameResponse](
		srv.Client(), srv.URL+connectrpc.PracticeServiceGenerateGameProcedure, connectrpc.ClientOptions()...)

	req := connect.NewRequest(&mapping.GenerateGameRequest{GameType: "QUIZ"})
	req.Header().Set("Authorization", bearer(t, "u1"))
	_, err := client.CallUnary(context.Background(), req)
	require.Error(t, err)

	var connectErr *connect.Error
	require.ErrorAs(t, err, &connectErr)
	assert.Equal(t, connect.CodeFailedPrecondition, connectErr.Code())
	assert.Equal(t, "5", connectErr.Meta().Get(mapping.HeaderRequiredWords))
	assert.Equal(t, "2", connectErr.Meta().Get(mapping.HeaderActualWords))
}

func TestMobileLoginIsPublic(t *testing.T) {
	srv := newTestServer(t)
	begin := connect.NewClient[mapping.BeginMobileLoginRequest, mapping.BeginMobileLoginResponse](
		srv.Client(), srv.URL+connectrpc.AuthServiceBeginMobileLoginProcedure, connectrpc.ClientOptions()...)
	complete := connect.NewClient[mapping.CompleteMobileLoginRequest, mapping.CompleteMobileLoginResponse](
		srv.Client(), srv.URL+connectrpc.AuthServiceCompleteMobileLoginProcedure, connectrpc.ClientOptions()...)

	started, err := begin.CallUnary(context.Background(), connect.NewRequest(&mapping.BeginMobileLoginRequest{ReturnURL: "exp://host/--/auth"}))
	require.NoError(t, err)

	done, err := complete.CallUnary(context.Background(), connect.NewRequest(&mapping.CompleteMobileLoginRequest{State: started.Msg.State, Token: "tok"}))
	require.NoError(t, err)
	assert.Equal(t, "exp://host/--/auth?token=tok", done.Msg.RedirectURL)

	_, err = complete.CallUnary(context.Background(), connect.NewRequest(&mapping.CompleteMobileLoginRequest{State: started.Msg.State, Token: "tok"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestCORSPreflightExposesPoolHeaders(t *testing.T) {
	srv := newTestServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+connectrpc.PracticeServiceGenerateGameProcedure, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:8081")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:8081", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestDetermineLogLevel(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, determineLogLevel(0, nil))
	err := connect.NewError(connect.CodeNotFound, nil)
	assert.Equal(t, logrus.WarnLevel, determineLogLevel(connect.CodeNotFound, err))
	assert.Equal(t, logrus.ErrorLevel, determineLogLevel(connect.CodeUnavailable, err))
}

func TestFirstForwardedFor(t *testing.T) {
	h := http.Header{}
	assert.Empty(t, firstForwardedFor(h))
	h.Set("X-Forwarded-For", " , 10.0.0.1, 10.0.0.2")
	assert.Equal(t, "10.0.0.1", firstForwardedFor(h))
}
