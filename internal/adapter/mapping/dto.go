package mapping

import (
	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/repository"
)

type GetFeedRequest struct {
	Limit int `json:"limit" validate:"gte=0,lte=100"`
}

type GetFeedResponse struct {
	Words []entity.Word `json:"words"`
}

type SwipeRequest struct {
	WordID string `json:"wordId" validate:"required"`
	Status string `json:"status" validate:"required"`
}

type ListLearnedWordsRequest struct {
	Filter   string `json:"filter"`
	OrderBy  string `json:"orderBy"`
	PageNo   int32  `json:"pageNo" validate:"gte=0"`
	PageSize int32  `json:"pageSize" validate:"gte=0,lte=100"`
}

type ListLearnedWordsResponse struct {
	Words []entity.LearnedWord `json:"words"`
	Total int64                `json:"total"`
}

type GetProgressRequest struct{}

type GenerateGameRequest struct {
	GameType string `json:"gameType" validate:"required"`
	Mode     string `json:"mode"`
}

type GenerateGameResponse struct {
	GameType  entity.GameType `json:"gameType"`
	Questions any             `json:"questions"`
}

type RecordGameResultRequest struct {
	GameType string `json:"gameType" validate:"required"`
	Score    int    `json:"score"`
	Correct  int    `json:"correct"`
	Wrong    int    `json:"wrong"`
}

type BeginMobileLoginRequest struct {
	ReturnURL string `json:"returnUrl" validate:"required"`
}

type BeginMobileLoginResponse struct {
	State string `json:"state"`
}

type CompleteMobileLoginRequest struct {
	State string `json:"state" validate:"required"`
	Token string `json:"token" validate:"required"`
}

type CompleteMobileLoginResponse struct {
	RedirectURL string `json:"redirectUrl"`
}

// ToListLearnedWordQuery builds the repository query; paging defaults are applied by the store.
func ToListLearnedWordQuery(userID string, req *ListLearnedWordsRequest) *repository.ListLearnedWordQuery {
	return &repository.ListLearnedWordQuery{
		Pagination: repository.Pagination{
			PageNo:   req.PageNo,
			PageSize: req.PageSize,
		},
		FilterOrder: repository.FilterOrder{
			Filter:  req.Filter,
			OrderBy: req.OrderBy,
		},
		UserID: userID,
	}
}

func ToGenerateGameResponse(set *entity.GameSet) *GenerateGameResponse {
	return &GenerateGameResponse{GameType: set.Type, Questions: set.Questions()}
}

func FromRecordGameResultRequest(req *RecordGameResultRequest) entity.GameResult {
	return entity.GameResult{
		GameType: entity.GameType(req.GameType),
		Score:    req.Score,
		Correct:  req.Correct,
		Wrong:    req.Wrong,
	}
}
