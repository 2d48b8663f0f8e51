package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/repository"
)

const defaultRedirectTTL = 5 * time.Minute

// DefaultReturnURLs admits the Expo development scheme and the app's own scheme.
var DefaultReturnURLs = []string{"exp", "kelimo"}

// LoginRedirectUsecase hands a mobile client's return URL across the external OAuth round trip.
type LoginRedirectUsecase interface {
	// Begin stores returnURL and returns the opaque state to pass through the OAuth provider.
	Begin(ctx context.Context, returnURL string) (string, error)
	// Complete consumes state and returns the return URL carrying token. A state can be used once.
	Complete(ctx context.Context, state, token string) (string, error)
}

// NewLoginRedirectUsecase only hands tokens to return URLs matching allowed. An entry is either a
// bare scheme ("exp") admitting any host, or "scheme://host[:port]" admitting that origin only.
// An empty list means DefaultReturnURLs.
func NewLoginRedirectUsecase(store repository.LoginStateStore, ttl time.Duration, allowed []string) LoginRedirectUsecase {
	if ttl <= 0 {
		ttl = defaultRedirectTTL
	}
	if len(allowed) == 0 {
		allowed = DefaultReturnURLs
	}
	u := &loginRedirectUsecase{
		store:    store,
		ttl:      ttl,
		newState: uuid.NewString,
		schemes:  map[string]bool{},
		origins:  map[string]bool{},
	}
	for _, entry := range allowed {
		entry = strings.ToLower(strings.TrimSpace(entry))
		switch {
		case entry == "":
		case strings.Contains(entry, "://"):
			u.origins[strings.TrimRight(entry, "/")] = true
		default:
			u.schemes[strings.TrimSuffix(entry, ":")] = true
		}
	}
	return u
}

type loginRedirectUsecase struct {
	store    repository.LoginStateStore
	ttl      time.Duration
	newState func() string
	schemes  map[string]bool
	origins  map[string]bool
}

func (u *loginRedirectUsecase) Begin(ctx context.Context, returnURL string) (string, error) {
	if _, err := u.parseReturnURL(returnURL); err != nil {
		return "", err
	}
	state := u.newState()
	if err := u.store.Put(ctx, state, strings.TrimSpace(returnURL), u.ttl); err != nil {
		return "", err
	}
	return state, nil
}

func (u *loginRedirectUsecase) Complete(ctx context.Context, state, token string) (string, error) {
	state = strings.TrimSpace(state)
	if state == "" {
		return "", entity.ErrLoginStateNotFound
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", entity.ErrInvalidLoginToken
	}

	returnURL, err := u.store.Take(ctx, state)
	if err != nil {
		return "", err
	}
	target, err := u.parseReturnURL(returnURL)
	if err != nil {
		return "", err
	}
	query := target.Query()
	query.Set("token", token)
	target.RawQuery = query.Encode()
	return target.String(), nil
}

// parseReturnURL accepts absolute URLs such as exp://192.168.1.2:8081 whose scheme or origin is allowed.
func (u *loginRedirectUsecase) parseReturnURL(raw string) (*url.URL, error) {
	target, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || target.Scheme == "" || target.Host == "" || target.User != nil {
		return nil, entity.ErrInvalidReturnURL
	}
	scheme := strings.ToLower(target.Scheme)
	if u.schemes[scheme] || u.origins[scheme+"://"+strings.ToLower(target.Host)] {
		return target, nil
	}
	return nil, entity.ErrInvalidReturnURL
}
