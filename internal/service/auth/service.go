package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/steam-session/internal/client/steam"
	"github.com/oshokin/steam-session/internal/logger"
	"github.com/oshokin/steam-session/internal/session"
)

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

// Service logs accounts into Steam Community.
type Service interface {
	// Authenticate logs in and returns the session cookies, which are also merged into the store.
	Authenticate(ctx context.Context, params Params) ([]session.Cookie, error)
	// IsAuthorized asks Steam whether the stored cookies belong to a live session.
	IsAuthorized(ctx context.Context) (bool, error)
}

// ServiceImpl implements Service on top of the Steam Community client.
type ServiceImpl struct {
	// mu serializes attempts on one service.
	mu sync.Mutex
	// client talks to Steam Community.
	client steam.Client
	// store receives the session cookies.
	store *session.Store
	// now returns the current time, used for two-factor codes.
	now func() time.Time
	// lastState is where the most recent attempt stopped.
	lastState State
}

// NewService creates a new authentication service.
func NewService(client steam.Client, store *session.Store) *ServiceImpl {
	return &ServiceImpl{
		client: client,
		store:  store,
		now:    time.Now,
	}
}

// LastState returns where the most recent attempt stopped.
func (s *ServiceImpl) LastState() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastState
}

// IsAuthorized asks Steam whether the stored cookies belong to a live session.
func (s *ServiceImpl) IsAuthorized(ctx context.Context) (bool, error) {
	token, err := s.client.GetClientJSToken(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	return token.LoggedIn, nil
}

// Authenticate logs in and returns the session cookies.
// Nothing is merged into the store unless Steam confirms the login.
//
//nolint:funlen // The pipeline reads best as one sequence of steps.
func (s *ServiceImpl) Authenticate(ctx context.Context, params Params) ([]session.Cookie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = logger.WithKV(ctx, "attempt_id", uuid.NewString(), "account", params.AccountName)
	s.transition(ctx, StateIdle)

	if s.store.HasSession() {
		return nil, stageError(StagePrecondition, ErrAlreadyAuthenticated)
	}

	if err := params.validate(); err != nil {
		return nil, stageError(StagePrecondition, err)
	}

	creds := sealCredentials(params)
	defer creds.destroy()

	loggedIn, err := s.IsAuthorized(ctx)
	if err != nil {
		return nil, stageError(StagePrecondition, err)
	}

	if loggedIn {
		return nil, stageError(StagePrecondition, ErrAlreadyAuthenticated)
	}

	s.transition(ctx, StateKeyRequested)

	key, err := s.client.GetRSAKey(ctx, creds.accountName)
	if err != nil {
		return nil, stageError(StageKeyFetch, fmt.Errorf("%w: %w", ErrKeyFetchFailed, err))
	}

	if !key.Success {
		return nil, stageError(StageKeyFetch, fmt.Errorf("%w: %s", ErrKeyFetchFailed, key.Raw))
	}

	encryptedPassword, err := creds.encryptPassword(key.PublicKeyMod, key.PublicKeyExp)
	if err != nil {
		return nil, stageError(StagePasswordEncryption, err)
	}

	s.transition(ctx, StatePasswordEncrypted)

	twoFactorCode, err := creds.twoFactorCodeAt(s.now())
	if err != nil {
		return nil, stageError(StageCodeGeneration, err)
	}

	s.transition(ctx, StateCodeReady)

	response, err := s.client.DoLogin(ctx, &steam.LoginRequest{
		AccountName:       creds.accountName,
		EncryptedPassword: encryptedPassword,
		TwoFactorCode:     twoFactorCode,
		RSATimestamp:      key.Timestamp,
	})
	if err != nil {
		return nil, classifySubmitError(err)
	}

	s.transition(ctx, StateLoginSubmitted)

	result := interpretLogin(response)
	s.transition(ctx, result.state)

	if result.err != nil {
		logger.Warnf(ctx, "Login was not completed: %v", result.err)

		return nil, stageError(StageResponseParsing, result.err)
	}

	s.store.Merge(result.cookies...)
	logger.Infof(ctx, "Logged in, %d session cookies issued", len(result.cookies))

	return result.cookies, nil
}

func (s *ServiceImpl) transition(ctx context.Context, state State) {
	s.lastState = state

	if state.IsTerminal() {
		logger.InfoKV(ctx, "Authentication attempt finished", "state", state.String())

		return
	}

	logger.DebugKV(ctx, "Authentication state changed", "state", state.String())
}
