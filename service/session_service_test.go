package service

import (
	"errors"
	"go-atm-sim/common"
	"go-atm-sim/model"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockAccountRepo is a mock for IAccountRepository.
type mockAccountRepo struct{ mock.Mock }

func (m *mockAccountRepo) CreateAccount(username, pin string) (*model.Account, error) {
	args := m.Called(username, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *mockAccountRepo) GetAccount(username, pin string) (*model.Account, error) {
	args := m.Called(username, pin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

// mockSessionRepo is a mock for ISessionRepository.
type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) GetSessionByAccountID(accountID int) (*model.Session, error) {
	args := m.Called(accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *mockSessionRepo) GetSessionByToken(token uuid.UUID) (*model.Session, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *mockSessionRepo) UpsertSession(accountID int, token uuid.UUID, expires time.Time) error {
	args := m.Called(accountID, token, expires)
	return args.Error(0)
}

func TestSessionService_Login(t *testing.T) {
	account := &model.Account{ID: 1, Username: "alice", PIN: "1234"}

	t.Run("reuses an active session without writing", func(t *testing.T) {
		mockAccounts := new(mockAccountRepo)
		mockSessions := new(mockSessionRepo)
		existingToken := uuid.New()

		mockAccounts.On("GetAccount", "alice", "1234").Return(account, nil).Once()
		mockSessions.On("GetSessionByAccountID", 1).Return(&model.Session{
			ID:        5,
			AccountID: 1,
			Token:     existingToken,
			Expires:   time.Now().Add(5 * time.Minute),
		}, nil).Once()

		sessionService := NewSessionService(mockAccounts, mockSessions, 10*time.Minute)
		token, err := sessionService.Login("alice", "1234")

		assert.NoError(t, err)
		assert.Equal(t, existingToken.String(), token)
		mockSessions.AssertNotCalled(t, "UpsertSession", mock.Anything, mock.Anything, mock.Anything)
		mockAccounts.AssertExpectations(t)
		mockSessions.AssertExpectations(t)
	})

	t.Run("same token on two quick logins", func(t *testing.T) {
		mockAccounts := new(mockAccountRepo)
		mockSessions := new(mockSessionRepo)
		existingToken := uuid.New()
		session := &model.Session{AccountID: 1, Token: existingToken, Expires: time.Now().Add(9 * time.Minute)}

		mockAccounts.On("GetAccount", "alice", "1234").Return(account, nil).Twice()
		mockSessions.On("GetSessionByAccountID", 1).Return(session, nil).Twice()

		sessionService := NewSessionService(mockAccounts, mockSessions, 10*time.Minute)
		first, err := sessionService.Login("alice", "1234")
		assert.NoError(t, err)
		second, err := sessionService.Login("alice", "1234")
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		mockSessions.AssertNotCalled(t, "UpsertSession", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("replaces an expired session with a fresh token", func(t *testing.T) {
		mockAccounts := new(mockAccountRepo)
		mockSessions := new(mockSessionRepo)
		oldToken := uuid.New()
		callTime := time.Now()

		mockAccounts.On("GetAccount", "alice", "1234").Return(account, nil).Once()
		mockSessions.On("GetSessionByAccountID", 1).Return(&model.Session{
			AccountID: 1,
			Token:     oldToken,
			Expires:   callTime.Add(-time.Minute),
		}, nil).Once()
		mockSessions.On("UpsertSession", 1, mock.MatchedBy(func(token uuid.UUID) bool {
			return token != oldToken && token != uuid.Nil
		}), mock.MatchedBy(func(expires time.Time) bool {
			return expires.After(callTime)
		})).Return(nil).Once()

		sessionService := NewSessionService(mockAccounts, mockSessions, 10*time.Minute)
		token, err := sessionService.Login("alice", "1234")

		assert.NoError(t, err)
		assert.NotEqual(t, oldToken.String(), token)
		mockSessions.AssertExpectations(t)
	})

	t.Run("mints a token on first login", func(t *testing.T) {
		mockAccounts := new(mockAccountRepo)
		mockSessions := new(mockSessionRepo)

		mockAccounts.On("GetAccount", "alice", "1234").Return(account, nil).Once()
		mockSessions.On("GetSessionByAccountID", 1).Return(nil, nil).Once()
		mockSessions.On("UpsertSession", 1, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("time.Time")).Return(nil).Once()

		sessionService := NewSessionService(mockAccounts, mockSessions, 10*time.Minute)
		token, err := sessionService.Login("alice", "1234")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		mockSessions.AssertExpectations(t)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockAccounts := new(mockAccountRepo)
		mockSessions := new(mockSessionRepo)

		mockAccounts.On("GetAccount", "alice", "0000").Return(nil, nil).Once()

		sessionService := NewSessionService(mockAccounts, mockSessions, 10*time.Minute)
		_, err := sessionService.Login("alice", "0000")

		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
		mockSessions.AssertNotCalled(t, "GetSessionByAccountID", mock.Anything)
	})

	t.Run("account lookup failure aborts", func(t *testing.T) {
		mockAccounts := new(mockAccountRepo)
		mockSessions := new(mockSessionRepo)
		expectedError := errors.New("db error")

		mockAccounts.On("GetAccount", "alice", "1234").Return(nil, expectedError).Once()

		sessionService := NewSessionService(mockAccounts, mockSessions, 10*time.Minute)
		_, err := sessionService.Login("alice", "1234")

		assert.ErrorIs(t, err, expectedError)
		mockSessions.AssertNotCalled(t, "GetSessionByAccountID", mock.Anything)
	})
}

func TestSessionService_Resolve(t *testing.T) {
	t.Run("returns the account id for an active session", func(t *testing.T) {
		mockSessions := new(mockSessionRepo)
		token := uuid.New()

		mockSessions.On("GetSessionByToken", token).Return(&model.Session{
			AccountID: 7,
			Token:     token,
			Expires:   time.Now().Add(time.Minute),
		}, nil).Once()

		sessionService := NewSessionService(new(mockAccountRepo), mockSessions, 10*time.Minute)
		accountID, err := sessionService.Resolve(token.String())

		assert.NoError(t, err)
		assert.Equal(t, 7, accountID)
	})

	t.Run("unknown token", func(t *testing.T) {
		mockSessions := new(mockSessionRepo)
		token := uuid.New()

		mockSessions.On("GetSessionByToken", token).Return(nil, nil).Once()

		sessionService := NewSessionService(new(mockAccountRepo), mockSessions, 10*time.Minute)
		_, err := sessionService.Resolve(token.String())

		assert.ErrorIs(t, err, common.ErrInvalidToken)
	})

	t.Run("expired session", func(t *testing.T) {
		mockSessions := new(mockSessionRepo)
		token := uuid.New()

		mockSessions.On("GetSessionByToken", token).Return(&model.Session{
			AccountID: 7,
			Token:     token,
			Expires:   time.Now().Add(-time.Second),
		}, nil).Once()

		sessionService := NewSessionService(new(mockAccountRepo), mockSessions, 10*time.Minute)
		_, err := sessionService.Resolve(token.String())

		assert.ErrorIs(t, err, common.ErrInvalidToken)
	})

	t.Run("malformed token skips the lookup", func(t *testing.T) {
		mockSessions := new(mockSessionRepo)

		sessionService := NewSessionService(new(mockAccountRepo), mockSessions, 10*time.Minute)
		_, err := sessionService.Resolve("not-a-uuid")

		assert.ErrorIs(t, err, common.ErrInvalidToken)
		mockSessions.AssertNotCalled(t, "GetSessionByToken", mock.Anything)
	})
}
