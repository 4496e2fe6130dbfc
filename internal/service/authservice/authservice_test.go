package authservice

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/authordash/internal/domain"
	"github.com/GlebRadaev/authordash/internal/ledger"
	"github.com/GlebRadaev/authordash/pkg/auth"
)

var cred = auth.NewCredential("token-1")

func NewMock(t *testing.T) (*Service, *MockLedger, *MockSessions) {
	ctrl := gomock.NewController(t)
	ledgerMock := NewMockLedger(ctrl)
	sessions := NewMockSessions(ctrl)
	service := New(ledgerMock, sessions)
	defer ctrl.Finish()
	return service, ledgerMock, sessions
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	service, ledgerMock, _ := NewMock(t)
	creds := domain.Credentials{Email: "author@example.com", Password: "secret"}

	tests := []struct {
		name        string
		prepareMock func()
		want        *domain.Session
		wantErr     error
		anyErr      bool
	}{
		{
			name: "Success",
			prepareMock: func() {
				ledgerMock.EXPECT().Login(gomock.Any(), creds).
					Return(&domain.Session{Token: "jwt", User: &domain.Profile{Email: creds.Email}}, nil)
			},
			want: &domain.Session{Token: "jwt", User: &domain.Profile{Email: creds.Email}},
		},
		{
			name: "Invalid credentials",
			prepareMock: func() {
				ledgerMock.EXPECT().Login(gomock.Any(), creds).
					Return(nil, &ledger.ServerError{Status: http.StatusBadRequest, Message: "Invalid credentials"})
			},
			anyErr: true,
		},
		{
			name: "Missing token",
			prepareMock: func() {
				ledgerMock.EXPECT().Login(gomock.Any(), creds).Return(&domain.Session{}, nil)
			},
			wantErr: ErrNoToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			got, err := service.Login(ctx, creds)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	service, ledgerMock, _ := NewMock(t)
	reg := domain.Registration{Username: "author", Name: "Author", Email: "author@example.com", Password: "secret"}

	ledgerMock.EXPECT().Register(gomock.Any(), reg).Return(&domain.Session{Token: "jwt"}, nil)
	session, err := service.Register(ctx, reg)
	assert.NoError(t, err)
	assert.Equal(t, "jwt", session.Token)

	ledgerMock.EXPECT().Register(gomock.Any(), reg).
		Return(nil, &ledger.ServerError{Status: http.StatusBadRequest, Message: "User already exists"})
	_, err = service.Register(ctx, reg)
	assert.Equal(t, "User already exists", ledger.UserMessage(err, ""))
}

func TestService_Logout(t *testing.T) {
	service, _, sessions := NewMock(t)

	sessions.EXPECT().Drop(cred).Times(1)
	service.Logout(context.Background(), cred)
}

func TestService_Profile(t *testing.T) {
	ctx := context.Background()
	service, ledgerMock, _ := NewMock(t)

	ledgerMock.EXPECT().Profile(gomock.Any(), cred).Return(&domain.Profile{Name: "Author"}, nil)
	profile, err := service.Profile(ctx, cred)
	assert.NoError(t, err)
	assert.Equal(t, "Author", profile.Name)

	ledgerMock.EXPECT().Profile(gomock.Any(), cred).Return(nil, ledger.ErrUnauthorized)
	_, err = service.Profile(ctx, cred)
	assert.True(t, ledger.IsAuth(err))
}

func TestService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	service, ledgerMock, _ := NewMock(t)
	update := domain.ProfileUpdate{Name: "New Name", PhoneNumber: "9999999999"}

	ledgerMock.EXPECT().UpdateProfile(gomock.Any(), cred, update).Return(&domain.Profile{Name: "New Name"}, nil)
	profile, err := service.UpdateProfile(ctx, cred, update)
	assert.NoError(t, err)
	assert.Equal(t, "New Name", profile.Name)

	ledgerMock.EXPECT().UpdateProfile(gomock.Any(), cred, update).Return(nil, errors.New("boom"))
	_, err = service.UpdateProfile(ctx, cred, update)
	assert.Error(t, err)
}

func TestService_RequestKYCUpdate(t *testing.T) {
	ctx := context.Background()
	service, ledgerMock, _ := NewMock(t)
	update := domain.KYCUpdate{BankAccount: domain.BankAccount{AccountNumber: "1234567890", IFSCCode: "SBIN0001234"}}

	tests := []struct {
		name        string
		update      domain.KYCUpdate
		prepareMock func()
		wantErr     error
		anyErr      bool
	}{
		{
			name:   "Requested",
			update: update,
			prepareMock: func() {
				ledgerMock.EXPECT().RequestKYCUpdate(gomock.Any(), cred, update).Return(nil)
			},
		},
		{
			name:        "Empty update",
			update:      domain.KYCUpdate{},
			prepareMock: func() {},
			wantErr:     ErrEmptyKYCUpdate,
		},
		{
			name:   "Ledger error",
			update: update,
			prepareMock: func() {
				ledgerMock.EXPECT().RequestKYCUpdate(gomock.Any(), cred, update).
					Return(&ledger.NetworkError{Err: errors.New("refused")})
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.RequestKYCUpdate(ctx, cred, tt.update)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
