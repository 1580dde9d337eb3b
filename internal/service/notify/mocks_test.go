package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/kirana-labs/kirana-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	ListActiveShopkeepersFunc func(ctx context.Context) ([]*domain.Profile, error)

	calls struct {
		ListActiveShopkeepers []struct{}
	}
	lockListActiveShopkeepers sync.RWMutex
}

func (mock *profileRepoMock) ListActiveShopkeepers(ctx context.Context) ([]*domain.Profile, error) {
	if mock.ListActiveShopkeepersFunc == nil {
		panic("profileRepoMock.ListActiveShopkeepersFunc: method is nil but profileRepo.ListActiveShopkeepers was just called")
	}
	mock.lockListActiveShopkeepers.Lock()
	mock.calls.ListActiveShopkeepers = append(mock.calls.ListActiveShopkeepers, struct{}{})
	mock.lockListActiveShopkeepers.Unlock()
	return mock.ListActiveShopkeepersFunc(ctx)
}

func (mock *profileRepoMock) ListActiveShopkeepersCalls() []struct{} {
	mock.lockListActiveShopkeepers.RLock()
	calls := mock.calls.ListActiveShopkeepers
	mock.lockListActiveShopkeepers.RUnlock()
	return calls
}

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	SetNotifiedRecipientsFunc func(ctx context.Context, id uuid.UUID, recipients []string) error

	calls struct {
		SetNotifiedRecipients []struct {
			ID         uuid.UUID
			Recipients []string
		}
	}
	lockSetNotifiedRecipients sync.RWMutex
}

func (mock *orderRepoMock) SetNotifiedRecipients(ctx context.Context, id uuid.UUID, recipients []string) error {
	if mock.SetNotifiedRecipientsFunc == nil {
		panic("orderRepoMock.SetNotifiedRecipientsFunc: method is nil but orderRepo.SetNotifiedRecipients was just called")
	}
	callInfo := struct {
		ID         uuid.UUID
		Recipients []string
	}{ID: id, Recipients: recipients}
	mock.lockSetNotifiedRecipients.Lock()
	mock.calls.SetNotifiedRecipients = append(mock.calls.SetNotifiedRecipients, callInfo)
	mock.lockSetNotifiedRecipients.Unlock()
	return mock.SetNotifiedRecipientsFunc(ctx, id, recipients)
}

func (mock *orderRepoMock) SetNotifiedRecipientsCalls() []struct {
	ID         uuid.UUID
	Recipients []string
} {
	mock.lockSetNotifiedRecipients.RLock()
	calls := mock.calls.SetNotifiedRecipients
	mock.lockSetNotifiedRecipients.RUnlock()
	return calls
}

var _ messenger = &messengerMock{}

type messengerMock struct {
	SendFunc func(ctx context.Context, to, body string) error

	calls struct {
		Send []struct {
			To   string
			Body string
		}
	}
	lockSend sync.RWMutex
}

func (mock *messengerMock) Send(ctx context.Context, to, body string) error {
	if mock.SendFunc == nil {
		panic("messengerMock.SendFunc: method is nil but messenger.Send was just called")
	}
	callInfo := struct {
		To   string
		Body string
	}{To: to, Body: body}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, to, body)
}

func (mock *messengerMock) SendCalls() []struct {
	To   string
	Body string
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
	return calls
}
