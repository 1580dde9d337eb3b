package onboarding

import (
	"context"
	"sync"

	"github.com/kirana-labs/kirana-backend/internal/domain"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	GetFunc    func(phone string) *domain.Session
	PutFunc    func(phone string, sess *domain.Session)
	DeleteFunc func(phone string)

	calls struct {
		Get []struct {
			Phone string
		}
		Put []struct {
			Phone string
			Sess  *domain.Session
		}
		Delete []struct {
			Phone string
		}
	}
	lockGet    sync.RWMutex
	lockPut    sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *sessionStoreMock) Get(phone string) *domain.Session {
	if mock.GetFunc == nil {
		panic("sessionStoreMock.GetFunc: method is nil but sessionStore.Get was just called")
	}
	callInfo := struct{ Phone string }{Phone: phone}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(phone)
}

func (mock *sessionStoreMock) GetCalls() []struct{ Phone string } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Put(phone string, sess *domain.Session) {
	if mock.PutFunc == nil {
		panic("sessionStoreMock.PutFunc: method is nil but sessionStore.Put was just called")
	}
	callInfo := struct {
		Phone string
		Sess  *domain.Session
	}{Phone: phone, Sess: sess}
	mock.lockPut.Lock()
	mock.calls.Put = append(mock.calls.Put, callInfo)
	mock.lockPut.Unlock()
	mock.PutFunc(phone, sess)
}

func (mock *sessionStoreMock) PutCalls() []struct {
	Phone string
	Sess  *domain.Session
} {
	mock.lockPut.RLock()
	calls := mock.calls.Put
	mock.lockPut.RUnlock()
	return calls
}

func (mock *sessionStoreMock) Delete(phone string) {
	if mock.DeleteFunc == nil {
		panic("sessionStoreMock.DeleteFunc: method is nil but sessionStore.Delete was just called")
	}
	callInfo := struct{ Phone string }{Phone: phone}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	mock.DeleteFunc(phone)
}

func (mock *sessionStoreMock) DeleteCalls() []struct{ Phone string } {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	UpsertCustomerFunc   func(ctx context.Context, p *domain.Profile) error
	UpsertShopkeeperFunc func(ctx context.Context, p *domain.Profile) error

	calls struct {
		UpsertCustomer []struct {
			P *domain.Profile
		}
		UpsertShopkeeper []struct {
			P *domain.Profile
		}
	}
	lockUpsertCustomer   sync.RWMutex
	lockUpsertShopkeeper sync.RWMutex
}

func (mock *profileRepoMock) UpsertCustomer(ctx context.Context, p *domain.Profile) error {
	if mock.UpsertCustomerFunc == nil {
		panic("profileRepoMock.UpsertCustomerFunc: method is nil but profileRepo.UpsertCustomer was just called")
	}
	callInfo := struct{ P *domain.Profile }{P: p}
	mock.lockUpsertCustomer.Lock()
	mock.calls.UpsertCustomer = append(mock.calls.UpsertCustomer, callInfo)
	mock.lockUpsertCustomer.Unlock()
	return mock.UpsertCustomerFunc(ctx, p)
}

func (mock *profileRepoMock) UpsertCustomerCalls() []struct{ P *domain.Profile } {
	mock.lockUpsertCustomer.RLock()
	calls := mock.calls.UpsertCustomer
	mock.lockUpsertCustomer.RUnlock()
	return calls
}

func (mock *profileRepoMock) UpsertShopkeeper(ctx context.Context, p *domain.Profile) error {
	if mock.UpsertShopkeeperFunc == nil {
		panic("profileRepoMock.UpsertShopkeeperFunc: method is nil but profileRepo.UpsertShopkeeper was just called")
	}
	callInfo := struct{ P *domain.Profile }{P: p}
	mock.lockUpsertShopkeeper.Lock()
	mock.calls.UpsertShopkeeper = append(mock.calls.UpsertShopkeeper, callInfo)
	mock.lockUpsertShopkeeper.Unlock()
	return mock.UpsertShopkeeperFunc(ctx, p)
}

func (mock *profileRepoMock) UpsertShopkeeperCalls() []struct{ P *domain.Profile } {
	mock.lockUpsertShopkeeper.RLock()
	calls := mock.calls.UpsertShopkeeper
	mock.lockUpsertShopkeeper.RUnlock()
	return calls
}
