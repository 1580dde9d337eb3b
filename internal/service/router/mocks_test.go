package router

import (
	"context"
	"sync"

	"github.com/kirana-labs/kirana-backend/internal/domain"
	"github.com/kirana-labs/kirana-backend/internal/service/notify"
	"github.com/kirana-labs/kirana-backend/internal/service/onboarding"
	"github.com/kirana-labs/kirana-backend/internal/service/order"
)

var _ sessionStore = &sessionStoreMock{}

type sessionStoreMock struct {
	GetFunc  func(phone string) *domain.Session
	LockFunc func(phone string) func()

	calls struct {
		Get []struct {
			Phone string
		}
		Lock []struct {
			Phone string
		}
	}
	lockGet  sync.RWMutex
	lockLock sync.RWMutex
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

func (mock *sessionStoreMock) Lock(phone string) func() {
	callInfo := struct{ Phone string }{Phone: phone}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	if mock.LockFunc != nil {
		return mock.LockFunc(phone)
	}
	return func() {}
}

func (mock *sessionStoreMock) LockCalls() []struct{ Phone string } {
	mock.lockLock.RLock()
	calls := mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetCustomerFunc   func(ctx context.Context, phone string) (*domain.Profile, error)
	GetShopkeeperFunc func(ctx context.Context, phone string) (*domain.Profile, error)

	calls struct {
		GetCustomer []struct {
			Phone string
		}
		GetShopkeeper []struct {
			Phone string
		}
	}
	lockGetCustomer   sync.RWMutex
	lockGetShopkeeper sync.RWMutex
}

func (mock *profileRepoMock) GetCustomer(ctx context.Context, phone string) (*domain.Profile, error) {
	if mock.GetCustomerFunc == nil {
		panic("profileRepoMock.GetCustomerFunc: method is nil but profileRepo.GetCustomer was just called")
	}
	callInfo := struct{ Phone string }{Phone: phone}
	mock.lockGetCustomer.Lock()
	mock.calls.GetCustomer = append(mock.calls.GetCustomer, callInfo)
	mock.lockGetCustomer.Unlock()
	return mock.GetCustomerFunc(ctx, phone)
}

func (mock *profileRepoMock) GetCustomerCalls() []struct{ Phone string } {
	mock.lockGetCustomer.RLock()
	calls := mock.calls.GetCustomer
	mock.lockGetCustomer.RUnlock()
	return calls
}

func (mock *profileRepoMock) GetShopkeeper(ctx context.Context, phone string) (*domain.Profile, error) {
	if mock.GetShopkeeperFunc == nil {
		panic("profileRepoMock.GetShopkeeperFunc: method is nil but profileRepo.GetShopkeeper was just called")
	}
	callInfo := struct{ Phone string }{Phone: phone}
	mock.lockGetShopkeeper.Lock()
	mock.calls.GetShopkeeper = append(mock.calls.GetShopkeeper, callInfo)
	mock.lockGetShopkeeper.Unlock()
	return mock.GetShopkeeperFunc(ctx, phone)
}

func (mock *profileRepoMock) GetShopkeeperCalls() []struct{ Phone string } {
	mock.lockGetShopkeeper.RLock()
	calls := mock.calls.GetShopkeeper
	mock.lockGetShopkeeper.RUnlock()
	return calls
}

var _ onboardingService = &onboardingServiceMock{}

type onboardingServiceMock struct {
	StartFunc   func(ctx context.Context, phone string)
	AdvanceFunc func(ctx context.Context, in onboarding.Input) string

	calls struct {
		Start []struct {
			Phone string
		}
		Advance []struct {
			In onboarding.Input
		}
	}
	lockStart   sync.RWMutex
	lockAdvance sync.RWMutex
}

func (mock *onboardingServiceMock) Start(ctx context.Context, phone string) {
	if mock.StartFunc == nil {
		panic("onboardingServiceMock.StartFunc: method is nil but onboardingService.Start was just called")
	}
	callInfo := struct{ Phone string }{Phone: phone}
	mock.lockStart.Lock()
	mock.calls.Start = append(mock.calls.Start, callInfo)
	mock.lockStart.Unlock()
	mock.StartFunc(ctx, phone)
}

func (mock *onboardingServiceMock) StartCalls() []struct{ Phone string } {
	mock.lockStart.RLock()
	calls := mock.calls.Start
	mock.lockStart.RUnlock()
	return calls
}

func (mock *onboardingServiceMock) Advance(ctx context.Context, in onboarding.Input) string {
	if mock.AdvanceFunc == nil {
		panic("onboardingServiceMock.AdvanceFunc: method is nil but onboardingService.Advance was just called")
	}
	callInfo := struct{ In onboarding.Input }{In: in}
	mock.lockAdvance.Lock()
	mock.calls.Advance = append(mock.calls.Advance, callInfo)
	mock.lockAdvance.Unlock()
	return mock.AdvanceFunc(ctx, in)
}

func (mock *onboardingServiceMock) AdvanceCalls() []struct{ In onboarding.Input } {
	mock.lockAdvance.RLock()
	calls := mock.calls.Advance
	mock.lockAdvance.RUnlock()
	return calls
}

var _ orderBuilder = &orderBuilderMock{}

type orderBuilderMock struct {
	BuildFunc func(ctx context.Context, in order.BuildInput) (*order.BuildResult, error)

	calls struct {
		Build []struct {
			In order.BuildInput
		}
	}
	lockBuild sync.RWMutex
}

func (mock *orderBuilderMock) Build(ctx context.Context, in order.BuildInput) (*order.BuildResult, error) {
	if mock.BuildFunc == nil {
		panic("orderBuilderMock.BuildFunc: method is nil but orderBuilder.Build was just called")
	}
	callInfo := struct{ In order.BuildInput }{In: in}
	mock.lockBuild.Lock()
	mock.calls.Build = append(mock.calls.Build, callInfo)
	mock.lockBuild.Unlock()
	return mock.BuildFunc(ctx, in)
}

func (mock *orderBuilderMock) BuildCalls() []struct{ In order.BuildInput } {
	mock.lockBuild.RLock()
	calls := mock.calls.Build
	mock.lockBuild.RUnlock()
	return calls
}

var _ dispatcher = &dispatcherMock{}

type dispatcherMock struct {
	NotifyFunc func(ctx context.Context, o *domain.Order) (notify.Result, error)

	calls struct {
		Notify []struct {
			O *domain.Order
		}
	}
	lockNotify sync.RWMutex
}

func (mock *dispatcherMock) Notify(ctx context.Context, o *domain.Order) (notify.Result, error) {
	if mock.NotifyFunc == nil {
		panic("dispatcherMock.NotifyFunc: method is nil but dispatcher.Notify was just called")
	}
	callInfo := struct{ O *domain.Order }{O: o}
	mock.lockNotify.Lock()
	mock.calls.Notify = append(mock.calls.Notify, callInfo)
	mock.lockNotify.Unlock()
	return mock.NotifyFunc(ctx, o)
}

func (mock *dispatcherMock) NotifyCalls() []struct{ O *domain.Order } {
	mock.lockNotify.RLock()
	calls := mock.calls.Notify
	mock.lockNotify.RUnlock()
	return calls
}

var _ transcriber = &transcriberMock{}

type transcriberMock struct {
	TranscribeFunc func(ctx context.Context, audio []byte, language string) (string, error)

	calls struct {
		Transcribe []struct {
			Audio    []byte
			Language string
		}
	}
	lockTranscribe sync.RWMutex
}

func (mock *transcriberMock) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if mock.TranscribeFunc == nil {
		panic("transcriberMock.TranscribeFunc: method is nil but transcriber.Transcribe was just called")
	}
	callInfo := struct {
		Audio    []byte
		Language string
	}{Audio: audio, Language: language}
	mock.lockTranscribe.Lock()
	mock.calls.Transcribe = append(mock.calls.Transcribe, callInfo)
	mock.lockTranscribe.Unlock()
	return mock.TranscribeFunc(ctx, audio, language)
}

func (mock *transcriberMock) TranscribeCalls() []struct {
	Audio    []byte
	Language string
} {
	mock.lockTranscribe.RLock()
	calls := mock.calls.Transcribe
	mock.lockTranscribe.RUnlock()
	return calls
}

var _ mediaDownloader = &mediaDownloaderMock{}

type mediaDownloaderMock struct {
	DownloadMediaFunc func(ctx context.Context, url string) ([]byte, error)

	calls struct {
		DownloadMedia []struct {
			URL string
		}
	}
	lockDownloadMedia sync.RWMutex
}

func (mock *mediaDownloaderMock) DownloadMedia(ctx context.Context, url string) ([]byte, error) {
	if mock.DownloadMediaFunc == nil {
		panic("mediaDownloaderMock.DownloadMediaFunc: method is nil but mediaDownloader.DownloadMedia was just called")
	}
	callInfo := struct{ URL string }{URL: url}
	mock.lockDownloadMedia.Lock()
	mock.calls.DownloadMedia = append(mock.calls.DownloadMedia, callInfo)
	mock.lockDownloadMedia.Unlock()
	return mock.DownloadMediaFunc(ctx, url)
}

func (mock *mediaDownloaderMock) DownloadMediaCalls() []struct{ URL string } {
	mock.lockDownloadMedia.RLock()
	calls := mock.calls.DownloadMedia
	mock.lockDownloadMedia.RUnlock()
	return calls
}

var _ audioStore = &audioStoreMock{}

type audioStoreMock struct {
	SaveFunc func(identity string, data []byte) (string, error)

	calls struct {
		Save []struct {
			Identity string
			Data     []byte
		}
	}
	lockSave sync.RWMutex
}

func (mock *audioStoreMock) Save(identity string, data []byte) (string, error) {
	if mock.SaveFunc == nil {
		panic("audioStoreMock.SaveFunc: method is nil but audioStore.Save was just called")
	}
	callInfo := struct {
		Identity string
		Data     []byte
	}{Identity: identity, Data: data}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(identity, data)
}

func (mock *audioStoreMock) SaveCalls() []struct {
	Identity string
	Data     []byte
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
