package order

import (
	"context"
	"sync"

	"github.com/kirana-labs/kirana-backend/internal/domain"
	"github.com/kirana-labs/kirana-backend/internal/provider"
)

var _ classifier = &classifierMock{}

type classifierMock struct {
	ClassifyFunc func(ctx context.Context, text string) (*provider.ClassificationResult, error)

	calls struct {
		Classify []struct {
			Text string
		}
	}
	lockClassify sync.RWMutex
}

func (mock *classifierMock) Classify(ctx context.Context, text string) (*provider.ClassificationResult, error) {
	if mock.ClassifyFunc == nil {
		panic("classifierMock.ClassifyFunc: method is nil but classifier.Classify was just called")
	}
	callInfo := struct{ Text string }{Text: text}
	mock.lockClassify.Lock()
	mock.calls.Classify = append(mock.calls.Classify, callInfo)
	mock.lockClassify.Unlock()
	return mock.ClassifyFunc(ctx, text)
}

func (mock *classifierMock) ClassifyCalls() []struct{ Text string } {
	mock.lockClassify.RLock()
	calls := mock.calls.Classify
	mock.lockClassify.RUnlock()
	return calls
}

var _ orderRepo = &orderRepoMock{}

type orderRepoMock struct {
	CreateFunc func(ctx context.Context, o *domain.Order) error

	calls struct {
		Create []struct {
			O *domain.Order
		}
	}
	lockCreate sync.RWMutex
}

func (mock *orderRepoMock) Create(ctx context.Context, o *domain.Order) error {
	if mock.CreateFunc == nil {
		panic("orderRepoMock.CreateFunc: method is nil but orderRepo.Create was just called")
	}
	callInfo := struct{ O *domain.Order }{O: o}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, o)
}

func (mock *orderRepoMock) CreateCalls() []struct{ O *domain.Order } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	IncrementOrderCountFunc func(ctx context.Context, phone string) error

	calls struct {
		IncrementOrderCount []struct {
			Phone string
		}
	}
	lockIncrementOrderCount sync.RWMutex
}

func (mock *profileRepoMock) IncrementOrderCount(ctx context.Context, phone string) error {
	if mock.IncrementOrderCountFunc == nil {
		panic("profileRepoMock.IncrementOrderCountFunc: method is nil but profileRepo.IncrementOrderCount was just called")
	}
	callInfo := struct{ Phone string }{Phone: phone}
	mock.lockIncrementOrderCount.Lock()
	mock.calls.IncrementOrderCount = append(mock.calls.IncrementOrderCount, callInfo)
	mock.lockIncrementOrderCount.Unlock()
	return mock.IncrementOrderCountFunc(ctx, phone)
}

func (mock *profileRepoMock) IncrementOrderCountCalls() []struct{ Phone string } {
	mock.lockIncrementOrderCount.RLock()
	calls := mock.calls.IncrementOrderCount
	mock.lockIncrementOrderCount.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, mirroring a committed transaction.
// Set RunInTxFunc to simulate begin/commit failures.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
