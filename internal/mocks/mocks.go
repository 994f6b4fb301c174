package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAdapter struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

type MockInsightClient struct {
	mock.Mock
}

func (m *MockAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAdapter) Set(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockAdapter) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, data interface{}) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

func (m *MockInsightClient) GetCulturalInsight(ctx context.Context, productName, productContext string) string {
	args := m.Called(ctx, productName, productContext)
	return args.String(0)
}
