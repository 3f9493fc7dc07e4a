package services

import (
	"context"

	"github.com/Tomas-vilte/MateLogs/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockLogInterpreter struct {
	mock.Mock
}

func (m *MockLogInterpreter) InterpretLog(ctx context.Context, logContent string) (models.Interpretation, error) {
	args := m.Called(ctx, logContent)
	return args.Get(0).(models.Interpretation), args.Error(1)
}

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) CreateComment(ctx context.Context, prNumber int, body string) error {
	args := m.Called(ctx, prNumber, body)
	return args.Error(0)
}

type MockActionReporter struct {
	mock.Mock
}

func (m *MockActionReporter) SetOutput(name, value string) error {
	args := m.Called(name, value)
	return args.Error(0)
}

func (m *MockActionReporter) Warning(message string) {
	m.Called(message)
}

func (m *MockActionReporter) Notice(message string) {
	m.Called(message)
}
