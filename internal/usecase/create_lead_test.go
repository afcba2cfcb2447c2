package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/lead-intake/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) CreateTable(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) InsertBatch(ctx context.Context, leads []*entity.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

// MockLeadEventPublisher
type MockLeadEventPublisher struct {
	mock.Mock
}

func (m *MockLeadEventPublisher) PublishLeadCreated(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func TestCreateLeadSuccess(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, nil)

	output, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Equal(t, "Success! The lead has been securely saved to the database.", output.Msg)
	mockRepo.AssertNumberOfCalls(t, "Insert", 1)
}

func TestCreateLeadValidationFailureNeverTouchesStore(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	uc := NewCreateLeadUseCase(mockRepo, nil)

	input := validInput()
	input.Zipcode = "D02XY123"

	output, err := uc.Execute(context.Background(), input)

	assert.Nil(t, output)
	assert.True(t, IsDomainError(err))

	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Contains(t, domainErr.Fields, "zipcode")

	mockRepo.AssertNotCalled(t, "Insert")
}

func TestCreateLeadStoreFailure(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	uc := NewCreateLeadUseCase(mockRepo, nil)

	output, err := uc.Execute(context.Background(), validInput())

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
}

func TestCreateLeadSanitizesBeforePersisting(t *testing.T) {
	mockRepo := new(MockLeadRepository)

	var stored *entity.Lead
	mockRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*entity.Lead)
	}).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, nil)

	// Passes validation but still carries a character worth escaping once
	// stored. The name rules forbid specials, email does not.
	input := validInput()
	input.Email = "o'brien@b.com"

	_, err := uc.Execute(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "o&#39;brien@b.com", stored.Email)
}

func TestCreateLeadPublishesEvent(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	mockEvents := new(MockLeadEventPublisher)
	mockEvents.On("PublishLeadCreated", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreateLeadUseCase(mockRepo, mockEvents)

	_, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	mockEvents.AssertNumberOfCalls(t, "PublishLeadCreated", 1)
}

func TestCreateLeadEventFailureDoesNotFailRequest(t *testing.T) {
	mockRepo := new(MockLeadRepository)
	mockRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	mockEvents := new(MockLeadEventPublisher)
	mockEvents.On("PublishLeadCreated", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	uc := NewCreateLeadUseCase(mockRepo, mockEvents)

	output, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.NotNil(t, output)
}
