package services

import (
	"errors"
	"testing"

	"suredoor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageRepository struct {
	mock.Mock
}

var _ MessageRepository = (*MockMessageRepository)(nil)

func (m *MockMessageRepository) GetMessages() ([]models.ContactMessage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockMessageRepository) CreateMessage(msg *models.ContactMessage) error {
	return m.Called(msg).Error(0)
}

func (m *MockMessageRepository) MarkMessageRead(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessageRepository) DeleteMessage(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessageRepository) CountUnreadMessages() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func TestMessageService_MarkAsRead(t *testing.T) {
	tests := []struct {
		name        string
		found       bool
		repoErr     error
		expectedErr error
	}{
		{name: "Success", found: true},
		{name: "Error - not found", found: false, expectedErr: ErrMessageNotFound},
		{name: "Error - repository", repoErr: errors.New("db locked"), expectedErr: errors.New("db locked")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockMessageRepository)
			repo.On("MarkMessageRead", "m1").Return(tt.found, tt.repoErr)
			repo.On("DeleteMessage", "m1").Return(tt.found, tt.repoErr)
			service := NewMessageService(repo)

			markErr := service.MarkAsRead("m1")
			deleteErr := service.Delete("m1")

			if tt.expectedErr != nil {
				assert.EqualError(t, markErr, tt.expectedErr.Error())
				assert.EqualError(t, deleteErr, tt.expectedErr.Error())
			} else {
				assert.NoError(t, markErr)
				assert.NoError(t, deleteErr)
			}
		})
	}
}

func TestMessageService_Create(t *testing.T) {
	repo := new(MockMessageRepository)
	repo.On("CreateMessage", mock.AnythingOfType("*models.ContactMessage")).Return(nil)

	msg, err := NewMessageService(repo).Create(models.ContactRequest{
		Name:    " Ngozi ",
		Email:   "ngozi@example.org",
		Subject: "Volunteering",
		Message: "I would like to help with outreach.",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ngozi", msg.Name)
	assert.False(t, msg.Read)
	assert.NotEmpty(t, msg.ID)
}

func TestMessageService_List(t *testing.T) {
	messages := []models.ContactMessage{
		{ID: "1", Name: "Ngozi", Subject: "Volunteering", Read: true},
		{ID: "2", Name: "Emeka", Subject: "Partnership", Read: false},
		{ID: "3", Name: "Bisi", Email: "bisi@volunteer.ng", Subject: "Hello", Read: false},
	}

	tests := []struct {
		name     string
		query    MessageQuery
		expected []string
	}{
		{name: "all", query: MessageQuery{}, expected: []string{"1", "2", "3"}},
		{name: "unread", query: MessageQuery{Status: FilterUnread}, expected: []string{"2", "3"}},
		{name: "read", query: MessageQuery{Status: FilterRead}, expected: []string{"1"}},
		{name: "search subject and email", query: MessageQuery{Search: "volunteer"}, expected: []string{"1", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockMessageRepository)
			repo.On("GetMessages").Return(messages, nil)

			got, err := NewMessageService(repo).List(tt.query)

			require.NoError(t, err)
			ids := make([]string, len(got))
			for i, m := range got {
				ids[i] = m.ID
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}
