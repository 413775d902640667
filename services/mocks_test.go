package services

import (
	"context"
	"time"

	"suredoor/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

type MockBlogRepository struct {
	mock.Mock
}

var _ BlogRepository = (*MockBlogRepository)(nil)

func (m *MockBlogRepository) GetBlogPosts(publishedOnly bool) ([]models.BlogPost, error) {
	args := m.Called(publishedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBlogPostByID(id string) (*models.BlogPost, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) GetBlogPostBySlug(slug string) (*models.BlogPost, error) {
	args := m.Called(slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) BlogSlugExists(slug, excludeID string) (bool, error) {
	args := m.Called(slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlogRepository) CreateBlogPost(p *models.BlogPost) error {
	return m.Called(p).Error(0)
}

func (m *MockBlogRepository) UpdateBlogPost(p *models.BlogPost) error {
	return m.Called(p).Error(0)
}

func (m *MockBlogRepository) DeleteBlogPost(id string) error {
	return m.Called(id).Error(0)
}

// MockImageRemover records queued image deletions
type MockImageRemover struct {
	mock.Mock
}

var _ ImageRemover = (*MockImageRemover)(nil)

func (m *MockImageRemover) DeleteImage(ctx context.Context, url, bucket string) (bool, error) {
	args := m.Called(url, bucket)
	return args.Bool(0), args.Error(1)
}

type MockSessionStore struct {
	mock.Mock
}

var _ SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(email string) (*models.Session, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Get(sessionID string) (*models.Session, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(sessionID string) error {
	return m.Called(sessionID).Error(0)
}

func (m *MockSessionStore) DeleteAllFor(email string) error {
	return m.Called(email).Error(0)
}

type MockDashboardRepository struct {
	mock.Mock
}

var _ DashboardRepository = (*MockDashboardRepository)(nil)

func (m *MockDashboardRepository) CountBlogPosts() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountPrograms() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountEvents() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountTeamMembers() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountGalleryImages() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountUnreadMessages() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) CountPendingDeletions() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepository) GetFailedDeletions(limit int) ([]models.StorageDeletion, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StorageDeletion), args.Error(1)
}

func (m *MockDashboardRepository) GetMessages() ([]models.ContactMessage, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockDashboardRepository) GetDonationStats(monthStart time.Time) (*models.DonationStats, error) {
	args := m.Called(monthStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DonationStats), args.Error(1)
}

type MockDeletionQueue struct {
	mock.Mock
}

var _ DeletionQueue = (*MockDeletionQueue)(nil)

func (m *MockDeletionQueue) EnqueueDeletion(bucket, key string) error {
	return m.Called(bucket, key).Error(0)
}

type MockDeletionWorker struct {
	mock.Mock
}

var _ DeletionWorker = (*MockDeletionWorker)(nil)

func (m *MockDeletionWorker) DeleteNow() {
	m.Called()
}

// fakeSettingsRepo keeps settings in a map; auth tests care about stored
// state more than call sequences
type fakeSettingsRepo struct {
	values  map[string]string
	failGet error
}

var _ SettingsRepository = (*fakeSettingsRepo)(nil)

func newFakeSettingsRepo(values map[string]string) *fakeSettingsRepo {
	if values == nil {
		values = map[string]string{}
	}
	return &fakeSettingsRepo{values: values}
}

func (f *fakeSettingsRepo) GetSettings() ([]models.SiteSetting, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	out := make([]models.SiteSetting, 0, len(f.values))
	for k, v := range f.values {
		out = append(out, models.SiteSetting{ID: k, Key: k, Value: v})
	}
	return out, nil
}

func (f *fakeSettingsRepo) GetSettingsMap() (map[string]string, error) {
	if f.failGet != nil {
		return nil, f.failGet
	}
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out, nil
}

func (f *fakeSettingsRepo) GetSetting(key string) (*models.SiteSetting, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, nil
	}
	return &models.SiteSetting{ID: key, Key: key, Value: v}, nil
}

func (f *fakeSettingsRepo) UpsertSetting(key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeSettingsRepo) UpsertSettings(values map[string]string) error {
	for k, v := range values {
		f.values[k] = v
	}
	return nil
}

func (f *fakeSettingsRepo) DeleteSetting(key string) error {
	delete(f.values, key)
	return nil
}
