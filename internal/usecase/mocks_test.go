package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/travelog-service/internal/domain"
)

// MockEntityRepository is a mock of EntityRepository
type MockEntityRepository struct {
	mock.Mock
}

func (m *MockEntityRepository) GetByID(ctx context.Context, id int64) (*domain.Entity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) Find(ctx context.Context, abbr, code, aux string) ([]*domain.Entity, error) {
	args := m.Called(ctx, abbr, code, aux)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) Search(ctx context.Context, term, abbr string, limit int) ([]*domain.Entity, error) {
	args := m.Called(ctx, term, abbr, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) AdvancedSearch(ctx context.Context, terms []string, abbr string, limit int) ([]*domain.Entity, error) {
	args := m.Called(ctx, terms, abbr, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) ByIDs(ctx context.Context, ids []int64) ([]*domain.Entity, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) ByType(ctx context.Context, abbr string) ([]*domain.Entity, error) {
	args := m.Called(ctx, abbr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) Countries(ctx context.Context) ([]*domain.Entity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) Country(ctx context.Context, code string) (*domain.Entity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) RelatedTypes(ctx context.Context, e *domain.Entity) ([]domain.RelatedTypeCount, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RelatedTypeCount), args.Error(1)
}

func (m *MockEntityRepository) RelatedByType(ctx context.Context, e *domain.Entity, target *domain.EntityType) ([]*domain.Entity, error) {
	args := m.Called(ctx, e, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entity), args.Error(1)
}

func (m *MockEntityRepository) LoadRelated(ctx context.Context, entities []*domain.Entity, relations []string) error {
	args := m.Called(ctx, entities, relations)
	return args.Error(0)
}

func (m *MockEntityRepository) SetFlag(ctx context.Context, entityID, flagID int64) error {
	args := m.Called(ctx, entityID, flagID)
	return args.Error(0)
}

// MockEntityTypeRepository is a mock of EntityTypeRepository
type MockEntityTypeRepository struct {
	mock.Mock
}

func (m *MockEntityTypeRepository) GetByAbbr(ctx context.Context, abbr string) (*domain.EntityType, error) {
	args := m.Called(ctx, abbr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntityType), args.Error(1)
}

func (m *MockEntityTypeRepository) List(ctx context.Context) ([]*domain.EntityType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.EntityType), args.Error(1)
}

// MockEntityInfoRepository is a mock of EntityInfoRepository
type MockEntityInfoRepository struct {
	mock.Mock
}

func (m *MockEntityInfoRepository) GetByEntityID(ctx context.Context, entityID int64) (*domain.EntityInfo, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntityInfo), args.Error(1)
}

// MockTravelLogRepository is a mock of TravelLogRepository
type MockTravelLogRepository struct {
	mock.Mock
}

func (m *MockTravelLogRepository) Create(ctx context.Context, log *domain.TravelLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockTravelLogRepository) GetByID(ctx context.Context, id int64) (*domain.TravelLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelLog), args.Error(1)
}

func (m *MockTravelLogRepository) UpdateNotes(ctx context.Context, id int64, notes string) error {
	args := m.Called(ctx, id, notes)
	return args.Error(0)
}

func (m *MockTravelLogRepository) UpdateRating(ctx context.Context, id int64, rating int) error {
	args := m.Called(ctx, id, rating)
	return args.Error(0)
}

func (m *MockTravelLogRepository) ListForUser(ctx context.Context, userID int64, limit int) ([]*domain.TravelLog, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TravelLog), args.Error(1)
}

func (m *MockTravelLogRepository) Checklist(ctx context.Context, userID int64) (map[int64]int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}

func (m *MockTravelLogRepository) CountForEntities(ctx context.Context, userID int64, entityIDs []int64) (map[int64]int, error) {
	args := m.Called(ctx, userID, entityIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int), args.Error(1)
}

func (m *MockTravelLogRepository) UserHistory(ctx context.Context, userID int64) ([]*domain.Entity, []*domain.TravelLog, error) {
	args := m.Called(ctx, userID)
	var entities []*domain.Entity
	var logs []*domain.TravelLog
	if args.Get(0) != nil {
		entities = args.Get(0).([]*domain.Entity)
	}
	if args.Get(1) != nil {
		logs = args.Get(1).([]*domain.TravelLog)
	}
	return entities, logs, args.Error(2)
}

// MockBucketListRepository is a mock of BucketListRepository
type MockBucketListRepository struct {
	mock.Mock
}

func (m *MockBucketListRepository) GetByID(ctx context.Context, id int64) (*domain.BucketList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BucketList), args.Error(1)
}

func (m *MockBucketListRepository) ForUser(ctx context.Context, user domain.Identity) ([]*domain.BucketList, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BucketList), args.Error(1)
}

func (m *MockBucketListRepository) Create(ctx context.Context, list *domain.BucketList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockBucketListRepository) Entities(ctx context.Context, listID int64) ([]*domain.Entity, error) {
	args := m.Called(ctx, listID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entity), args.Error(1)
}

func (m *MockBucketListRepository) AddEntities(ctx context.Context, listID int64, entityIDs []int64) error {
	args := m.Called(ctx, listID, entityIDs)
	return args.Error(0)
}

func (m *MockBucketListRepository) RemoveEntity(ctx context.Context, listID, entityID int64) error {
	args := m.Called(ctx, listID, entityID)
	return args.Error(0)
}

// MockProfileRepository is a mock of ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) ForUser(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Public(ctx context.Context) ([]*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) SetAccess(ctx context.Context, userID int64, access domain.AccessLevel) error {
	args := m.Called(ctx, userID, access)
	return args.Error(0)
}

// MockFlagRepository is a mock of FlagRepository
type MockFlagRepository struct {
	mock.Mock
}

func (m *MockFlagRepository) GetByID(ctx context.Context, id int64) (*domain.Flag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flag), args.Error(1)
}

func (m *MockFlagRepository) Create(ctx context.Context, flag *domain.Flag) error {
	args := m.Called(ctx, flag)
	return args.Error(0)
}

func (m *MockFlagRepository) UpdateSource(ctx context.Context, id int64, source string) error {
	args := m.Called(ctx, id, source)
	return args.Error(0)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetSearch(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetSearch(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, data, ttl)
	return args.Error(0)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) Publish(ctx context.Context, stream string, payload interface{}) error {
	args := m.Called(ctx, stream, payload)
	return args.Error(0)
}

func (m *MockStreamRepository) Consume(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) Ack(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}
