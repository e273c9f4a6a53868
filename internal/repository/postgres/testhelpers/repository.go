package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/travelog-service/internal/domain/repository"
	"github.com/travelog-service/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewEntityRepositoryForTest creates an entity repository over a test database
func NewEntityRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.EntityRepository {
	return postgres.NewEntityRepository(postgres.NewDBForTest(db, logger))
}

// NewEntityTypeRepositoryForTest creates an entity type repository over a test database
func NewEntityTypeRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.EntityTypeRepository {
	return postgres.NewEntityTypeRepository(postgres.NewDBForTest(db, logger))
}

// NewEntityInfoRepositoryForTest creates an entity info repository over a test database
func NewEntityInfoRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.EntityInfoRepository {
	return postgres.NewEntityInfoRepository(postgres.NewDBForTest(db, logger))
}

// NewTravelLogRepositoryForTest creates a travel log repository over a test database
func NewTravelLogRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TravelLogRepository {
	return postgres.NewTravelLogRepository(postgres.NewDBForTest(db, logger))
}

// NewBucketListRepositoryForTest creates a bucket list repository over a test database
func NewBucketListRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.BucketListRepository {
	testDB := postgres.NewDBForTest(db, logger)
	return postgres.NewBucketListRepository(testDB, postgres.NewEntityRepository(testDB))
}

// NewProfileRepositoryForTest creates a profile repository over a test database
func NewProfileRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.ProfileRepository {
	return postgres.NewProfileRepository(postgres.NewDBForTest(db, logger))
}

// NewFlagRepositoryForTest creates a flag repository over a test database
func NewFlagRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.FlagRepository {
	return postgres.NewFlagRepository(postgres.NewDBForTest(db, logger))
}
