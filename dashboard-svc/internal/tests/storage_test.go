package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"foodplate-dashboard/dashboard-svc/internal/domain"
	"foodplate-dashboard/dashboard-svc/internal/mocks"
	"foodplate-dashboard/dashboard-svc/internal/service"
	"foodplate-dashboard/dashboard-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	writer := new(mocks.MessageWriter)
	publisher := storage.NewKafkaPublisher(writer)
	event := domain.FoodEvent{
		Type:      domain.EventFoodAvailabilityChanged,
		FoodID:    12,
		Available: true,
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	writer.On("WriteMessages", mock.Anything, mock.MatchedBy(func(msgs []kafka.Message) bool {
		if len(msgs) != 1 || string(msgs[0].Key) != "12" {
			return false
		}
		var decoded domain.FoodEvent
		if err := json.Unmarshal(msgs[0].Value, &decoded); err != nil {
			return false
		}
		return decoded.Type == event.Type && decoded.Available && decoded.Timestamp.Equal(event.Timestamp)
	})).Return(nil).Once()

	require.NoError(t, publisher.Publish(context.Background(), event))
	writer.AssertExpectations(t)
}

func TestKafkaPublisher_WriterError(t *testing.T) {
	writer := new(mocks.MessageWriter)
	publisher := storage.NewKafkaPublisher(writer)
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("leader not available")).Once()

	assert.Error(t, publisher.Publish(context.Background(), domain.FoodEvent{FoodID: 1}))
}

func TestPostgresJournal_Record(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	journal := storage.NewPostgresJournal(db)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	sqlMock.ExpectExec("INSERT INTO dashboard_activity").
		WithArgs(domain.OpToggle, int64(3), false, "timeout", at).
		WillReturnResult(sqlmock.NewResult(1, 1))
	sqlMock.ExpectExec("INSERT INTO dashboard_activity").
		WithArgs(domain.OpLoad, nil, true, nil, at).
		WillReturnResult(sqlmock.NewResult(2, 1))

	ctx := context.Background()
	require.NoError(t, journal.Record(ctx, domain.ActivityEntry{Operation: domain.OpToggle, FoodID: 3, Error: "timeout", CreatedAt: at}))
	require.NoError(t, journal.Record(ctx, domain.ActivityEntry{Operation: domain.OpLoad, Succeeded: true, CreatedAt: at}))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresJournal_Recent(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	journal := storage.NewPostgresJournal(db)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "operation", "food_id", "succeeded", "error", "created_at"}).
		AddRow(2, domain.OpDelete, 4, true, "", at).
		AddRow(1, domain.OpLoad, 0, false, "connection refused", at)
	sqlMock.ExpectQuery("SELECT id, operation").WithArgs(10).WillReturnRows(rows)

	entries, err := journal.Recent(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, []domain.ActivityEntry{
		{ID: 2, Operation: domain.OpDelete, FoodID: 4, Succeeded: true, CreatedAt: at},
		{ID: 1, Operation: domain.OpLoad, Succeeded: false, Error: "connection refused", CreatedAt: at},
	}, entries)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestPostgresJournal_Migrate(t *testing.T) {
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlMock.ExpectExec("CREATE TABLE IF NOT EXISTS dashboard_activity").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, storage.NewPostgresJournal(db).Migrate(context.Background()))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestRedisSnapshotStore_SaveAndRestore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ttl := 10 * time.Minute
	store := storage.NewRedisSnapshotStore(client, ttl)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, seedFoods()))

	assert.True(t, mr.Exists(storage.SnapshotKey))
	assert.Equal(t, ttl, mr.TTL(storage.SnapshotKey))

	foods, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, seedFoods(), foods)

	mr.FastForward(ttl)
	_, err = store.Restore(ctx)
	assert.True(t, errors.Is(err, redis.Nil))
}

func TestRedisSnapshotStore_RestoreMissing(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	foods, err := storage.NewRedisSnapshotStore(client, time.Minute).Restore(context.Background())

	assert.True(t, errors.Is(err, redis.Nil))
	assert.Nil(t, foods)
}

func TestRedisSnapshotStore_RestoreCorrupt(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	require.NoError(t, mr.Set(storage.SnapshotKey, "not json"))

	_, err := storage.NewRedisSnapshotStore(client, time.Minute).Restore(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode snapshot")
}

func TestSynchronizer_WarmFromRedisSnapshot(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := storage.NewRedisSnapshotStore(client, time.Minute)
	require.NoError(t, store.Save(context.Background(), seedFoods()))

	api := mocks.NewFoodsAPI(t)
	api.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	sync := service.NewSynchronizer(api, store, nil, nil)

	require.NoError(t, sync.Warm(context.Background()))
	assert.Equal(t, seedFoods(), sync.Foods())
}

func TestRedisSnapshotStore_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer client.Close()

	store := storage.NewRedisSnapshotStore(client, time.Minute)

	assert.Error(t, store.Save(context.Background(), seedFoods()))
	_, err := store.Restore(context.Background())
	assert.Error(t, err)
}

func TestMenuCardQRGenerator(t *testing.T) {
	gen := service.MenuCardQRGenerator{BaseURL: "http://localhost:8080/"}

	assert.Equal(t, "http://localhost:8080/foods/7", gen.Link(7))

	png, err := gen.Generate(7)
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}
