package repo

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"kifu_vault/internal/bootstrap"
	"kifu_vault/internal/domain/record"
	ownErrors "kifu_vault/internal/errors"
)

const sgfKeyPrefix = "sgf:"

type RecordRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
	mongo *mongo.Database
}

func NewRecordRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redisClient *redis.Client, mongoDB *mongo.Database) *RecordRepository {
	return &RecordRepository{
		cfg:   cfg,
		log:   log,
		redis: redisClient,
		mongo: mongoDB,
	}
}

func (r *RecordRepository) PutRecord(ctx context.Context, rec record.Record) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.mongo.Collection("records")

	_, err := collection.InsertOne(ctx, rec)
	if err != nil {
		r.log.Errorf("failed to insert record to database: %v", err)
		return ownErrors.ErrStoreFailed
	}

	r.log.Infof("record %s stored for session %s", rec.ID, rec.SessionKey)
	return nil
}

func (r *RecordRepository) GetRecordByID(ctx context.Context, sessionKey string, id string) (record.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.mongo.Collection("records")

	filter := bson.M{
		"_id":         id,
		"session_key": sessionKey,
	}

	var rec record.Record
	err := collection.FindOne(ctx, filter).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return record.Record{}, ownErrors.ErrRecordNotFound
	} else if err != nil {
		r.log.Error(err)
		return record.Record{}, err
	}

	return rec, nil
}

func (r *RecordRepository) ListRecords(ctx context.Context, sessionKey string, pageNum int) ([]record.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.mongo.Collection("records")

	filter := bson.M{"session_key": sessionKey}

	limit := int64(r.cfg.PageLimitRecords)
	opts := options.Find().
		SetSort(bson.M{"uploaded_at": -1}).
		SetSkip(int64(pageNum-1) * limit).
		SetLimit(limit)

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		r.log.Errorf("failed to list records: %v", err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []record.Record
	if err = cursor.All(ctx, &records); err != nil {
		r.log.Errorf("failed to decode records: %v", err)
		return nil, err
	}

	return records, nil
}

func (r *RecordRepository) DeleteRecord(ctx context.Context, sessionKey string, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	collection := r.mongo.Collection("records")

	res, err := collection.DeleteOne(ctx, bson.M{"_id": id, "session_key": sessionKey})
	if err != nil {
		r.log.Errorf("failed to delete record %s: %v", id, err)
		return err
	}
	if res.DeletedCount == 0 {
		return ownErrors.ErrRecordNotFound
	}

	return r.redis.Del(ctx, sgfKeyPrefix+id).Err()
}

func (r *RecordRepository) SaveSGFToRedis(ctx context.Context, id string, sgfText string) error {
	return r.redis.Set(ctx, sgfKeyPrefix+id, sgfText, 0).Err()
}

func (r *RecordRepository) LoadSGFFromRedis(ctx context.Context, id string) (string, error) {
	text, err := r.redis.Get(ctx, sgfKeyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return "", ownErrors.ErrRecordNotFound
	}
	return text, err
}
