package record

import (
	"context"
	"time"

	"github.com/google/uuid"

	recordDomain "kifu_vault/internal/domain/record"
	"kifu_vault/internal/domain/sgf"
	"kifu_vault/internal/export"
)

// RecordStore is what the use case needs from persistence. The mongo/redis
// repository implements it; tests plug in an in-memory fake.
type RecordStore interface {
	PutRecord(ctx context.Context, rec recordDomain.Record) error
	GetRecordByID(ctx context.Context, sessionKey string, id string) (recordDomain.Record, error)
	ListRecords(ctx context.Context, sessionKey string, pageNum int) ([]recordDomain.Record, error)
	DeleteRecord(ctx context.Context, sessionKey string, id string) error
	SaveSGFToRedis(ctx context.Context, id string, sgfText string) error
	LoadSGFFromRedis(ctx context.Context, id string) (string, error)
}

type SelectionStore interface {
	SetSelectedRecord(ctx context.Context, sessionKey string, recordID string) error
	GetSelectedRecord(ctx context.Context, sessionKey string) (string, error)
}

type RecordUseCase struct {
	store     RecordStore
	selection SelectionStore
}

func NewRecordUseCase(store RecordStore, selection SelectionStore) *RecordUseCase {
	return &RecordUseCase{store: store, selection: selection}
}

// Upload parses the SGF text and, only when the whole parse succeeds,
// persists the record and its raw text. A parse error means nothing is
// stored; the caller decides whether to keep going with other files.
func (u *RecordUseCase) Upload(ctx context.Context, sessionKey string, filename string, sgfText string) (recordDomain.Record, error) {
	game, err := sgf.Parse(sgfText)
	if err != nil {
		return recordDomain.Record{}, err
	}

	rec := recordDomain.Record{
		ID:         uuid.New().String(),
		SessionKey: sessionKey,
		Filename:   filename,
		Game:       *game,
		UploadedAt: time.Now().UTC(),
	}

	if err = u.store.PutRecord(ctx, rec); err != nil {
		return recordDomain.Record{}, err
	}
	if err = u.store.SaveSGFToRedis(ctx, rec.ID, sgfText); err != nil {
		return recordDomain.Record{}, err
	}

	return rec, nil
}

func (u *RecordUseCase) List(ctx context.Context, sessionKey string, pageNum int) ([]recordDomain.Summary, error) {
	if pageNum < 1 {
		pageNum = 1
	}
	records, err := u.store.ListRecords(ctx, sessionKey, pageNum)
	if err != nil {
		return nil, err
	}

	summaries := make([]recordDomain.Summary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, rec.Summary())
	}
	return summaries, nil
}

func (u *RecordUseCase) Get(ctx context.Context, sessionKey string, id string) (recordDomain.Record, error) {
	return u.store.GetRecordByID(ctx, sessionKey, id)
}

func (u *RecordUseCase) GetSGF(ctx context.Context, sessionKey string, id string) (string, error) {
	// ownership check first, the redis key is not session-scoped
	if _, err := u.store.GetRecordByID(ctx, sessionKey, id); err != nil {
		return "", err
	}
	return u.store.LoadSGFFromRedis(ctx, id)
}

func (u *RecordUseCase) Delete(ctx context.Context, sessionKey string, id string) error {
	return u.store.DeleteRecord(ctx, sessionKey, id)
}

func (u *RecordUseCase) Select(ctx context.Context, sessionKey string, id string) error {
	if _, err := u.store.GetRecordByID(ctx, sessionKey, id); err != nil {
		return err
	}
	return u.selection.SetSelectedRecord(ctx, sessionKey, id)
}

func (u *RecordUseCase) Selected(ctx context.Context, sessionKey string) (recordDomain.Record, error) {
	id, err := u.selection.GetSelectedRecord(ctx, sessionKey)
	if err != nil {
		return recordDomain.Record{}, err
	}
	return u.store.GetRecordByID(ctx, sessionKey, id)
}

func (u *RecordUseCase) ExportPDF(ctx context.Context, sessionKey string, id string) ([]byte, error) {
	rec, err := u.store.GetRecordByID(ctx, sessionKey, id)
	if err != nil {
		return nil, err
	}
	return export.RenderMoveSheet(rec)
}
