package record

import (
	"time"

	"kifu_vault/internal/domain/sgf"
)

// Record is one uploaded game record as stored in MongoDB. The raw SGF
// text lives in Redis under the record ID, not here.
type Record struct {
	ID         string         `json:"id" bson:"_id"`
	SessionKey string         `json:"-" bson:"session_key"`
	Filename   string         `json:"filename" bson:"filename"`
	Game       sgf.GameRecord `json:"game" bson:"game"`
	UploadedAt time.Time      `json:"uploaded_at" bson:"uploaded_at"`
}

// Summary is the list-view projection of a Record.
type Summary struct {
	ID         string       `json:"id"`
	Filename   string       `json:"filename"`
	Info       sgf.GameInfo `json:"info"`
	MoveCount  int          `json:"move_count"`
	UploadedAt time.Time    `json:"uploaded_at"`
}

func (r Record) Summary() Summary {
	return Summary{
		ID:         r.ID,
		Filename:   r.Filename,
		Info:       r.Game.Info,
		MoveCount:  len(r.Game.Moves),
		UploadedAt: r.UploadedAt,
	}
}

type UploadRequest struct {
	Filename string `json:"filename"`
	SGF      string `json:"sgf"`
}

type UploadResponse struct {
	Record Summary `json:"record"`
}

type ListResponse struct {
	Records []Summary `json:"records"`
	Page    int       `json:"page"`
}
