package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// SongCheckedOut is one active listening slot. Rows are deleted when
// the slot is released; its per-title count against the song's
// capacity is the availability invariant.
type SongCheckedOut struct {
	ID               snowflake.ID `gorm:"column:id;primaryKey" json:"id"`
	UserID           int64        `gorm:"column:user_id;not null;index" json:"user_id"`
	SongTitle        string       `gorm:"column:song_title;not null;index" json:"song_title"`
	CheckoutDatetime time.Time    `gorm:"column:checkout_datetime;not null" json:"checkout_datetime"`
}

func (SongCheckedOut) TableName() string { return "song_checked_out" }

// UserCheckedOut is append-only listening history; it is never deleted,
// so the lifetime play count derives from it.
type UserCheckedOut struct {
	ID               snowflake.ID `gorm:"column:id;primaryKey" json:"id"`
	UserID           int64        `gorm:"column:user_id;not null;index" json:"user_id"`
	SongTitle        string       `gorm:"column:song_title;not null;index" json:"song_title"`
	CheckoutDatetime time.Time    `gorm:"column:checkout_datetime;not null" json:"checkout_datetime"`
}

func (UserCheckedOut) TableName() string { return "user_checked_out" }

// Event mirrors one checkout into the document store. EventID is the
// checkout's snowflake id, so a re-publish cannot double-count.
type Event struct {
	EventID          int64  `bson:"_id"`
	UserID           int64  `bson:"user_id"`
	SongTitle        string `bson:"song_title"`
	CheckOutDateTime int64  `bson:"checkOutDateTime"`
}
