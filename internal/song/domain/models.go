package domain

// Song metadata; the blob itself lives in the object store under
// songs/<SongFileName>.
type Song struct {
	SongTitle    string `gorm:"column:song_title;primaryKey" json:"song_title"`
	Lyrics       string `gorm:"column:lyrics" json:"lyrics"`
	ListenSlots  int    `gorm:"column:num_listening_slots;not null" json:"num_listening_slots"`
	Country      string `gorm:"column:country" json:"country"`
	SongFileName string `gorm:"column:song_file_name" json:"song_file_name"`
}

func (Song) TableName() string { return "song_info" }

// Summary is one row of the aggregate listing view.
type Summary struct {
	Title       string `gorm:"column:title" json:"title"`
	Country     string `gorm:"column:country" json:"country"`
	CountryCode string `gorm:"-" json:"country_code,omitempty"`
	ListenSlots int    `gorm:"column:listen_slots" json:"listen_slots"`
	CheckedOut  int    `gorm:"column:checked_out" json:"checked_out"`
	Available   bool   `gorm:"-" json:"available"`
}
