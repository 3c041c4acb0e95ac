package entities

// Quote is the only persisted entity. IDs are assigned by the import source,
// never by the database.
type Quote struct {
	ID     int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Quote  string `gorm:"not null" json:"quote" validate:"required"`
	Author string `gorm:"not null" json:"author"`
}

func (Quote) TableName() string {
	return "quotes"
}
