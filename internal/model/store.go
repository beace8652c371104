package model

// Store is the reference list of audited points of sale. Name is unique
// case-insensitively; uniqueness is checked in the service layer and backed
// by an expression index on lower(name).
type Store struct {
	ID        uint    `gorm:"primaryKey;autoIncrement"`
	Name      string  `gorm:"size:120;not null"`
	Provincia *string `gorm:"size:80"`
	Formato   *string `gorm:"size:60"`
	Cliente   *string `gorm:"size:120"`
}

func (Store) TableName() string { return "stores" }
