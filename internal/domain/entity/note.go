package entity

// Note belongs to exactly one owner. Read access can be granted to other
// users through the note_shares join table; a grant never transfers
// ownership.
//
// The compound unique index on (owner_id, title) enforces the per-owner
// duplicate-title policy at the storage layer, closing the race between the
// application-level existence check and the insert.
type Note struct {
	ID          int    `gorm:"primaryKey"`
	Title       string `gorm:"not null;uniqueIndex:idx_owner_title"`
	Description string `gorm:"not null"`
	Content     string `gorm:"not null"`
	OwnerID     int    `gorm:"not null;uniqueIndex:idx_owner_title"` // References: users(id)
	CreatedAt   int64  `gorm:"not null"`
	UpdatedAt   int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Owner      User    `gorm:"foreignKey:OwnerID;references:ID"`
	SharedWith []*User `gorm:"many2many:note_shares"`
}

// NoteShare is the join row behind Note.SharedWith. Modeled explicitly so
// repositories can build subqueries against it without raw table names,
// which would break under a configured table prefix.
type NoteShare struct {
	NoteID int `gorm:"primaryKey"`
	UserID int `gorm:"primaryKey"`
}
