package models

import "time"

// Post is a single authored text entry, optionally grouped and illustrated.
// Posts are listed newest-first everywhere; ordering lives in the repository
// queries, not here.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"type:text;not null" json:"text"`
	AuthorID uint   `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
	// GroupID is nullable: deleting a group clears the reference, the post survives.
	GroupID *uint  `gorm:"index" json:"group_id,omitempty"`
	Group   *Group `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	// Image is the stored media path of the optional attachment.
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}
