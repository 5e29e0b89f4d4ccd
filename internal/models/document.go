package models

import "time"

// TypeCV is the document category that is kept unique per user.
const TypeCV = "cv"

// Document is a stored file's metadata row. FileURL holds the object-store
// key, not a public URL; access goes through short-lived signed links.
type Document struct {
	ID       string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Title    string `gorm:"column:title;type:text;not null" json:"title"`
	FileURL  string `gorm:"column:file_url;type:text;not null" json:"fileUrl"`
	Type     string `gorm:"column:type;type:text;not null;default:cv" json:"type"`
	FileSize int64  `gorm:"column:file_size;type:bigint" json:"fileSize"`
	MimeType string `gorm:"column:mime_type;type:text" json:"mimeType"`

	UploadedAt time.Time `gorm:"column:uploaded_at;type:timestamptz" json:"uploadedAt"`
	UserID     string    `gorm:"column:user_id;type:uuid;index" json:"userId"`
}

func (Document) TableName() string { return "documents" }
