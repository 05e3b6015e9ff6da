package model

type Message struct {
	ID        string `db:"id" json:"id"`
	FolderID  string `db:"folder_id" json:"-"`
	Content   string `db:"content" json:"content"`
	CreatedAt int64  `db:"created_at" json:"created_at"`
	UpdatedAt int64  `db:"updated_at" json:"updated_at"`
}
