package models

// Comment is an append-only reply attached to a single diary. The author's
// username and avatar are snapshotted at submission time and never updated.
type Comment struct {
	ID       string `json:"id"`
	DiaryID  string `json:"diaryId"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
	Content  string `json:"content"`

	// CreatedAt is an RFC 3339 timestamp.
	CreatedAt string `json:"createdAt"`
}

// Diary is a single authored post. Views only grow; comments are only
// appended. There is no edit or delete.
type Diary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Excerpt    string    `json:"excerpt"`
	CoverImage string    `json:"coverImage"`
	Category   string    `json:"category"`
	Date       string    `json:"date"`
	Views      int       `json:"views"`
	Comments   []Comment `json:"comments"`
	Author     string    `json:"author"`
}

// Category is a fixed display-only content grouping.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
