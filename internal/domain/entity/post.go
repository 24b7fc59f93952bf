package entity

import "time"

// PostCategory tags a discussion post with the board it belongs to.
type PostCategory string

const (
	PostBusking   PostCategory = "BUSKING"
	PostCommunity PostCategory = "COMMUNITY"
	PostLesson    PostCategory = "LESSON"
	PostEvent     PostCategory = "EVENT"
	PostNayogi    PostCategory = "NAYOGI"
	PostGarden    PostCategory = "GARDEN"
)

// PostCategories is the closed set of board tags, in display order.
var PostCategories = []PostCategory{
	PostBusking, PostCommunity, PostLesson, PostEvent, PostNayogi, PostGarden,
}

func ValidPostCategory(s string) bool {
	for _, c := range PostCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Post is a category-tagged discussion board entry.
type Post struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Category  PostCategory `json:"category"`
	UserID    string       `json:"userId"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Owner     *Owner       `json:"user,omitempty"`
}
