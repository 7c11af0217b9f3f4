package model

import "time"

// SocialPost is an entry of the feed
type SocialPost struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Likes     int       `json:"likes"`
	Author    UserRef   `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreatePostRequest struct {
	Text     string `json:"text" binding:"required"`
	Author   string `json:"author" binding:"required"`
	ImageURL string `json:"imageUrl"`
}
