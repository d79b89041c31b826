package model

import "time"

type Comment struct {
	UserID    string    `json:"user_id"    bson:"user_id"`
	UserName  string    `json:"user_name"  bson:"user_name"`
	Text      string    `json:"text"       bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
