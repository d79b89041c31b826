package model

import "time"

// Reference resources listed on the static pages.

type QuestionPaper struct {
	ID        string    `json:"id"         bson:"_id,omitempty"`
	Title     string    `json:"title"      bson:"title"`
	Subject   string    `json:"subject"    bson:"subject"`
	Year      int       `json:"year"       bson:"year"`
	FileURL   string    `json:"file_url"   bson:"file_url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type Textbook struct {
	ID        string    `json:"id"         bson:"_id,omitempty"`
	Title     string    `json:"title"      bson:"title"`
	Author    string    `json:"author"     bson:"author"`
	Subject   string    `json:"subject"    bson:"subject"`
	FileURL   string    `json:"file_url"   bson:"file_url"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
