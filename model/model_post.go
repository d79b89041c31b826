package model

import "time"

// Post types. Plain posts carry TypePost; the other variants add
// type-specific fields (DocumentURL for notes, JobLink/ReferralInfo for jobs).
const (
	TypePost   = "post"
	TypeNote   = "note"
	TypeJob    = "job"
	TypeThread = "thread"
)

// Categories the frontend offers. The field itself stays an open string,
// matching what the store accepts.
var Categories = []string{
	"AI-ML",
	"Programming",
	"Telecommunications",
	"Study Tips",
	"Career",
	"Other",
}

type Post struct {
	ID             string    `json:"id"                        bson:"_id,omitempty"`
	Type           string    `json:"type"                      bson:"type"`
	Title          string    `json:"title"                     bson:"title"`
	Excerpt        string    `json:"excerpt"                   bson:"excerpt"`
	Author         string    `json:"author"                    bson:"author"`
	AuthorUsername string    `json:"author_username,omitempty" bson:"author_username,omitempty"`
	Date           time.Time `json:"date"                      bson:"date"`
	Category       string    `json:"category"                  bson:"category"`
	ReadTime       string    `json:"read_time,omitempty"       bson:"read_time,omitempty"`
	Image          string    `json:"image,omitempty"           bson:"image,omitempty"`
	Tags           []string  `json:"tags"                      bson:"tags"`
	Likes          []Like    `json:"likes"                     bson:"likes"`
	LikeCount      int       `json:"like_count"                bson:"like_count"`
	Content        string    `json:"content,omitempty"         bson:"content,omitempty"`
	Comments       []Comment `json:"comments"                  bson:"comments"`
	DocumentURL    string    `json:"document_url,omitempty"    bson:"document_url,omitempty"`
	JobLink        string    `json:"job_link,omitempty"        bson:"job_link,omitempty"`
	ReferralInfo   string    `json:"referral_info,omitempty"   bson:"referral_info,omitempty"`
}

// PostDraft is what a caller supplies at creation time. The store fills
// the rest (id, date, empty likes/comments, defaults).
type PostDraft struct {
	Type           string
	Title          string
	Excerpt        string
	Content        string
	Category       string
	Tags           []string
	Author         string
	AuthorUsername string
	Image          string
	DocumentURL    string
	JobLink        string
	ReferralInfo   string
}
