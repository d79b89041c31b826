package model

// Like is one liker identity on a post. A post holds at most one Like
// per UserID. The same pair doubles as the caller identity handed to the
// store by the HTTP layer.
type Like struct {
	UserID   string `json:"user_id"   bson:"user_id"`
	UserName string `json:"user_name" bson:"user_name"`
}
