package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/student-hub/backend/model"
)

// MongoStore is the durable PostStore. Documents use the same shape as
// the wire format; newest-first order comes from sorting on date.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	return &MongoStore{col: client.Database(dbName).Collection("blog_posts")}
}

func (s *MongoStore) List(ctx context.Context) ([]model.Post, error) {
	cur, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []model.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Post{}, ErrPostNotFound
	}
	if err != nil {
		return model.Post{}, err
	}
	return post, nil
}

func (s *MongoStore) ListByCategory(ctx context.Context, category string) ([]model.Post, error) {
	filter := bson.M{"category": bson.M{"$regex": "^" + escapeRegex(category) + "$", "$options": "i"}}
	cur, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []model.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoStore) Create(ctx context.Context, draft model.PostDraft) (model.Post, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return model.Post{}, ErrInvalidInput
	}

	post := model.Post{
		ID:             uuid.NewString(),
		Type:           draft.Type,
		Title:          draft.Title,
		Excerpt:        draft.Excerpt,
		Author:         draft.Author,
		AuthorUsername: draft.AuthorUsername,
		Date:           time.Now().UTC(),
		Category:       draft.Category,
		ReadTime:       "3 min read",
		Image:          draft.Image,
		Tags:           draft.Tags,
		Likes:          []model.Like{},
		Comments:       []model.Comment{},
		Content:        draft.Content,
		DocumentURL:    draft.DocumentURL,
		JobLink:        draft.JobLink,
		ReferralInfo:   draft.ReferralInfo,
	}
	if post.Type == "" {
		post.Type = model.TypePost
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if _, err := s.col.InsertOne(ctx, post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

func (s *MongoStore) ToggleLike(ctx context.Context, postID string, who model.Like) (bool, int, error) {
	// One pipeline update: the toggle and the like_count derivation run
	// in the same statement, so concurrent toggles cannot leave
	// like_count disagreeing with the likes array.
	toggle := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"likes": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{who.UserID, "$likes.user_id"}},
				bson.M{"$filter": bson.M{
					"input": "$likes",
					"as":    "l",
					"cond":  bson.M{"$ne": bson.A{"$$l.user_id", who.UserID}},
				}},
				bson.M{"$concatArrays": bson.A{"$likes", bson.A{who}}},
			}},
		}}},
		{{Key: "$set", Value: bson.M{"like_count": bson.M{"$size": "$likes"}}}},
	}

	var post model.Post
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": postID}, toggle,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, 0, ErrPostNotFound
	}
	if err != nil {
		return false, 0, err
	}

	liked := false
	for _, l := range post.Likes {
		if l.UserID == who.UserID {
			liked = true
			break
		}
	}
	return liked, post.LikeCount, nil
}

func (s *MongoStore) ListComments(ctx context.Context, postID string) ([]model.Comment, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Comments == nil {
		return []model.Comment{}, nil
	}
	return post.Comments, nil
}

func (s *MongoStore) AddComment(ctx context.Context, postID string, who model.Like, text string) (model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return model.Comment{}, ErrInvalidInput
	}
	if _, err := s.Get(ctx, postID); err != nil {
		return model.Comment{}, err
	}

	com := model.Comment{
		UserID:    who.UserID,
		UserName:  who.UserName,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.col.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$push": bson.M{"comments": com}})
	if err != nil {
		return model.Comment{}, err
	}
	return com, nil
}

func (s *MongoStore) Seed(ctx context.Context, posts []model.Post) (bool, int64, error) {
	existing, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, 0, err
	}
	if existing > 0 {
		return false, existing, nil
	}

	docs := make([]interface{}, 0, len(posts))
	for _, p := range posts {
		docs = append(docs, p)
	}
	if _, err := s.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return false, 0, err
	}
	return true, int64(len(posts)), nil
}

var regexSpecials = "\\.+*?()|[]{}^$"

func escapeRegex(s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(regexSpecials, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
