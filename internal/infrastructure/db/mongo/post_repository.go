package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aceontech/content-api/internal/core/domain"
)

const postsCollection = "posts"

type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

type postDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID    string             `bson:"author_id"`
	Author      domain.Author      `bson:"author"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d postDoc) toDomain() *domain.Post {
	return &domain.Post{
		ID:          d.ID.Hex(),
		AuthorID:    d.AuthorID,
		Author:      d.Author,
		Title:       d.Title,
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := postDoc{
		AuthorID:    post.AuthorID,
		Author:      post.Author,
		Title:       post.Title,
		Description: post.Description,
		CreatedAt:   post.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	created := *post
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"author_id": authorID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := make([]domain.Post, 0)
	for cur.Next(ctx) {
		var doc postDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, *doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// UpdateByIDAndAuthor applies the non-nil fields of update to the post with
// the given id, but only when it is owned by authorID. The filter is what
// keeps one tenant from touching another's posts; a miss for either reason
// is the same domain.ErrPostNotFound.
func (r *PostRepository) UpdateByIDAndAuthor(ctx context.Context, id, authorID string, update domain.PostUpdate) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	var doc postDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "author_id": authorID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("update post: %w", err)
	}
	return doc.toDomain(), nil
}

// DeleteByIDAndAuthor removes the post with the given id when owned by
// authorID and returns the removed document.
func (r *PostRepository) DeleteByIDAndAuthor(ctx context.Context, id, authorID string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var doc postDoc
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid, "author_id": authorID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("delete post: %w", err)
	}
	return doc.toDomain(), nil
}
