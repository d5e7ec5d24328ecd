package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/projecthub/projecthub/internal/core/domain"
)

const projectsCollection = "projects"

type MongoProjectRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *MongoProjectRepository {
	return &MongoProjectRepository{db: db, coll: db.Collection(projectsCollection)}
}

type mongoProject struct {
	ID          int64  `bson:"_id"`
	Name        string `bson:"name"`
	Description string `bson:"description,omitempty"`
}

func (mp mongoProject) toDomain() *domain.Project {
	return &domain.Project{
		ID:          mp.ID,
		Name:        mp.Name,
		Description: mp.Description,
	}
}

func (r *MongoProjectRepository) Insert(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	id, err := nextSequence(ctx, r.db, projectsCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoProject{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MongoProjectRepository) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	var mp mongoProject
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *MongoProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*domain.Project
	for cursor.Next(ctx) {
		var mp mongoProject
		if err := cursor.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, mp.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (r *MongoProjectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, update)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

func (r *MongoProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
