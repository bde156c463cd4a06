package clinicas

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dentalanalytics/clinicas/store"
)

// Repository runs each operation as a single call against one collection.
type Repository interface {
	Service
}

func NewRepository(collection *mongo.Collection) Repository {
	return &repository{
		collection: collection,
	}
}

type repository struct {
	collection *mongo.Collection
}

func (r *repository) List(ctx context.Context, filter *Filter) ([]Clinica, error) {
	cursor, err := r.collection.Find(ctx, filter.Selector())
	if err != nil {
		return nil, fmt.Errorf("error listing clinicas: %w", err)
	}

	list := make([]Clinica, 0)
	if err = cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("error decoding clinicas list: %w", err)
	}

	return list, nil
}

func (r *repository) Get(ctx context.Context, id string) (Clinica, error) {
	clinicaId, err := store.ObjectIDFromString(id)
	if err != nil {
		return nil, err
	}

	clinica := Clinica{}
	err = r.collection.FindOne(ctx, bson.M{FieldId: clinicaId}).Decode(&clinica)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return clinica, nil
}

func (r *repository) Create(ctx context.Context, clinica Clinica) (interface{}, error) {
	if clinica == nil {
		clinica = Clinica{}
	}

	res, err := r.collection.InsertOne(ctx, clinica)
	if err != nil {
		return nil, fmt.Errorf("error creating clinica: %w", err)
	}

	return res.InsertedID, nil
}

func (r *repository) Update(ctx context.Context, id string, update Clinica) (int64, error) {
	clinicaId, err := store.ObjectIDFromString(id)
	if err != nil {
		return 0, err
	}
	if update == nil {
		update = Clinica{}
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{FieldId: clinicaId}, bson.M{"$set": update})
	if err != nil {
		return 0, fmt.Errorf("error updating clinica: %w", err)
	}

	return res.ModifiedCount, nil
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	clinicaId, err := store.ObjectIDFromString(id)
	if err != nil {
		return 0, err
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{FieldId: clinicaId})
	if err != nil {
		return 0, fmt.Errorf("error deleting clinica: %w", err)
	}

	return res.DeletedCount, nil
}
