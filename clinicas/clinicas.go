package clinicas

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dentalanalytics/clinicas/errors"
)

//go:generate mockgen --build_flags=--mod=mod -source=./clinicas.go -destination=./test/mock_service.go -package test MockService

const (
	FieldId    = "_id"
	FieldName  = "nomeClinica"
	FieldTaxId = "cnpj"
)

var ErrNotFound = fmt.Errorf("clinica %w", errors.NotFound)

// Clinica is a clinic document. No schema is enforced, any JSON object is
// stored as is.
type Clinica map[string]interface{}

type Service interface {
	List(ctx context.Context, filter *Filter) ([]Clinica, error)
	Get(ctx context.Context, id string) (Clinica, error)
	Create(ctx context.Context, clinica Clinica) (interface{}, error)
	Update(ctx context.Context, id string, update Clinica) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type Filter struct {
	// Search is a case-insensitive regular expression matched against the
	// clinic name and the tax id
	Search *string
}

func (f *Filter) Selector() bson.M {
	selector := bson.M{}
	if f == nil || f.Search == nil || *f.Search == "" {
		return selector
	}

	pattern := primitive.Regex{Pattern: *f.Search, Options: "i"}
	selector["$or"] = bson.A{
		bson.M{FieldName: pattern},
		bson.M{FieldTaxId: pattern},
	}
	return selector
}

func (c Clinica) Id() (primitive.ObjectID, bool) {
	id, ok := c[FieldId].(primitive.ObjectID)
	return id, ok
}

func (c Clinica) String(field string) string {
	switch value := c[field].(type) {
	case nil:
		return ""
	case primitive.ObjectID:
		return value.Hex()
	default:
		return fmt.Sprint(value)
	}
}
