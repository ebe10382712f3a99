package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/gen/ent"
	"github.com/propertyops/asset-governor/gen/ent/property"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
)

type PropertyRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	Upsert(ctx context.Context, p *entity.Property) (*entity.Property, error)
	// ClassOf returns the property's volatility class, defaulting to
	// STABILIZED when the property is unknown.
	ClassOf(ctx context.Context, id uuid.UUID) constants.PropertyClass
}

type propertyRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewPropertyRepository(entc *ent.Client, log *slog.Logger) PropertyRepository {
	return &propertyRepo{ent: entc, log: log}
}

func (r *propertyRepo) Get(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	row, err := r.ent.Property.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toProperty(row), nil
}

func (r *propertyRepo) Upsert(ctx context.Context, p *entity.Property) (*entity.Property, error) {
	existing, err := r.ent.Property.
		Query().
		Where(property.ID(p.ID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if existing != nil {
		row, err := existing.Update().
			SetName(p.Name).
			SetPropertyClass(string(p.PropertyClass)).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		return toProperty(row), nil
	}
	row, err := r.ent.Property.
		Create().
		SetID(p.ID).
		SetName(p.Name).
		SetPropertyClass(string(p.PropertyClass)).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	r.log.Info("property registered", "property_id", row.ID, "class", p.PropertyClass)
	return toProperty(row), nil
}

func (r *propertyRepo) ClassOf(ctx context.Context, id uuid.UUID) constants.PropertyClass {
	p, err := r.Get(ctx, id)
	if err != nil {
		return constants.ClassStabilized
	}
	return p.PropertyClass
}

func toProperty(row *ent.Property) *entity.Property {
	return &entity.Property{
		ID:            row.ID,
		Name:          row.Name,
		PropertyClass: constants.PropertyClass(row.PropertyClass),
		CreatedAt:     row.CreatedAt,
	}
}
