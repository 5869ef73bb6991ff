package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article is a free-form school article. Only Name is required; the
// descriptive fields are an open set and are persisted only when present,
// so partial documents stay partial in storage.
//
// Canonical field names: clients that speak of a "title" mean Name, and
// "content" means About.
type Article struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Type        string             `bson:"type,omitempty" json:"type,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Nationality string             `bson:"nationality,omitempty" json:"nationality,omitempty"`
	About       string             `bson:"about,omitempty" json:"about,omitempty"`
	Born        string             `bson:"born,omitempty" json:"born,omitempty"`
	Died        string             `bson:"died,omitempty" json:"died,omitempty"`
	KnownFor    string             `bson:"known_for,omitempty" json:"known_for,omitempty"`
	DesignedBy  string             `bson:"designed_by,omitempty" json:"designed_by,omitempty"`
	Medium      string             `bson:"medium,omitempty" json:"medium,omitempty"`
	Dimensions  string             `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	Developer   string             `bson:"developer,omitempty" json:"developer,omitempty"`
	NotableWork string             `bson:"notable_work,omitempty" json:"notable_work,omitempty"`
	Year        string             `bson:"year,omitempty" json:"year,omitempty"`

	AttachmentKey  string `bson:"attachment_key,omitempty" json:"attachment_key,omitempty"`
	AttachmentName string `bson:"attachment_name,omitempty" json:"attachment_name,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
