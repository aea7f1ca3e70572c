package models

import "go.mongodb.org/mongo-driver/bson"

// IndexSpec is one entry of a listIndexes result. Key keeps the field order of the
// index so compound indexes read the way they were declared.
type IndexSpec struct {
	Name   string `json:"name" bson:"name"`
	Key    bson.D `json:"key" bson:"key"`
	Unique bool   `json:"unique,omitempty" bson:"unique,omitempty"`
}
