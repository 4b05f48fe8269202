package validators

import "go.mongodb.org/mongo-driver/bson"

var EventValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"slug",
			"description",
			"overview",
			"image",
			"venue",
			"location",
			"date",
			"time",
			"mode",
			"audience",
			"agenda",
			"organizer",
			"tags",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"title": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
			},

			"slug": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 200,
				"pattern":   "^[a-z0-9]+(-[a-z0-9]+)*$",
			},

			"description": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"overview": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"image": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"venue": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"location": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"date": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{4}-\\d{2}-\\d{2}$",
			},

			"time": bson.M{
				"bsonType": "string",
				"pattern":  "^\\d{2}:\\d{2}$",
			},

			"mode": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"audience": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"agenda": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
			},

			"organizer": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},

			"tags": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items": bson.M{
					"bsonType":  "string",
					"minLength": 1,
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},

			"updated_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
