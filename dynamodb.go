package main

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/m-mizutani/goerr/v2"
)

type DynamoDBAPI interface {
	PutItem(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
}

// RecordStore persists a single meme record.
type RecordStore interface {
	SaveItem(record MemeRecord) error
}

type DynamoDBStore struct {
	client    DynamoDBAPI
	tableName string
}

func NewDynamoDBStore(sess *session.Session, tableName string) *DynamoDBStore {
	return &DynamoDBStore{client: dynamodb.New(sess), tableName: tableName}
}

func (s *DynamoDBStore) SaveItem(record MemeRecord) error {
	item, err := dynamodbattribute.MarshalMap(record)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal meme record", goerr.V("id", record.ID))
	}
	_, err = s.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return goerr.Wrap(err, "failed to put item",
			goerr.V("table", s.tableName),
			goerr.V("id", record.ID))
	}

	return nil
}
