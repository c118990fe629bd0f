package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"library-catalog/internal/domains/book/model"
	"library-catalog/internal/infrastructure/dynamo"
)

type bookItem struct {
	ID      string `dynamodbav:"id"`
	Title   string `dynamodbav:"title"`
	Summary string `dynamodbav:"summary"`
}

// dynamoRepository queries books through a GSI keyed on author_id
type dynamoRepository struct {
	client dynamo.API
	table  string
	index  string
}

func NewDynamoRepository(client dynamo.API, table, authorIndex string) RepositoryInterface {
	return &dynamoRepository{
		client: client,
		table:  table,
		index:  authorIndex,
	}
}

func (r *dynamoRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	keyCond := expression.Key("author_id").Equal(expression.Value(authorID.String()))
	projection := expression.NamesList(
		expression.Name("id"),
		expression.Name("title"),
		expression.Name("summary"),
	)

	expr, err := expression.NewBuilder().
		WithKeyCondition(keyCond).
		WithProjection(projection).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	books := []model.Book{}
	paginator := dynamodb.NewQueryPaginator(r.client, &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(r.index),
		KeyConditionExpression:    expr.KeyCondition(),
		ProjectionExpression:      expr.Projection(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query books by author: %w", err)
		}

		var items []bookItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal books: %w", err)
		}
		for _, it := range items {
			id, err := uuid.Parse(it.ID)
			if err != nil {
				return nil, fmt.Errorf("invalid book id %q: %w", it.ID, err)
			}
			books = append(books, model.Book{ID: id, Title: it.Title, Summary: it.Summary, AuthorID: authorID})
		}
	}

	return books, nil
}
