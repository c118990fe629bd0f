package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"library-catalog/internal/domains/author/model"
	"library-catalog/internal/infrastructure/dynamo"
)

// authorItem là shape của một author trong DynamoDB table (partition key: id)
type authorItem struct {
	ID          string  `dynamodbav:"id"`
	FirstName   string  `dynamodbav:"first_name"`
	FamilyName  string  `dynamodbav:"family_name"`
	DateOfBirth *string `dynamodbav:"date_of_birth,omitempty"`
	DateOfDeath *string `dynamodbav:"date_of_death,omitempty"`
}

func toAuthorItem(a *model.Author) authorItem {
	return authorItem{
		ID:          a.ID.String(),
		FirstName:   a.FirstName,
		FamilyName:  a.FamilyName,
		DateOfBirth: dateString(a.DateOfBirth),
		DateOfDeath: dateString(a.DateOfDeath),
	}
}

func (it authorItem) toModel() (model.Author, error) {
	id, err := uuid.Parse(it.ID)
	if err != nil {
		return model.Author{}, fmt.Errorf("invalid author id %q: %w", it.ID, err)
	}
	dob, err := parseDate(it.DateOfBirth)
	if err != nil {
		return model.Author{}, err
	}
	dod, err := parseDate(it.DateOfDeath)
	if err != nil {
		return model.Author{}, err
	}
	return model.Author{
		ID:          id,
		FirstName:   it.FirstName,
		FamilyName:  it.FamilyName,
		DateOfBirth: dob,
		DateOfDeath: dod,
	}, nil
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	return aws.String(t.Format(model.DateLayout))
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(model.DateLayout, *s)
	if err != nil {
		return nil, fmt.Errorf("invalid stored date %q: %w", *s, err)
	}
	return &t, nil
}

// dynamoRepository implements RepositoryInterface on a single DynamoDB table
type dynamoRepository struct {
	client dynamo.API
	table  string
}

// NewDynamoRepository creates an author repository backed by DynamoDB
func NewDynamoRepository(client dynamo.API, table string) RepositoryInterface {
	return &dynamoRepository{
		client: client,
		table:  table,
	}
}

// ListSortedByFamilyName scans the whole table; DynamoDB has no global ordering so
// the sort happens in memory.
func (r *dynamoRepository) ListSortedByFamilyName(ctx context.Context) ([]model.Author, error) {
	authors := []model.Author{}

	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan authors: %w", err)
		}
		batch, err := r.unmarshalItems(page.Items)
		if err != nil {
			return nil, err
		}
		authors = append(authors, batch...)
	}

	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].FamilyName < authors[j].FamilyName
	})
	return authors, nil
}

func (r *dynamoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id.String()},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var item authorItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal author: %w", err)
	}
	a, err := item.toModel()
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *dynamoRepository) FindOne(ctx context.Context, filter model.DuplicateFilter) (*model.Author, error) {
	cond := expression.Name("first_name").Equal(expression.Value(filter.FirstName)).
		And(dateCondition("date_of_birth", filter.DateOfBirth)).
		And(dateCondition("date_of_death", filter.DateOfDeath))

	expr, err := expression.NewBuilder().WithFilter(cond).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	// Filter chạy sau khi đọc từng page, nên phải đi hết các page tới khi gặp match
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to find author: %w", err)
		}
		if len(page.Items) == 0 {
			continue
		}
		found, err := r.unmarshalItems(page.Items[:1])
		if err != nil {
			return nil, err
		}
		return &found[0], nil
	}
	return nil, nil
}

func dateCondition(name string, t *time.Time) expression.ConditionBuilder {
	if t == nil {
		return expression.Name(name).AttributeNotExists()
	}
	return expression.Name(name).Equal(expression.Value(t.Format(model.DateLayout)))
}

func (r *dynamoRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	created := *a
	created.ID = uuid.New()

	item, err := attributevalue.MarshalMap(toAuthorItem(&created))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal author: %w", err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.Name("id").AttributeNotExists()).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build expression: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.table),
		Item:                     item,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return &created, nil
}

func (r *dynamoRepository) unmarshalItems(items []map[string]types.AttributeValue) ([]model.Author, error) {
	var raw []authorItem
	if err := attributevalue.UnmarshalListOfMaps(items, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal authors: %w", err)
	}

	authors := make([]model.Author, 0, len(raw))
	for _, it := range raw {
		a, err := it.toModel()
		if err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, nil
}
