package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type serviceFlagsRecord struct {
	Design         bool `dynamodbav:"design"`
	Development    bool `dynamodbav:"development"`
	Ecommerce      bool `dynamodbav:"ecommerce"`
	CustomSoftware bool `dynamodbav:"custom_software"`
	SEO            bool `dynamodbav:"seo"`
	Maintenance    bool `dynamodbav:"maintenance"`
}

type quoteItem struct {
	ID           string             `dynamodbav:"id"`
	Status       string             `dynamodbav:"status"`
	ProjectType  string             `dynamodbav:"project_type"`
	Services     serviceFlagsRecord `dynamodbav:"services"`
	Timeline     string             `dynamodbav:"timeline"`
	Budget       string             `dynamodbav:"budget"`
	HasContent   string             `dynamodbav:"has_content"`
	Name         string             `dynamodbav:"name"`
	Email        string             `dynamodbav:"email"`
	Phone        string             `dynamodbav:"phone"`
	Company      string             `dynamodbav:"company"`
	Description  string             `dynamodbav:"description"`
	Notes        string             `dynamodbav:"notes"`
	QuotedAmount string             `dynamodbav:"quoted_amount"`
	CreatedAt    string             `dynamodbav:"created_at"`
	UpdatedAt    string             `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists QuoteRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// created_at is written once at intake and never appears in an update
// expression, which keeps it immutable at the store layer.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteRequest) (entities.QuoteRequest, error) {
	if r.ddb == nil {
		return entities.QuoteRequest{}, interfaces.ErrStoreNotConfigured
	}

	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.QuoteRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.QuoteRequest, error) {
	if r.ddb == nil {
		return entities.QuoteRequest{}, interfaces.ErrStoreNotConfigured
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.QuoteRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.QuoteRequest, error) {
	if r.ddb == nil {
		return nil, interfaces.ErrStoreNotConfigured
	}

	quotes := make([]entities.QuoteRequest, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (r *QuoteDynamoRepository) Update(ctx context.Context, id string, patch entities.QuotePatch) (entities.QuoteRequest, error) {
	if r.ddb == nil {
		return entities.QuoteRequest{}, interfaces.ErrStoreNotConfigured
	}

	b := newUpdateBuilder()
	if patch.Status != nil {
		b.setString("status", string(*patch.Status))
	}
	if patch.Notes != nil {
		b.setString("notes", *patch.Notes)
	}
	if patch.QuotedAmount != nil {
		b.setString("quoted_amount", *patch.QuotedAmount)
	}

	out, err := r.ddb.UpdateItem(ctx, b.input(r.tableName, id))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.QuoteRequest{}, nil
		}
		return entities.QuoteRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.QuoteRequest{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.QuoteRequest{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	if r.ddb == nil {
		return interfaces.ErrStoreNotConfigured
	}

	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuoteItem(q entities.QuoteRequest) quoteItem {
	return quoteItem{
		ID:          q.ID,
		Status:      string(q.Status),
		ProjectType: q.ProjectType,
		Services: serviceFlagsRecord{
			Design:         q.Services.Design,
			Development:    q.Services.Development,
			Ecommerce:      q.Services.Ecommerce,
			CustomSoftware: q.Services.CustomSoftware,
			SEO:            q.Services.SEO,
			Maintenance:    q.Services.Maintenance,
		},
		Timeline:     q.Timeline,
		Budget:       q.Budget,
		HasContent:   q.HasContent,
		Name:         q.Name,
		Email:        q.Email,
		Phone:        q.Phone,
		Company:      q.Company,
		Description:  q.Description,
		Notes:        q.Notes,
		QuotedAmount: q.QuotedAmount,
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.QuoteRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.QuoteRequest{
		ID:          it.ID,
		Status:      entities.QuoteStatus(it.Status),
		ProjectType: it.ProjectType,
		Services: entities.ServiceFlags{
			Design:         it.Services.Design,
			Development:    it.Services.Development,
			Ecommerce:      it.Services.Ecommerce,
			CustomSoftware: it.Services.CustomSoftware,
			SEO:            it.Services.SEO,
			Maintenance:    it.Services.Maintenance,
		},
		Timeline:     it.Timeline,
		Budget:       it.Budget,
		HasContent:   it.HasContent,
		Name:         it.Name,
		Email:        it.Email,
		Phone:        it.Phone,
		Company:      it.Company,
		Description:  it.Description,
		Notes:        it.Notes,
		QuotedAmount: it.QuotedAmount,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
