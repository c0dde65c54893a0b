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

const (
	defaultInvoicesTableName = "invoices"
	invoiceNumberIndex       = "invoice_number-index"
)

type lineItemRecord struct {
	ID          string  `dynamodbav:"id"`
	Description string  `dynamodbav:"description"`
	Quantity    float64 `dynamodbav:"quantity"`
	Rate        float64 `dynamodbav:"rate"`
}

type discountRecord struct {
	Amount float64 `dynamodbav:"amount"`
	Type   string  `dynamodbav:"type"`
}

type invoiceItem struct {
	ID            string           `dynamodbav:"id"`
	Number        string           `dynamodbav:"invoice_number"`
	Status        string           `dynamodbav:"status"`
	ClientName    string           `dynamodbav:"client_name"`
	ClientEmail   string           `dynamodbav:"client_email"`
	ClientCompany string           `dynamodbav:"client_company"`
	ClientPhone   string           `dynamodbav:"client_phone"`
	ClientAddress string           `dynamodbav:"client_address"`
	LineItems     []lineItemRecord `dynamodbav:"line_items"`
	Subtotal      float64          `dynamodbav:"subtotal"`
	Discount      discountRecord   `dynamodbav:"discount"`
	Tax           float64          `dynamodbav:"tax"`
	Total         float64          `dynamodbav:"total"`
	PaymentTerms  string           `dynamodbav:"payment_terms"`
	Notes         string           `dynamodbav:"notes"`
	QuoteID       string           `dynamodbav:"quote_id"`
	CreatedAt     string           `dynamodbav:"created_at"`
	UpdatedAt     string           `dynamodbav:"updated_at"`
	DueDate       string           `dynamodbav:"due_date,omitempty"`
	PaidDate      string           `dynamodbav:"paid_date,omitempty"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_number-index (PK: invoice_number)
//
// A nil client means the store was never configured; every method reports
// that before attempting I/O.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if r.ddb == nil {
		return entities.Invoice{}, interfaces.ErrStoreNotConfigured
	}

	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	if r.ddb == nil {
		return entities.Invoice{}, interfaces.ErrStoreNotConfigured
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// List scans the full table and orders by creation timestamp, newest first.
// No pagination by design: the whole collection is the response.
func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	if r.ddb == nil {
		return nil, interfaces.ErrStoreNotConfigured
	}

	invoices := make([]entities.Invoice, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			invoices = append(invoices, fromInvoiceItem(it))
		}
	}

	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
	return invoices, nil
}

// Update applies only the fields present in the patch, always advancing
// updated_at. Attributes not mentioned in the patch are left untouched.
func (r *InvoiceDynamoRepository) Update(ctx context.Context, id string, patch entities.InvoicePatch) (entities.Invoice, error) {
	if r.ddb == nil {
		return entities.Invoice{}, interfaces.ErrStoreNotConfigured
	}

	b := newUpdateBuilder()
	if patch.Status != nil {
		b.setString("status", string(*patch.Status))
	}
	if patch.ClientName != nil {
		b.setString("client_name", *patch.ClientName)
	}
	if patch.ClientEmail != nil {
		b.setString("client_email", *patch.ClientEmail)
	}
	if patch.ClientCompany != nil {
		b.setString("client_company", *patch.ClientCompany)
	}
	if patch.ClientPhone != nil {
		b.setString("client_phone", *patch.ClientPhone)
	}
	if patch.ClientAddress != nil {
		b.setString("client_address", *patch.ClientAddress)
	}
	if patch.LineItems != nil {
		records := make([]lineItemRecord, 0, len(*patch.LineItems))
		for _, li := range *patch.LineItems {
			records = append(records, lineItemRecord(li))
		}
		av, err := attributevalue.Marshal(records)
		if err != nil {
			return entities.Invoice{}, err
		}
		b.set("line_items", av)
	}
	if patch.Subtotal != nil {
		b.setNumber("subtotal", *patch.Subtotal)
	}
	if patch.Discount != nil {
		av, err := attributevalue.Marshal(discountRecord(*patch.Discount))
		if err != nil {
			return entities.Invoice{}, err
		}
		b.set("discount", av)
	}
	if patch.Tax != nil {
		b.setNumber("tax", *patch.Tax)
	}
	if patch.Total != nil {
		b.setNumber("total", *patch.Total)
	}
	if patch.PaymentTerms != nil {
		b.setString("payment_terms", *patch.PaymentTerms)
	}
	if patch.Notes != nil {
		b.setString("notes", *patch.Notes)
	}
	if patch.QuoteID != nil {
		b.setString("quote_id", *patch.QuoteID)
	}
	if patch.DueDate != nil {
		b.setString("due_date", patch.DueDate.UTC().Format(time.RFC3339Nano))
	}
	if patch.PaidDate != nil {
		b.setString("paid_date", patch.PaidDate.UTC().Format(time.RFC3339Nano))
	}

	out, err := r.ddb.UpdateItem(ctx, b.input(r.tableName, id))
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) Delete(ctx context.Context, id string) error {
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

func (r *InvoiceDynamoRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	if r.ddb == nil {
		return false, interfaces.ErrStoreNotConfigured
	}

	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoiceNumberIndex),
		KeyConditionExpression: aws.String("invoice_number = :n"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberS{Value: number},
		},
		Select: types.SelectCount,
		Limit:  aws.Int32(1),
	})
	if err != nil {
		return false, err
	}
	return out.Count > 0, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	records := make([]lineItemRecord, 0, len(inv.LineItems))
	for _, li := range inv.LineItems {
		records = append(records, lineItemRecord(li))
	}

	it := invoiceItem{
		ID:            inv.ID,
		Number:        inv.Number,
		Status:        string(inv.Status),
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		ClientCompany: inv.ClientCompany,
		ClientPhone:   inv.ClientPhone,
		ClientAddress: inv.ClientAddress,
		LineItems:     records,
		Subtotal:      inv.Subtotal,
		Discount:      discountRecord(inv.Discount),
		Tax:           inv.Tax,
		Total:         inv.Total,
		PaymentTerms:  inv.PaymentTerms,
		Notes:         inv.Notes,
		QuoteID:       inv.QuoteID,
		CreatedAt:     inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !inv.DueDate.IsZero() {
		it.DueDate = inv.DueDate.UTC().Format(time.RFC3339Nano)
	}
	if !inv.PaidDate.IsZero() {
		it.PaidDate = inv.PaidDate.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	lineItems := make([]entities.LineItem, 0, len(it.LineItems))
	for _, rec := range it.LineItems {
		lineItems = append(lineItems, entities.LineItem(rec))
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	paidDate, _ := time.Parse(time.RFC3339Nano, it.PaidDate)

	return entities.Invoice{
		ID:            it.ID,
		Number:        it.Number,
		Status:        entities.InvoiceStatus(it.Status),
		ClientName:    it.ClientName,
		ClientEmail:   it.ClientEmail,
		ClientCompany: it.ClientCompany,
		ClientPhone:   it.ClientPhone,
		ClientAddress: it.ClientAddress,
		LineItems:     lineItems,
		Subtotal:      it.Subtotal,
		Discount:      entities.Discount(it.Discount),
		Tax:           it.Tax,
		Total:         it.Total,
		PaymentTerms:  it.PaymentTerms,
		Notes:         it.Notes,
		QuoteID:       it.QuoteID,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
		DueDate:       dueDate,
		PaidDate:      paidDate,
	}
}
