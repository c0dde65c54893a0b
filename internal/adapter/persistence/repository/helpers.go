package repository

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// updateBuilder assembles a dynamic SET expression from a patch. It seeds
// updated_at with the call time so every mutation advances it, and conditions
// the write on the document existing.
type updateBuilder struct {
	clauses []string
	values  map[string]types.AttributeValue
	names   map[string]string
}

func newUpdateBuilder() *updateBuilder {
	b := &updateBuilder{
		values: map[string]types.AttributeValue{},
		names:  map[string]string{"#id": "id"},
	}
	b.setString("updated_at", time.Now().UTC().Format(time.RFC3339Nano))
	return b
}

func (b *updateBuilder) set(attr string, av types.AttributeValue) {
	placeholder := fmt.Sprintf(":v%d", len(b.clauses))
	b.clauses = append(b.clauses, fmt.Sprintf("#%s = %s", attr, placeholder))
	b.values[placeholder] = av
	b.names["#"+attr] = attr
}

func (b *updateBuilder) setString(attr, v string) {
	b.set(attr, &types.AttributeValueMemberS{Value: v})
}

func (b *updateBuilder) setNumber(attr string, v float64) {
	b.set(attr, &types.AttributeValueMemberN{Value: floatToString(v)})
}

func (b *updateBuilder) input(tableName, id string) *dynamodb.UpdateItemInput {
	return &dynamodb.UpdateItemInput{
		TableName: aws.String(tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(b.clauses, ", ")),
		ExpressionAttributeValues: b.values,
		ExpressionAttributeNames:  b.names,
		ReturnValues:              types.ReturnValueAllNew,
	}
}
