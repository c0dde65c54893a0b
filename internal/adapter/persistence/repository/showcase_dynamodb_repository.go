package repository

import (
	"context"
	"sort"
	"time"

	"webstudio_backend/internal/domain/entities"
	"webstudio_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	defaultProjectsTableName = "projects"
	defaultReviewsTableName  = "reviews"
)

type projectItem struct {
	ID        string   `dynamodbav:"id"`
	Title     string   `dynamodbav:"title"`
	Summary   string   `dynamodbav:"summary"`
	Tech      []string `dynamodbav:"tech"`
	URL       string   `dynamodbav:"url"`
	Featured  bool     `dynamodbav:"featured"`
	CreatedAt string   `dynamodbav:"created_at"`
}

type reviewItem struct {
	ID        string `dynamodbav:"id"`
	Author    string `dynamodbav:"author"`
	Company   string `dynamodbav:"company"`
	Rating    int    `dynamodbav:"rating"`
	Body      string `dynamodbav:"body"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ShowcaseDynamoRepository persists portfolio projects and reviews in two
// DynamoDB tables (PK: id on both).
type ShowcaseDynamoRepository struct {
	ddb           *dynamodb.Client
	projectsTable string
	reviewsTable  string
}

var _ interfaces.IShowcaseRepository = (*ShowcaseDynamoRepository)(nil)

func NewShowcaseDynamoRepository(ddb *dynamodb.Client) *ShowcaseDynamoRepository {
	return &ShowcaseDynamoRepository{
		ddb:           ddb,
		projectsTable: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
		reviewsTable:  getenvDefault("REVIEWS_TABLE", defaultReviewsTableName),
	}
}

func (r *ShowcaseDynamoRepository) ListProjects(ctx context.Context) ([]entities.Project, error) {
	if r.ddb == nil {
		return nil, interfaces.ErrStoreNotConfigured
	}

	projects := make([]entities.Project, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.projectsTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it projectItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
			projects = append(projects, entities.Project{
				ID:        it.ID,
				Title:     it.Title,
				Summary:   it.Summary,
				Tech:      it.Tech,
				URL:       it.URL,
				Featured:  it.Featured,
				CreatedAt: createdAt,
			})
		}
	}

	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}

func (r *ShowcaseDynamoRepository) ListReviews(ctx context.Context) ([]entities.Review, error) {
	if r.ddb == nil {
		return nil, interfaces.ErrStoreNotConfigured
	}

	reviews := make([]entities.Review, 0)
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.reviewsTable),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it reviewItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
			reviews = append(reviews, entities.Review{
				ID:        it.ID,
				Author:    it.Author,
				Company:   it.Company,
				Rating:    it.Rating,
				Body:      it.Body,
				CreatedAt: createdAt,
			})
		}
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (r *ShowcaseDynamoRepository) AddProject(ctx context.Context, p entities.Project) (entities.Project, error) {
	if r.ddb == nil {
		return entities.Project{}, interfaces.ErrStoreNotConfigured
	}

	av, err := attributevalue.MarshalMap(projectItem{
		ID:        p.ID,
		Title:     p.Title,
		Summary:   p.Summary,
		Tech:      p.Tech,
		URL:       p.URL,
		Featured:  p.Featured,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.projectsTable),
		Item:      av,
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ShowcaseDynamoRepository) AddReview(ctx context.Context, rev entities.Review) (entities.Review, error) {
	if r.ddb == nil {
		return entities.Review{}, interfaces.ErrStoreNotConfigured
	}

	av, err := attributevalue.MarshalMap(reviewItem{
		ID:        rev.ID,
		Author:    rev.Author,
		Company:   rev.Company,
		Rating:    rev.Rating,
		Body:      rev.Body,
		CreatedAt: rev.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Review{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.reviewsTable),
		Item:      av,
	})
	if err != nil {
		return entities.Review{}, err
	}
	return rev, nil
}
