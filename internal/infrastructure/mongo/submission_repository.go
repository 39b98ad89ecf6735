package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/formgate/formgate-services/api/internal/intake/domain"
)

// SubmissionRepository はお問い合わせ投稿を MongoDB で扱う実装リポジトリ。
type SubmissionRepository struct {
	submissions *mongo.Collection
}

// NewSubmissionRepository は投稿コレクションを束縛したリポジトリを構築する。
func NewSubmissionRepository(db *mongo.Database, collectionName string) *SubmissionRepository {
	return &SubmissionRepository{submissions: db.Collection(collectionName)}
}

// Create は投稿を Mongo に追加し、ドメインモデルへ採番結果を反映する。
// 書き込みは単一の InsertOne で行い、部分的な状態を残さない。
func (r *SubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	createdAt := submission.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	doc := SubmissionDocument{
		ID:        primitive.NewObjectID(),
		Name:      submission.Name,
		Email:     submission.Email,
		Message:   submission.Message,
		CreatedAt: createdAt,
	}

	if _, err := r.submissions.InsertOne(ctx, doc); err != nil {
		return err
	}

	submission.ID = doc.ID.Hex()
	submission.CreatedAt = doc.CreatedAt
	return nil
}

// Latest は最新の投稿を1件取得する。seed の疎通確認用。
func (r *SubmissionRepository) Latest(ctx context.Context) (*domain.Submission, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var doc SubmissionDocument
	if err := r.submissions.FindOne(ctx, bson.D{}, opts).Decode(&doc); err != nil {
		return nil, err
	}

	submission := mapSubmissionDocument(doc)
	return &submission, nil
}
