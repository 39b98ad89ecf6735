package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/formgate/formgate-services/api/internal/intake/domain"
)

// SubmissionDocument は MongoDB 上でのお問い合わせ投稿スキーマを Go 構造体として表現したもの。
type SubmissionDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// mapSubmissionDocument はドキュメントをドメインモデルへ変換する。
func mapSubmissionDocument(doc SubmissionDocument) domain.Submission {
	return domain.Submission{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Email:     doc.Email,
		Message:   doc.Message,
		CreatedAt: doc.CreatedAt,
	}
}
