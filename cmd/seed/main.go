package main

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/formgate/formgate-services/api/internal/config"
	mongodoc "github.com/formgate/formgate-services/api/internal/infrastructure/mongo"
	"github.com/formgate/formgate-services/api/internal/intake/domain"
)

// ローカル開発用のサンプル投稿。コレクションが空のときだけ投入する。
var sampleSubmissions = []domain.Submission{
	{
		Name:    "Gaurav",
		Email:   "gaurav@example.com",
		Message: "Hello, I love your website!",
	},
	{
		Name:    "山田 花子",
		Email:   "hanako@example.jp",
		Message: "お問い合わせフォームのテスト送信です。",
	},
	{
		Name:  "No Message",
		Email: "silent@example.com",
	},
}

func main() {
	cfg := config.Load()
	logger := cfg.ServerLog

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Printf("MongoDB 切断時にエラー: %v", err)
		}
	}()

	db := client.Database(cfg.MongoDatabase)
	collection := db.Collection(cfg.SubmissionCollection)

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		logger.Fatalf("投稿件数の取得に失敗しました: %v", err)
	}
	if count > 0 {
		logger.Printf("submissions コレクションに既に %d 件あります。シードをスキップします。", count)
		return
	}

	repo := mongodoc.NewSubmissionRepository(db, cfg.SubmissionCollection)
	for i := range sampleSubmissions {
		submission := sampleSubmissions[i]
		submission.CreatedAt = time.Now().UTC()
		if err := repo.Create(ctx, &submission); err != nil {
			logger.Fatalf("サンプル投稿の保存に失敗しました: %v", err)
		}
		logger.Printf("サンプル投稿を保存: id=%s name=%s", submission.ID, submission.Name)
	}

	latest, err := repo.Latest(ctx)
	if err != nil {
		logger.Fatalf("最新投稿の読み戻しに失敗しました: %v", err)
	}
	logger.Printf("読み戻し確認: id=%s createdAt=%s", latest.ID, latest.CreatedAt.Format(time.RFC3339))
}
