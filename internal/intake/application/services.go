package application

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/formgate/formgate-services/api/internal/intake/domain"
)

// SubmissionRepository handles submission writes.
// SubmissionRepository は投稿を永続化するためのポート。
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) error
}

// SubmitSubmissionCommand captures raw form input before validation.
type SubmitSubmissionCommand struct {
	Name    string
	Email   string
	Message string
}

// SubmissionCommandService handles writing use-cases.
// SubmissionCommandService は投稿受付ユースケースを提供する。
type SubmissionCommandService interface {
	Submit(ctx context.Context, cmd SubmitSubmissionCommand) domain.Outcome
}

// NewSubmissionCommandService はリポジトリとロガーを束縛したサービスを構築する。
func NewSubmissionCommandService(repo SubmissionRepository, logger *log.Logger) SubmissionCommandService {
	return &submissionCommandService{
		repo:      repo,
		logger:    logger,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

type submissionCommandService struct {
	repo      SubmissionRepository
	logger    *log.Logger
	sanitizer *bluemonday.Policy
}

// Submit は投稿を検証し、成功時のみ一度だけ永続化を試みる。
// 検証エラー・永続化エラーはすべて Outcome 値へ変換され、呼び出し元へ
// エラーとして伝播することはない。リトライは行わない。
func (s *submissionCommandService) Submit(ctx context.Context, cmd SubmitSubmissionCommand) domain.Outcome {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return domain.Rejected("名前が入力されていません")
	}

	email, err := normalizeEmail(cmd.Email)
	if err != nil {
		return domain.Rejected(err.Error())
	}

	message := strings.TrimSpace(s.sanitizer.Sanitize(cmd.Message))

	submission := &domain.Submission{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		if s.logger != nil {
			s.logger.Printf("投稿の保存に失敗: %v", err)
		}
		return domain.Failed()
	}

	return domain.Accepted(submission)
}

// normalizeEmail はメールアドレスをトリムし、必須チェックと形式チェックを行う。
func normalizeEmail(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errors.New("メールアドレスが入力されていません")
	}
	if len(trimmed) > 254 {
		return "", errors.New("メールアドレスは254文字以内で入力してください")
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", errors.New("メールアドレスの形式が正しくありません")
	}
	return trimmed, nil
}
