package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	intakeapp "github.com/formgate/formgate-services/api/internal/intake/application"
	"github.com/formgate/formgate-services/api/internal/intake/domain"
	"github.com/formgate/formgate-services/api/internal/interfaces/http/common"
)

type createSubmissionRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message"`
}

// normalize は検証前に各フィールドの前後空白を除去する。
// 空白のみの入力を欠落扱いにするため、validator より先に呼ぶ必要がある。
func (req *createSubmissionRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
}

// submissionCreateHandler はフォーム投稿を受け付けるエンドポイント。
// デコード → 検証 → ユースケース実行 → Outcome の HTTP ステータス変換、の順で処理する。
func (h *Handler) submissionCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var req createSubmissionRequest
		decoder := json.NewDecoder(io.LimitReader(r.Body, common.MaxSubmissionRequestBody))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"message": "Invalid request body.",
			})
			return
		}

		req.normalize()
		if err := h.validate.Struct(&req); err != nil {
			submissionOutcomes.WithLabelValues("rejected").Inc()
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"message": domain.MessageRejected,
			})
			return
		}

		cmd := intakeapp.SubmitSubmissionCommand{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		outcome := h.submissionCommands.Submit(ctx, cmd)

		switch outcome.Kind {
		case domain.OutcomeAccepted:
			submissionOutcomes.WithLabelValues("accepted").Inc()
			go h.notifySubmissionReceipt(context.Background(), *outcome.Submission)
			common.WriteJSON(h.logger, w, http.StatusCreated, map[string]string{
				"message": outcome.Message,
			})
		case domain.OutcomeRejected:
			submissionOutcomes.WithLabelValues("rejected").Inc()
			if h.logger != nil {
				h.logger.Printf("投稿を却下: %s", outcome.Reason)
			}
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"message": outcome.Message,
			})
		default:
			submissionOutcomes.WithLabelValues("failed").Inc()
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{
				"message": outcome.Message,
			})
		}
	}
}
