package domain

// OutcomeKind は投稿受付の結果区分を表す。
type OutcomeKind int

const (
	// OutcomeAccepted は検証・永続化がともに成功した状態。
	OutcomeAccepted OutcomeKind = iota
	// OutcomeRejected は検証エラーで却下された状態。永続化は試行されない。
	OutcomeRejected
	// OutcomeFailed は永続化に失敗した状態。原因はログにのみ残す。
	OutcomeFailed
)

// 利用者へ返すメッセージは固定文言。データストア由来の詳細は含めない。
const (
	MessageAccepted = "Form submitted successfully."
	MessageRejected = "Name and Email are required."
	MessageFailed   = "Something went wrong."
)

// Outcome は投稿受付ユースケースの結果値。利用者向けメッセージと、
// 却下時の具体的な理由（ログ・デバッグ用）を保持する。
type Outcome struct {
	Kind       OutcomeKind
	Message    string
	Reason     string
	Submission *Submission
}

// Accepted は永続化済み Submission を伴う成功 Outcome を返す。
func Accepted(submission *Submission) Outcome {
	return Outcome{Kind: OutcomeAccepted, Message: MessageAccepted, Submission: submission}
}

// Rejected は検証エラー理由を添えた却下 Outcome を返す。
func Rejected(reason string) Outcome {
	return Outcome{Kind: OutcomeRejected, Message: MessageRejected, Reason: reason}
}

// Failed は永続化失敗を表す Outcome を返す。内部エラーの文言は含めない。
func Failed() Outcome {
	return Outcome{Kind: OutcomeFailed, Message: MessageFailed}
}
