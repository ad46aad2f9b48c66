package conversation

// User-facing replies.
const (
	MsgRunFailedFmt   = "❌ Ошибка: %s. Попробуйте позже."
	MsgNoReply        = "Не удалось получить ответ. Попробуйте ещё раз."
	MsgProcessingFail = "❌ Произошла ошибка при обработке запроса. Попробуйте позже."

	// StatusTimeout is embedded in MsgRunFailedFmt when polling gives up.
	StatusTimeout = "timeout"
)
