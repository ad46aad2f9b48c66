package telegram

import "time"

// Log prefixes
const (
	LogPrefixWebhook = "internal.conversation.delivery.telegram.HandleWebhook"
	LogPrefixProcess = "internal.conversation.delivery.telegram.processMessage"
	LogPrefixPolling = "internal.conversation.delivery.telegram.StartPolling"
)

// Commands
const (
	CommandStart = "/start"
	CommandHelp  = "/help"
	CommandReset = "/reset"
)

// Replies
const (
	welcomeTemplate = `👋 Привет, %s!

Я *PsychoAI* — интеллектуальный ассистент для психотерапевтов.

🧠 *Что я умею:*
• Анализировать речевые паттерны клиентов
• Предлагать терапевтические интервенции
• Выявлять потенциальные риски (⚠️ Red Shield)

📝 *Как использовать:*
Просто напишите описание ситуации или запрос клиента — я дам анализ и рекомендации.

⚡ *Команды:*
/start — начать заново
/reset — очистить историю диалога
/help — справка

⚠️ *Важно:* Я НЕ заменяю профессиональную экспертизу. Используйте меня как инструмент поддержки.

Готов к работе! Опишите ситуацию.`

	helpText = `📚 *Справка PsychoAI*

*Примеры запросов:*

1️⃣ _Простой анализ:_
"Клиент говорит, что чувствует себя одиноким последние месяцы"

2️⃣ _Выявление паттернов:_
"Клиент в третий раз упоминает конфликт с матерью. Что это может значить?"

3️⃣ _Кризисная ситуация:_
"Клиент сказал: я больше не хочу просыпаться"

*Функции безопасности:*
⚠️ При обнаружении маркеров риска я выдам ALERT с рекомендациями.

*Команды:*
/start — приветствие
/reset — новый диалог
/help — эта справка`

	resetText       = "🔄 История диалога очищена. Начинаем с чистого листа!"
	rateLimitedText = "⏳ Слишком много сообщений. Подождите немного и попробуйте снова."
)

// Polling and dedupe tuning
const (
	defaultPollTimeout = 30 * time.Second
	pollRetryDelay     = 3 * time.Second

	seenUpdatesSize = 4096
	seenUpdatesTTL  = 10 * time.Minute

	limiterSize = 1000
	limiterTTL  = 5 * time.Minute
)
