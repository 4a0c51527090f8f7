package domain

// Role identifies the author of a chat message.
type Role string

// Chat roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in the assistant panel's conversation.
// TopicID, when set, offers a "navigate here" affordance.
type ChatMessage struct {
	Role    Role
	Text    string
	TopicID TopicID
}

// HasTarget reports whether the message carries a navigation target.
func (m ChatMessage) HasTarget() bool {
	return m.TopicID != ""
}

// Fixed assistant texts.
const (
	WelcomeText  = "مرحباً بك! أنا مساعد صيدليات المتحدة الذكي. كيف يمكنني مساعدتك في نظام LMS اليوم؟"
	GreetingText = "أهلاً بك! اسألني عن رفع المحتوى، إنشاء الكورسات، الكويزات، التقارير أو إدارة المستخدمين."
	FallbackText = "عذراً، لم أجد إجابة مناسبة في الدليل. جرّب كلمات أخرى مثل: رفع، كورس، كويز، تقرير."
)

// Application identity shown by the views.
const (
	AppName = "صيدليات المتحدة - بوابة التعليم الإلكتروني"
	AppDesc = "الدليل الشامل لاستخدام نظام Moodle LMS"
)
