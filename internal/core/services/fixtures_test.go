package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/storage/memory"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// testTopics is a small catalog shaped like the shipped one.
func testTopics() []domain.Topic {
	return []domain.Topic{
		{
			ID:          domain.TopicUpload,
			Title:       "رفع المحتوى",
			Description: "كيفية رفع الملفات والفيديوهات إلى المنصة.",
			Icon:        domain.IconUploadCloud,
			Color:       domain.ColorSky,
			Steps: []string{
				"افتح الكورس واضغط Turn editing on.",
				"اسحب الملف إلى القسم المطلوب لبدء الرفع.",
				"احفظ التغييرات.",
			},
			FAQ: []domain.FAQItem{
				{Question: "ما الحد الأقصى لحجم الملف؟", Answer: "الحد الأقصى 100 ميجابايت لكل ملف."},
			},
			Tips: []string{"استخدم صيغة MP4 للفيديو."},
			Quizzes: []domain.QuizQuestion{
				{Question: "ما أفضل صيغة للفيديو؟", Options: []string{"MP4", "AVI"}, CorrectAnswer: "MP4"},
				{Question: "ما الحد الأقصى للملف؟", Options: []string{"100MB", "1GB"}, CorrectAnswer: "100MB"},
			},
		},
		{
			ID:          domain.TopicQuizSetup,
			Title:       "إعداد الاختبارات",
			Description: "إنشاء بنك الأسئلة وضبط الاختبار.",
			Icon:        domain.IconFileQuestion,
			Color:       domain.ColorIndigo,
			Steps: []string{
				"أضف نشاط Quiz.",
				"حدد وقت الاختبار.",
				"أضف الأسئلة من بنك الأسئلة.",
				"احفظ واعرض.",
			},
		},
		{
			ID:          domain.TopicReports,
			Title:       "استخراج التقارير",
			Description: "متابعة تقدم الموظفين عبر التقارير.",
			Icon:        domain.IconBarChart,
			Color:       domain.ColorPurple,
			Steps:       []string{"اذهب إلى Reports.", "اختر Course completion."},
			FAQ: []domain.FAQItem{
				{Question: "هل يمكن تصدير التقرير؟", Answer: "نعم بصيغة Excel."},
			},
		},
		{
			ID:          domain.TopicMobileApp,
			Title:       "تطبيق الجوال",
			Description: "استخدام تطبيق Moodle على الهاتف.",
			Icon:        domain.IconSmartphone,
			Color:       domain.ColorTeal,
		},
	}
}

func newTestCatalog(t *testing.T) *CatalogService {
	t.Helper()
	c, err := NewCatalogService(context.Background(), memory.NewCatalogSource(testTopics()))
	require.NoError(t, err)
	return c
}
