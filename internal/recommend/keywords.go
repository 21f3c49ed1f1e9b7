package recommend

// Keyword tables for the substring classifiers. Ranking and extraction
// behavior depends on their exact contents, so treat changes as behavior
// changes, not cleanups. The upstream quiz is bilingual; both Russian and
// English forms are matched.

// Question-text keywords for profile extraction, one table per profile field.
var (
	skinTypeQuestionKeywords = []string{
		"тип кожи", "тип", "кожа", "обычно ведёт",
		"skin type", "skin",
	}
	conditionQuestionKeywords = []string{
		"проблем", "состояние", "беспокоит",
		"concern", "condition", "issue",
	}
	budgetQuestionKeywords = []string{
		"бюджет", "цена", "стоимость",
		"budget", "price", "cost",
	}
	allergenQuestionKeywords = []string{
		"аллерг", "неперенос", "избегать", "компонент",
		"allerg", "intoleran", "avoid",
	}
	ageQuestionKeywords = []string{
		"возраст", "age",
	}
)

// Budget answers matching any of these (exact, case-insensitive) mean
// "no budget limit".
var budgetAnyAnswers = []string{
	"any", "любой", "не важно", "не важен", "бюджет не важен", "no preference",
}

// Review sentiment keywords. The positive check runs before the negative
// check and the first match wins, so a review matching both counts as
// positive only.
var (
	positiveReviewKeywords = []string{
		"хорош", "отлично", "рекоменд", "нравится", "эффектив", "помог",
		"good", "great", "excellent", "recommend", "love", "effective", "helped",
	}
	negativeReviewKeywords = []string{
		"плох", "не понравил", "не рекоменд", "не подош",
		"bad", "disappoint", "did not like", "didn't work",
	}
)
