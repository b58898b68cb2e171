package service

import "github.com/dafibh/budgetly/internal/domain"

var articlesByBracket = map[domain.AgeBracket][]domain.Article{
	domain.AgeBracketEarly: {
		{Title: "Start Early: The Power of Compounding", URL: "https://www.investopedia.com/terms/c/compounding.asp"},
		{Title: "401(k) Basics for New Earners", URL: "https://www.irs.gov/retirement-plans/plan-participant-employee/retirement-topics-401k-and-profit-sharing-plan-contribution-limits"},
		{Title: "Beginner’s Guide to Roth vs Traditional", URL: "https://www.investopedia.com/roth-ira-vs-traditional-ira-differences-and-how-to-choose-7485838"},
	},
	domain.AgeBracketMid: {
		{Title: "Max Out Contributions in Your 40s–50s", URL: "https://www.dol.gov/general/topic/retirement/planparticipant"},
		{Title: "Building a Pre-Retirement Asset Mix", URL: "https://www.bogleheads.org/wiki/Asset_allocation"},
		{Title: "Catch-up Contributions: What to Know", URL: "https://www.irs.gov/retirement-plans/plan-participant-employee/retirement-topics-catch-up-contributions"},
	},
	domain.AgeBracketLate: {
		{Title: "Social Security: When to Claim", URL: "https://www.ssa.gov/benefits/retirement/learn/age.html"},
		{Title: "Safe Withdrawal Strategies", URL: "https://www.investopedia.com/terms/f/foursafewithdrawalrate.asp"},
		{Title: "Required Minimum Distributions (RMDs)", URL: "https://www.irs.gov/retirement-plans/retirement-plan-and-ira-required-minimum-distributions-faqs"},
	},
}

// ArticleService serves the static reading list
type ArticleService struct{}

// NewArticleService creates a new ArticleService
func NewArticleService() *ArticleService {
	return &ArticleService{}
}

// RecommendedArticles returns a copy of the reading list for the bracket age falls in
func (s *ArticleService) RecommendedArticles(age int) []domain.Article {
	articles := articlesByBracket[domain.BracketForAge(age)]
	out := make([]domain.Article, len(articles))
	copy(out, articles)
	return out
}
