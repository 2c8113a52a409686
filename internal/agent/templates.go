package agent

import "fmt"

// fallbackTemplates holds the deterministic advisory answers used whenever
// the AI delegate is absent or fails. Built once at startup as static data;
// every category in the enumeration must have a non-empty entry, checked in
// init so a gap fails fast instead of surfacing mid-request.
var fallbackTemplates = map[Category]string{
	CategoryPortfolio: `Investment Portfolio Diversification Advice:

1. Asset Allocation: Spread investments across different asset classes:
   - Stocks (equity) for growth potential
   - Bonds for stability and income
   - Real estate for an inflation hedge
   - Cash equivalents for liquidity

2. Geographic Diversification: Don't limit yourself to domestic markets.

3. Sector Diversification: Invest across industries to reduce sector-specific risk.

4. Risk Assessment: Align your portfolio with your risk tolerance and investment timeline.

5. Regular Rebalancing: Review and adjust your portfolio periodically.

Remember: past performance doesn't guarantee future results. Consider consulting a financial advisor for personalized advice.`,

	CategoryRisk: `Risk Management in Investing:

1. Understand Your Risk Tolerance: Consider your age, income, financial goals, and comfort with volatility.

2. Risk Mitigation Strategies:
   - Diversification across assets
   - Dollar-cost averaging
   - Setting stop-loss orders
   - Regular portfolio reviews

3. Conservative Investment Options:
   - Government bonds
   - High-grade corporate bonds
   - Index funds
   - Money market accounts

4. Risk vs. Return: Higher potential returns typically come with higher risk.

5. Time Horizon: Longer investment periods can help weather market volatility.

Always assess your personal financial situation before making investment decisions.`,

	CategoryMarket: `Stock Market Investment Guidance:

1. Research Before Investing:
   - Company fundamentals (earnings, revenue, debt)
   - Industry trends and competitive position
   - Management quality

2. Investment Approaches:
   - Value investing: undervalued stocks with strong fundamentals
   - Growth investing: companies with high growth potential
   - Index investing: low-cost diversification through index funds

3. Key Metrics to Consider:
   - P/E ratio (price-to-earnings)
   - Dividend yield
   - Market capitalization
   - Revenue and earnings growth

4. Long-term Perspective: Avoid emotional decisions based on short-term market fluctuations.

5. Professional Guidance: Consider consulting a financial advisor for personalized stock recommendations.

Disclaimer: this is general information, not specific investment advice.`,

	CategoryPlanning: `Long-Term Investment Planning:

1. Define Your Goals: Retirement, home purchase, education, or wealth building. Each goal sets its own timeline and risk budget.

2. Start Early: Compounding rewards time in the market far more than timing the market.

3. Build the Plan:
   - Emergency fund first (3-6 months of expenses)
   - Tax-advantaged retirement accounts before taxable ones
   - Automatic, recurring contributions

4. Match Risk to Horizon: Longer horizons tolerate more equity exposure; shift toward stability as the goal approaches.

5. Review Annually: Changes in income, family, and goals should flow back into the plan.

Consult a qualified financial planner to tailor these steps to your situation.`,

	CategoryGeneral: `Welcome to the Investment Strategy Agent!

I can help you with:

1. Portfolio Management: diversification strategies and asset allocation
2. Risk Assessment: understanding and managing investment risk
3. Market Analysis: stock market investing and market trends
4. Financial Planning: long-term investment planning and goal setting

What specific investment topic would you like to explore?

Disclaimer: this information is for educational purposes only and should not be considered financial advice. Always consult a qualified financial advisor before making investment decisions.`,
}

func init() {
	for _, category := range Categories() {
		if fallbackTemplates[category] == "" {
			panic(fmt.Sprintf("missing fallback template for category %s", category))
		}
	}
}

// Fallback returns the deterministic template answer for the category.
// It never fails: unknown categories get the general template.
func Fallback(category Category) string {
	if text, ok := fallbackTemplates[category]; ok {
		return text
	}
	return fallbackTemplates[CategoryGeneral]
}
