package a2a

// AgentCard is the static capability descriptor served at
// /.well-known/agent.json.
type AgentCard struct {
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	URL                string            `json:"url"`
	Version            string            `json:"version"`
	Capabilities       AgentCapabilities `json:"capabilities"`
	DefaultInputModes  []string          `json:"defaultInputModes"`
	DefaultOutputModes []string          `json:"defaultOutputModes"`
	Skills             []AgentSkill      `json:"skills"`
}

type AgentCapabilities struct {
	Streaming bool `json:"streaming"`
}

type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Examples    []string `json:"examples,omitempty"`
}

// Card builds the investment agent's capability card. Skill IDs stay in
// 1:1 correspondence with the executor's advisory categories.
func Card(url, version string) AgentCard {
	return AgentCard{
		Name: "Investment Strategy Agent",
		Description: "An AI-powered agent that provides investment advice, portfolio management " +
			"guidance, risk analysis, and market insights. Helps users make informed investment " +
			"decisions through comprehensive financial analysis.",
		URL:                url,
		Version:            version,
		Capabilities:       AgentCapabilities{Streaming: true},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []AgentSkill{
			{
				ID:          "portfolio_management",
				Name:        "Portfolio Management and Diversification",
				Description: "Provides guidance on portfolio diversification, asset allocation, and investment strategy",
				Tags:        []string{"portfolio", "diversification", "asset allocation", "investment strategy"},
				Examples: []string{
					"How should I diversify my investment portfolio?",
					"What is a good asset allocation strategy?",
					"Help me build a balanced portfolio",
				},
			},
			{
				ID:          "risk_analysis",
				Name:        "Investment Risk Analysis",
				Description: "Analyzes investment risk and provides risk management strategies",
				Tags:        []string{"risk", "risk management", "volatility", "conservative investing"},
				Examples: []string{
					"How do I assess investment risk?",
					"What are conservative investment options?",
					"How can I reduce portfolio risk?",
				},
			},
			{
				ID:          "market_analysis",
				Name:        "Market and Stock Analysis",
				Description: "Provides insights on stock market investing, equity analysis, and market trends",
				Tags:        []string{"stocks", "equity", "market analysis", "trading"},
				Examples: []string{
					"How do I evaluate stocks?",
					"What should I know about stock market investing?",
					"Explain value investing vs growth investing",
				},
			},
			{
				ID:          "financial_planning",
				Name:        "Investment Planning and Strategy",
				Description: "Helps with long-term investment planning and financial goal setting",
				Tags:        []string{"planning", "strategy", "long-term investing", "financial goals"},
				Examples: []string{
					"How should I plan for retirement?",
					"What is a good long-term investment strategy?",
					"Help me set investment goals",
				},
			},
		},
	}
}
