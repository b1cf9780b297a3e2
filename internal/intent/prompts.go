package intent

import (
	"encoding/json"
	"fmt"
)

const extractPromptFormat = `Extract loan intent from this customer message: %q

Analyze the message and return JSON with these fields:
- loan_amount: number in rupees (convert "5 lakhs" to 500000, "2 crores" to 20000000)
- loan_purpose: string (brief description like "vehicle purchase", "business expansion", "inventory", "equipment", "working capital")
- urgency: string (low/medium/high based on words like "urgent", "asap", "planning", "future")
- has_collateral: boolean (true if customer mentions collateral/security/property, false otherwise)

Return ONLY valid JSON with these 4 fields, no other text or markdown.

Examples:
"I need 5 lakhs for a car" -> {"loan_amount": 500000, "loan_purpose": "vehicle purchase", "urgency": "medium", "has_collateral": false}
"Urgent! Need 2 crores for expanding to 3 new cities" -> {"loan_amount": 20000000, "loan_purpose": "business expansion", "urgency": "high", "has_collateral": false}`

const explainPromptFormat = `Generate a personalized loan approval explanation.

Assessment: %s
Recommendation: %s

Create a friendly, clear explanation covering:
- Approval decision and amount
- Why this lender was recommended
- Next steps

Keep it concise and customer-friendly.`

func extractPrompt(message string) string {
	return fmt.Sprintf(extractPromptFormat, message)
}

func explainPrompt(assessment, recommendation map[string]any) string {
	a, err := json.Marshal(assessment)
	if err != nil {
		a = []byte("{}")
	}
	r, err := json.Marshal(recommendation)
	if err != nil {
		r = []byte("{}")
	}
	return fmt.Sprintf(explainPromptFormat, a, r)
}
