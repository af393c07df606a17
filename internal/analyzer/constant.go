package analyzer

const promptHeader = `Analyze these tasks and return JSON with priority scores (1-10), categories, and reasoning.

Categories:
- urgent-important: Critical tasks that need immediate attention
- important-not-urgent: Important tasks that can be planned
- urgent-not-important: Urgent but less critical tasks that could be delegated
- neither: Tasks with low urgency and importance

Tasks:
`

const promptFooter = `
Return only valid JSON in this exact format:
{
  "tasks": [
    {
      "index": 1,
      "score": 8,
      "category": "urgent-important",
      "reasoning": "Brief explanation of why this score and category",
      "confidence": 0.9
    }
  ]
}`
