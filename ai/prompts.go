package ai

import "fmt"

// System prompts shared across all providers.

const systemPromptGenerate = `You are an expert SQL query generator. Given a natural language question and a database schema, generate a precise SQL query.

Guidelines:
- Only generate SELECT queries; never modify data
- Use proper SQL syntax for SQLite
- Include appropriate WHERE clauses, JOINs, and ORDER BY as needed
- Return only the SQL query without explanations
- End the query with a semicolon`

const systemPromptAnswer = `You answer questions about a company database. You are given the user's question, the SQL query that was run, and the query results.

Provide a natural language response that:
- Answers the user's question directly
- Mentions any important insights from the data
- Stays conversational and concise`

// generateUserPrompt builds the user message for SQL generation.
func generateUserPrompt(schemaContext, question string) string {
	return fmt.Sprintf("%s\n\nUser question: %s\n\nSQL query:", schemaContext, question)
}

// answerUserPrompt builds the user message for answer formatting.
func answerUserPrompt(question, sql, results string) string {
	return fmt.Sprintf("User question: %s\n\nSQL query:\n%s\n\nQuery results:\n%s", question, sql, results)
}
