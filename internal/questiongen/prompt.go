package questiongen

import (
	"fmt"
	"strings"

	"github.com/prepdeck/prepdeck/internal/identity"
)

const quizSystemPrompt = `You are a technical interviewer preparing a screening quiz.

Rules:
- Every question must be multiple choice with exactly 4 options and exactly one correct option.
- Questions must be specific to the candidate's field and listed skills.
- The explanation should teach the underlying concept in 1-2 sentences.
- Return the response in this JSON format only, no additional text:
{
  "questions": [
    {
      "question": "string",
      "options": ["string", "string", "string", "string"],
      "correctAnswer": "string",
      "explanation": "string"
    }
  ]
}`

const interviewSystemPrompt = `You are a senior interviewer preparing a mock interview.

Rules:
- The questions should assess both technical knowledge and soft skills.
- Include a mix of behavioral, problem-solving, and technical questions.
- Each question carries the evaluation criteria and the key points an excellent answer covers.
- Return the response in this JSON format only, no additional text:
{
  "questions": [
    {
      "question": "string",
      "type": "behavioral|technical",
      "evaluationCriteria": ["string"],
      "keyPoints": ["string"]
    }
  ]
}`

// buildQuizMessage constructs the user message for quiz generation.
// Deterministic string construction; no side effects.
func buildQuizMessage(p identity.Profile, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d technical interview questions for a %s professional", count, p.Domain)
	if len(p.Skills) > 0 {
		fmt.Fprintf(&b, " with expertise in %s", strings.Join(p.Skills, ", "))
	}
	b.WriteString(".")

	return b.String()
}

// buildInterviewMessage constructs the user message for interview generation.
func buildInterviewMessage(p identity.Profile, count int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d behavioral and technical interview questions for a %s professional", count, p.Domain)
	if len(p.Skills) > 0 {
		fmt.Fprintf(&b, " with expertise in %s", strings.Join(p.Skills, ", "))
	}
	fmt.Fprintf(&b, " and %d years of experience.", p.ExperienceYears)

	return b.String()
}
