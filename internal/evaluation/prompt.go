package evaluation

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/prepdeck/prepdeck/internal/questiongen"
)

const evalSystemPrompt = `You are an expert interviewer evaluating a candidate's response.

When evaluating:
1. Consider both technical accuracy and communication clarity
2. Check if all key points were addressed
3. Assess the structure and completeness of the answer
4. Evaluate practical examples or experience mentioned
5. Consider the depth of technical understanding shown

Provide the evaluation in this exact JSON format, no additional text:
{
  "score": A number from 0-100 representing overall quality,
  "detailedFeedback": "Specific, constructive feedback about the answer",
  "keyStrengths": ["List 2-3 specific strong points"],
  "improvementAreas": ["List 2-3 specific areas to improve"],
  "modelAnswer": "A concise example of an excellent answer",
  "technicalAccuracy": A number from 0-100 for technical questions only,
  "communicationClarity": A number from 0-100,
  "completeness": A number from 0-100
}`

var evalUserTemplate = template.Must(template.New("evaluation").Parse(`Question: "{{.Question}}"
Candidate's Answer: "{{.Answer}}"
Question Type: {{.Kind}}
Key Points Expected: {{.KeyPoints}}
Evaluation Criteria: {{.Criteria}}`))

// buildEvalMessage renders the user message for one question/answer pair.
func buildEvalMessage(q questiongen.OpenQuestion, answer string) (string, error) {
	var buf bytes.Buffer
	err := evalUserTemplate.Execute(&buf, map[string]string{
		"Question":  q.Text,
		"Answer":    answer,
		"Kind":      string(q.Kind),
		"KeyPoints": strings.Join(q.KeyPoints, ", "),
		"Criteria":  strings.Join(q.EvaluationCriteria, ", "),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
