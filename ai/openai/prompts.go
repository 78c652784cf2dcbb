package openai

const segmentationResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "courses": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "course_title": {
            "type": "string"
          },
          "description": {
            "type": "string"
          }
        },
        "required": ["course_title"],
        "additionalProperties": false
      }
    }
  },
  "required": ["courses"],
  "additionalProperties": false
}`

const segmentationPrompt = `You are a strict course parser. The given text may describe one course or
several. Identify each course and return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble,
explanation, greeting, or acknowledgment. Start your response directly with the opening brace { and end
with the closing brace }. Your output must exactly follow this schema:

` + segmentationResponseSchema + `

Rules:
- If the text clearly describes only one course, even across multiple paragraphs or sentences, return it
  as ONE course only.
- Never split based on newlines, indentation, bullet points, or paragraph separation alone.
- Only split when multiple distinct course titles or distinct subjects are present (e.g. "Course Title:",
  "Machine Learning", "Data Structures").
- If there is no explicit title, infer one short, descriptive course title.
- Never output two courses that come from a single continuous topic.
- Special rule: if the text contains multiple short descriptions (each under roughly 40 words) that
  describe visibly different topics or skills, treat them as separate courses. Short descriptions are
  often separated by punctuation or conjunctions like "and", "also", "additionally".
- Keep courses in the order they appear in the text.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside
  the object.

Example (single course across paragraphs):
Input: "This course introduces programming fundamentals. Students write small programs. Assessment is by portfolio."
Output:
{
  "courses": [
    {"course_title":"Programming Fundamentals","description":"This course introduces programming fundamentals. Students write small programs. Assessment is by portfolio."}
  ]
}

Example (short distinct fragments):
Input: "Python basics. Data visualization."
Output:
{
  "courses": [
    {"course_title":"Python Basics","description":"Python basics."},
    {"course_title":"Data Visualization","description":"Data visualization."}
  ]
}

Example (explicit title markers):
Input: "Course Title: Studio 1. Design practice. Course Title: Studio 2. Advanced design practice."
Output:
{
  "courses": [
    {"course_title":"Studio 1","description":"Design practice."},
    {"course_title":"Studio 2","description":"Advanced design practice."}
  ]
}

Example (nothing course-like):
Input: "qwerty"
Output:
{
  "courses": []
}`
