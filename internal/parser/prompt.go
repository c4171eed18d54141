package parser

// profileSchemaExample is the canonical profile shape shown to the model in
// every prompt. Field names must match domain.CanonicalProfile's JSON form.
const profileSchemaExample = `{
  "skills": ["..."],
  "contact": {"name": null, "email": null, "phone": null, "location": null},
  "summary": "",
  "experience": [
    {"title": "", "company": "", "start_date": "", "end_date": "", "responsibilities": ["..."]}
  ],
  "education": [],
  "certifications": [],
  "languages": [],
  "links": []
}`

// extractionPrompt is the system instruction for the first parse attempt.
const extractionPrompt = `You are a résumé parsing assistant. Extract the candidate's information from the résumé text the user provides.

Return ONLY a valid JSON object with no markdown formatting, no code fences, and no explanation, matching this schema exactly:

` + profileSchemaExample + `

Rules:
- Use only information present in the résumé text. Never invent names, employers, dates, or skills.
- Use null for contact fields not found in the text.
- Use empty strings and empty arrays for everything else that is missing.
- Dates may be copied verbatim from the text; do not normalize formats.`

// strictExtractionPrompt is the system instruction for the second attempt,
// biased against empty answers after a sparse first result.
const strictExtractionPrompt = extractionPrompt + `
- The résumé text DOES contain candidate information. You MUST fill "skills" and "experience" with every skill and position present in the text. An empty "skills" array is only acceptable when the text truly lists no skills.`

// repairPrompt is the system instruction for repair calls. The user message
// is the previous raw model output, not the résumé.
const repairPrompt = `You are a JSON repair assistant. The user message is the output of another model that was supposed to be a JSON object matching this schema:

` + profileSchemaExample + `

Reformat it into exactly one valid JSON object matching that schema. Do not add, remove, or invent any data. Return ONLY the JSON object, with no markdown formatting and no explanation.`
