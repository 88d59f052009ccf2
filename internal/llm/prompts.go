package llm

import (
	"bytes"
	"text/template"
)

var prompts = template.Must(template.New("prompts").Parse(`
{{define "translate"}}You are an expert translator. Translate the following JSON object containing website content into {{.TargetLanguage}}.

IMPORTANT:
- Translate the value of all string fields EXCEPT for 'id', 'avatarUrl', 'avatarHint', 'imageUrl', 'imageHint', 'sourceUrl', 'liveUrl', 'skills' and 'tags'.
- The entire 'author.contact' object, including all sub-fields like email, phone, and social URLs, must NOT be translated. Return it as is.
- Keep the 'projects' array in the same order and with the same length.
- Your response MUST be a valid JSON object that strictly adheres to the provided output schema. Do not add any commentary.

JSON to translate:
` + "```json" + `
{{.ContentJSON}}
` + "```" + `
{{end}}

{{define "palette"}}You are an expert UI/UX designer specializing in color theory. Generate a complete, modern, and aesthetically pleasing color palette for a personal portfolio website.

You must provide two full themes: 'light' and 'dark'.

For each theme, you must provide a value for every color defined in the schema. The values must be a string of three numbers representing HSL, without the 'hsl()' wrapper. For example, for a pure red, you should provide "0 100% 50%".

Ensure the generated colors have good contrast ratios and are accessible. The palette should be professional and suitable for showcasing creative work. Do not use the default blue/purple theme. Be creative and unique.
{{end}}

{{define "describe"}}You are a creative copywriter who specializes in writing compelling project descriptions for portfolios. Generate an alternative description for the following project, making it engaging and highlighting its key features and benefits.

Project Name: {{.ProjectName}}
Original Description: {{.OriginalDescription}}
{{end}}

{{define "bio"}}You are an expert translator. Translate the following biography into {{.TargetLanguage}}.
Do not add any extra commentary or niceties. Only provide the translated text in the 'translatedBio' field.

Biography to translate:
"{{.ExistingBio}}"
{{end}}

{{define "chat"}}You are a helpful and versatile AI assistant for {{.Name}}, the owner of this portfolio. Your personality is friendly, professional, and engaging.

You have two main goals:
1. Answer questions about {{.Name}} and their portfolio. Use the provided context about the author and their projects as your primary source of truth. If the user asks about projects, list them from the provided data.
2. Be a general conversational assistant. If the user asks something unrelated to the portfolio, answer it to the best of your ability.

Always maintain your persona as {{.Name}}'s assistant. Keep your answers concise but informative.

## Author Information ({{.Name}}):
` + "```json" + `
{{.AuthorJSON}}
` + "```" + `

## Projects:
` + "```json" + `
{{.ProjectsJSON}}
` + "```" + `
{{end}}
`))

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := prompts.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
