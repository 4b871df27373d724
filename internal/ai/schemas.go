package ai

// JSON Schemas for the structured reply shapes. Structured replies are
// validated against these before any field reaches the document, so a
// malformed or differently-shaped reply degrades to an empty result instead
// of propagating loose JSON into typed fields.

// stringArraySchema covers the suggest-skills and suggest-sections replies.
const stringArraySchema = `{
	"type": "array",
	"items": {"type": "string"}
}`

// tailorSchema covers the tailor-resume reply: a partial document fragment.
// No field is required; missing sections simply leave the current document
// untouched.
const tailorSchema = `{
	"type": "object",
	"properties": {
		"summary": {"type": "string"},
		"experiences": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"company":     {"type": "string"},
					"position":    {"type": "string"},
					"location":    {"type": "string"},
					"startDate":   {"type": "string"},
					"endDate":     {"type": "string"},
					"current":     {"type": "boolean"},
					"description": {"type": "string"}
				}
			}
		},
		"skills": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name":  {"type": "string"},
					"level": {"type": "string"}
				}
			}
		},
		"education": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"school":         {"type": "string"},
					"degree":         {"type": "string"},
					"field":          {"type": "string"},
					"graduationDate": {"type": "string"},
					"gpa":            {"type": "string"}
				}
			}
		}
	}
}`

// fresherSchema covers the fresher-preset reply.
const fresherSchema = `{
	"type": "object",
	"properties": {
		"summary": {"type": "string"},
		"experiences": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"company":     {"type": "string"},
					"position":    {"type": "string"},
					"location":    {"type": "string"},
					"startDate":   {"type": "string"},
					"endDate":     {"type": "string"},
					"current":     {"type": "boolean"},
					"description": {"type": "string"}
				}
			}
		},
		"skills": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"name":  {"type": "string"},
					"level": {"type": "string"}
				}
			}
		},
		"customSections": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"title":   {"type": "string"},
					"content": {"type": "string"}
				}
			}
		}
	}
}`
