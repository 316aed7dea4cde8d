// Package schemas holds the JSON Schemas of the generated artifacts.
package schemas

import "embed"

// SkillsData is the schema of the web data bundle.
const SkillsData = "skills_data.schema.json"

// FS contains every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
