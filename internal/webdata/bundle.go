package webdata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/skills-matrix/internal/loader"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is a web category: a subdirectory of skills/, or a single
// top-level category file.
type Category struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SkillCount int    `json:"skill_count"`
}

// Bundle is the skills-data.json document. Field order is the key order of
// the written JSON.
type Bundle struct {
	SourceHash       string           `json:"_source_hash"`
	Roles            any              `json:"roles"`
	Levels           any              `json:"levels"`
	SkillLevels      any              `json:"skill_levels"`
	Categories       []Category       `json:"categories"`
	Skills           []map[string]any `json:"skills"`
	AssessmentModes  any              `json:"assessment_modes"`
	CoreSkillsByRole any              `json:"core_skills_by_role"`
	SkillGroups      any              `json:"skill_groups"`
	InferenceRules   any              `json:"inference_rules"`
}

var titleCaser = cases.Title(language.Und)

// DisplayName turns an id like "data_analysis" into "Data Analysis".
func DisplayName(id string) string {
	return titleCaser.String(strings.ReplaceAll(id, "_", " "))
}

// Build reads config.yaml, the optional skill_groups.yaml and every category
// file under skills/ into a Bundle. Sources are not validated; skills pass
// through as written plus their category fields.
func Build(dataRoot string) (*Bundle, error) {
	hash, err := SourceHash(dataRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := loader.LoadMapping(loader.ConfigPath(dataRoot))
	if err != nil {
		return nil, err
	}

	groups, err := loader.LoadSkillGroups(loader.SkillGroupsPath(dataRoot))
	if err != nil {
		return nil, err
	}

	bundle := &Bundle{
		SourceHash:       hash,
		Roles:            normalize(orDefault(cfg["roles"], []any{})),
		Levels:           normalize(orDefault(cfg["career_levels"], []any{})),
		SkillLevels:      normalize(orDefault(cfg["skill_levels"], map[string]any{})),
		Categories:       []Category{},
		Skills:           []map[string]any{},
		AssessmentModes:  normalize(groups.AssessmentModes),
		CoreSkillsByRole: normalize(groups.CoreSkillsByRole),
		SkillGroups:      normalize(groups.Groups),
		InferenceRules:   normalize(groups.InferenceRules),
	}

	groupsByCategory, err := webCategories(loader.SkillsDir(dataRoot))
	if err != nil {
		return nil, err
	}

	for _, group := range groupsByCategory {
		category := Category{ID: group.id, Name: DisplayName(group.id)}
		for _, path := range group.files {
			skills, err := readSkills(path, group.id)
			if err != nil {
				return nil, err
			}
			bundle.Skills = append(bundle.Skills, skills...)
			category.SkillCount += len(skills)
		}
		bundle.Categories = append(bundle.Categories, category)
	}

	return bundle, nil
}

type categoryFiles struct {
	id    string
	files []string
}

// webCategories lists web categories in id order. Files within a directory
// are sorted; nested directories are not descended into.
func webCategories(skillsDir string) ([]categoryFiles, error) {
	entries, err := os.ReadDir(skillsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &BuildError{Message: "failed to read " + skillsDir, Cause: err}
	}

	var groups []categoryFiles
	for _, entry := range entries {
		path := filepath.Join(skillsDir, entry.Name())
		if !entry.IsDir() {
			if filepath.Ext(entry.Name()) == loader.CategoryFileExt {
				id := strings.TrimSuffix(entry.Name(), loader.CategoryFileExt)
				groups = append(groups, categoryFiles{id: id, files: []string{path}})
			}
			continue
		}

		files, err := filepath.Glob(filepath.Join(path, "*"+loader.CategoryFileExt))
		if err != nil {
			return nil, &BuildError{Message: "failed to list " + path, Cause: err}
		}
		sort.Strings(files)
		groups = append(groups, categoryFiles{id: entry.Name(), files: files})
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].id < groups[j].id })
	return groups, nil
}

// readSkills returns the skill mappings of one category file, tagged with
// the owning web category.
func readSkills(path, webCategoryID string) ([]map[string]any, error) {
	root, err := loader.LoadMapping(path)
	if err != nil {
		return nil, err
	}

	categoryName := ""
	if info, ok := root["category"].(map[string]any); ok {
		if id, ok := info["id"].(string); ok {
			categoryName = DisplayName(id)
		}
		if name, ok := info["name"].(string); ok {
			categoryName = name
		}
	}
	if categoryName == "" {
		categoryName = DisplayName(strings.TrimSuffix(filepath.Base(path), loader.CategoryFileExt))
	}

	items, _ := root["skills"].([]any)
	skills := make([]map[string]any, 0, len(items))
	for i, item := range items {
		skill, ok := normalize(item).(map[string]any)
		if !ok {
			return nil, &BuildError{Message: fmt.Sprintf("%s: skills[%d] must be a mapping", path, i)}
		}
		skill["category"] = webCategoryID
		skill["category_name"] = categoryName
		skills = append(skills, skill)
	}

	return skills, nil
}

// normalize converts YAML maps with non-string keys (e.g. integer
// level_descriptions keys) into string-keyed maps so they encode as JSON.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = normalize(val)
		}
		return out
	default:
		return v
	}
}

func orDefault(v, def any) any {
	if v == nil {
		return def
	}
	return v
}

// Encode renders the bundle as 2-space-indented JSON without HTML escaping.
func (b *Bundle) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return nil, &BuildError{Message: "failed to encode bundle", Cause: err}
	}
	return buf.Bytes(), nil
}
