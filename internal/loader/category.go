package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/skills-matrix/internal/types"
)

// CategoryFileExt is the extension of category source files.
const CategoryFileExt = ".yaml"

// LoadCategory loads one category of skills.
//
// Optional skill fields are sanitized rather than rejected: a resources value
// that is not a non-empty list is treated as absent, and improvement_tips is
// only read when it is a non-empty mapping of strings.
func LoadCategory(path string) (*types.Category, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	root, err := asMapping(doc)
	if err != nil {
		return nil, &SkillLoadError{Path: path, Reason: err.Error()}
	}
	if err := requireKeys(root, "", "category"); err != nil {
		return nil, &SkillLoadError{Path: path, Reason: err.Error()}
	}
	if block, ok := root["category"].(map[string]any); ok {
		if err := requireKeys(block, "category", "id", "name"); err != nil {
			return nil, &SkillLoadError{Path: path, Reason: err.Error()}
		}
	}

	var category types.Category
	if err := decode(root["category"], &category); err != nil {
		return nil, &SkillLoadError{Path: path, Reason: "invalid field category", Cause: err}
	}
	if err := checkFields(&category, "category"); err != nil {
		return nil, &SkillLoadError{Path: path, Reason: err.Error()}
	}

	items, err := skillItems(root["skills"])
	if err != nil {
		return nil, &SkillLoadError{Path: path, Reason: err.Error()}
	}

	category.Skills = make([]types.Skill, 0, len(items))
	for i, item := range items {
		skill, err := buildSkill(item, fmt.Sprintf("skills[%d]", i))
		if err != nil {
			return nil, &SkillLoadError{Path: path, Reason: err.Error()}
		}
		category.Skills = append(category.Skills, skill)
	}

	return &category, nil
}

func skillItems(v any) ([]any, error) {
	switch items := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return items, nil
	default:
		return nil, fmt.Errorf("invalid field skills: expected a list, got %T", v)
	}
}

func buildSkill(item any, prefix string) (types.Skill, error) {
	fields, ok := item.(map[string]any)
	if !ok {
		return types.Skill{}, fmt.Errorf("invalid field %s: expected a mapping, got %T", prefix, item)
	}

	if err := requireKeys(fields, prefix, "id", "name", "description"); err != nil {
		return types.Skill{}, err
	}
	fields = sanitizeSkill(fields)
	if err := requireEach(fields["resources"], prefix+".resources", "url", "title"); err != nil {
		return types.Skill{}, err
	}

	var skill types.Skill
	if err := decode(fields, &skill); err != nil {
		return types.Skill{}, fmt.Errorf("invalid field %s: %w", prefix, err)
	}
	if err := checkFields(&skill, prefix); err != nil {
		return types.Skill{}, err
	}

	if skill.CoreRoles == nil {
		skill.CoreRoles = []string{}
	}
	if skill.Levels == nil {
		skill.Levels = map[string]types.LevelTuple{}
	}
	if skill.LevelDescriptions == nil {
		skill.LevelDescriptions = map[int]string{}
	}
	for i := range skill.Resources {
		if skill.Resources[i].Type == "" {
			skill.Resources[i].Type = types.DefaultResourceType
		}
	}

	return skill, nil
}

// sanitizeSkill drops optional fields that are absent or malformed.
func sanitizeSkill(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}

	if resources, ok := out["resources"].([]any); !ok || len(resources) == 0 {
		delete(out, "resources")
	}
	if tips, ok := out["improvement_tips"]; ok && !isTextMapping(tips) {
		delete(out, "improvement_tips")
	}

	return out
}

// isTextMapping reports whether v is a non-empty mapping of strings.
func isTextMapping(v any) bool {
	var values []any
	switch m := v.(type) {
	case map[string]any:
		for _, value := range m {
			values = append(values, value)
		}
	case map[any]any:
		for _, value := range m {
			values = append(values, value)
		}
	}
	if len(values) == 0 {
		return false
	}
	for _, value := range values {
		if _, ok := value.(string); !ok {
			return false
		}
	}
	return true
}

// LoadAllCategories loads every category file under skillsRoot, including
// subfolders. Categories are keyed by file base name; ids listed in order
// come first, then the remaining ids alphabetically.
func LoadAllCategories(skillsRoot string, order []string) ([]types.Category, error) {
	files, err := discoverCategoryFiles(skillsRoot)
	if err != nil {
		return nil, err
	}

	categories := make([]types.Category, 0, len(files))
	for _, id := range orderCategoryIDs(files, order) {
		category, err := LoadCategory(files[id])
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}

	return categories, nil
}

// discoverCategoryFiles maps category id to file path. A missing root
// yields no categories.
func discoverCategoryFiles(root string) (map[string]string, error) {
	files := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != CategoryFileExt {
			return nil
		}
		files[strings.TrimSuffix(d.Name(), CategoryFileExt)] = path
		return nil
	})
	if err != nil {
		return nil, &ConfigLoadError{Path: root, Reason: "failed to scan skills directory", Cause: err}
	}

	return files, nil
}

func orderCategoryIDs(files map[string]string, order []string) []string {
	ids := make([]string, 0, len(files))
	listed := make(map[string]bool, len(order))

	for _, id := range order {
		if _, ok := files[id]; ok && !listed[id] {
			ids = append(ids, id)
		}
		listed[id] = true
	}

	rest := make([]string, 0, len(files))
	for id := range files {
		if !listed[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)

	return append(ids, rest...)
}

// SkillsDir returns the conventional skills directory under a data root.
func SkillsDir(dataDir string) string {
	return filepath.Join(dataDir, "skills")
}

// ConfigPath returns the conventional config.yaml path under a data root.
func ConfigPath(dataDir string) string {
	return filepath.Join(dataDir, "config.yaml")
}

// SkillGroupsPath returns the conventional skill_groups.yaml path under a data root.
func SkillGroupsPath(dataDir string) string {
	return filepath.Join(dataDir, "skill_groups.yaml")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
