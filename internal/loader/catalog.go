package loader

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/jonathan/skills-matrix/internal/types"
)

// ValidateCatalog runs the catalog-wide checks that ValidateSkills does not
// cover: duplicate skill ids, unknown resource types, and skill group
// references to roles and skills that do not exist.
func ValidateCatalog(cfg *types.Config, categories []types.Category, groups *types.SkillGroups) []string {
	var errs []string

	skillIDs := make(map[string]string)
	for _, category := range categories {
		for _, skill := range category.Skills {
			if owner, dup := skillIDs[skill.ID]; dup {
				errs = append(errs, fmt.Sprintf("Duplicate skill ID '%s' in category '%s' (first seen in '%s')", skill.ID, category.ID, owner))
			} else {
				skillIDs[skill.ID] = category.ID
			}

			for _, r := range skill.Resources {
				if !slices.Contains(types.ResourceTypes, r.Type) {
					errs = append(errs, fmt.Sprintf("Skill '%s' has resource with invalid type '%s'. Valid types: %s",
						skill.ID, r.Type, strings.Join(types.ResourceTypes, ", ")))
				}
			}
		}
	}

	if groups == nil {
		return errs
	}

	var coreSkills map[string][]string
	if err := decode(groups.CoreSkillsByRole, &coreSkills); err != nil {
		errs = append(errs, fmt.Sprintf("core_skills_by_role is malformed: %v", err))
	}
	roles := make([]string, 0, len(coreSkills))
	for roleID := range coreSkills {
		roles = append(roles, roleID)
	}
	sort.Strings(roles)
	for _, roleID := range roles {
		if !cfg.HasRole(roleID) {
			errs = append(errs, fmt.Sprintf("core_skills_by_role references unknown role '%s'", roleID))
		}
		for _, skillID := range coreSkills[roleID] {
			if _, ok := skillIDs[skillID]; !ok {
				errs = append(errs, fmt.Sprintf("core_skills_by_role[%s] references unknown skill '%s'", roleID, skillID))
			}
		}
	}

	var rules []types.InferenceRule
	if err := decode(groups.InferenceRules, &rules); err != nil {
		errs = append(errs, fmt.Sprintf("inference_rules is malformed: %v", err))
	}
	for i, rule := range rules {
		if rule.Source == "" {
			errs = append(errs, fmt.Sprintf("inference_rules[%d] is missing a source skill ID", i))
			continue
		}
		if _, ok := skillIDs[rule.Source]; !ok {
			errs = append(errs, fmt.Sprintf("inference_rules: source skill '%s' does not exist", rule.Source))
		}
		for _, step := range rule.Rules {
			for _, target := range step.Targets {
				if _, ok := skillIDs[target.Skill]; !ok {
					errs = append(errs, fmt.Sprintf("inference_rules: target skill '%s' (from source '%s') does not exist", target.Skill, rule.Source))
				}
			}
		}
	}

	return errs
}
