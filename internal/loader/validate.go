package loader

import (
	"fmt"
	"sort"

	"github.com/jonathan/skills-matrix/internal/types"
)

// ValidateSkills checks every skill's role references against the
// configured roles. It never stops early: every violation is reported, in
// category order, then skill order.
func ValidateSkills(cfg *types.Config, categories []types.Category) []string {
	var errs []string

	for _, category := range categories {
		for _, skill := range category.Skills {
			for _, roleID := range skill.CoreRoles {
				if !cfg.HasRole(roleID) {
					errs = append(errs, fmt.Sprintf("Skill '%s' references unknown role '%s' in core_roles", skill.ID, roleID))
				}
			}

			levelRoles := make([]string, 0, len(skill.Levels))
			for roleID := range skill.Levels {
				levelRoles = append(levelRoles, roleID)
			}
			sort.Strings(levelRoles)
			for _, roleID := range levelRoles {
				if !cfg.HasRole(roleID) {
					errs = append(errs, fmt.Sprintf("Skill '%s' references unknown role '%s' in levels", skill.ID, roleID))
				}
			}

			for _, role := range cfg.Roles {
				if _, ok := skill.Levels[role.ID]; !ok {
					errs = append(errs, fmt.Sprintf("Skill '%s' missing levels for role '%s'", skill.ID, role.ID))
				}
			}
		}
	}

	return errs
}
