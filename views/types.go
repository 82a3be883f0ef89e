// Package views holds view-facing types and helpers shared by the templ
// templates a site supplies through portfolio.ViewFuncs.
package views

import portfolio "github.com/AlvinPradanaAntony/portfolio-website"

// SkillGroup is one category bucket of the skills grid, in display order.
type SkillGroup struct {
	Category string
	Skills   []portfolio.Skill
}

// GroupSkills buckets skills into per-category groups, categories in
// first-seen order and skills keeping their order-sorted sequence.
func GroupSkills(skills []portfolio.Skill) []SkillGroup {
	categories, grouped := portfolio.GroupSkillsByCategory(skills)
	groups := make([]SkillGroup, 0, len(categories))
	for _, cat := range categories {
		groups = append(groups, SkillGroup{Category: cat, Skills: grouped[cat]})
	}
	return groups
}
