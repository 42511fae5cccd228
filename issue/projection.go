package issue

import "sort"

// Categorize derives the display category for an issue.
//
// A manual status always wins. Otherwise archived issues are dark green,
// closed issues are light green, open issues with no comments are red, and
// open issues with comments are yellow. An unrecognized manual status is
// ignored and the category is derived automatically.
func Categorize(iss Issue) Category {
	switch iss.Local.ManualStatus {
	case StatusRed:
		return CategoryRed
	case StatusYellow:
		return CategoryYellow
	case StatusLightGreen:
		return CategoryLightGreen
	case StatusDarkGreen:
		return CategoryDarkGreen
	}

	if iss.Local.Archived {
		return CategoryDarkGreen
	}
	if iss.State == StateClosed {
		return CategoryLightGreen
	}
	if iss.Comments == 0 {
		return CategoryRed
	}
	return CategoryYellow
}

// SortByCategory sorts issues in place by category rank, highest attention
// first. Ties are broken by creation time: oldest first when oldestFirst is
// true, newest first otherwise.
func SortByCategory(issues []Issue, oldestFirst bool) {
	sort.SliceStable(issues, func(i, j int) bool {
		ri, rj := Categorize(issues[i]).Rank(), Categorize(issues[j]).Rank()
		if ri != rj {
			return ri < rj
		}
		if oldestFirst {
			return issues[i].CreatedAt.Before(issues[j].CreatedAt)
		}
		return issues[j].CreatedAt.Before(issues[i].CreatedAt)
	})
}
