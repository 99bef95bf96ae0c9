package model

// Category is a filter tag applied to joke requests.
type Category string

const (
	// CategoryAny is the unfiltered sentinel accepted by the provider.
	CategoryAny Category = "Any"

	CategoryProgramming Category = "Programming"
	CategoryMisc        Category = "Misc"
	CategoryDark        Category = "Dark"
	CategoryPun         Category = "Pun"
	CategorySpooky      Category = "Spooky"
	CategoryChristmas   Category = "Christmas"
)

// String returns the string representation of the category.
func (c Category) String() string {
	return string(c)
}

// IsValid returns true if the category is one of the known set.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Categories returns the fixed ordered set of selectable categories,
// with the unfiltered sentinel first.
func Categories() []Category {
	return []Category{
		CategoryAny,
		CategoryProgramming,
		CategoryMisc,
		CategoryDark,
		CategoryPun,
		CategorySpooky,
		CategoryChristmas,
	}
}
