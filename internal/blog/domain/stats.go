package domain

// TopAuthorsLimit is how many authors the stats report ranks.
const TopAuthorsLimit = 5

type Stats struct {
	TotalPosts     int64
	PublishedPosts int64
	TotalViews     int64
	TopAuthors     []AuthorStats
}

type AuthorStats struct {
	Author     string
	PostCount  int64
	TotalViews int64
}
