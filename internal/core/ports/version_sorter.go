package ports

// VersionSorter orders version strings.
//
//go:generate go run go.uber.org/mock/mockgen -source=version_sorter.go -destination=mocks/mock_version_sorter.go -package=mocks
type VersionSorter interface {
	// Sort returns the versions in ascending order. The order is total and stable.
	// The input slice is not modified.
	Sort(versions []string) []string
}
